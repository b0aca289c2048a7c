package config

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/tinct/internal/appearance"
	"github.com/alexisbeaulieu97/tinct/internal/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_mode", func(fl validator.FieldLevel) bool {
			_, err := theme.ParseMode(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("appearance_source", func(fl validator.FieldLevel) bool {
			_, err := appearance.ParseKind(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, err := zerolog.ParseLevel(strings.ToLower(fl.Field().String()))
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
