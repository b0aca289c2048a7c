package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	tincterrors "github.com/alexisbeaulieu97/tinct/pkg/errors"
)

// Validate checks cfg and returns a *errors.ValidationError for the first
// invalid field.
func Validate(cfg *Config) error {
	if cfg == nil {
		return tincterrors.NewValidationError("config", "config is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

// convertValidationError normalizes validator errors into tinct validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s' (got %q)", field, ve.Tag(), fmt.Sprint(ve.Value()))
		return tincterrors.NewValidationError(field, msg, err)
	}

	return tincterrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns Config.Log.Level into log.level.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
