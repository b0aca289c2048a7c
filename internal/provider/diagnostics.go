package provider

import (
	"sync"
	"sync/atomic"

	"github.com/alexisbeaulieu97/tinct/internal/logger"
)

var diagnostics struct {
	mu          sync.Mutex
	log         *logger.Logger
	development bool
	warned      atomic.Bool
}

// SetDevelopment turns the missing-scope warning on or off and sets the
// logger it is written to.
func SetDevelopment(enabled bool, log *logger.Logger) {
	diagnostics.mu.Lock()
	defer diagnostics.mu.Unlock()
	diagnostics.development = enabled
	diagnostics.log = log
}

func warnMissingScope() {
	diagnostics.mu.Lock()
	enabled, log := diagnostics.development, diagnostics.log
	diagnostics.mu.Unlock()

	if !enabled || !diagnostics.warned.CompareAndSwap(false, true) {
		return
	}
	log.Warn("theme consumed outside of any theme scope; using the light theme")
}
