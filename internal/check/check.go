// Package check provides environment diagnostics (--check mode): registered
// palettes, output directory writability, and terminal color support.
package check

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/skyfold/fitspect/internal/config"
	"github.com/skyfold/fitspect/internal/render"
	"github.com/skyfold/fitspect/internal/term"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the --check flow. It is informational and does not stop on
// failure; the return value reports whether everything passed.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Environment Check ===")

	ok := checkPalette(cfg, log)
	if !checkOutputDir(cfg, log) {
		ok = false
	}
	checkColors(log)
	return ok
}

// checkPalette verifies the configured palette exists and lists the registry.
func checkPalette(cfg *config.Config, log Logger) bool {
	log.Info("Palettes: %s", strings.Join(render.Names(), ", "))
	if _, err := render.ByName(cfg.SavePalette); err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("Save palette: %s", cfg.SavePalette)
	return true
}

// checkOutputDir verifies the configured artifact directory is writable by
// creating and removing a probe file. Skipped when artifacts go alongside
// inputs, since there is no single directory to test.
func checkOutputDir(cfg *config.Config, log Logger) bool {
	if cfg.OutputDir == "" {
		log.Info("Artifacts: alongside input files (no fixed directory to test)")
		return true
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory %s: %v", cfg.OutputDir, err)
		return false
	}
	probe := filepath.Join(cfg.OutputDir, ".fitspect-write-test")
	f, err := os.Create(probe)
	if err != nil {
		log.Error("Output directory not writable: %v", err)
		return false
	}
	f.Close()
	os.Remove(probe)
	log.Success("Output directory writable: %s", cfg.OutputDir)
	return true
}

// checkColors reports whether ANSI colors are active for this run.
func checkColors(log Logger) {
	if term.Enabled() {
		log.Success("Terminal colors: enabled")
	} else {
		log.Info("Terminal colors: disabled")
	}
}
