// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Target (set from the positional arg). A FITS file or a directory;
	// which one is decided by stat'ing it at startup.
	Target string

	// Output settings.
	OutputDir string // Artifact directory. Empty: alongside each input file.
	FileExt   string // Container extension filter for batch mode. Default: ".fits".
	Recursive bool   // Walk subdirectories in batch mode. Default: false.

	// Image rendering.
	SavePalette string // Colormap for the saved PNG. Default: "viridis".
	Gallery     bool   // Also render a multi-palette contact sheet per image HDU.
	Colorbar    bool   // Extend the saved PNG with a colorbar strip.

	// Extra artifacts.
	Report bool // Write a YAML structure report per container.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns the baseline settings before [ParseFlags] applies
// CLI overrides.
func DefaultConfig() Config {
	return Config{
		FileExt:     ".fits",
		Recursive:   false,
		SavePalette: "viridis",
		Gallery:     false,
		Colorbar:    false,
		Report:      false,
		Verbose:     false,
		ColorMode:   ColorAuto,
		CheckOnly:   false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and canonicalizes the extension filter. When
// not in CheckOnly mode it also requires a target path.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	ext, err := normalizeFileExt(c.FileExt)
	if err != nil {
		return err
	}
	c.FileExt = ext

	if c.SavePalette == "" {
		return errors.New("palette name must not be empty")
	}
	c.SavePalette = strings.ToLower(strings.TrimSpace(c.SavePalette))

	if c.CheckOnly {
		return nil
	}
	if c.Target == "" {
		return errors.New("need a FITS file or directory to inspect")
	}
	return nil
}

// normalizeFileExt validates and canonicalizes the extension filter.
// Accepted forms: "fits", ".fits", "FIT". Output is lowercase with a leading dot.
func normalizeFileExt(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, ".")
	if s == "" {
		return "", fmt.Errorf("invalid file extension %q (use e.g. fits or .fit)", raw)
	}
	return "." + s, nil
}
