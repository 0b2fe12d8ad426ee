package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into batch, image, display, and utility.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults
// hold unless the user passes the flag.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing positional
// arg). version is shown in --version and the help header.
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("fitspect", flag.ContinueOnError)
	fs.Usage = func() { printUsage(version) }

	var negated negatedFlags

	defineBatchFlags(fs, cfg)
	defineImageFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, cfg, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "fitspect v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineBatchFlags registers -o/--out, -e/--ext, -r/--recursive.
func defineBatchFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Artifact directory (default: alongside input)")
	fs.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "Same as --out")
	fs.StringVar(&cfg.FileExt, "ext", cfg.FileExt, "Container extension filter for directories")
	fs.StringVar(&cfg.FileExt, "e", cfg.FileExt, "Same as --ext")
	fs.BoolVar(&cfg.Recursive, "recursive", false, "Descend into subdirectories")
	fs.BoolVar(&cfg.Recursive, "r", false, "Same as --recursive")
}

// defineImageFlags registers -p/--palette, --gallery, --colorbar, --report.
func defineImageFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.SavePalette, "palette", cfg.SavePalette, "Colormap for saved PNGs")
	fs.StringVar(&cfg.SavePalette, "p", cfg.SavePalette, "Same as --palette")
	fs.BoolVar(&cfg.Gallery, "gallery", false, "Render a multi-palette contact sheet per image HDU")
	fs.BoolVar(&cfg.Colorbar, "colorbar", false, "Add a colorbar strip to saved PNGs")
	fs.BoolVar(&cfg.Report, "report", false, "Write a YAML structure report per file")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored output")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run environment diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets Target from the single positional arg when not in
// CheckOnly mode.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need exactly one FITS file or directory")
	}
	cfg.Target = NormalizeDirArg(args[0])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "fitspect v" + version + " — FITS container inspector and exporter"},
		{"", ""},
		{"  fitspect [OPTIONS] <file.fits | directory>", ""},
		{"", ""},
		{"Batch", ""},
		{"  -o, --out <dir>", "Artifact directory (default: alongside input)"},
		{"  -e, --ext <suffix>", "Container extension filter (default: .fits)"},
		{"  -r, --recursive", "Descend into subdirectories"},
		{"", ""},
		{"Images", ""},
		{"  -p, --palette <name>", "Colormap for saved PNGs (default: viridis)"},
		{"  --gallery", "Multi-palette contact sheet per image HDU"},
		{"  --colorbar", "Add a colorbar strip to saved PNGs"},
		{"  --report", "Write a YAML structure report per file"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored output"},
		{"  --no-color", "Disable colored output"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Environment diagnostics (palettes, output dir)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
