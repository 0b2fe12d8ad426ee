// Command fitspect is the CLI entrypoint for the FITS inspector.
//
// It parses flags, validates configuration, and either runs environment
// diagnostics (--check) or the inspect/export pipeline over a single FITS
// file or a directory of them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/skyfold/fitspect/internal/check"
	"github.com/skyfold/fitspect/internal/config"
	"github.com/skyfold/fitspect/internal/display"
	"github.com/skyfold/fitspect/internal/logging"
	"github.com/skyfold/fitspect/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "fitspect: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "fitspect: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fitspect: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	log.Info("=== fitspect v%s (%s) ===", version, commit)
	log.Info("Target: %s", cfg.Target)
	log.Info("")

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// pipeline can stop between files.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	// Phase 4: Run pipeline (enumerate → decode → dispatch → emit).
	stats := pipeline.Run(ctx, &cfg, log)

	if stats.Failed > 0 {
		return 1
	}
	return 0
}
