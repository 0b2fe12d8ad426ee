// Package pipeline orchestrates file discovery, per-file processing, and
// batch summary reporting. Each file runs inside its own error boundary:
// a decode or write failure is logged, counted, and never aborts the rest
// of the batch.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skyfold/fitspect/internal/config"
	"github.com/skyfold/fitspect/internal/display"
	"github.com/skyfold/fitspect/internal/fits"
	"github.com/skyfold/fitspect/internal/logging"
	"github.com/skyfold/fitspect/internal/naming"
	"github.com/skyfold/fitspect/internal/render"
	"github.com/skyfold/fitspect/internal/report"
	"github.com/skyfold/fitspect/internal/term"
)

// Run is the top-level entry point for both modes. It enumerates targets
// (one file, or a sorted directory listing), processes each sequentially,
// and returns aggregate stats.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	pal, err := render.ByName(cfg.SavePalette)
	if err != nil {
		log.Error("%v", err)
		stats.Failed++
		return stats
	}

	files, batch, err := enumerate(cfg)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		stats.Failed++
		return stats
	}

	stats.Total = len(files)
	logRunHeader(cfg, log, &stats, batch)

	guard := naming.NewCollisionGuard()

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processFile(cfg, log, path, &stats, guard, pal)
	}

	logSummary(log, &stats)
	return stats
}

// enumerate resolves the configured target into the ordered file list.
// A directory target selects batch mode.
func enumerate(cfg *config.Config) ([]string, bool, error) {
	fi, err := os.Stat(cfg.Target)
	if err != nil {
		return nil, false, err
	}
	if !fi.IsDir() {
		return []string{cfg.Target}, false, nil
	}
	files, err := Discover(cfg.Target, cfg.FileExt, cfg.Recursive)
	if err != nil {
		return nil, true, err
	}
	return files, true, nil
}

// processFile handles one container: decode → structure summary → dispatch
// every extension → per-file summary. Counters for tables and images are
// freshly scoped to this file.
func processFile(
	cfg *config.Config,
	log *logging.Logger,
	path string,
	stats *RunStats,
	guard *naming.CollisionGuard,
	pal render.Palette,
) {
	basename := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	c, err := fits.Open(path)
	if err != nil {
		log.Error("Cannot decode container: %v", err)
		stats.Failed++
		fmt.Println()
		return
	}

	display.WriteStructure(os.Stdout, c)
	fmt.Println()

	dir := naming.ArtifactDir(path, cfg.OutputDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error("Cannot create output directory: %v", err)
		stats.Failed++
		fmt.Println()
		return
	}
	base := naming.Base(path)

	tableCount := 0
	imageCount := 0

	for _, ext := range c.Extensions {
		name := ext.Name
		if name == "" {
			name = "-"
		}
		log.Info("Processing HDU %d - %s (type: %s)", ext.Index, name, ext.HDUName)

		switch ext.Kind {
		case fits.KindEmpty:
			log.Info("  No data array (likely primary header only)")

		case fits.KindTable:
			tableCount++
			if err := emitTable(log, guard, path, dir, base, tableCount, ext); err != nil {
				log.Error("Table export failed: %v", err)
				stats.Failed++
				fmt.Println()
				return
			}

		case fits.KindImage:
			imageCount++
			if err := emitImage(cfg, log, guard, path, dir, base, ext, pal); err != nil {
				log.Error("Image render failed: %v", err)
				stats.Failed++
				fmt.Println()
				return
			}

		default:
			log.Warn("  Data has unusual dimensions (%s) - skipping", display.FormatDims(ext.Dims))
			stats.SkippedExts++
		}
	}

	if cfg.Report {
		reportPath := naming.ReportPath(dir, base)
		if err := guard.Claim(path, reportPath); err != nil {
			log.Error("Report failed: %v", err)
			stats.Failed++
			fmt.Println()
			return
		}
		if err := report.Write(reportPath, c); err != nil {
			log.Error("Report failed: %v", err)
			stats.Failed++
			fmt.Println()
			return
		}
		log.Success("Wrote structure report %s", filepath.Base(reportPath))
	}

	stats.Files++
	stats.Tables += tableCount
	stats.Images += imageCount

	log.Info("Tables found: %d (printed + exported to CSV)", tableCount)
	log.Info("Images visualized: %d", imageCount)
	fmt.Println()
}

// emitTable prints the grid and writes the CSV artifact. n is the 1-based
// table ordinal within the current file.
func emitTable(
	log *logging.Logger,
	guard *naming.CollisionGuard,
	input, dir, base string,
	n int,
	ext fits.Extension,
) error {
	fmt.Printf("\n%sTable %d:%s\n", term.Bold, n, term.NC)
	display.WriteGrid(os.Stdout, ext.Table.Names, ext.Table.Rows)
	fmt.Println()

	csvPath := naming.CSVPath(dir, base, n)
	if err := guard.Claim(input, csvPath); err != nil {
		return err
	}
	if err := render.WriteCSV(csvPath, ext.Table); err != nil {
		return err
	}
	log.Success("  Exported table to %s", filepath.Base(csvPath))
	return nil
}

// emitImage logs stats, writes the single PNG, and in gallery mode also the
// multi-palette contact sheet. One normalization is computed per extension
// and shared by every raster derived from it.
func emitImage(
	cfg *config.Config,
	log *logging.Logger,
	guard *naming.CollisionGuard,
	input, dir, base string,
	ext fits.Extension,
	pal render.Palette,
) error {
	im := ext.Image
	if im.Reduced {
		log.Info("  Multi-dimensional data (%s). Showing first slice.", display.FormatDims(im.OrigDims))
	}

	st := im.Stats()
	log.Info("  Pixels: min %g | max %g | mean %g", st.Min, st.Max, st.Mean)

	n := render.NewNorm(im.Pixels)

	pngPath := naming.ImagePath(dir, base, ext.Index, ext.Name)
	if cfg.Gallery {
		pngPath = naming.GalleryImagePath(dir, base, ext.Index)
	}
	if err := guard.Claim(input, pngPath); err != nil {
		return err
	}

	log.Render("  Rasterizing %dx%d slice (%s)", im.Width, im.Height, pal.Name)
	if err := render.WritePNG(pngPath, im, n, pal, cfg.Colorbar); err != nil {
		return err
	}
	log.Success("  Saved image as %s", filepath.Base(pngPath))

	if cfg.Gallery {
		sheetPath := naming.GallerySheetPath(dir, base, ext.Index)
		if err := guard.Claim(input, sheetPath); err != nil {
			return err
		}
		if err := render.WriteGallerySheet(sheetPath, im, n); err != nil {
			return err
		}
		log.Success("  Saved palette gallery as %s", filepath.Base(sheetPath))
	}
	return nil
}

// --- Logging helpers ---

func logRunHeader(cfg *config.Config, log *logging.Logger, stats *RunStats, batch bool) {
	if batch {
		scope := "top level only"
		if cfg.Recursive {
			scope = "recursive"
		}
		log.Info("Found %d %s file(s) under %s (%s)", stats.Total, cfg.FileExt, cfg.Target, scope)
	}

	out := "alongside input"
	if cfg.OutputDir != "" {
		out = cfg.OutputDir
	}
	log.Info("Artifacts: %s", out)
	log.Info("Palette: %s (sqrt stretch, 99.5%% clip)", cfg.SavePalette)
	if cfg.Gallery {
		log.Info("Gallery: multi-palette contact sheet per image HDU")
	}
	if cfg.Colorbar {
		log.Info("Colorbar: enabled")
	}
	if cfg.Report {
		log.Info("Report: YAML structure report per file")
	}
	fmt.Println()
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d processed, %d failed", stats.Files, stats.Failed)
	log.Info("  Tables exported: %d", stats.Tables)
	log.Info("  Images rendered: %d", stats.Images)
	if stats.SkippedExts > 0 {
		log.Info("  Extensions skipped: %d", stats.SkippedExts)
	}
	log.Success("All files attempted.")
}
