package render

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/skyfold/fitspect/internal/fits"
)

// WriteCSV writes a table payload to path: header row first, then every row
// verbatim. An existing file is overwritten, so re-runs are idempotent.
func WriteCSV(path string, data *fits.TableData) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(data.Names); err != nil {
		f.Close()
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range data.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}
