package display

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatDims renders axis lengths as "100x100" (NAXIS1 first). Empty dims
// render as "-".
func FormatDims(dims []int) string {
	if len(dims) == 0 {
		return "-"
	}
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}

// FormatTableDims renders table shape as "3C x 5R" from [cols, rows].
func FormatTableDims(dims []int) string {
	if len(dims) != 2 {
		return FormatDims(dims)
	}
	return fmt.Sprintf("%dC x %dR", dims[0], dims[1])
}
