package display

import (
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"typical FITS file", 11520000, "11.0 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatDims(t *testing.T) {
	tests := []struct {
		name string
		dims []int
		want string
	}{
		{"empty", nil, "-"},
		{"one axis", []int{512}, "512"},
		{"image", []int{100, 100}, "100x100"},
		{"cube", []int{64, 64, 3}, "64x64x3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDims(tt.dims)
			if got != tt.want {
				t.Errorf("FormatDims(%v) = %q, want %q", tt.dims, got, tt.want)
			}
		})
	}
}

func TestFormatTableDims(t *testing.T) {
	if got := FormatTableDims([]int{3, 5}); got != "3C x 5R" {
		t.Errorf("FormatTableDims = %q, want %q", got, "3C x 5R")
	}
	if got := FormatTableDims(nil); got != "-" {
		t.Errorf("FormatTableDims(nil) = %q, want %q", got, "-")
	}
}
