// Package naming builds deterministic artifact paths. Every name embeds
// either the table ordinal or the extension index, so two artifacts from one
// input file can never collide, and re-running the pipeline overwrites the
// same names instead of creating duplicates.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Base returns the input file's name without directory or extension,
// e.g. "/data/o5i301020_asn.fits" → "o5i301020_asn".
func Base(inputPath string) string {
	b := filepath.Base(inputPath)
	return strings.TrimSuffix(b, filepath.Ext(b))
}

// ArtifactDir resolves where artifacts for inputPath go: outputDir when
// configured, otherwise the input file's own directory.
func ArtifactDir(inputPath, outputDir string) string {
	if outputDir != "" {
		return outputDir
	}
	return filepath.Dir(inputPath)
}

// CSVPath builds the table artifact path. n is the 1-based table ordinal
// within the file.
func CSVPath(dir, base string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_table_%d.csv", base, n))
}

// ImagePath builds the single-PNG artifact path for an image extension:
// <base>_ext<index>_<name>.png, with the extension name sanitized.
func ImagePath(dir, base string, index int, extName string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_ext%d_%s.png", base, index, SanitizeName(extName)))
}

// GalleryImagePath builds the gallery-mode single-PNG path:
// <base>_hdu<index>_image.png.
func GalleryImagePath(dir, base string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_hdu%d_image.png", base, index))
}

// GallerySheetPath builds the multi-palette contact sheet path.
func GallerySheetPath(dir, base string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_hdu%d_gallery.png", base, index))
}

// ReportPath builds the YAML structure report path.
func ReportPath(dir, base string) string {
	return filepath.Join(dir, base+"_structure.yaml")
}

// SanitizeName maps an extension name onto a filename-safe token:
// lowercase, non-alphanumerics collapsed to underscores. Empty names fall
// back to "image" (primary HDUs usually have no EXTNAME).
func SanitizeName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return "image"
	}
	var b strings.Builder
	lastUnder := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnder = false
		default:
			if !lastUnder {
				b.WriteByte('_')
				lastUnder = true
			}
		}
	}
	s := strings.Trim(b.String(), "_")
	if s == "" {
		return "image"
	}
	return s
}
