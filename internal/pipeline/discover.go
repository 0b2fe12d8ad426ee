package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover lists container files under dir whose name ends with ext
// (case-insensitive, leading dot included). Non-recursive mode looks only at
// the directory's own entries; recursive mode walks the whole tree. Paths
// are sorted lexicographically for deterministic processing order. No
// matches is not an error: the result is simply empty.
func Discover(dir, ext string, recursive bool) ([]string, error) {
	var files []string

	if recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if matchExt(path, ext) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if matchExt(e.Name(), ext) {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func matchExt(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}
