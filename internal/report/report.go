// Package report writes the optional per-container YAML structure report:
// a machine-readable version of the console structure summary.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/skyfold/fitspect/internal/fits"
)

// Document is the YAML root for one container.
type Document struct {
	File       string      `yaml:"file"`
	Size       int64       `yaml:"size"`
	Extensions []Extension `yaml:"extensions"`
}

// Extension is one HDU entry of the report.
type Extension struct {
	Index  int    `yaml:"index"`
	Name   string `yaml:"name,omitempty"`
	Type   string `yaml:"type"`
	Kind   string `yaml:"kind"`
	Dims   []int  `yaml:"dims,flow,omitempty"`
	Bitpix int    `yaml:"bitpix,omitempty"`
}

// Build converts a decoded container into its report document.
func Build(c *fits.Container) Document {
	doc := Document{
		File:       filepath.Base(c.Path),
		Size:       c.Size,
		Extensions: make([]Extension, len(c.Extensions)),
	}
	for i, ext := range c.Extensions {
		doc.Extensions[i] = Extension{
			Index:  ext.Index,
			Name:   ext.Name,
			Type:   ext.HDUName,
			Kind:   ext.Kind.String(),
			Dims:   ext.Dims,
			Bitpix: ext.Bitpix,
		}
	}
	return doc
}

// Write encodes the report to path, overwriting any previous run's file.
func Write(path string, c *fits.Container) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(Build(c)); err != nil {
		f.Close()
		return fmt.Errorf("encode report: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("flush report: %w", err)
	}
	return f.Close()
}
