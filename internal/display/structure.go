package display

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/skyfold/fitspect/internal/fits"
	"github.com/skyfold/fitspect/internal/term"
)

// WriteStructure prints the container's structural summary before any
// extension is processed: one grid row per HDU with index, name, declared
// type, resolved kind, dims and BITPIX.
func WriteStructure(w io.Writer, c *fits.Container) {
	fmt.Fprintf(w, "%sFITS file structure for %s%s (%s):\n",
		term.Bold, filepath.Base(c.Path), term.NC, FormatBytes(c.Size))

	header := []string{"No.", "Name", "Type", "Kind", "Dims", "BITPIX"}
	rows := make([][]string, len(c.Extensions))
	for i, ext := range c.Extensions {
		rows[i] = []string{
			strconv.Itoa(ext.Index),
			extName(ext),
			ext.HDUName,
			ext.Kind.String(),
			extDims(ext),
			bitpixLabel(ext),
		}
	}
	WriteGrid(w, header, rows)
}

func extName(ext fits.Extension) string {
	if ext.Name == "" {
		return "-"
	}
	return ext.Name
}

func extDims(ext fits.Extension) string {
	if ext.Kind == fits.KindTable {
		return FormatTableDims(ext.Dims)
	}
	return FormatDims(ext.Dims)
}

func bitpixLabel(ext fits.Extension) string {
	if ext.Kind == fits.KindTable || ext.Bitpix == 0 {
		return "-"
	}
	return strconv.Itoa(ext.Bitpix)
}
