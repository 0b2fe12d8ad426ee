// Package fitstest builds small synthetic FITS containers for tests: header
// cards are laid out in 2880-byte blocks by hand, so decoder tests exercise
// the real on-disk format without shipping binary fixtures.
package fitstest

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const blockSize = 2880

// File accumulates HDUs and renders them as raw FITS bytes.
type File struct {
	buf []byte
}

// New returns an empty builder. Call AddPrimary first; FITS requires the
// primary HDU to open the file.
func New() *File { return &File{} }

// Bytes returns the assembled container.
func (f *File) Bytes() []byte { return f.buf }

// WriteTemp writes the container into dir under name and returns its path.
func (f *File) WriteTemp(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, f.buf, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// AddPrimary appends a header-only primary HDU (SIMPLE=T, NAXIS=0).
func (f *File) AddPrimary() *File {
	cards := []string{
		logicalCard("SIMPLE", true, "conforms to FITS standard"),
		intCard("BITPIX", 8, "array data type"),
		intCard("NAXIS", 0, "number of array dimensions"),
		logicalCard("EXTEND", true, ""),
	}
	f.appendHeader(cards)
	return f
}

// AddImage16 appends an IMAGE extension with 16-bit pixels. dims is NAXIS1
// first (width, height, planes…); data is in FITS order, NAXIS1 fastest.
func (f *File) AddImage16(extname string, dims []int, data []int16) *File {
	cards := []string{
		strCard("XTENSION", "IMAGE", "Image extension"),
		intCard("BITPIX", 16, "array data type"),
		intCard("NAXIS", len(dims), "number of array dimensions"),
	}
	for i, d := range dims {
		cards = append(cards, intCard(fmt.Sprintf("NAXIS%d", i+1), d, ""))
	}
	cards = append(cards,
		intCard("PCOUNT", 0, ""),
		intCard("GCOUNT", 1, ""),
	)
	if extname != "" {
		cards = append(cards, strCard("EXTNAME", extname, ""))
	}
	f.appendHeader(cards)

	raw := make([]byte, len(data)*2)
	for i, v := range data {
		binary.BigEndian.PutUint16(raw[i*2:], uint16(v))
	}
	f.appendData(raw)
	return f
}

// AddImageFloat32 appends an IMAGE extension with BITPIX=-32 pixels.
func (f *File) AddImageFloat32(extname string, dims []int, data []float32) *File {
	cards := []string{
		strCard("XTENSION", "IMAGE", "Image extension"),
		intCard("BITPIX", -32, "array data type"),
		intCard("NAXIS", len(dims), "number of array dimensions"),
	}
	for i, d := range dims {
		cards = append(cards, intCard(fmt.Sprintf("NAXIS%d", i+1), d, ""))
	}
	cards = append(cards,
		intCard("PCOUNT", 0, ""),
		intCard("GCOUNT", 1, ""),
	)
	if extname != "" {
		cards = append(cards, strCard("EXTNAME", extname, ""))
	}
	f.appendHeader(cards)

	raw := make([]byte, len(data)*4)
	for i, v := range data {
		binary.BigEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}
	f.appendData(raw)
	return f
}

// AddTable appends a BINTABLE extension with three columns: ID (32-bit int),
// VAL (32-bit float), NAME (8-char string). All slices must share a length.
func (f *File) AddTable(extname string, ids []int32, vals []float32, names []string) *File {
	const rowLen = 4 + 4 + 8
	nrows := len(ids)

	cards := []string{
		strCard("XTENSION", "BINTABLE", "binary table extension"),
		intCard("BITPIX", 8, "array data type"),
		intCard("NAXIS", 2, "number of array dimensions"),
		intCard("NAXIS1", rowLen, "length of dimension 1"),
		intCard("NAXIS2", nrows, "length of dimension 2"),
		intCard("PCOUNT", 0, "number of group parameters"),
		intCard("GCOUNT", 1, "number of groups"),
		intCard("TFIELDS", 3, "number of table fields"),
		strCard("TTYPE1", "ID", ""),
		strCard("TFORM1", "J", ""),
		strCard("TTYPE2", "VAL", ""),
		strCard("TFORM2", "E", ""),
		strCard("TTYPE3", "NAME", ""),
		strCard("TFORM3", "8A", ""),
	}
	if extname != "" {
		cards = append(cards, strCard("EXTNAME", extname, ""))
	}
	f.appendHeader(cards)

	raw := make([]byte, nrows*rowLen)
	for i := 0; i < nrows; i++ {
		off := i * rowLen
		binary.BigEndian.PutUint32(raw[off:], uint32(ids[i]))
		binary.BigEndian.PutUint32(raw[off+4:], math.Float32bits(vals[i]))
		name := names[i]
		if len(name) > 8 {
			name = name[:8]
		}
		copy(raw[off+8:off+16], []byte(fmt.Sprintf("%-8s", name)))
	}
	f.appendData(raw)
	return f
}

// appendHeader renders cards plus END into space-padded 2880-byte blocks.
func (f *File) appendHeader(cards []string) {
	var hdr []byte
	for _, c := range cards {
		hdr = append(hdr, c...)
	}
	hdr = append(hdr, card("END", "")...)
	for len(hdr)%blockSize != 0 {
		hdr = append(hdr, ' ')
	}
	f.buf = append(f.buf, hdr...)
}

// appendData zero-pads raw to a whole number of blocks.
func (f *File) appendData(raw []byte) {
	f.buf = append(f.buf, raw...)
	pad := (blockSize - len(raw)%blockSize) % blockSize
	f.buf = append(f.buf, make([]byte, pad)...)
}

// card renders one 80-character keyword record.
func card(key, rest string) string {
	return fmt.Sprintf("%-8s%-72s", key, rest)[:80]
}

func intCard(key string, v int, comment string) string {
	rest := fmt.Sprintf("= %20d", v)
	if comment != "" {
		rest += " / " + comment
	}
	return card(key, rest)
}

func logicalCard(key string, v bool, comment string) string {
	c := "F"
	if v {
		c = "T"
	}
	rest := fmt.Sprintf("= %20s", c)
	if comment != "" {
		rest += " / " + comment
	}
	return card(key, rest)
}

func strCard(key, v, comment string) string {
	rest := fmt.Sprintf("= '%-8s'", v)
	if comment != "" {
		rest += " / " + comment
	}
	return card(key, rest)
}
