package fits

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/astrogo/fitsio"
)

// Open decodes the container at path. The file is opened, scanned and closed
// within this call; the returned Container is fully materialized and holds no
// file handles. Any failure during open or iteration is returned as one
// error, so callers get an atomic per-file boundary.
func Open(path string) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open container: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat container: %w", err)
	}

	fit, err := fitsio.Open(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	defer fit.Close()

	c := &Container{Path: path, Size: fi.Size()}
	for i, hdu := range fit.HDUs() {
		ext, err := decodeHDU(i, hdu)
		if err != nil {
			return nil, fmt.Errorf("%s: HDU %d: %w", filepath.Base(path), i, err)
		}
		c.Extensions = append(c.Extensions, ext)
	}
	return c, nil
}

// decodeHDU turns one HDU into an Extension with its Kind resolved. The
// switch is intentionally exhaustive over the shapes fitsio can hand us:
// tables, images with >=2 axes, header-only HDUs, and the 1-D fallback.
func decodeHDU(index int, hdu fitsio.HDU) (Extension, error) {
	ext := Extension{
		Index: index,
		Name:  hdu.Name(),
	}

	if tbl, ok := hdu.(*fitsio.Table); ok {
		ext.HDUName = "BinTableHDU"
		if hdu.Type() == fitsio.ASCII_TBL {
			ext.HDUName = "TableHDU"
		}
		data, err := decodeTable(tbl)
		if err != nil {
			return ext, fmt.Errorf("decode table: %w", err)
		}
		ext.Kind = KindTable
		ext.Table = data
		ext.Dims = []int{len(data.Names), len(data.Rows)}
		return ext, nil
	}

	img, ok := hdu.(fitsio.Image)
	if !ok {
		// Unknown HDU flavor; treat like an unclassifiable payload.
		ext.HDUName = "UnknownHDU"
		ext.Kind = KindOther
		return ext, nil
	}

	ext.HDUName = "ImageHDU"
	if index == 0 {
		ext.HDUName = "PrimaryHDU"
	}

	hdr := img.Header()
	ext.Bitpix = hdr.Bitpix()
	axes := hdr.Axes()
	ext.Dims = append([]int(nil), axes...)

	npix := 1
	for _, n := range axes {
		npix *= n
	}
	if len(axes) == 0 || npix == 0 {
		ext.Kind = KindEmpty
		ext.Dims = nil
		return ext, nil
	}
	if len(axes) < 2 {
		ext.Kind = KindOther
		return ext, nil
	}

	data, err := decodeImage(img, axes, ext.Bitpix)
	if err != nil {
		return ext, fmt.Errorf("decode image: %w", err)
	}
	ext.Kind = KindImage
	ext.Image = data
	return ext, nil
}

// decodeImage extracts the first 2-D plane of an image HDU as float64 pixels
// with BZERO/BSCALE applied. FITS stores NAXIS1 fastest, so the first
// width*height values are exactly the leading plane of a cube.
func decodeImage(img fitsio.Image, axes []int, bitpix int) (*ImageData, error) {
	hdr := img.Header()
	w, h := axes[0], axes[1]

	bzero := headerFloat(hdr, "BZERO", 0)
	bscale := headerFloat(hdr, "BSCALE", 1)
	if bscale == 0 {
		bscale = 1
	}

	pixels, err := decodePixels(img.Raw(), bitpix, w*h, bzero, bscale)
	if err != nil {
		return nil, err
	}

	return &ImageData{
		Width:    w,
		Height:   h,
		Pixels:   pixels,
		Reduced:  len(axes) > 2,
		OrigDims: append([]int(nil), axes...),
	}, nil
}

// decodeTable materializes every row of a table HDU. Values are formatted
// into their canonical string form once here; see TableData.
func decodeTable(tbl *fitsio.Table) (*TableData, error) {
	cols := tbl.Cols()
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name
	}

	rows, err := tbl.Read(0, int64(tbl.NumRows()))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([][]string, 0, tbl.NumRows())
	for rows.Next() {
		rec := make(map[string]interface{}, len(names))
		if err := rows.Scan(&rec); err != nil {
			return nil, err
		}
		cells := make([]string, len(names))
		for i, name := range names {
			cells[i] = formatValue(rec[name])
		}
		out = append(out, cells)
	}

	return &TableData{Names: names, Rows: out}, nil
}

// formatValue renders one decoded cell. Floats use the shortest
// representation that round-trips, so the CSV artifact re-parses to the
// exact decoded value.
func formatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimRight(x, " ")
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	default:
		// Vector columns (TFORM repeat > 1) and complex types.
		return fmt.Sprint(x)
	}
}

// headerFloat reads a numeric card, tolerating the int/float ambiguity of
// FITS header values.
func headerFloat(hdr *fitsio.Header, key string, def float64) float64 {
	card := hdr.Get(key)
	if card == nil {
		return def
	}
	switch v := card.Value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return def
	}
}
