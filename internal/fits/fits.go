// Package fits decodes FITS containers into a classified, typed form the
// pipeline can dispatch on. The binary parsing itself is delegated to
// astrogo/fitsio; this package's job is to turn each HDU into an Extension
// with an explicit Kind derived from the payload shape, plus fully decoded
// table rows or image pixels.
package fits

// Kind classifies an extension's payload. The classification is total and
// mutually exclusive: every decoded HDU gets exactly one Kind, derived from
// shape alone (never from the extension name).
type Kind int

const (
	KindEmpty Kind = iota // No data array (e.g. a header-only primary HDU).
	KindTable             // Tabular payload (binary or ASCII table).
	KindImage             // Numeric array with 2 or more dimensions.
	KindOther             // Anything else (e.g. a 1-D array).
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindTable:
		return "table"
	case KindImage:
		return "image"
	default:
		return "other"
	}
}

// Container is one decoded FITS file. It is transient: built by [Open],
// consumed by the pipeline, never written back.
type Container struct {
	Path       string
	Size       int64
	Extensions []Extension
}

// Extension is one HDU of a Container.
type Extension struct {
	Index   int    // 0-based position in the container.
	Name    string // EXTNAME, possibly empty.
	HDUName string // Display label, e.g. "PrimaryHDU", "BinTableHDU".
	Kind    Kind
	Dims    []int // Axis lengths as declared (NAXIS1 first); nil when empty.
	Bitpix  int

	// Exactly one of these is non-nil for KindTable / KindImage.
	Table *TableData
	Image *ImageData
}

// TableData is a decoded tabular payload. Cell values are formatted once at
// decode time; the CSV artifact and the console grid both transcribe Rows
// verbatim so they can never disagree.
type TableData struct {
	Names []string
	Rows  [][]string
}

// NumRows returns the row count.
func (t *TableData) NumRows() int { return len(t.Rows) }

// ImageData is a decoded 2-D numeric payload. For arrays with more than two
// dimensions, Pixels holds the first plane along the leading axis and
// Reduced is set.
type ImageData struct {
	Width    int
	Height   int
	Pixels   []float64 // Row-major, len = Width*Height, y=0 is the bottom row.
	Reduced  bool
	OrigDims []int
}

// Stats holds the summary statistics reported before saving a raster.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
}

// Stats computes min, max and arithmetic mean over all pixels.
func (im *ImageData) Stats() Stats {
	if len(im.Pixels) == 0 {
		return Stats{}
	}
	min, max := im.Pixels[0], im.Pixels[0]
	sum := 0.0
	for _, v := range im.Pixels {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	return Stats{Min: min, Max: max, Mean: sum / float64(len(im.Pixels))}
}

// At returns the pixel at (x, y) with the origin at the lower-left corner.
func (im *ImageData) At(x, y int) float64 {
	return im.Pixels[y*im.Width+x]
}
