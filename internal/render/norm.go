// Package render emits the derived artifacts: CSV transcriptions of table
// payloads and PNG rasters of image payloads. The display normalization is
// the fixed contrast policy the whole program uses; nothing here is
// configurable beyond the palette choice.
package render

import (
	"math"
	"sort"
)

// clipPercent is the fixed percentile clip of the display stretch: the top
// 0.5% of intensities saturate so bright outliers don't wash out the
// visible dynamic range.
const clipPercent = 99.5

// Norm maps raw pixel values into [0,1] with a square-root stretch clipped
// at the 99.5th percentile.
type Norm struct {
	vmin float64
	vmax float64
}

// NewNorm calibrates the stretch for one image payload. NaN pixels are
// ignored during calibration.
func NewNorm(pixels []float64) Norm {
	finite := make([]float64, 0, len(pixels))
	for _, v := range pixels {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return Norm{}
	}
	sort.Float64s(finite)
	return Norm{
		vmin: finite[0],
		vmax: percentile(finite, clipPercent),
	}
}

// Apply maps one pixel value to [0,1]. NaN maps to 0, values past the clip
// saturate at 1, and a degenerate (flat) range maps everything to 0.
func (n Norm) Apply(v float64) float64 {
	if math.IsNaN(v) || n.vmax <= n.vmin {
		return 0
	}
	t := (v - n.vmin) / (n.vmax - n.vmin)
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return math.Sqrt(t)
}

// Range returns the calibrated (vmin, vmax) clip interval.
func (n Norm) Range() (float64, float64) { return n.vmin, n.vmax }

// percentile interpolates the p-th percentile of sorted values.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
