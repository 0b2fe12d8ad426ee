package render

import (
	"math"
	"testing"
)

func TestNorm_SqrtStretch(t *testing.T) {
	// Uniform 0..1000: p99.5 ≈ 995, min 0.
	pixels := make([]float64, 1001)
	for i := range pixels {
		pixels[i] = float64(i)
	}
	n := NewNorm(pixels)

	vmin, vmax := n.Range()
	if vmin != 0 {
		t.Errorf("vmin = %v, want 0", vmin)
	}
	if math.Abs(vmax-995) > 1e-9 {
		t.Errorf("vmax = %v, want 995", vmax)
	}

	if got := n.Apply(0); got != 0 {
		t.Errorf("Apply(min) = %v, want 0", got)
	}
	if got := n.Apply(995); got != 1 {
		t.Errorf("Apply(clip) = %v, want 1", got)
	}
	// Midpoint of the linear range maps through sqrt.
	want := math.Sqrt(497.5 / 995)
	if got := n.Apply(497.5); math.Abs(got-want) > 1e-12 {
		t.Errorf("Apply(mid) = %v, want %v", got, want)
	}
}

func TestNorm_SaturatesOutliers(t *testing.T) {
	// One huge outlier must not stretch the whole range.
	pixels := make([]float64, 1000)
	for i := range pixels {
		pixels[i] = float64(i % 100)
	}
	pixels[0] = 1e9
	n := NewNorm(pixels)

	if got := n.Apply(1e9); got != 1 {
		t.Errorf("outlier Apply = %v, want saturated 1", got)
	}
	_, vmax := n.Range()
	if vmax > 1000 {
		t.Errorf("vmax = %v, outlier leaked into the clip range", vmax)
	}
}

func TestNorm_FlatRange(t *testing.T) {
	n := NewNorm([]float64{5, 5, 5, 5})
	if got := n.Apply(5); got != 0 {
		t.Errorf("flat Apply = %v, want 0", got)
	}
}

func TestNorm_NaN(t *testing.T) {
	n := NewNorm([]float64{math.NaN(), 1, 2, 3})
	if got := n.Apply(math.NaN()); got != 0 {
		t.Errorf("Apply(NaN) = %v, want 0", got)
	}
	vmin, _ := n.Range()
	if vmin != 1 {
		t.Errorf("vmin = %v, want 1 (NaN ignored)", vmin)
	}
}

func TestNorm_Empty(t *testing.T) {
	n := NewNorm(nil)
	if got := n.Apply(1); got != 0 {
		t.Errorf("empty Apply = %v, want 0", got)
	}
}

func TestPercentile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}
	cases := []struct {
		p    float64
		want float64
	}{
		{0, 10},
		{100, 40},
		{50, 25},
	}
	for _, tc := range cases {
		if got := percentile(sorted, tc.p); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("percentile(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
	if got := percentile([]float64{7}, 99.5); got != 7 {
		t.Errorf("single-element percentile = %v, want 7", got)
	}
}
