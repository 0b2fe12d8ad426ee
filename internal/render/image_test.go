package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfold/fitspect/internal/fits"
)

func testImage() *fits.ImageData {
	// 3x2 gradient, bottom row dark.
	return &fits.ImageData{
		Width:  3,
		Height: 2,
		Pixels: []float64{0, 10, 20, 80, 90, 100},
	}
}

func TestRasterize_DimensionsAndOrigin(t *testing.T) {
	im := testImage()
	pal, err := ByName("gray")
	require.NoError(t, err)
	n := NewNorm(im.Pixels)

	raster := Rasterize(im, n, pal)
	b := raster.Bounds()
	assert.Equal(t, 3, b.Dx())
	assert.Equal(t, 2, b.Dy())

	// Lower-left origin: the payload's y=0 row (dark) lands on the bottom
	// raster row, so the top row must be brighter than the bottom row.
	top, _, _, _ := raster.At(0, 0).RGBA()
	bottom, _, _, _ := raster.At(0, 1).RGBA()
	assert.Greater(t, top, bottom)
}

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()
	im := testImage()
	pal, err := ByName("viridis")
	require.NoError(t, err)
	n := NewNorm(im.Pixels)

	path := filepath.Join(dir, "out.png")
	require.NoError(t, WritePNG(path, im, n, pal, false))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)

	// Without a colorbar the PNG dimensions equal the payload dimensions.
	assert.Equal(t, 3, decoded.Bounds().Dx())
	assert.Equal(t, 2, decoded.Bounds().Dy())
}

func TestWritePNG_Colorbar(t *testing.T) {
	dir := t.TempDir()
	im := testImage()
	pal, err := ByName("magma")
	require.NoError(t, err)
	n := NewNorm(im.Pixels)

	path := filepath.Join(dir, "bar.png")
	require.NoError(t, WritePNG(path, im, n, pal, true))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, 3+colorbarGap+colorbarWidth, decoded.Bounds().Dx())
	assert.Equal(t, 2, decoded.Bounds().Dy())
}

func TestWritePNG_Overwrites(t *testing.T) {
	dir := t.TempDir()
	im := testImage()
	pal, err := ByName("gray")
	require.NoError(t, err)
	n := NewNorm(im.Pixels)

	path := filepath.Join(dir, "same.png")
	require.NoError(t, WritePNG(path, im, n, pal, false))
	first, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, WritePNG(path, im, n, pal, false))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	second, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, first.Size(), second.Size())
}

func TestWriteGallerySheet(t *testing.T) {
	dir := t.TempDir()
	im := testImage()
	n := NewNorm(im.Pixels)

	path := filepath.Join(dir, "sheet.png")
	require.NoError(t, WriteGallerySheet(path, im, n))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)

	// 13 palettes in 3 columns → 5 rows of panels.
	assert.Greater(t, decoded.Bounds().Dx(), 0)
	assert.Greater(t, decoded.Bounds().Dy(), 0)
}

func TestPanelSize(t *testing.T) {
	small := &fits.ImageData{Width: 100, Height: 50}
	w, h := panelSize(small)
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)

	big := &fits.ImageData{Width: 640, Height: 480}
	w, h = panelSize(big)
	assert.Equal(t, galleryMaxPanel, w)
	assert.Equal(t, 240, h)
}
