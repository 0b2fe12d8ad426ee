package fits_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfold/fitspect/internal/fits"
	"github.com/skyfold/fitspect/internal/fits/fitstest"
)

func TestOpen_ClassifiesExtensions(t *testing.T) {
	dir := t.TempDir()
	path := fitstest.New().
		AddPrimary().
		AddTable("CATALOG", []int32{1, 2}, []float32{1.5, 2.25}, []string{"alpha", "beta"}).
		AddImage16("SCI", []int{3, 2}, []int16{0, 1, 2, 3, 4, 5}).
		AddImage16("SPEC", []int{6}, []int16{9, 8, 7, 6, 5, 4}).
		WriteTemp(t, dir, "sample.fits")

	c, err := fits.Open(path)
	require.NoError(t, err)
	require.Len(t, c.Extensions, 4)

	prim := c.Extensions[0]
	assert.Equal(t, fits.KindEmpty, prim.Kind)
	assert.Equal(t, "PrimaryHDU", prim.HDUName)
	assert.Nil(t, prim.Table)
	assert.Nil(t, prim.Image)

	tbl := c.Extensions[1]
	assert.Equal(t, fits.KindTable, tbl.Kind)
	assert.Equal(t, "CATALOG", tbl.Name)
	assert.Equal(t, "BinTableHDU", tbl.HDUName)
	require.NotNil(t, tbl.Table)

	img := c.Extensions[2]
	assert.Equal(t, fits.KindImage, img.Kind)
	assert.Equal(t, "SCI", img.Name)
	require.NotNil(t, img.Image)
	assert.Equal(t, 3, img.Image.Width)
	assert.Equal(t, 2, img.Image.Height)
	assert.False(t, img.Image.Reduced)

	oneD := c.Extensions[3]
	assert.Equal(t, fits.KindOther, oneD.Kind)
	assert.Nil(t, oneD.Image)
	assert.Equal(t, []int{6}, oneD.Dims)
}

func TestOpen_TableValues(t *testing.T) {
	dir := t.TempDir()
	path := fitstest.New().
		AddPrimary().
		AddTable("T", []int32{7, -3, 0}, []float32{0.5, 100, -2.25}, []string{"a", "bb", "ccc"}).
		WriteTemp(t, dir, "tbl.fits")

	c, err := fits.Open(path)
	require.NoError(t, err)
	require.Len(t, c.Extensions, 2)

	data := c.Extensions[1].Table
	require.NotNil(t, data)
	assert.Equal(t, []string{"ID", "VAL", "NAME"}, data.Names)
	require.Equal(t, 3, data.NumRows())
	assert.Equal(t, []string{"7", "0.5", "a"}, data.Rows[0])
	assert.Equal(t, []string{"-3", "100", "bb"}, data.Rows[1])
	assert.Equal(t, []string{"0", "-2.25", "ccc"}, data.Rows[2])
}

func TestOpen_CubeReducesToFirstPlane(t *testing.T) {
	dir := t.TempDir()
	// 2x2x2 cube: first plane {1,2,3,4}, second {5,6,7,8}.
	path := fitstest.New().
		AddPrimary().
		AddImage16("CUBE", []int{2, 2, 2}, []int16{1, 2, 3, 4, 5, 6, 7, 8}).
		WriteTemp(t, dir, "cube.fits")

	c, err := fits.Open(path)
	require.NoError(t, err)

	im := c.Extensions[1].Image
	require.NotNil(t, im)
	assert.True(t, im.Reduced)
	assert.Equal(t, []int{2, 2, 2}, im.OrigDims)
	assert.Equal(t, 2, im.Width)
	assert.Equal(t, 2, im.Height)
	assert.Equal(t, []float64{1, 2, 3, 4}, im.Pixels)
}

func TestOpen_FloatImage(t *testing.T) {
	dir := t.TempDir()
	path := fitstest.New().
		AddPrimary().
		AddImageFloat32("F", []int{2, 2}, []float32{0.25, 1.5, -3, 8}).
		WriteTemp(t, dir, "float.fits")

	c, err := fits.Open(path)
	require.NoError(t, err)

	im := c.Extensions[1].Image
	require.NotNil(t, im)
	assert.Equal(t, []float64{0.25, 1.5, -3, 8}, im.Pixels)

	st := im.Stats()
	assert.Equal(t, -3.0, st.Min)
	assert.Equal(t, 8.0, st.Max)
	assert.InDelta(t, 1.6875, st.Mean, 1e-12)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := fits.Open(t.TempDir() + "/nope.fits")
	assert.Error(t, err)
}

func TestOpen_Garbage(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.fits"
	require.NoError(t, os.WriteFile(path, []byte("this is not a FITS container"), 0o644))

	_, err := fits.Open(path)
	assert.Error(t, err)
}
