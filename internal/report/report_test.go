package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/skyfold/fitspect/internal/fits"
)

func testContainer() *fits.Container {
	return &fits.Container{
		Path: "/data/obs.fits",
		Size: 23040,
		Extensions: []fits.Extension{
			{Index: 0, HDUName: "PrimaryHDU", Kind: fits.KindEmpty},
			{Index: 1, Name: "EVENTS", HDUName: "BinTableHDU", Kind: fits.KindTable, Dims: []int{3, 5}},
			{Index: 2, Name: "SCI", HDUName: "ImageHDU", Kind: fits.KindImage, Dims: []int{64, 64}, Bitpix: -32},
		},
	}
}

func TestBuild(t *testing.T) {
	doc := Build(testContainer())

	assert.Equal(t, "obs.fits", doc.File)
	assert.Equal(t, int64(23040), doc.Size)
	require.Len(t, doc.Extensions, 3)

	assert.Equal(t, "empty", doc.Extensions[0].Kind)
	assert.Equal(t, "EVENTS", doc.Extensions[1].Name)
	assert.Equal(t, "BinTableHDU", doc.Extensions[1].Type)
	assert.Equal(t, []int{64, 64}, doc.Extensions[2].Dims)
	assert.Equal(t, -32, doc.Extensions[2].Bitpix)
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "obs_structure.yaml")

	require.NoError(t, Write(path, testContainer()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, yaml.Unmarshal(b, &doc))
	assert.Equal(t, Build(testContainer()), doc)
}

func TestWrite_OmitsEmptyFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "r.yaml")
	c := &fits.Container{
		Path:       "x.fits",
		Extensions: []fits.Extension{{Index: 0, HDUName: "PrimaryHDU", Kind: fits.KindEmpty}},
	}
	require.NoError(t, Write(path, c))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "bitpix")
	assert.NotContains(t, string(b), "dims")
	assert.NotContains(t, string(b), "name:")
}
