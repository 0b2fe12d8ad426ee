package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"viridis", "plasma", "inferno", "magma",
		"cividis", "hot", "afmhot", "gray", "viridis_r", "gray_r"} {
		p, err := ByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.Name)
	}

	_, err := ByName("jet")
	assert.Error(t, err)

	// Case and whitespace insensitive.
	p, err := ByName("  Viridis ")
	require.NoError(t, err)
	assert.Equal(t, "viridis", p.Name)
}

func TestPaletteAt_Clamps(t *testing.T) {
	p, err := ByName("gray")
	require.NoError(t, err)

	assert.Equal(t, rgb(p.At(-1)), rgb(p.At(0)))
	assert.Equal(t, rgb(p.At(2)), rgb(p.At(1)))
}

func TestGrayRampEndpoints(t *testing.T) {
	p, err := ByName("gray")
	require.NoError(t, err)

	r, g, b := rgbParts(p.At(0))
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, g, b})

	r, g, b = rgbParts(p.At(1))
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

func TestReversed(t *testing.T) {
	p, err := ByName("gray")
	require.NoError(t, err)
	r := p.Reversed()

	assert.Equal(t, "gray_r", r.Name)
	assert.Equal(t, rgb(p.At(0)), rgb(r.At(1)))
	assert.Equal(t, rgb(p.At(1)), rgb(r.At(0)))
}

func TestGalleryPalettes(t *testing.T) {
	pals := GalleryPalettes()
	require.Len(t, pals, 13)
	assert.Equal(t, "viridis", pals[0].Name)
	assert.Equal(t, "cividis_r", pals[len(pals)-1].Name)
	for _, p := range pals {
		assert.NotNil(t, p.At(0.5), p.Name)
	}
}

func rgb(c color.Color) [3]uint32 {
	r, g, b := rgbParts(c)
	return [3]uint32{r, g, b}
}

func rgbParts(c color.Color) (uint32, uint32, uint32) {
	r, g, b, _ := c.RGBA()
	return r, g, b
}
