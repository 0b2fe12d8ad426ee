package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/skyfold/fitspect/internal/fits"
)

// Colorbar strip geometry (pixels), appended to the right edge when enabled.
const (
	colorbarGap   = 4
	colorbarWidth = 16
)

// Rasterize maps the 2-D payload through norm and pal into an NRGBA image
// sized exactly Width×Height. The payload's origin is the lower-left
// corner, so data row 0 lands on the bottom raster row.
func Rasterize(im *fits.ImageData, n Norm, pal Palette) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, im.Width, im.Height))
	for y := 0; y < im.Height; y++ {
		dstY := im.Height - 1 - y
		for x := 0; x < im.Width; x++ {
			out.Set(x, dstY, pal.At(n.Apply(im.At(x, y))))
		}
	}
	return out
}

// WritePNG rasters im and writes it to path. With colorbar the canvas is
// extended on the right by a vertical ramp of the palette (max at the top);
// without it, the PNG dimensions equal the payload dimensions exactly.
func WritePNG(path string, im *fits.ImageData, n Norm, pal Palette, colorbar bool) error {
	raster := Rasterize(im, n, pal)
	var out image.Image = raster
	if colorbar {
		out = appendColorbar(raster, pal)
	}
	return encodePNG(path, out)
}

// appendColorbar returns a wider canvas with the raster on the left and a
// palette ramp strip on the right.
func appendColorbar(raster *image.NRGBA, pal Palette) *image.NRGBA {
	b := raster.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w+colorbarGap+colorbarWidth, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(x, y, raster.At(x, y))
		}
		t := 1.0
		if h > 1 {
			t = 1 - float64(y)/float64(h-1)
		}
		c := pal.At(t)
		for x := w + colorbarGap; x < w+colorbarGap+colorbarWidth; x++ {
			out.Set(x, y, c)
		}
	}
	return out
}

func encodePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
