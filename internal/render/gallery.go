package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/skyfold/fitspect/internal/fits"
)

// Contact sheet layout.
const (
	galleryCols     = 3
	galleryMargin   = 8
	galleryLabelH   = 16
	galleryMaxPanel = 320 // max panel width in pixels; larger slices downsample
)

var (
	galleryBackground = color.NRGBA{R: 12, G: 12, B: 16, A: 255}
	galleryLabelInk   = image.NewUniform(color.White)
)

// WriteGallerySheet renders one labeled panel per gallery palette into a
// single contact-sheet PNG. Panels share one normalization so the palettes
// are directly comparable, which is the whole point of the sheet.
func WriteGallerySheet(path string, im *fits.ImageData, n Norm) error {
	palettes := GalleryPalettes()

	pw, ph := panelSize(im)
	rows := (len(palettes) + galleryCols - 1) / galleryCols
	cellW := pw + galleryMargin
	cellH := ph + galleryLabelH + galleryMargin

	sheet := image.NewNRGBA(image.Rect(0, 0,
		galleryCols*cellW+galleryMargin, rows*cellH+galleryMargin))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(galleryBackground), image.Point{}, draw.Src)

	for i, pal := range palettes {
		col := i % galleryCols
		row := i / galleryCols
		x0 := galleryMargin + col*cellW
		y0 := galleryMargin + row*cellH

		drawLabel(sheet, x0, y0+galleryLabelH-4, pal.Name)
		drawPanel(sheet, x0, y0+galleryLabelH, pw, ph, im, n, pal)
	}

	return encodePNG(path, sheet)
}

// panelSize scales the payload down to at most galleryMaxPanel wide,
// preserving aspect ratio. Small images render 1:1.
func panelSize(im *fits.ImageData) (int, int) {
	w, h := im.Width, im.Height
	if w <= galleryMaxPanel {
		return w, h
	}
	scale := float64(galleryMaxPanel) / float64(w)
	sh := int(float64(h)*scale + 0.5)
	if sh < 1 {
		sh = 1
	}
	return galleryMaxPanel, sh
}

// drawPanel nearest-neighbor samples the payload into the sheet, keeping
// the lower-left origin convention of the full-size rasters.
func drawPanel(dst *image.NRGBA, x0, y0, pw, ph int, im *fits.ImageData, n Norm, pal Palette) {
	for py := 0; py < ph; py++ {
		srcY := (ph - 1 - py) * im.Height / ph
		for px := 0; px < pw; px++ {
			srcX := px * im.Width / pw
			dst.Set(x0+px, y0+py, pal.At(n.Apply(im.At(srcX, srcY))))
		}
	}
}

func drawLabel(dst *image.NRGBA, x, baseline int, text string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  galleryLabelInk,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}
