package render

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/mazznoer/colorgrad"
)

// Palette maps a normalized intensity in [0,1] to a display color.
type Palette struct {
	Name string
	at   func(t float64) color.Color
}

// At returns the color for t, clamped to [0,1].
func (p Palette) At(t float64) color.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return p.at(t)
}

// Reversed returns the palette with the ramp flipped, named "<name>_r".
func (p Palette) Reversed() Palette {
	at := p.at
	return Palette{
		Name: p.Name + "_r",
		at:   func(t float64) color.Color { return at(1 - t) },
	}
}

// registry holds every addressable palette by lowercase name.
var registry = buildRegistry()

// galleryNames is the fixed contact-sheet order: the perceptually uniform
// maps, the classic heat/gray ramps, then reversed perceptual maps.
var galleryNames = []string{
	"viridis", "plasma", "inferno", "magma", "cividis",
	"hot", "afmhot", "gray",
	"viridis_r", "plasma_r", "inferno_r", "magma_r", "cividis_r",
}

func buildRegistry() map[string]Palette {
	reg := make(map[string]Palette)
	add := func(p Palette) {
		reg[p.Name] = p
		r := p.Reversed()
		reg[r.Name] = r
	}

	viridis := colorgrad.Viridis()
	plasma := colorgrad.Plasma()
	inferno := colorgrad.Inferno()
	magma := colorgrad.Magma()
	cividis := colorgrad.Cividis()

	add(Palette{Name: "viridis", at: func(t float64) color.Color { return viridis.At(t) }})
	add(Palette{Name: "plasma", at: func(t float64) color.Color { return plasma.At(t) }})
	add(Palette{Name: "inferno", at: func(t float64) color.Color { return inferno.At(t) }})
	add(Palette{Name: "magma", at: func(t float64) color.Color { return magma.At(t) }})
	add(Palette{Name: "cividis", at: func(t float64) color.Color { return cividis.At(t) }})

	// Heat and gray ramps built from hex stops; colorgrad ships no
	// presets for these.
	add(Palette{Name: "hot", at: ramp("#000000", "#e60000", "#ffd200", "#ffffff")})
	add(Palette{Name: "afmhot", at: ramp("#000000", "#800000", "#ff8000", "#ffff80", "#ffffff")})
	add(Palette{Name: "gray", at: ramp("#000000", "#ffffff")})

	return reg
}

// ramp builds an evenly spaced gradient from hex stops. The stops are
// compile-time literals, so a build failure is a programming error.
func ramp(stops ...string) func(t float64) color.Color {
	grad, err := colorgrad.NewGradient().HtmlColors(stops...).Build()
	if err != nil {
		panic(fmt.Sprintf("render: bad palette ramp: %v", err))
	}
	return func(t float64) color.Color { return grad.At(t) }
}

// ByName looks up a palette; names are case-insensitive.
func ByName(name string) (Palette, error) {
	p, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Palette{}, fmt.Errorf("unknown palette %q (try one of: %s)",
			name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names returns all registered palette names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// GalleryPalettes returns the palettes for the contact sheet, in the fixed
// display order.
func GalleryPalettes() []Palette {
	out := make([]Palette, len(galleryNames))
	for i, n := range galleryNames {
		out[i] = registry[n]
	}
	return out
}
