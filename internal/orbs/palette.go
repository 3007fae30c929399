package orbs

import "fmt"

// PaletteSize is the number of gradients every palette holds.
const PaletteSize = 7

// Stop is one color stop of a radial gradient.
type Stop struct {
	Color  RGBA
	Offset int // percent
}

// Gradient is a translucent radial gradient with a fixed focal point.
type Gradient struct {
	FocalX, FocalY int // percent
	Inner, Outer   Stop
}

// CSS renders the gradient as a CSS background value.
func (g Gradient) CSS() string {
	return fmt.Sprintf("radial-gradient(circle at %d%% %d%%, %s %d%%, %s %d%%)",
		g.FocalX, g.FocalY, g.Inner.Color, g.Inner.Offset, g.Outer.Color, g.Outer.Offset)
}

// Palette is the fixed set of gradients orbs pick their color from.
// It is a comparable value so it can key the descriptor cache.
type Palette [PaletteSize]Gradient

// CSS returns the gradient CSS of every entry in order.
func (p Palette) CSS() []string {
	out := make([]string, len(p))
	for i, g := range p {
		out[i] = g.CSS()
	}
	return out
}

type family int

const (
	primary family = iota
	accent
)

type shadeRef struct {
	family family
	index  int
	alpha  float64
}

type gradientSpec struct {
	x, y         int
	inner, outer shadeRef
}

var gradientSpecs = [PaletteSize]gradientSpec{
	{30, 30, shadeRef{primary, 6, 0.95}, shadeRef{accent, 2, 0.18}},
	{70, 40, shadeRef{accent, 4, 0.92}, shadeRef{primary, 5, 0.12}},
	{40, 70, shadeRef{primary, 7, 0.92}, shadeRef{accent, 3, 0.12}},
	{60, 60, shadeRef{accent, 5, 0.88}, shadeRef{primary, 6, 0.18}},
	{50, 50, shadeRef{primary, 4, 0.90}, shadeRef{accent, 4, 0.22}},
	{30, 70, shadeRef{accent, 3, 0.88}, shadeRef{primary, 5, 0.18}},
	{70, 30, shadeRef{primary, 5, 0.92}, shadeRef{accent, 2, 0.22}},
}

const (
	innerOffset = 0
	outerOffset = 80
)

// BuildPalette derives the gradient palette from the primary and accent
// shade families. Missing shades fall back to the family's first shade.
func BuildPalette(primaryShades, accentShades []string) (Palette, error) {
	if len(primaryShades) == 0 {
		return Palette{}, fmt.Errorf("primary family: %w", ErrEmptyFamily)
	}
	if len(accentShades) == 0 {
		return Palette{}, fmt.Errorf("accent family: %w", ErrEmptyFamily)
	}

	resolve := func(ref shadeRef) (RGBA, error) {
		shades := primaryShades
		if ref.family == accent {
			shades = accentShades
		}
		return HexToRGBA(shade(shades, ref.index), ref.alpha)
	}

	var p Palette
	for i, spec := range gradientSpecs {
		inner, err := resolve(spec.inner)
		if err != nil {
			return Palette{}, fmt.Errorf("gradient %d inner stop: %w", i, err)
		}
		outer, err := resolve(spec.outer)
		if err != nil {
			return Palette{}, fmt.Errorf("gradient %d outer stop: %w", i, err)
		}
		p[i] = Gradient{
			FocalX: spec.x,
			FocalY: spec.y,
			Inner:  Stop{Color: inner, Offset: innerOffset},
			Outer:  Stop{Color: outer, Offset: outerOffset},
		}
	}
	return p, nil
}

func shade(shades []string, i int) string {
	if i < len(shades) && shades[i] != "" {
		return shades[i]
	}
	return shades[0]
}
