package orbs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is an 8-bit RGB triple with a fractional alpha, as used by CSS rgba().
type RGBA struct {
	R, G, B uint8
	A       float64
}

// String renders the color as a CSS rgba() value.
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// HexToRGBA converts a "#RRGGBB" or "RRGGBB" color to RGBA with the given alpha.
func HexToRGBA(hex string, alpha float64) (RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 || !isHex(h) {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	if alpha < 0 || alpha > 1 {
		return RGBA{}, fmt.Errorf("%w: %v", ErrInvalidAlpha, alpha)
	}

	c, err := colorful.Hex("#" + h)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, hex, err)
	}
	r, g, b := c.RGB255()
	return RGBA{R: r, G: g, B: b, A: alpha}, nil
}

func isHex(s string) bool {
	for _, ch := range s {
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'f':
		case ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}
	return true
}
