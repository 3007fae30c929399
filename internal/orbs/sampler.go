package orbs

import (
	"math"
	"math/rand/v2"
)

// Orb describes one decorative element. Values are immutable once sampled.
type Orb struct {
	Size      int     `json:"size"`     // px, [10, 40]
	Left      int     `json:"left"`     // percent, [0, 100]
	Top       int     `json:"top"`      // percent, [0, 100]
	Duration  float64 `json:"duration"` // seconds, [8, 24]
	Delay     float64 `json:"delay"`    // seconds, [-8, 0]
	DX        int     `json:"dx"`       // px, [-70, 70]
	DY        int     `json:"dy"`       // px, [-40, 40]
	Blur      int     `json:"blur"`     // px, [3, 12]
	ColorStop int     `json:"colorStop"`
	Opacity   float64 `json:"opacity"` // [0.25, 0.75]
}

// PulseDuration is the period of the opacity pulse.
func (o Orb) PulseDuration() float64 {
	return math.Max(4, o.Duration/2)
}

// Sample draws count independent orbs. Every field of every orb is drawn
// separately from r.
func Sample(r *rand.Rand, count int, p Palette) []Orb {
	if count <= 0 {
		return nil
	}
	out := make([]Orb, count)
	for i := range out {
		out[i] = Orb{
			Size:      int(math.Round(10 + r.Float64()*30)),
			Left:      int(math.Round(r.Float64() * 100)),
			Top:       int(math.Round(r.Float64() * 100)),
			Duration:  roundTo(8+r.Float64()*16, 1),
			Delay:     roundTo(r.Float64()*-8, 2),
			DX:        int(math.Round((r.Float64() - 0.5) * 140)),
			DY:        int(math.Round((r.Float64() - 0.5) * 80)),
			Blur:      3 + int(math.Round(r.Float64()*9)),
			ColorStop: r.IntN(len(p)),
			Opacity:   0.25 + r.Float64()*0.5,
		}
	}
	return out
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	r := math.Round(v*scale) / scale
	if r == 0 {
		// avoid rendering "-0"
		return 0
	}
	return r
}
