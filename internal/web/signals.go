package web

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Zachkp/portfolio/internal/orbs"
)

// Client hint headers carrying the motion field's environment signals.
const (
	hintReducedMotion = "Sec-CH-Prefers-Reduced-Motion"
	hintViewportWidth = "Sec-CH-Viewport-Width"
	legacyViewport    = "Viewport-Width"
)

var acceptedHints = strings.Join([]string{hintReducedMotion, hintViewportWidth, legacyViewport}, ", ")

// environmentFrom reads the reduced-motion and viewport signals from client
// hints. The motion and vw query parameters take precedence so HTMX
// refreshes can report media query changes directly.
func environmentFrom(r *http.Request) orbs.Environment {
	var env orbs.Environment

	env.ReducedMotion = strings.EqualFold(strings.TrimSpace(r.Header.Get(hintReducedMotion)), "reduce")
	width := parseWidth(r.Header.Get(hintViewportWidth))
	if width == 0 {
		width = parseWidth(r.Header.Get(legacyViewport))
	}

	q := r.URL.Query()
	if v := strings.TrimSpace(q.Get("motion")); v != "" {
		env.ReducedMotion = strings.EqualFold(v, "reduce")
	}
	if v := q.Get("vw"); v != "" {
		width = parseWidth(v)
	}

	env.SmallViewport = orbs.IsSmallViewport(width)
	return env
}

func parseWidth(v string) int {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	// Viewport-Width may be fractional; round up so 640.5 is not small.
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return 0
	}
	return int(math.Ceil(f))
}
