package orbs

const (
	// DefaultCount is the number of orbs requested when none is configured.
	DefaultCount = 120
	// SmallViewportMaxWidth is the widest viewport, in CSS pixels, treated as small.
	SmallViewportMaxWidth = 640
	// MinSmallCount is the floor applied when halving the count on small viewports.
	MinSmallCount = 6
)

// Environment carries the client signals that gate the field.
type Environment struct {
	ReducedMotion bool `json:"reducedMotion"`
	SmallViewport bool `json:"smallViewport"`
}

// IsSmallViewport reports whether a known viewport width counts as small.
// A zero width means unknown.
func IsSmallViewport(width int) bool {
	return width > 0 && width <= SmallViewportMaxWidth
}

// EffectiveCount is the number of orbs rendered for requested under env.
// Reduced motion always yields zero.
func EffectiveCount(requested int, env Environment) int {
	if env.ReducedMotion || requested < 1 {
		return 0
	}
	if env.SmallViewport {
		return max(MinSmallCount, requested/2)
	}
	return requested
}
