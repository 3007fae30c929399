package orbs

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
)

// Global caps applied to every orb on small viewports.
const (
	SmallBlurPx   = 10
	SmallOpacity  = 0.28
	pulseFloorPct = 0.6
)

// Overrides are the fixed blur and opacity applied to all orbs.
type Overrides struct {
	Blur    int
	Opacity float64
}

// Overlay is the render-ready form of a set.
type Overlay struct {
	Orbs      []template.CSS
	Overrides *Overrides
}

// NewOverlay maps a set to inline orb styles. A nil set, as produced under
// reduced motion, yields an empty overlay.
func NewOverlay(s *Set, env Environment) Overlay {
	if s == nil || env.ReducedMotion {
		return Overlay{}
	}
	var ov *Overrides
	if env.SmallViewport {
		ov = &Overrides{Blur: SmallBlurPx, Opacity: SmallOpacity}
	}
	styles := make([]template.CSS, len(s.Orbs))
	for i, o := range s.Orbs {
		styles[i] = orbStyle(o, s.Palette[o.ColorStop%len(s.Palette)], ov)
	}
	return Overlay{Orbs: styles, Overrides: ov}
}

// Empty reports whether the overlay renders no elements.
func (o Overlay) Empty() bool { return len(o.Orbs) == 0 }

func orbStyle(o Orb, g Gradient, ov *Overrides) template.CSS {
	blur, opacity := o.Blur, o.Opacity
	if ov != nil {
		blur, opacity = ov.Blur, ov.Opacity
	}
	op := fmtFloat(opacity, 3)

	var b strings.Builder
	fmt.Fprintf(&b, "left: %d%%; top: %d%%; ", o.Left, o.Top)
	fmt.Fprintf(&b, "width: %dpx; height: %dpx; ", o.Size, o.Size)
	fmt.Fprintf(&b, "background: %s; ", g.CSS())
	fmt.Fprintf(&b, "opacity: %s; filter: blur(%dpx); ", op, blur)
	fmt.Fprintf(&b, "--tx: %dpx; --ty: %dpx; --o: %s; ", o.DX, o.DY, op)
	fmt.Fprintf(&b, "animation: orb-float %ss ease-in-out %ss infinite, orb-pulse %ss ease-in-out %ss infinite;",
		fmtFloat(o.Duration, 1), fmtFloat(o.Delay, 2), fmtFloat(o.PulseDuration(), 2), fmtFloat(o.Delay, 2))
	// Built only from numbers and validated palette colors.
	return template.CSS(b.String())
}

func fmtFloat(v float64, prec int) string {
	return strconv.FormatFloat(roundTo(v, prec), 'f', -1, 64)
}

var overlayTemplate = template.Must(template.New("orbs").Parse(`{{- if not .Empty -}}
<div class="animated-orbs" aria-hidden="true"{{ if .Overrides }} data-small-viewport="true"{{ end }}>
<style>
.animated-orbs { position: absolute; inset: 0; z-index: 0; pointer-events: none; overflow: hidden; }
.animated-orbs .orb {
	position: absolute;
	border-radius: 50%;
	mix-blend-mode: screen;
	will-change: transform, opacity, filter;
	transform: translate3d(0, 0, 0);
	transition: opacity 300ms linear;
}
@keyframes orb-float {
	0% { transform: translate3d(0, 0, 0) scale(1); }
	25% { transform: translate3d(calc(var(--tx) * 0.25), calc(var(--ty) * 0.25), 0) scale(1.02); }
	50% { transform: translate3d(var(--tx), calc(var(--ty) * 0.6), 0) scale(1.06); }
	75% { transform: translate3d(calc(var(--tx) * 0.5), calc(var(--ty) * 0.35), 0) scale(1.03); }
	100% { transform: translate3d(0, 0, 0) scale(1); }
}
@keyframes orb-pulse {
	0% { opacity: var(--o); }
	50% { opacity: calc(var(--o) * ` + strconv.FormatFloat(pulseFloorPct, 'f', -1, 64) + `); }
	100% { opacity: var(--o); }
}
@media (max-width: ` + strconv.Itoa(SmallViewportMaxWidth) + `px) {
	.animated-orbs .orb { filter: blur(` + strconv.Itoa(SmallBlurPx) + `px) !important; opacity: ` + strconv.FormatFloat(SmallOpacity, 'f', -1, 64) + ` !important; }
}
@media (prefers-reduced-motion: reduce) {
	.animated-orbs { display: none; }
}
</style>
{{- range .Orbs }}
<div class="orb" style="{{ . }}"></div>
{{- end }}
</div>
{{- end -}}`))

// Render writes the overlay markup. An empty overlay writes nothing.
func (o Overlay) Render(w io.Writer) error {
	return overlayTemplate.Execute(w, o)
}

// HTML renders the overlay for embedding in a page template.
func (o Overlay) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := o.Render(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
