package orbs

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
)

func renderField(t *testing.T, requested int, env Environment) string {
	t.Helper()
	f := newTestField()
	s, err := f.Generate(requested, env)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	var buf bytes.Buffer
	if err := NewOverlay(s, env).Render(&buf); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	return buf.String()
}

func TestRenderNormalViewport(t *testing.T) {
	out := renderField(t, 120, Environment{})

	if got := strings.Count(out, `class="orb"`); got != 120 {
		t.Fatalf("expected 120 orbs, got %d", got)
	}
	if !strings.Contains(out, `aria-hidden="true"`) {
		t.Fatalf("overlay is not hidden from assistive technology")
	}
	if strings.Contains(out, "data-small-viewport") {
		t.Fatalf("unexpected small viewport overrides")
	}
	if strings.Contains(out, "ZgotmplZ") {
		t.Fatalf("template rejected orb styles:\n%s", out)
	}
	for _, want := range []string{"pointer-events: none", "z-index: 0", "mix-blend-mode: screen", "@keyframes orb-float", "@keyframes orb-pulse"} {
		if !strings.Contains(out, want) {
			t.Fatalf("overlay missing %q", want)
		}
	}
}

func TestOverlayKeepsPerOrbBlurOnNormalViewport(t *testing.T) {
	f := newTestField()
	s, _ := f.Generate(120, Environment{})
	ov := NewOverlay(s, Environment{})
	if ov.Overrides != nil {
		t.Fatalf("expected no overrides on normal viewport")
	}
	p, _ := f.Palette()
	gradients := p.CSS()
	for i, style := range ov.Orbs {
		o := s.Orbs[i]
		if !strings.Contains(string(style), "blur("+strconv.Itoa(o.Blur)+"px)") {
			t.Fatalf("orb %d: expected its own blur %d in %q", i, o.Blur, style)
		}
		if !strings.Contains(string(style), gradients[o.ColorStop]) {
			t.Fatalf("orb %d: expected palette gradient %d", i, o.ColorStop)
		}
	}
}

func TestRenderSmallViewport(t *testing.T) {
	env := Environment{SmallViewport: true}
	out := renderField(t, 10, env)

	if got := strings.Count(out, `class="orb"`); got != 6 {
		t.Fatalf("expected 6 orbs, got %d", got)
	}
	if !strings.Contains(out, `data-small-viewport="true"`) {
		t.Fatalf("expected small viewport marker")
	}
	if got := strings.Count(out, "filter: blur(10px);"); got != 6 {
		t.Fatalf("expected capped blur on every orb, got %d", got)
	}
	if got := strings.Count(out, "opacity: 0.28;"); got != 6 {
		t.Fatalf("expected capped opacity on every orb, got %d", got)
	}
}

func TestRenderReducedMotion(t *testing.T) {
	for _, n := range []int{1, 10, 120} {
		out := renderField(t, n, Environment{ReducedMotion: true})
		if out != "" {
			t.Fatalf("expected no output under reduced motion, got %q", out)
		}
	}
}

func TestOrbStyleAnimation(t *testing.T) {
	p := defaultPalette(t)
	o := Orb{Size: 20, Left: 5, Top: 95, Duration: 12.4, Delay: -3.25, DX: -30, DY: 12, Blur: 4, Opacity: 0.5}
	got := string(orbStyle(o, p[0], nil))

	for _, want := range []string{
		"left: 5%; top: 95%;",
		"width: 20px; height: 20px;",
		"--tx: -30px; --ty: 12px; --o: 0.5;",
		"orb-float 12.4s ease-in-out -3.25s infinite",
		"orb-pulse 6.2s ease-in-out -3.25s infinite",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("style missing %q:\n%s", want, got)
		}
	}
}

func TestOverlayHTML(t *testing.T) {
	html, err := NewOverlay(nil, Environment{}).HTML()
	if err != nil {
		t.Fatalf("HTML returned error: %v", err)
	}
	if html != "" {
		t.Fatalf("expected empty markup for nil set, got %q", html)
	}
}
