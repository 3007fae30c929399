package orbs

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/theme"
)

// maxCachedSets bounds the unpinned part of the descriptor cache. Unpinned
// keys are evicted least recently used first.
const maxCachedSets = 16

// Set is one immutable generation of orbs.
type Set struct {
	Count   int
	Palette Palette
	Orbs    []Orb
}

type setKey struct {
	count   int
	palette Palette
}

type cachedSet struct {
	set      *Set
	lastUsed uint64
}

// Field owns the derived state of the motion field: the palette memoized on
// the theme reference and descriptor sets memoized on (count, palette).
// It is safe for concurrent use.
type Field struct {
	mu sync.Mutex
	rr *rand.Rand

	theme        *theme.Theme
	palette      Palette
	paletteTheme *theme.Theme
	paletteErr   error

	sets   map[setKey]*cachedSet
	pinned map[int]bool // effective counts never evicted
	tick   uint64
}

// Option configures a Field.
type Option func(*Field)

// WithRand sets the random source used for sampling.
func WithRand(r *rand.Rand) Option {
	return func(f *Field) { f.rr = r }
}

// NewField creates a field for the given theme.
func NewField(t *theme.Theme, opts ...Option) *Field {
	f := &Field{
		theme: t,
		sets:   make(map[setKey]*cachedSet),
		pinned: make(map[int]bool),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rr == nil {
		seed := uint64(time.Now().UnixNano())
		f.rr = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return f
}

// Pin keeps the sets for requested, on both viewport classes, out of
// eviction. The server pins its configured count so ad-hoc counts cannot
// push the page's own set out of the cache.
func (f *Field) Pin(requested int) {
	if requested < 1 {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pinned[EffectiveCount(requested, Environment{})] = true
	f.pinned[EffectiveCount(requested, Environment{SmallViewport: true})] = true
}

// Theme returns the active theme.
func (f *Field) Theme() *theme.Theme {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.theme
}

// SetTheme swaps the active theme. Sets sampled for the previous palette are dropped.
func (f *Field) SetTheme(t *theme.Theme) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t == f.theme {
		return
	}
	f.theme = t
	clear(f.sets)
}

// Palette returns the palette for the active theme, rebuilding it only when
// the theme reference has changed.
func (f *Field) Palette() (Palette, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paletteLocked()
}

func (f *Field) paletteLocked() (Palette, error) {
	if f.theme == nil {
		return Palette{}, fmt.Errorf("no theme: %w", ErrEmptyFamily)
	}
	if f.paletteTheme != f.theme {
		f.palette, f.paletteErr = BuildPalette(f.theme.Primary.Shades, f.theme.Accent.Shades)
		f.paletteTheme = f.theme
	}
	return f.palette, f.paletteErr
}

// Generate returns the orb set for requested under env. Under reduced motion
// it returns nil without sampling. Repeated calls with the same effective
// count and palette return the same *Set.
func (f *Field) Generate(requested int, env Environment) (*Set, error) {
	if requested < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, requested)
	}
	if env.ReducedMotion {
		return nil, nil
	}
	count := EffectiveCount(requested, env)

	f.mu.Lock()
	defer f.mu.Unlock()

	p, err := f.paletteLocked()
	if err != nil {
		return nil, err
	}
	key := setKey{count: count, palette: p}
	f.tick++
	if c, ok := f.sets[key]; ok {
		c.lastUsed = f.tick
		return c.set, nil
	}
	if !f.pinned[count] {
		f.evictLocked()
	}
	s := &Set{Count: count, Palette: p, Orbs: Sample(f.rr, count, p)}
	f.sets[key] = &cachedSet{set: s, lastUsed: f.tick}
	return s, nil
}

// evictLocked drops the least recently used unpinned set once the unpinned
// part of the cache is full.
func (f *Field) evictLocked() {
	var (
		unpinned int
		oldest   setKey
		found    bool
		oldestAt uint64
	)
	for k, c := range f.sets {
		if f.pinned[k.count] {
			continue
		}
		unpinned++
		if !found || c.lastUsed < oldestAt {
			oldest, oldestAt, found = k, c.lastUsed, true
		}
	}
	if found && unpinned >= maxCachedSets {
		delete(f.sets, oldest)
	}
}
