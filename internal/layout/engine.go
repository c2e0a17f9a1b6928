// Package layout scatters generated islands across a canvas.
package layout

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"dconn.dev/islands/internal/generation"
)

// Engine owns the islands of the most recent pass and keeps the surface in
// sync with them
type Engine struct {
	params  Params
	rng     generation.Source
	grower  *generation.Grower
	surface Surface
	logger  *log.Logger

	mu      sync.Mutex
	islands []Island
	passes  int
}

// Option configures an Engine
type Option func(*Engine)

// WithParams overrides DefaultParams
func WithParams(p Params) Option { return func(e *Engine) { e.params = p } }

// WithSource sets the randomness used for sizes, shapes and placement.
// A seeded generation.RNG is not safe for concurrent use, but the engine
// only draws from it while holding its lock.
func WithSource(src generation.Source) Option { return func(e *Engine) { e.rng = src } }

// WithLogger sets the logger used for per-pass diagnostics
func WithLogger(l *log.Logger) Option { return func(e *Engine) { e.logger = l } }

// NewEngine creates an engine drawing onto surface. A nil surface makes
// every pass a no-op.
func NewEngine(surface Surface, opts ...Option) *Engine {
	e := &Engine{
		params:  DefaultParams(),
		surface: surface,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = generation.NewSource()
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	e.grower = generation.NewGrower(e.rng)
	e.grower.TailBias = e.params.TailBias
	return e
}

// Params returns the engine's layout settings
func (e *Engine) Params() Params {
	return e.params
}

// Generate replaces the islands of the previous pass with a fresh set sized
// for canvas and returns them
func (e *Engine) Generate(canvas Canvas) []Island {
	if e.surface == nil {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()

	// 1. Grid dimensions
	gridW, gridH := e.params.GridSize(canvas)

	// 2. Clear the previous pass
	for _, is := range e.islands {
		e.surface.RemoveIsland(is)
	}
	e.islands = nil

	// 3. Density
	count := e.params.IslandCount(canvas)
	lo, hi := e.params.TileBudget(gridW, gridH)

	// 4. Grow, measure, place and emit each island
	islands := make([]Island, 0, count)
	for i := 0; i < count; i++ {
		is, err := e.createIsland(gridW, gridH, lo, hi)
		if err != nil {
			e.logger.Error("skipping island", "index", i, "err", err)
			continue
		}
		e.surface.AddIsland(is)
		islands = append(islands, is)
	}

	e.islands = islands
	e.passes++
	e.logger.Debug("generated islands",
		"canvas", fmt.Sprintf("%dx%d", canvas.Width, canvas.Height),
		"grid", fmt.Sprintf("%dx%d", gridW, gridH),
		"count", len(islands),
		"tiles", fmt.Sprintf("%d-%d", lo, hi),
		"elapsed", time.Since(start).Round(time.Microsecond),
	)

	return slices.Clone(islands)
}

func (e *Engine) createIsland(gridW, gridH, lo, hi int) (Island, error) {
	tileCount := generation.IntRange(e.rng, lo, hi)

	tiles, err := e.grower.Grow(tileCount)
	if err != nil {
		return Island{}, fmt.Errorf("growing island: %w", err)
	}

	bounds := generation.BoundsOf(tiles)
	w, h := bounds.Width(), bounds.Height()
	tx := e.params.placeAxis(e.rng, gridW, w)
	ty := e.params.placeAxis(e.rng, gridH, h)

	id, err := uuid.NewRandomFromReader(sourceReader{e.rng})
	if err != nil {
		return Island{}, fmt.Errorf("island id: %w", err)
	}

	return Island{
		ID:     id.String(),
		Left:   tx * e.params.TilePx,
		Top:    ty * e.params.TilePx,
		Width:  w * e.params.TilePx,
		Height: h * e.params.TilePx,
		TilePx: e.params.TilePx,
		Tiles:  generation.Normalize(tiles, bounds),
		Bounds: bounds,
	}, nil
}

// sourceReader draws ID bytes from the engine's Source, so a seeded engine
// repeats its IDs as well as its shapes
type sourceReader struct {
	src generation.Source
}

func (r sourceReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.src.IntN(256))
	}
	return len(p), nil
}

// Islands returns a copy of the islands from the latest pass
func (e *Engine) Islands() []Island {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.islands)
}

// Passes returns how many generation passes have completed
func (e *Engine) Passes() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.passes
}
