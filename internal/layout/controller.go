package layout

import (
	"sync"
	"time"

	"dconn.dev/islands/internal/debounce"
)

// DefaultResizeDelay is the quiet period before a resize regenerates
const DefaultResizeDelay = 150 * time.Millisecond

// Controller drives an engine from page events: the initial load, explicit
// refreshes and debounced resizes
type Controller struct {
	engine    *Engine
	debouncer *debounce.Debouncer

	mu     sync.Mutex
	canvas Canvas
}

// NewController binds engine to a canvas of the given initial size
func NewController(engine *Engine, canvas Canvas, resizeDelay time.Duration) *Controller {
	c := &Controller{engine: engine, canvas: canvas}
	c.debouncer = debounce.New(resizeDelay, func() { c.Refresh() })
	return c
}

// Start runs the initial pass and returns the regeneration handle for UI
// code to call
func (c *Controller) Start() (regenerate func() []Island) {
	c.Refresh()
	return c.Refresh
}

// Refresh regenerates immediately at the current canvas size
func (c *Controller) Refresh() []Island {
	return c.engine.Generate(c.Canvas())
}

// RegenerateAt records canvas, drops any pending resize pass and
// regenerates immediately
func (c *Controller) RegenerateAt(canvas Canvas) []Island {
	c.mu.Lock()
	c.canvas = canvas
	c.mu.Unlock()
	c.debouncer.Cancel()
	return c.engine.Generate(canvas)
}

// Resize records the new canvas size and schedules a pass once resizing
// has been quiet for the resize delay
func (c *Controller) Resize(canvas Canvas) {
	c.mu.Lock()
	c.canvas = canvas
	c.mu.Unlock()
	c.debouncer.Trigger()
}

// Settle runs a pending resize pass now. It reports whether one was pending.
func (c *Controller) Settle() bool {
	return c.debouncer.Flush()
}

// Canvas returns the most recently recorded canvas size
func (c *Controller) Canvas() Canvas {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canvas
}

// Engine returns the controlled engine
func (c *Controller) Engine() *Engine {
	return c.engine
}

// Close cancels any pending resize pass
func (c *Controller) Close() {
	c.debouncer.Cancel()
}
