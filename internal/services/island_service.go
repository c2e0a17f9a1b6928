package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"dconn.dev/islands/internal/generation"
	"dconn.dev/islands/internal/layout"
	"dconn.dev/islands/internal/models"
	"dconn.dev/islands/internal/render"
)

// ErrSessionNotFound is returned for unknown or expired sessions
var ErrSessionNotFound = errors.New("session not found")

// DefaultMaxSessions is the session cap used when none is configured
const DefaultMaxSessions = 1000

// session is one page's island field. Each session owns its scene, so a
// pass only ever clears the islands that session rendered.
type session struct {
	id         string
	scene      *render.Scene
	controller *layout.Controller
	lastSeen   time.Time
}

// IslandService keeps per-session layouts in memory. Nothing outlives the
// process.
type IslandService struct {
	params      layout.Params
	resizeDelay time.Duration
	ttl         time.Duration
	maxSessions int
	newSource   func() generation.Source
	logger      *log.Logger
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// IslandServiceOptions configures NewIslandService
type IslandServiceOptions struct {
	Params      layout.Params
	ResizeDelay time.Duration
	TTL         time.Duration
	// MaxSessions caps live sessions. Creating one past the cap evicts the
	// session seen least recently. Defaults to DefaultMaxSessions.
	MaxSessions int
	// NewSource supplies each session's randomness. Defaults to
	// generation.NewSource.
	NewSource func() generation.Source
	Logger    *log.Logger
}

// NewIslandService creates an IslandService
func NewIslandService(opts IslandServiceOptions) *IslandService {
	if opts.NewSource == nil {
		opts.NewSource = generation.NewSource
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.TTL <= 0 {
		opts.TTL = 30 * time.Minute
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	return &IslandService{
		params:      opts.Params,
		resizeDelay: opts.ResizeDelay,
		ttl:         opts.TTL,
		maxSessions: opts.MaxSessions,
		newSource:   opts.NewSource,
		logger:      opts.Logger,
		now:         time.Now,
		sessions:    make(map[string]*session),
	}
}

// Generate runs a fresh pass for the session at the given canvas size. An
// empty or unknown session ID starts a new session.
func (s *IslandService) Generate(sessionID string, canvas layout.Canvas) *models.Layout {
	sess, created := s.getOrCreate(sessionID, canvas)
	if created {
		// the first pass already ran in Start
		return s.snapshot(sess)
	}

	sess.controller.RegenerateAt(canvas)
	return s.snapshot(sess)
}

// Refresh regenerates an existing session at its current canvas size
func (s *IslandService) Refresh(sessionID string) (*models.Layout, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.controller.Refresh()
	return s.snapshot(sess), nil
}

// Resize records a new canvas size and schedules a debounced pass. The
// returned layout is the current one; the new pass lands after the delay.
func (s *IslandService) Resize(sessionID string, canvas layout.Canvas) (*models.Layout, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.controller.Resize(canvas)
	return s.snapshot(sess), nil
}

// Current returns the session's latest layout
func (s *IslandService) Current(sessionID string) (*models.Layout, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(sess), nil
}

// Frame returns the session's islands ready for a writer
func (s *IslandService) Frame(sessionID string, p render.Palette) (render.Frame, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return render.Frame{}, err
	}
	return render.FrameOf(sess.scene, sess.controller.Canvas(), p), nil
}

// Preview runs one pass into a scene that belongs to no session. Nothing is
// kept after the frame is returned.
func (s *IslandService) Preview(canvas layout.Canvas, p render.Palette) render.Frame {
	scene := render.NewScene()
	engine := layout.NewEngine(scene,
		layout.WithParams(s.params),
		layout.WithSource(s.newSource()),
		layout.WithLogger(s.logger),
	)
	engine.Generate(canvas)
	return render.FrameOf(scene, canvas, p)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed
func (s *IslandService) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			sess.controller.Close()
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Debug("swept idle sessions", "removed", removed, "remaining", len(s.sessions))
	}
	return removed
}

// Len returns the number of live sessions
func (s *IslandService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close cancels pending work in every session
func (s *IslandService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		sess.controller.Close()
	}
}

func (s *IslandService) get(sessionID string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, sessionID)
	}
	sess.lastSeen = s.now()
	return sess, nil
}

func (s *IslandService) getOrCreate(sessionID string, canvas layout.Canvas) (*session, bool) {
	s.mu.Lock()
	if sess, ok := s.sessions[sessionID]; ok {
		sess.lastSeen = s.now()
		s.mu.Unlock()
		return sess, false
	}
	s.mu.Unlock()

	scene := render.NewScene()
	engine := layout.NewEngine(scene,
		layout.WithParams(s.params),
		layout.WithSource(s.newSource()),
		layout.WithLogger(s.logger),
	)
	sess := &session{
		id:         uuid.NewString(),
		scene:      scene,
		controller: layout.NewController(engine, canvas, s.resizeDelay),
		lastSeen:   s.now(),
	}
	sess.controller.Start()

	s.mu.Lock()
	for len(s.sessions) >= s.maxSessions {
		s.evictOldest()
	}
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.logger.Info("new island session", "session", sess.id, "islands", sess.scene.Len())
	return sess, true
}

// evictOldest drops the session seen least recently. s.mu must be held.
func (s *IslandService) evictOldest() {
	var oldest *session
	for _, sess := range s.sessions {
		if oldest == nil || sess.lastSeen.Before(oldest.lastSeen) {
			oldest = sess
		}
	}
	if oldest == nil {
		return
	}
	oldest.controller.Close()
	delete(s.sessions, oldest.id)
	s.logger.Debug("evicted island session", "session", oldest.id, "max", s.maxSessions)
}

func (s *IslandService) snapshot(sess *session) *models.Layout {
	canvas := sess.controller.Canvas()
	engine := sess.controller.Engine()
	gridW, gridH := s.params.GridSize(canvas)
	islands := sess.scene.Islands()

	return &models.Layout{
		Session:     sess.id,
		Canvas:      canvas,
		Grid:        models.Grid{Width: gridW, Height: gridH},
		TilePx:      s.params.TilePx,
		Count:       len(islands),
		Pass:        engine.Passes(),
		Islands:     islands,
		GeneratedAt: s.now().UTC(),
	}
}
