package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"dconn.dev/islands/internal/layout"
	"dconn.dev/islands/internal/models"
	"dconn.dev/islands/internal/render"
	"dconn.dev/islands/internal/services"
)

// Canvas limits accepted from clients, in pixels
const (
	defaultWidth  = 1280
	defaultHeight = 720
	maxWidth      = 7680
	maxHeight     = 4320
)

// IslandHandler handles island layout endpoints
type IslandHandler struct {
	islandService *services.IslandService
	season        string
	logger        *log.Logger
}

// NewIslandHandler creates a new IslandHandler. season is the default for
// rendered output.
func NewIslandHandler(is *services.IslandService, season string, logger *log.Logger) *IslandHandler {
	return &IslandHandler{
		islandService: is,
		season:        season,
		logger:        logger,
	}
}

// Generate handles GET /api/islands
func (h *IslandHandler) Generate(w http.ResponseWriter, r *http.Request) {
	canvas := parseCanvas(r)
	session := r.URL.Query().Get("session")

	l := h.islandService.Generate(session, canvas)
	respondJSON(w, http.StatusOK, l)
}

// Refresh handles POST /api/islands/refresh
func (h *IslandHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// A refresh with a size regenerates at that size; without one it keeps
	// the session's canvas
	if req.Width > 0 && req.Height > 0 {
		l := h.islandService.Generate(req.Session, clampCanvas(req.Width, req.Height))
		respondJSON(w, http.StatusOK, l)
		return
	}

	l, err := h.islandService.Refresh(req.Session)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, l)
}

// Resize handles POST /api/islands/resize. The new layout is produced after
// the resize delay; clients fetch it with Current.
func (h *IslandHandler) Resize(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Width <= 0 || req.Height <= 0 {
		respondError(w, http.StatusBadRequest, "width and height are required")
		return
	}

	l, err := h.islandService.Resize(req.Session, clampCanvas(req.Width, req.Height))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusAccepted, l)
}

// Current handles GET /api/islands/{session}
func (h *IslandHandler) Current(w http.ResponseWriter, r *http.Request) {
	l, err := h.islandService.Current(chi.URLParam(r, "session"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, l)
}

// Seasons handles GET /api/seasons
func (h *IslandHandler) Seasons(w http.ResponseWriter, r *http.Request) {
	list := models.SeasonList{Default: h.season}
	for _, s := range render.Seasons() {
		p, _ := render.GetPalette(string(s))
		list.Palettes = append(list.Palettes, p)
	}
	respondJSON(w, http.StatusOK, list)
}

// Render handles GET /islands.{format}. With a session it draws that
// session's current islands; otherwise it draws a one-off layout that no
// session keeps.
func (h *IslandHandler) Render(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if !render.ValidFormat(format) || format == render.FormatTerminal {
		respondError(w, http.StatusNotFound, "Unknown format")
		return
	}

	season := r.URL.Query().Get("season")
	if season == "" {
		season = h.season
	}
	palette, err := render.GetPalette(season)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Without a session the layout is drawn once and not kept
	var frame render.Frame
	session := r.URL.Query().Get("session")
	if session == "" {
		frame = h.islandService.Preview(parseCanvas(r), palette)
	} else {
		frame, err = h.islandService.Frame(session, palette)
		if err != nil {
			h.respondServiceError(w, err)
			return
		}
		w.Header().Set("X-Island-Session", session)
	}
	frame.Caption = r.URL.Query().Get("caption")

	var buf bytes.Buffer
	if err := render.Write(&buf, format, frame); err != nil {
		h.logger.Error("rendering islands", "format", format, "err", err)
		respondError(w, http.StatusInternalServerError, "Rendering failed")
		return
	}

	w.Header().Set("Content-Type", render.ContentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *IslandHandler) respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrSessionNotFound) {
		respondError(w, http.StatusNotFound, "Session not found")
		return
	}
	h.logger.Error("island service", "err", err)
	respondError(w, http.StatusInternalServerError, "Internal error")
}

// parseCanvas reads width and height query parameters
func parseCanvas(r *http.Request) layout.Canvas {
	return clampCanvas(
		parseIntParam(r, "width", defaultWidth),
		parseIntParam(r, "height", defaultHeight),
	)
}

func clampCanvas(width, height int) layout.Canvas {
	return layout.Canvas{
		Width:  max(1, min(maxWidth, width)),
		Height: max(1, min(maxHeight, height)),
	}
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}
