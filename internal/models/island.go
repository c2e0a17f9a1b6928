package models

import (
	"time"

	"dconn.dev/islands/internal/layout"
	"dconn.dev/islands/internal/render"
)

// Grid is the canvas size in tiles
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Layout is one generation pass as sent to the client
type Layout struct {
	Session     string          `json:"session"`
	Canvas      layout.Canvas   `json:"canvas"`
	Grid        Grid            `json:"grid"`
	TilePx      int             `json:"tile_px"`
	Count       int             `json:"count"`
	Pass        int             `json:"pass"`
	Islands     []layout.Island `json:"islands"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// RefreshRequest is the body of POST /api/islands/refresh and resize
type RefreshRequest struct {
	Session string `json:"session"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// SeasonList is the response of GET /api/seasons
type SeasonList struct {
	Default  string           `json:"default"`
	Palettes []render.Palette `json:"palettes"`
}
