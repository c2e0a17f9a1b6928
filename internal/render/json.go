package render

import (
	"encoding/json"
	"io"

	"dconn.dev/islands/internal/layout"
)

type jsonOutput struct {
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Palette Palette         `json:"palette"`
	Caption string          `json:"caption,omitempty"`
	Islands []layout.Island `json:"islands"`
}

// WriteJSON writes the frame as indented JSON
func WriteJSON(w io.Writer, f Frame) error {
	islands := f.Islands
	if islands == nil {
		islands = []layout.Island{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonOutput{
		Width:   f.Canvas.Width,
		Height:  f.Canvas.Height,
		Palette: f.Palette,
		Caption: f.Caption,
		Islands: islands,
	})
}
