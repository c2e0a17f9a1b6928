package render

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"dconn.dev/islands/internal/layout"
)

// Output formats accepted by Write
const (
	FormatSVG      = "svg"
	FormatPNG      = "png"
	FormatHTML     = "html"
	FormatJSON     = "json"
	FormatTerminal = "term"
)

// ErrUnknownFormat is returned by Write for an unsupported format
var ErrUnknownFormat = errors.New("unknown format")

// Frame is everything a writer needs to draw one layout
type Frame struct {
	Canvas  layout.Canvas
	Islands []layout.Island
	Palette Palette
	// Caption is drawn across the bottom of raster output when set
	Caption string
	// Columns is the terminal preview width in characters
	Columns int
}

// FrameOf captures the islands currently in scene
func FrameOf(scene *Scene, canvas layout.Canvas, p Palette) Frame {
	return Frame{Canvas: canvas, Islands: scene.Islands(), Palette: p}
}

// Formats lists the names accepted by Write
func Formats() []string {
	return []string{FormatSVG, FormatPNG, FormatHTML, FormatJSON, FormatTerminal}
}

// ContentType returns the MIME type for a format
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatJSON:
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}

// Write renders f to w in the named format
func Write(w io.Writer, format string, f Frame) error {
	switch format {
	case FormatSVG:
		return WriteSVG(w, f)
	case FormatPNG:
		return WritePNG(w, f)
	case FormatHTML:
		return WriteHTML(w, f)
	case FormatJSON:
		return WriteJSON(w, f)
	case FormatTerminal:
		return WriteTerminal(w, f)
	}
	return fmt.Errorf("%w: %q (want one of %v)", ErrUnknownFormat, format, Formats())
}

// ValidFormat reports whether Write accepts format
func ValidFormat(format string) bool {
	return slices.Contains(Formats(), format)
}
