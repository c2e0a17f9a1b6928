package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"dconn.dev/islands/internal/fit"
)

// captionMargin is the gap in pixels between the caption and canvas edges
const captionMargin = 16

var (
	fontOnce sync.Once
	fontTTF  *truetype.Font
	fontErr  error
)

func captionFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		fontTTF, fontErr = truetype.Parse(goregular.TTF)
	})
	return fontTTF, fontErr
}

// WritePNG rasterises the frame. Islands bleeding past the edges are
// clipped by the image bounds.
func WritePNG(w io.Writer, f Frame) error {
	if f.Canvas.Width <= 0 || f.Canvas.Height <= 0 {
		return fmt.Errorf("png: canvas %dx%d has no area", f.Canvas.Width, f.Canvas.Height)
	}

	dc := gg.NewContext(f.Canvas.Width, f.Canvas.Height)
	dc.SetHexColor(f.Palette.Background)
	dc.Clear()

	dc.SetLineWidth(1)
	for _, is := range f.Islands {
		for i := range is.Tiles {
			left, top, size := is.TileRect(i)
			dc.DrawRectangle(float64(is.Left+left), float64(is.Top+top), float64(size), float64(size))
			dc.SetHexColor(f.Palette.Fill)
			dc.FillPreserve()
			dc.SetHexColor(f.Palette.Edge)
			dc.Stroke()
		}
	}

	if f.Caption != "" {
		if err := drawCaption(dc, f); err != nil {
			return err
		}
	}

	return dc.EncodePNG(w)
}

func drawCaption(dc *gg.Context, f Frame) error {
	ttf, err := captionFont()
	if err != nil {
		return fmt.Errorf("loading caption font: %w", err)
	}

	m := &captionMeasurer{
		dc:        dc,
		font:      ttf,
		text:      f.Caption,
		available: float64(f.Canvas.Width - 2*captionMargin),
	}
	size, ok := fit.Binary(m, fit.TitleMin, fit.TitleMax, fit.TitleIterations)
	if !ok {
		return nil
	}

	dc.SetHexColor(f.Palette.Edge)
	dc.DrawStringAnchored(f.Caption, float64(f.Canvas.Width)/2,
		float64(f.Canvas.Height-captionMargin)-float64(size)/2, 0.5, 0.5)
	return nil
}

// captionMeasurer sizes caption text against the canvas width
type captionMeasurer struct {
	dc        *gg.Context
	font      *truetype.Font
	text      string
	available float64
}

func (m *captionMeasurer) Apply(size float64) {
	m.dc.SetFontFace(truetype.NewFace(m.font, &truetype.Options{Size: size}))
}

func (m *captionMeasurer) Needed() float64 {
	w, _ := m.dc.MeasureString(m.text)
	return w
}

func (m *captionMeasurer) Available() float64 {
	return m.available
}
