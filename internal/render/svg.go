package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG draws each island as a group of square tiles
func WriteSVG(w io.Writer, f Frame) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	canvas.Start(f.Canvas.Width, f.Canvas.Height, `role="img"`, `aria-hidden="true"`)
	canvas.Rect(0, 0, f.Canvas.Width, f.Canvas.Height, "fill:"+f.Palette.Background)

	for _, is := range f.Islands {
		canvas.Group(
			fmt.Sprintf(`class="%s"`, IslandClass),
			fmt.Sprintf(`id="island-%s"`, is.ID),
			fmt.Sprintf(`transform="translate(%d,%d)"`, is.Left, is.Top),
		)
		for i := range is.Tiles {
			left, top, size := is.TileRect(i)
			canvas.Rect(left, top, size, size,
				fmt.Sprintf(`class="%s"`, BlockClass),
				fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", f.Palette.Fill, f.Palette.Edge),
			)
		}
		canvas.Gend()
	}

	canvas.End()
	return ew.err
}

// errWriter remembers the first write error so drawing code that ignores
// errors can still report one
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
