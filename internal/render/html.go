package render

import (
	"fmt"
	"html/template"
	"io"
)

var htmlTemplate = template.Must(template.New("islands").Parse(
	`<div class="tile-islands" data-season="{{.Season}}" style="{{.ContainerStyle}}">
{{- range .Nodes}}
  <div class="{{.Class}}" data-island="{{.ID}}"{{if .Hidden}} aria-hidden="true"{{end}} style="left: {{.Left}}px; top: {{.Top}}px; width: {{.Width}}px; height: {{.Height}}px;">
  {{- range .Children}}
    <div class="{{.Class}}" style="left: {{.Left}}px; top: {{.Top}}px; width: {{.Width}}px; height: {{.Height}}px;"></div>
  {{- end}}
  </div>
{{- end}}
</div>
`))

type htmlData struct {
	Season         Season
	ContainerStyle template.CSS
	Nodes          []Node
}

// WriteHTML writes a fragment of absolutely positioned divs, one per island
// with one child per tile
func WriteHTML(w io.Writer, f Frame) error {
	nodes := make([]Node, len(f.Islands))
	for i, is := range f.Islands {
		nodes[i] = IslandNode(is)
	}

	// palette values are fixed constants, not user input
	style := template.CSS(fmt.Sprintf(
		"position: relative; width: %dpx; height: %dpx; --tile-fill: %s; --tile-edge: %s; --tile-image: %s;",
		f.Canvas.Width, f.Canvas.Height, f.Palette.Fill, f.Palette.Edge, f.Palette.TileImage,
	))

	return htmlTemplate.Execute(w, htmlData{
		Season:         f.Palette.Season,
		ContainerStyle: style,
		Nodes:          nodes,
	})
}
