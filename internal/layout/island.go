package layout

import "dconn.dev/islands/internal/generation"

// Island is one placed tile cluster. Islands are created by a pass and never
// modified afterwards.
type Island struct {
	ID     string `json:"id"`
	Left   int    `json:"left"`
	Top    int    `json:"top"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	TilePx int    `json:"tile_px"`

	// Tiles are offsets from the bounding box minimum in growth order
	Tiles []generation.Point `json:"tiles"`

	// Bounds is the bounding box in grower space, before normalisation
	Bounds generation.Bounds `json:"bounds"`
}

// TileCount returns the number of tiles in the island
func (is Island) TileCount() int {
	return len(is.Tiles)
}

// TileRect returns the pixel rectangle of tile i relative to the island
// origin
func (is Island) TileRect(i int) (left, top, size int) {
	t := is.Tiles[i]
	return t.X * is.TilePx, t.Y * is.TilePx, is.TilePx
}

// Surface receives islands as they are created and removed. It stands in
// for the page container that owns the rendered nodes.
type Surface interface {
	AddIsland(Island)
	RemoveIsland(Island)
}
