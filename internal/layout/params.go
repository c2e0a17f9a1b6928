package layout

import (
	"fmt"
	"math"

	"dconn.dev/islands/internal/generation"
)

// Params holds every tunable of the island layout
type Params struct {
	TilePx     int     `toml:"tile_px" json:"tile_px"`
	BleedTiles int     `toml:"bleed_tiles" json:"bleed_tiles"`
	TailBias   float64 `toml:"tail_bias" json:"tail_bias"`

	// Island count: clamp(round(width*height / AreaPerIsland), MinIslands, MaxIslands)
	AreaPerIsland float64 `toml:"area_per_island" json:"area_per_island"`
	MinIslands    int     `toml:"min_islands" json:"min_islands"`
	MaxIslands    int     `toml:"max_islands" json:"max_islands"`

	// Per-island tile budget, as ratios of the grid area with hard clamps
	MinTileRatio float64 `toml:"min_tile_ratio" json:"min_tile_ratio"`
	MinTileFloor int     `toml:"min_tile_floor" json:"min_tile_floor"`
	MinTileCeil  int     `toml:"min_tile_ceil" json:"min_tile_ceil"`
	MaxTileRatio float64 `toml:"max_tile_ratio" json:"max_tile_ratio"`
	MaxTileFloor int     `toml:"max_tile_floor" json:"max_tile_floor"`
	MaxTileCeil  int     `toml:"max_tile_ceil" json:"max_tile_ceil"`
}

// DefaultParams returns the stock layout settings
func DefaultParams() Params {
	return Params{
		TilePx:        8,
		BleedTiles:    6,
		TailBias:      generation.DefaultTailBias,
		AreaPerIsland: 220000,
		MinIslands:    5,
		MaxIslands:    14,
		MinTileRatio:  0.004,
		MinTileFloor:  20,
		MinTileCeil:   60,
		MaxTileRatio:  0.018,
		MaxTileFloor:  80,
		MaxTileCeil:   260,
	}
}

// Validate reports the first setting that would break generation
func (p Params) Validate() error {
	switch {
	case p.TilePx <= 0:
		return fmt.Errorf("tile_px must be positive, got %d", p.TilePx)
	case p.BleedTiles < 0:
		return fmt.Errorf("bleed_tiles must not be negative, got %d", p.BleedTiles)
	case p.TailBias < 0 || p.TailBias > 1:
		return fmt.Errorf("tail_bias must be within [0,1], got %g", p.TailBias)
	case p.AreaPerIsland <= 0:
		return fmt.Errorf("area_per_island must be positive, got %g", p.AreaPerIsland)
	case p.MinIslands < 0 || p.MinIslands > p.MaxIslands:
		return fmt.Errorf("island bounds [%d,%d] are invalid", p.MinIslands, p.MaxIslands)
	case p.MinTileFloor < 1 || p.MinTileFloor > p.MinTileCeil:
		return fmt.Errorf("min tile bounds [%d,%d] are invalid", p.MinTileFloor, p.MinTileCeil)
	case p.MaxTileFloor < 1 || p.MaxTileFloor > p.MaxTileCeil:
		return fmt.Errorf("max tile bounds [%d,%d] are invalid", p.MaxTileFloor, p.MaxTileCeil)
	}
	return nil
}

// Canvas is the visible drawing area in pixels
type Canvas struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GridSize returns the canvas size in whole tiles, rounding up
func (p Params) GridSize(c Canvas) (gridW, gridH int) {
	return ceilDiv(c.Width, p.TilePx), ceilDiv(c.Height, p.TilePx)
}

// IslandCount scales the number of islands with canvas area
func (p Params) IslandCount(c Canvas) int {
	area := float64(c.Width) * float64(c.Height)
	return max(p.MinIslands, min(p.MaxIslands, int(math.Round(area/p.AreaPerIsland))))
}

// TileBudget returns the inclusive range of tile counts for one island on
// a grid of the given size
func (p Params) TileBudget(gridW, gridH int) (lo, hi int) {
	area := float64(gridW) * float64(gridH)
	lo = max(p.MinTileFloor, min(p.MinTileCeil, int(math.Round(area*p.MinTileRatio))))
	hi = max(p.MaxTileFloor, min(p.MaxTileCeil, int(math.Round(area*p.MaxTileRatio))))
	if lo > hi {
		hi = lo
	}
	return lo, hi
}

// OffsetRange returns the inclusive range of tile offsets along one axis for
// an island extent tiles long on a grid gridExtent tiles long
func (p Params) OffsetRange(gridExtent, extent int) (lo, hi int) {
	return -p.BleedTiles, gridExtent - extent + p.BleedTiles
}

// placeAxis picks a tile offset along one axis. An island too large for the
// range is centred on the grid instead.
func (p Params) placeAxis(rng generation.Source, gridExtent, extent int) int {
	lo, hi := p.OffsetRange(gridExtent, extent)
	if hi < lo {
		return (gridExtent - extent) / 2
	}
	return generation.IntRange(rng, lo, hi)
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
