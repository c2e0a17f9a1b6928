package render

import (
	"errors"
	"fmt"
	"slices"
)

// Season selects the tile artwork and colours
type Season string

const (
	Winter Season = "winter"
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
)

// DefaultSeason is used when none is requested
const DefaultSeason = Summer

// ErrUnknownSeason is returned for a season name outside Seasons
var ErrUnknownSeason = errors.New("unknown season")

// Palette defines how tiles are drawn for a season
type Palette struct {
	Season     Season `json:"season"`
	Background string `json:"background"`
	Fill       string `json:"fill"`
	Edge       string `json:"edge"`
	// TileImage is the value for the page's --tile-image property
	TileImage string `json:"tile_image"`
}

var palettes = map[Season]Palette{
	Winter: {
		Season:     Winter,
		Background: "#1d2733",
		Fill:       "#3f5a4a",
		Edge:       "#2b3f34",
		TileImage:  `url("./images/spring - dark.png")`,
	},
	Spring: {
		Season:     Spring,
		Background: "#dff1f7",
		Fill:       "#9bd37a",
		Edge:       "#6fae52",
		TileImage:  `url("./images/spring-light-center.png")`,
	},
	Summer: {
		Season:     Summer,
		Background: "#a9d8e8",
		Fill:       "#6fb04a",
		Edge:       "#4d8a33",
		TileImage:  `url("./images/spring.png")`,
	},
	Fall: {
		Season:     Fall,
		Background: "#2a2320",
		Fill:       "#8a6b3c",
		Edge:       "#5e4727",
		TileImage:  `url("./images/spring path - dark.png")`,
	},
}

// Seasons returns every known season in calendar order
func Seasons() []Season {
	return []Season{Winter, Spring, Summer, Fall}
}

// GetPalette returns the palette for a season name. An empty name selects
// DefaultSeason.
func GetPalette(name string) (Palette, error) {
	if name == "" {
		return palettes[DefaultSeason], nil
	}
	p, ok := palettes[Season(name)]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownSeason, name, Seasons())
	}
	return p, nil
}

// ValidSeason reports whether name is a known season
func ValidSeason(name string) bool {
	return slices.Contains(Seasons(), Season(name))
}
