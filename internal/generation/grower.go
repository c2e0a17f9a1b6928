package generation

import (
	"errors"
	"fmt"
)

// DefaultTailBias is the probability that growth extends from the most
// recently added tile instead of a random existing one
const DefaultTailBias = 0.65

// ErrInvalidCount is returned when a grower is asked for fewer than one tile
var ErrInvalidCount = errors.New("tile count must be positive")

// Grower builds connected tile clusters by repeated neighbour expansion
type Grower struct {
	// TailBias in [0, 1]. Higher values give stringy, jagged islands;
	// lower values give compact blobs.
	TailBias float64

	rng Source
}

// NewGrower creates a grower drawing from rng with the default tail bias.
// A nil rng uses NewSource.
func NewGrower(rng Source) *Grower {
	if rng == nil {
		rng = NewSource()
	}
	return &Grower{TailBias: DefaultTailBias, rng: rng}
}

// Grow returns exactly target distinct, orthogonally connected cells in
// growth order. The first cell is always the origin (0,0).
func (g *Grower) Grow(target int) ([]Point, error) {
	if target < 1 {
		return nil, fmt.Errorf("grow %d tiles: %w", target, ErrInvalidCount)
	}

	origin := Point{0, 0}
	occupied := map[Point]bool{origin: true}
	order := make([]Point, 1, target)
	order[0] = origin

	// Collisions are retried without counting toward progress. The plane is
	// unbounded so some cell always has a free neighbour and the loop ends.
	for len(order) < target {
		var anchor Point
		if g.rng.Float64() < g.TailBias {
			anchor = order[len(order)-1]
		} else {
			anchor = order[g.rng.IntN(len(order))]
		}

		next := anchor.Step(Directions[g.rng.IntN(len(Directions))])
		if occupied[next] {
			continue
		}

		occupied[next] = true
		order = append(order, next)
	}

	return order, nil
}
