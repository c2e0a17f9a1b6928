package generation

// Point is a cell coordinate in island-local tile space
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns a new point offset by dx, dy
func (p Point) Add(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Step returns the neighbour one tile away in direction d
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// Adjacent returns the 4 cardinal neighbors
func (p Point) Adjacent() []Point {
	return []Point{
		{p.X, p.Y - 1}, // N
		{p.X + 1, p.Y}, // E
		{p.X, p.Y + 1}, // S
		{p.X - 1, p.Y}, // W
	}
}

// Direction represents cardinal directions
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every cardinal direction in a fixed order
var Directions = [4]Direction{East, West, South, North}

// Delta returns the x,y offset for moving in this direction
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Bounds represents a rectangular region, inclusive on both ends
type Bounds struct {
	MinX int `json:"min_x"`
	MinY int `json:"min_y"`
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

// Width returns the width of the bounds in tiles
func (b Bounds) Width() int {
	return b.MaxX - b.MinX + 1
}

// Height returns the height of the bounds in tiles
func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}

// Contains checks if a point is within bounds
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// BoundsOf returns the smallest bounds holding every point.
// An empty slice yields the zero Bounds.
func BoundsOf(points []Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{points[0].X, points[0].Y, points[0].X, points[0].Y}
	for _, p := range points[1:] {
		b.MinX = min(b.MinX, p.X)
		b.MinY = min(b.MinY, p.Y)
		b.MaxX = max(b.MaxX, p.X)
		b.MaxY = max(b.MaxY, p.Y)
	}
	return b
}

// Normalize returns the points shifted so the bounds minimum becomes (0,0)
func Normalize(points []Point, b Bounds) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{p.X - b.MinX, p.Y - b.MinY}
	}
	return out
}
