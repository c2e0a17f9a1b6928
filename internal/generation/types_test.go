package generation

import "testing"

func TestBoundsOf(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   Bounds
	}{
		{"empty", nil, Bounds{}},
		{"single", []Point{{3, -2}}, Bounds{3, -2, 3, -2}},
		{"spread", []Point{{0, 0}, {-4, 1}, {2, 5}, {1, -3}}, Bounds{-4, -3, 2, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoundsOf(tt.points); got != tt.want {
				t.Errorf("BoundsOf() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoundsContainGrownTiles(t *testing.T) {
	g := NewGrower(NewRNG(5))
	for i := 0; i < 30; i++ {
		tiles, err := g.Grow(120)
		if err != nil {
			t.Fatal(err)
		}
		b := BoundsOf(tiles)
		if b.MinX > b.MaxX || b.MinY > b.MaxY {
			t.Fatalf("inverted bounds %+v", b)
		}
		for _, p := range tiles {
			if !b.Contains(p) {
				t.Fatalf("tile %v outside bounds %+v", p, b)
			}
		}
	}
}

func TestBoundsSize(t *testing.T) {
	b := Bounds{MinX: -2, MinY: 1, MaxX: 3, MaxY: 1}
	if b.Width() != 6 {
		t.Errorf("Width() = %d, want 6", b.Width())
	}
	if b.Height() != 1 {
		t.Errorf("Height() = %d, want 1", b.Height())
	}
}

func TestNormalize(t *testing.T) {
	points := []Point{{0, 0}, {-1, 0}, {-1, -2}}
	got := Normalize(points, BoundsOf(points))
	want := []Point{{1, 2}, {0, 2}, {0, 0}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Normalize()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestConnected(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   bool
	}{
		{"empty", nil, true},
		{"single", []Point{{0, 0}}, true},
		{"line", []Point{{0, 0}, {1, 0}, {2, 0}}, true},
		{"diagonal only", []Point{{0, 0}, {1, 1}}, false},
		{"gap", []Point{{0, 0}, {1, 0}, {3, 0}}, false},
		{"duplicate", []Point{{0, 0}, {1, 0}, {1, 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Connected(tt.points); got != tt.want {
				t.Errorf("Connected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnreachable(t *testing.T) {
	got := Unreachable([]Point{{0, 0}, {0, 1}, {5, 5}})
	if len(got) != 1 || got[0] != (Point{5, 5}) {
		t.Errorf("Unreachable() = %v, want [{5 5}]", got)
	}
}

func TestIntRange(t *testing.T) {
	rng := NewRNG(3)
	for i := 0; i < 1000; i++ {
		v := IntRange(rng, -6, 10)
		if v < -6 || v > 10 {
			t.Fatalf("IntRange() = %d outside [-6,10]", v)
		}
	}
	if got := IntRange(rng, 5, 5); got != 5 {
		t.Errorf("IntRange(5,5) = %d", got)
	}
	if got := IntRange(rng, 9, 2); got != 9 {
		t.Errorf("IntRange(9,2) = %d, want lo", got)
	}
}
