package fit

import "testing"

// textBox needs perChar width per unit of size
type textBox struct {
	perUnit   float64
	available float64
	size      float64
	applied   int
}

func (b *textBox) Apply(size float64) { b.size = size; b.applied++ }
func (b *textBox) Needed() float64    { return b.size * b.perUnit }
func (b *textBox) Available() float64 { return b.available }

func TestBinary(t *testing.T) {
	tests := []struct {
		name      string
		perUnit   float64
		available float64
		lo, hi    int
		want      int
	}{
		{"fits at max", 1, 500, TitleMin, TitleMax, 110},
		{"fits at min only", 10, 220, TitleMin, TitleMax, 22},
		{"nothing fits", 10, 100, TitleMin, TitleMax, 22},
		{"middle", 10, 575, TitleMin, TitleMax, 57},
		{"meta line", 20, 400, MetaMin, MetaMax, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &textBox{perUnit: tt.perUnit, available: tt.available}
			got, ok := Binary(b, tt.lo, tt.hi, TitleIterations)
			if !ok {
				t.Fatal("Binary() reported hidden content")
			}
			if got != tt.want {
				t.Errorf("Binary() = %d, want %d", got, tt.want)
			}
			if b.size != float64(tt.want) {
				t.Errorf("applied size %g, want %d", b.size, tt.want)
			}
		})
	}
}

func TestBinaryHiddenContent(t *testing.T) {
	b := &textBox{perUnit: 1, available: 0}
	if _, ok := Binary(b, MetaMin, MetaMax, MetaIterations); ok {
		t.Error("Binary() on zero width reported ok")
	}
	if b.applied != 0 {
		t.Errorf("Binary() applied %d sizes to hidden content", b.applied)
	}
}

// bar models a link bar: 5 links of font-proportional text plus padding
// and 4 gaps
type bar struct {
	available float64
	cur       Spacing
}

func (b *bar) ApplySpacing(s Spacing) { b.cur = s }
func (b *bar) Overflow() float64 {
	needed := 5*(b.cur.FontSize*4+2*b.cur.PadX) + 4*b.cur.Gap
	return needed - b.available
}

func TestShrinkerKeepsPreferredWhenRoomy(t *testing.T) {
	b := &bar{available: 1000}
	got, ok := DefaultShrinker().Fit(b)
	if !ok {
		t.Fatal("Fit() reported overflow")
	}
	if got != (Spacing{FontSize: 24, Gap: 12, PadX: 8}) {
		t.Errorf("Fit() = %+v, want preferred", got)
	}
}

func TestShrinkerShrinksPaddingFirst(t *testing.T) {
	// preferred needs 5*(96+16)+48 = 608
	b := &bar{available: 580}
	got, ok := DefaultShrinker().Fit(b)
	if !ok {
		t.Fatal("Fit() reported overflow")
	}
	if got.Gap != 12 || got.FontSize != 24 {
		t.Errorf("Fit() = %+v, only padding should shrink", got)
	}
	if got.PadX >= 8 {
		t.Errorf("PadX = %g, want shrunk", got.PadX)
	}
}

func TestShrinkerShrinksFontLast(t *testing.T) {
	b := &bar{available: 400}
	got, ok := DefaultShrinker().Fit(b)
	if !ok {
		t.Fatalf("Fit() = %+v reported overflow", got)
	}
	if got.PadX != 1 || got.Gap != 2 {
		t.Errorf("Fit() = %+v, padding and gap should be at minimum", got)
	}
	if got.FontSize >= 24 || got.FontSize < 12 {
		t.Errorf("FontSize = %g, want within [12,24)", got.FontSize)
	}
}

func TestShrinkerGivesUpAtMinimum(t *testing.T) {
	b := &bar{available: 10}
	got, ok := DefaultShrinker().Fit(b)
	if ok {
		t.Error("Fit() reported fit on an impossible width")
	}
	if got.FontSize < 12 || got.PadX < 1 || got.Gap < 2 {
		t.Errorf("Fit() = %+v went below minimums", got)
	}
}
