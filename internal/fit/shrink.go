package fit

// Spacing is the set of properties the link bar shrinks
type Spacing struct {
	FontSize float64
	Gap      float64
	PadX     float64
}

// SpacingTarget applies spacing and reports the resulting overflow
type SpacingTarget interface {
	ApplySpacing(Spacing)
	// Overflow returns needed width minus available width
	Overflow() float64
}

// Shrinker reduces padding, then gaps, then font size until content fits
type Shrinker struct {
	Preferred Spacing
	Minimum   Spacing
	Step      float64
	MaxSteps  int
	// Tolerance is the overflow allowed before shrinking
	Tolerance float64
}

// DefaultShrinker returns the link bar settings
func DefaultShrinker() Shrinker {
	return Shrinker{
		Preferred: Spacing{FontSize: 24, Gap: 12, PadX: 8},
		Minimum:   Spacing{FontSize: 12, Gap: 2, PadX: 1},
		Step:      0.5,
		MaxSteps:  120,
		Tolerance: 1,
	}
}

// Fit starts from the preferred spacing so content can grow back after a
// narrow layout, then shrinks one step at a time. It returns the applied
// spacing and whether the content fits.
func (s Shrinker) Fit(t SpacingTarget) (Spacing, bool) {
	cur := s.Preferred
	t.ApplySpacing(cur)

	for i := 0; t.Overflow() > s.Tolerance && i < s.MaxSteps; i++ {
		switch {
		case cur.PadX > s.Minimum.PadX:
			cur.PadX = max(s.Minimum.PadX, cur.PadX-s.Step)
		case cur.Gap > s.Minimum.Gap:
			cur.Gap = max(s.Minimum.Gap, cur.Gap-s.Step)
		case cur.FontSize > s.Minimum.FontSize:
			cur.FontSize = max(s.Minimum.FontSize, cur.FontSize-s.Step)
		default:
			return cur, false
		}
		t.ApplySpacing(cur)
	}

	return cur, t.Overflow() <= s.Tolerance
}
