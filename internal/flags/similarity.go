package flags

const (
	colorWeight       = 0.5
	regionWeight      = 0.5
	exactPaletteBonus = 1.0
)

// Score rates how visually similar candidate b is to source a. Higher is more
// similar; raw overlap counts are not normalized by set size.
func Score(a, b Attributes) float64 {
	score := float64(overlap(a.Layout, b.Layout))
	score += float64(overlap(a.Motif, b.Motif))
	score += float64(overlap(a.Group, b.Group))

	colors := overlap(a.Color, b.Color)
	score += colorWeight * float64(colors)
	score += regionWeight * float64(overlap(a.Region, b.Region))

	if sameSet(a.Color, b.Color) && len(a.Color) > 0 {
		score += exactPaletteBonus
	}
	return score
}

// overlap counts distinct tags present in both groups.
func overlap(a, b Tags) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	other := b.set()
	n := 0
	for tag := range a.set() {
		if _, ok := other[tag]; ok {
			n++
		}
	}
	return n
}

func sameSet(a, b Tags) bool {
	as, bs := a.set(), b.set()
	if len(as) != len(bs) {
		return false
	}
	for tag := range as {
		if _, ok := bs[tag]; !ok {
			return false
		}
	}
	return true
}
