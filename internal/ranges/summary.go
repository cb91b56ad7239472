package ranges

import "math"

// TotalCombos is the number of two-card starting hands in a 52-card deck.
const TotalCombos = 1326

// Summary aggregates a grid into played combinations.
type Summary struct {
	CombosPlayed     int
	PercentagePlayed float64
	// ByCategory holds the weighted (unrounded) combos played per category.
	ByCategory [CategoryCount]float64
}

// Summarize counts the combos a grid plays, weighting every cell by its
// category's combinations and its frequency. Each hand class is counted once.
func Summarize(g Grid) Summary {
	var s Summary
	total := 0.0
	for i := range g {
		for j := range g[i] {
			cell := g[i][j]
			w := float64(cell.Category.Combos()) * clampFrequency(cell.Frequency)
			if cell.Category >= 0 && cell.Category < CategoryCount {
				s.ByCategory[cell.Category] += w
			}
			total += w
		}
	}

	s.CombosPlayed = min(max(int(math.Round(total)), 0), TotalCombos)
	s.PercentagePlayed = float64(s.CombosPlayed) / TotalCombos * 100
	return s
}

func clampFrequency(f float64) float64 {
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
