// Package ranges builds heuristic preflop ranges as 13x13 hand grids and
// summarizes them into combo counts.
package ranges

import "github.com/AkatukiSora/gto-poker-ref/internal/cards"

type tableKey struct {
	action   Action
	position Position
}

// tightness is the score threshold per situation; hands scoring below it are
// played. The big blind has no entry for RaiseFirstIn: it cannot open.
var tightness = map[tableKey]int{
	{RaiseFirstIn, PosUTG}: 40,
	{RaiseFirstIn, PosMP}:  55,
	{RaiseFirstIn, PosCO}:  75,
	{RaiseFirstIn, PosBTN}: 110,
	{RaiseFirstIn, PosSB}:  90,

	{VsThreeBet, PosUTG}: 20,
	{VsThreeBet, PosMP}:  25,
	{VsThreeBet, PosCO}:  30,
	{VsThreeBet, PosBTN}: 35,
	{VsThreeBet, PosSB}:  20,
	{VsThreeBet, PosBB}:  30,
}

// mixedBand is the score window above the threshold played at half frequency.
const mixedBand = 10

// offsuitPenalty is added to the score of unsuited non-pair hands.
const offsuitPenalty = 20

// Threshold returns the tightness threshold for a situation, false when the
// position cannot take that action.
func Threshold(pos Position, action Action) (int, bool) {
	t, ok := tightness[tableKey{action, pos}]
	return t, ok
}

// Thresholds returns a copy of the threshold table for one action.
func Thresholds(action Action) map[Position]int {
	out := make(map[Position]int)
	for k, v := range tightness {
		if k.action == action {
			out[k.position] = v
		}
	}
	return out
}

// HandScore is the raw strength score of a hand class: lower is stronger.
func HandScore(high, low cards.Rank, cat Category) int {
	a, b := high.Index(), low.Index()
	score := min(a, b)*10 + max(a, b)
	if cat == CategoryOffsuit {
		score += offsuitPenalty
	}
	return score
}

// Generate builds the range grid for a position and preflop action.
// The result is a fresh value; identical arguments always yield identical grids.
func Generate(pos Position, action Action) Grid {
	var g Grid
	for i := 0; i < cards.RankCount; i++ {
		for j := 0; j < cards.RankCount; j++ {
			label, cat, high, low := cellShape(i, j)
			g[i][j] = HandCell{
				Label:     label,
				Category:  cat,
				High:      high,
				Low:       low,
				Frequency: Frequency(high, low, cat, pos, action),
			}
		}
	}
	return g
}

// Frequency returns how often a hand class is played in a situation.
// Overrides for pairs, suited connectors and suited aces are checked in that
// order before the generic score/threshold comparison.
func Frequency(high, low cards.Rank, cat Category, pos Position, action Action) float64 {
	threshold, ok := Threshold(pos, action)
	if !ok {
		return 0
	}
	score := HandScore(high, low, cat)

	switch cat {
	case CategoryPair:
		return pairFrequency(high, score, threshold, pos, action)
	case CategorySuited:
		if f, ok := suitedOverride(high, low, pos, action); ok {
			return f
		}
	}

	switch {
	case score < threshold:
		return 1
	case score < threshold+mixedBand:
		return 0.5
	default:
		return 0
	}
}

func pairFrequency(rank cards.Rank, score, threshold int, pos Position, action Action) float64 {
	if action == RaiseFirstIn {
		if pos == PosUTG && rank <= cards.Six {
			return 1
		}
		if pos == PosBTN {
			return 1
		}
		if score < threshold {
			return 1
		}
		return 0
	}

	// VsThreeBet
	if rank <= cards.Nine {
		return 1
	}
	if pos == PosBTN {
		return 0.5
	}
	return 0
}

func suitedOverride(high, low cards.Rank, pos Position, action Action) (float64, bool) {
	// Suited connectors
	if low.Index()-high.Index() == 1 {
		if action == RaiseFirstIn && pos != PosUTG {
			return 1, true
		}
		if action == VsThreeBet && pos == PosBTN && high.Index() < 8 {
			return 0.5, true
		}
	}

	// Suited aces
	if high == cards.Ace && action == RaiseFirstIn {
		if pos == PosUTG && low > cards.Ten {
			return 0, true
		}
		return 1, true
	}
	return 0, false
}
