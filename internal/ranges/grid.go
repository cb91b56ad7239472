package ranges

import (
	"strings"

	"github.com/AkatukiSora/gto-poker-ref/internal/cards"
)

// Category classifies a starting-hand class by its position in the grid.
type Category int

const (
	CategoryPair    Category = iota // diagonal
	CategorySuited                  // upper triangle
	CategoryOffsuit                 // lower triangle
	CategoryCount
)

func (c Category) String() string {
	switch c {
	case CategoryPair:
		return "pair"
	case CategorySuited:
		return "suited"
	case CategoryOffsuit:
		return "offsuit"
	default:
		return "?"
	}
}

// Combos is the number of two-card holdings in a hand class of this category.
func (c Category) Combos() int {
	switch c {
	case CategoryPair:
		return 6
	case CategorySuited:
		return 4
	case CategoryOffsuit:
		return 12
	default:
		return 0
	}
}

// HandCell is one starting-hand class (e.g. "AKs", "77", "T9o") with the
// fraction of the time it is played: 0 folds, 1 always plays, anything in
// between is a mixed strategy.
type HandCell struct {
	Label     string
	Category  Category
	High      cards.Rank // higher rank (same as Low for pairs)
	Low       cards.Rank
	Frequency float64
}

// Played reports whether the hand is played at any frequency.
func (c HandCell) Played() bool {
	return c.Frequency > 0
}

// Mixed reports whether the hand is played only part of the time.
func (c HandCell) Mixed() bool {
	return c.Frequency > 0 && c.Frequency < 1
}

// Grid is the standard 13x13 range table. Rows and columns follow
// cards.RankOrder: the diagonal holds pairs, the upper triangle suited hands
// and the lower triangle offsuit hands, so each of the 169 classes appears once.
type Grid [cards.RankCount][cards.RankCount]HandCell

// cellShape derives the hand class stored at (row, col).
func cellShape(row, col int) (label string, cat Category, high, low cards.Rank) {
	r, c := cards.Rank(row), cards.Rank(col)
	switch {
	case row == col:
		return r.String() + c.String(), CategoryPair, r, r
	case row < col:
		return r.String() + c.String() + "s", CategorySuited, r, c
	default:
		return c.String() + r.String() + "o", CategoryOffsuit, c, r
	}
}

// Hands returns the 169 cells in row-major order.
func (g Grid) Hands() []HandCell {
	out := make([]HandCell, 0, cards.RankCount*cards.RankCount)
	for i := range g {
		for j := range g[i] {
			out = append(out, g[i][j])
		}
	}
	return out
}

// Cell looks up a hand class by label. Labels are case-insensitive for ranks
// and accept "10" for the Ten; "AK" without a suffix is treated as offsuit.
func (g Grid) Cell(label string) (HandCell, bool) {
	row, col, ok := cellIndex(label)
	if !ok {
		return HandCell{}, false
	}
	return g[row][col], true
}

func cellIndex(label string) (row, col int, ok bool) {
	s := strings.TrimSpace(label)
	s = strings.ReplaceAll(s, "10", "T")
	if len(s) < 2 || len(s) > 3 {
		return 0, 0, false
	}
	r1, err := cards.ParseRank(s[:1])
	if err != nil {
		return 0, 0, false
	}
	r2, err := cards.ParseRank(s[1:2])
	if err != nil {
		return 0, 0, false
	}
	hi, lo := min(r1, r2), max(r1, r2)

	suffix := strings.ToLower(s[2:])
	switch {
	case hi == lo:
		if suffix != "" {
			return 0, 0, false
		}
		return int(hi), int(hi), true
	case suffix == "s":
		return int(hi), int(lo), true
	case suffix == "o" || suffix == "":
		return int(lo), int(hi), true
	default:
		return 0, 0, false
	}
}

// CanonicalLabel normalizes a hand label ("KAs" -> "AKs", "AK" -> "AKo").
func CanonicalLabel(label string) (string, bool) {
	row, col, ok := cellIndex(label)
	if !ok {
		return "", false
	}
	out, _, _, _ := cellShape(row, col)
	return out, true
}
