// Package board classifies flop textures by how coordinated the cards are.
package board

import (
	"slices"

	poker "github.com/paulhankin/poker"

	"github.com/AkatukiSora/gto-poker-ref/internal/cards"
)

// Texture is the qualitative coordination of a flop.
type Texture int

const (
	Dry Texture = iota
	Static
	Dynamic
	Wet
)

func (t Texture) String() string {
	switch t {
	case Dry:
		return "Dry"
	case Static:
		return "Static"
	case Dynamic:
		return "Dynamic"
	case Wet:
		return "Wet"
	default:
		return "?"
	}
}

// Coordinated reports whether the texture favors big sizings and protection.
func (t Texture) Coordinated() bool {
	return t == Wet || t == Dynamic
}

// FlopSize is the number of cards scored.
const FlopSize = 3

// highCardMaxIndex is the weakest rank counted as a high card (the Jack).
const highCardMaxIndex = 3

const (
	wetThreshold     = 6
	dynamicThreshold = 4
	staticMaxScore   = 3 // exclusive
	staticHighCards  = 2
)

// Analysis is the result of scoring a flop.
type Analysis struct {
	Texture      Texture
	WetnessScore int
	Description  string

	HighCards int
	SuitScore int
	LinkScore int
	// Strength is the evaluator's 3-card strength of the board; it ignores
	// suits and is only meaningful when Complete is true.
	Strength int16
	Complete bool
}

const placeholderDescription = "Select three flop cards to analyze the board."

var descriptions = map[Texture]string{
	Wet:     "Highly coordinated board with many possible draws. The nut advantage shifts often on the turn.",
	Dynamic: "Some draws are present. Protect your made hands, but semi-bluffs with equity work well.",
	Static:  "Disconnected board with high cards. Hand values rarely change; c-bet often.",
	Dry:     "Dry board with few straight or flush possibilities. Great for bluffing with air.",
}

// Description returns the fixed rationale text of a texture.
func Description(t Texture) string {
	return descriptions[t]
}

// Analyze scores and classifies a flop. Fewer than three cards yields a Dry
// placeholder with score 0; cards after the third are ignored.
func Analyze(board []cards.Card) Analysis {
	if len(board) < FlopSize {
		return Analysis{Texture: Dry, Description: placeholderDescription}
	}
	flop := board[:FlopSize]

	suitScore := suitConcentration(flop)
	linkScore := connectivity(flop)
	highCards := 0
	for _, c := range flop {
		if c.Rank.Index() <= highCardMaxIndex {
			highCards++
		}
	}

	score := suitScore + linkScore
	t := classify(score, highCards)
	return Analysis{
		Texture:      t,
		WetnessScore: score,
		Description:  descriptions[t],
		HighCards:    highCards,
		SuitScore:    suitScore,
		LinkScore:    linkScore,
		Strength:     strength(flop),
		Complete:     true,
	}
}

// classify checks Wet, Dynamic, Static and Dry in that order; the order
// matters at the boundary scores.
func classify(score, highCards int) Texture {
	switch {
	case score >= wetThreshold:
		return Wet
	case score >= dynamicThreshold:
		return Dynamic
	case highCards >= staticHighCards && score < staticMaxScore:
		return Static
	default:
		return Dry
	}
}

// suitConcentration: monotone +4, two-tone +2, rainbow 0.
func suitConcentration(flop []cards.Card) int {
	counts := make(map[cards.Suit]int, FlopSize)
	maxSuit := 0
	for _, c := range flop {
		counts[c.Suit]++
		maxSuit = max(maxSuit, counts[c.Suit])
	}
	switch {
	case maxSuit >= 3:
		return 4
	case maxSuit == 2:
		return 2
	default:
		return 0
	}
}

// connectivity scores the gaps between sorted rank indexes: three in a row +4,
// one connected pair +2, two one-gaps +1.
func connectivity(flop []cards.Card) int {
	idx := make([]int, 0, len(flop))
	for _, c := range flop {
		idx = append(idx, c.Rank.Index())
	}
	slices.Sort(idx)

	connected, gapped := 0, 0
	for i := 0; i+1 < len(idx); i++ {
		switch idx[i+1] - idx[i] {
		case 1:
			connected++
		case 2:
			gapped++
		}
	}

	switch {
	case connected >= 2:
		return 4
	case connected == 1:
		return 2
	case gapped >= 2:
		return 1
	default:
		return 0
	}
}

func strength(flop []cards.Card) int16 {
	var hand [3]poker.Card
	for i, c := range flop {
		pc, err := c.Library()
		if err != nil {
			return 0
		}
		hand[i] = pc
	}
	return poker.Eval3(&hand)
}
