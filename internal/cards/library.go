package cards

import (
	"fmt"

	poker "github.com/paulhankin/poker"
)

// Library converts the card to the evaluator's representation.
// The evaluator numbers ranks 1..13 with the Ace as 1.
func (c Card) Library() (poker.Card, error) {
	var zero poker.Card
	var s poker.Suit
	switch c.Suit {
	case Clubs:
		s = poker.Club
	case Diamonds:
		s = poker.Diamond
	case Hearts:
		s = poker.Heart
	case Spades:
		s = poker.Spade
	default:
		return zero, fmt.Errorf("%w: index %d", ErrInvalidSuit, int(c.Suit))
	}
	if !c.Rank.Valid() {
		return zero, fmt.Errorf("%w: index %d", ErrInvalidRank, int(c.Rank))
	}

	// Ace=0 -> 1, King=1 -> 13, ..., Two=12 -> 2
	r := poker.Rank(1)
	if c.Rank != Ace {
		r = poker.Rank(14 - int(c.Rank))
	}
	pc, err := poker.MakeCard(s, r)
	if err != nil {
		return zero, fmt.Errorf("convert %s: %w", c, err)
	}
	return pc, nil
}
