// Package cards defines the rank, suit and card value types shared by the
// range, board and tournament packages.
package cards

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRank   = errors.New("invalid rank")
	ErrInvalidSuit   = errors.New("invalid suit")
	ErrInvalidCard   = errors.New("invalid card")
	ErrDuplicateCard = errors.New("duplicate card")
)

const errUnknownSymbols = "expected one of %s"

// Rank is a card rank indexed by strength: 0 is the Ace, 12 is the Deuce.
type Rank int

const (
	Ace Rank = iota
	King
	Queen
	Jack
	Ten
	Nine
	Eight
	Seven
	Six
	Five
	Four
	Three
	Two
)

// RankCount is the number of distinct ranks.
const RankCount = 13

// RankOrder is the canonical rank order for the 13x13 grid (A=0, 2=12)
var RankOrder = [RankCount]string{"A", "K", "Q", "J", "T", "9", "8", "7", "6", "5", "4", "3", "2"}

// AllRanks returns every rank from strongest to weakest.
func AllRanks() []Rank {
	out := make([]Rank, RankCount)
	for i := range out {
		out[i] = Rank(i)
	}
	return out
}

func (r Rank) Valid() bool {
	return r >= Ace && r <= Two
}

func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return RankOrder[r]
}

// Index returns the strength index of the rank (0 = Ace).
func (r Rank) Index() int {
	return int(r)
}

// ParseRank parses a rank symbol. "10" is accepted as an alias of "T".
func ParseRank(s string) (Rank, error) {
	sym := strings.ToUpper(strings.TrimSpace(s))
	if sym == "10" {
		return Ten, nil
	}
	for i, r := range RankOrder {
		if r == sym {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q: "+errUnknownSymbols, ErrInvalidRank, s, strings.Join(RankOrder[:], ","))
}

// Suit is one of the four card suits. Suits carry no ordering.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var suitSymbols = [...]string{"s", "h", "d", "c"}

func (s Suit) Valid() bool {
	return s >= Spades && s <= Clubs
}

func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// ParseSuit parses a suit symbol (s, h, d, c) or its unicode glyph.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "♠":
		return Spades, nil
	case "h", "♥":
		return Hearts, nil
	case "d", "♦":
		return Diamonds, nil
	case "c", "♣":
		return Clubs, nil
	default:
		return 0, fmt.Errorf("%w %q: "+errUnknownSymbols, ErrInvalidSuit, s, strings.Join(suitSymbols[:], ","))
	}
}

// Card is an immutable (rank, suit) pair.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard validates both components before building the card.
func NewCard(r Rank, s Suit) (Card, error) {
	if !r.Valid() {
		return Card{}, fmt.Errorf("%w: index %d", ErrInvalidRank, int(r))
	}
	if !s.Valid() {
		return Card{}, fmt.Errorf("%w: index %d", ErrInvalidSuit, int(s))
	}
	return Card{Rank: r, Suit: s}, nil
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a card such as "As", "Td" or "10h".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w %q", ErrInvalidCard, s)
	}
	r, err := ParseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, fmt.Errorf("parse card %q: %w", s, err)
	}
	su, err := ParseSuit(string(runes[len(runes)-1]))
	if err != nil {
		return Card{}, fmt.Errorf("parse card %q: %w", s, err)
	}
	return Card{Rank: r, Suit: su}, nil
}

// ParseBoard parses a run of cards, either space/comma separated ("As Kd 7c")
// or concatenated ("AsKd7c"). Duplicate cards are rejected.
func ParseBoard(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 1 {
		fields = splitConcatenated(fields[0])
	}

	out := make([]Card, 0, len(fields))
	seen := make(map[Card]bool, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = true
		out = append(out, c)
	}
	return out, nil
}

// splitConcatenated cuts "AsKd10c" into {"As", "Kd", "10c"}.
func splitConcatenated(s string) []string {
	runes := []rune(s)
	var out []string
	for i := 0; i < len(runes); {
		n := 2
		if runes[i] == '1' && i+1 < len(runes) && runes[i+1] == '0' {
			n = 3
		}
		if i+n > len(runes) {
			n = len(runes) - i
		}
		out = append(out, string(runes[i:i+n]))
		i += n
	}
	return out
}
