package ranges

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidAction   = errors.New("invalid preflop action")
)

// Position represents a seat at a six-handed table
type Position int

const (
	PosUTG Position = iota // Under the Gun
	PosMP                  // Middle Position
	PosCO                  // Cutoff
	PosBTN                 // Button (Dealer)
	PosSB                  // Small Blind
	PosBB                  // Big Blind
)

// AllPositions returns the positions in table order.
func AllPositions() []Position {
	return []Position{PosUTG, PosMP, PosCO, PosBTN, PosSB, PosBB}
}

func (p Position) Valid() bool {
	return p >= PosUTG && p <= PosBB
}

func (p Position) String() string {
	switch p {
	case PosUTG:
		return "UTG"
	case PosMP:
		return "MP"
	case PosCO:
		return "CO"
	case PosBTN:
		return "BTN"
	case PosSB:
		return "SB"
	case PosBB:
		return "BB"
	default:
		return "?"
	}
}

// ParsePosition maps a position name (case-insensitive) to a Position.
func ParsePosition(s string) (Position, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UTG":
		return PosUTG, nil
	case "MP":
		return PosMP, nil
	case "CO":
		return PosCO, nil
	case "BTN", "BU", "BUTTON":
		return PosBTN, nil
	case "SB":
		return PosSB, nil
	case "BB":
		return PosBB, nil
	default:
		return 0, fmt.Errorf("%w %q: expected one of UTG,MP,CO,BTN,SB,BB", ErrInvalidPosition, s)
	}
}

// Action is the preflop situation a range is built for
type Action int

const (
	RaiseFirstIn Action = iota // open-raise, nobody has entered the pot
	VsThreeBet                 // our open faced a re-raise
)

func AllActions() []Action {
	return []Action{RaiseFirstIn, VsThreeBet}
}

func (a Action) Valid() bool {
	return a == RaiseFirstIn || a == VsThreeBet
}

func (a Action) String() string {
	switch a {
	case RaiseFirstIn:
		return "RFI"
	case VsThreeBet:
		return "vs 3-Bet"
	default:
		return "?"
	}
}

// ParseAction accepts "RFI", "raise-first-in", "vs 3-Bet", "vs3bet" and "3bet".
func ParseAction(s string) (Action, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(norm)
	switch norm {
	case "rfi", "raisefirstin", "open":
		return RaiseFirstIn, nil
	case "vs3bet", "vsthreebet", "3bet":
		return VsThreeBet, nil
	default:
		return 0, fmt.Errorf("%w %q: expected RFI or vs 3-Bet", ErrInvalidAction, s)
	}
}
