package gto

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidStreet = errors.New("invalid street")

// Street is the betting round a draw is evaluated on.
type Street int

const (
	Flop Street = iota
	Turn
)

func (s Street) String() string {
	switch s {
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	default:
		return "?"
	}
}

// ParseStreet accepts "flop" or "turn" in any case.
func ParseStreet(s string) (Street, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flop":
		return Flop, nil
	case "turn":
		return Turn, nil
	default:
		return 0, fmt.Errorf("%w %q: expected flop or turn", ErrInvalidStreet, s)
	}
}

// MaxOuts is the number of unseen cards after the flop with two hole cards.
const MaxOuts = 47

// Decision is the call/fold verdict of a draw evaluation.
type Decision int

const (
	Fold Decision = iota
	Call
)

func (d Decision) String() string {
	if d == Call {
		return "CALL"
	}
	return "FOLD"
}

// Common out counts.
const (
	OutsGutshot   = 4
	OutsOpenEnder = 8
	OutsFlushDraw = 9
)

// DrawDecision is the direct-odds verdict for calling a bet with a draw.
type DrawDecision struct {
	PotOdds float64 // required equity, bet/(pot+2*bet)
	Odds    float64 // (pot+bet)/bet, the "x : 1" ratio; 0 when bet is 0
	Equity  float64 // rule-of-4-and-2 estimate, fraction in [0,1]
	Outs    int
	Street  Street
	EV      float64
	Verdict Decision
}

// Profitable reports whether the draw is a call on direct odds.
func (d DrawDecision) Profitable() bool {
	return d.Verdict == Call
}

// EvaluateDraw estimates draw equity with the rule of 4 and 2 and compares it
// with the pot odds offered by a bet. Implied odds are not considered.
func EvaluateDraw(pot, bet float64, outs int, street Street) DrawDecision {
	pot = clampNonNegative(pot)
	bet = clampNonNegative(bet)
	outs = max(0, min(outs, MaxOuts))

	res := ComputeIndifference(pot, bet)
	equity := RuleOfFourAndTwo(outs, street)

	totalPot := pot + bet
	odds := 0.0
	if bet > 0 {
		odds = totalPot / bet
	}

	d := DrawDecision{
		PotOdds: res.PotOdds,
		Odds:    odds,
		Equity:  equity,
		Outs:    outs,
		Street:  street,
		EV:      totalPot*equity - bet*(1-equity),
		Verdict: Fold,
	}
	if equity >= res.PotOdds {
		d.Verdict = Call
	}
	return d
}

// RuleOfFourAndTwo approximates the chance of hitting one of outs by the
// river: outs*4% with two cards to come, outs*2% with one.
func RuleOfFourAndTwo(outs int, street Street) float64 {
	outs = max(0, min(outs, MaxOuts))
	mult := 4
	if street == Turn {
		mult = 2
	}
	return clampUnit(float64(outs*mult) / 100)
}
