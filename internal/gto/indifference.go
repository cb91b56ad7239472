// Package gto holds the river indifference calculator and the pot-odds draw
// decision helper.
package gto

import "math"

// SimulationResult is the bluff/value balance that leaves a caller indifferent.
// All fields are fractions in [0,1]; bluff and value always sum to 1.
type SimulationResult struct {
	PotOdds               float64
	RequiredEquity        float64
	OptimalBluffFrequency float64
	OptimalValueFrequency float64
}

// ComputeIndifference returns the optimal bluff and value frequencies for a
// bet of size bet into a pot of size pot.
//
// The caller risks bet to win pot+bet, so it needs bet/(pot+2*bet) equity to
// break even, and the bettor bluffs at exactly that frequency. Non-positive or
// NaN inputs are clamped to 0 and huge or infinite ones to a finite bound, so
// an unbounded bet tends to 0.5; a zero bet (with or without a pot) yields 0
// required equity.
func ComputeIndifference(pot, bet float64) SimulationResult {
	pot = clampNonNegative(pot)
	bet = clampNonNegative(bet)

	callAmount := bet
	potAfterBet := pot + bet
	potAfterCall := potAfterBet + callAmount

	required := 0.0
	if callAmount > 0 && potAfterCall > 0 {
		required = callAmount / potAfterCall
	}
	required = clampUnit(required)

	return SimulationResult{
		PotOdds:               required,
		RequiredEquity:        required,
		OptimalBluffFrequency: required,
		OptimalValueFrequency: 1 - required,
	}
}

// BetToPot is the bet size expressed as a fraction of the pot, 0 when the pot is empty.
func BetToPot(pot, bet float64) float64 {
	pot = clampNonNegative(pot)
	bet = clampNonNegative(bet)
	if pot == 0 {
		return 0
	}
	return bet / pot
}

// maxAmount bounds pot and bet so that pot+2*bet stays finite.
const maxAmount = math.MaxFloat64 / 4

func clampNonNegative(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > maxAmount:
		return maxAmount
	default:
		return v
	}
}

func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
