package gto

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestComputeIndifferenceHalfPot(t *testing.T) {
	got := ComputeIndifference(100, 50)
	if math.Abs(got.RequiredEquity-0.25) > eps {
		t.Errorf("RequiredEquity = %v, want 0.25", got.RequiredEquity)
	}
	if math.Abs(got.PotOdds-0.25) > eps {
		t.Errorf("PotOdds = %v, want 0.25", got.PotOdds)
	}
	if math.Abs(got.OptimalBluffFrequency-0.25) > eps {
		t.Errorf("OptimalBluffFrequency = %v, want 0.25", got.OptimalBluffFrequency)
	}
	if math.Abs(got.OptimalValueFrequency-0.75) > eps {
		t.Errorf("OptimalValueFrequency = %v, want 0.75", got.OptimalValueFrequency)
	}
}

func TestComputeIndifferenceKnownSizes(t *testing.T) {
	tests := []struct {
		name     string
		pot, bet float64
		want     float64
	}{
		{"pot-sized", 100, 100, 1.0 / 3.0},
		{"third pot", 90, 30, 0.2},
		{"2x overbet", 100, 200, 0.4},
		{"tiny bet", 1000, 10, 10.0 / 1020.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeIndifference(tt.pot, tt.bet)
			if math.Abs(got.RequiredEquity-tt.want) > eps {
				t.Errorf("RequiredEquity = %v, want %v", got.RequiredEquity, tt.want)
			}
		})
	}
}

func TestComputeIndifferenceFrequenciesSumToOne(t *testing.T) {
	for pot := 10.0; pot <= 1000; pot += 45 {
		for bet := 5.0; bet <= 2*pot; bet += 35 {
			got := ComputeIndifference(pot, bet)
			sum := got.OptimalBluffFrequency + got.OptimalValueFrequency
			if math.Abs(sum-1) > eps {
				t.Fatalf("pot=%v bet=%v: bluff+value = %v", pot, bet, sum)
			}
			for _, f := range []float64{got.OptimalBluffFrequency, got.OptimalValueFrequency, got.RequiredEquity} {
				if f < 0 || f > 1 {
					t.Fatalf("pot=%v bet=%v: fraction %v out of [0,1]", pot, bet, f)
				}
			}
			// A caller never needs more than half the pot in equity.
			if got.RequiredEquity >= 0.5 {
				t.Fatalf("pot=%v bet=%v: required equity %v >= 0.5", pot, bet, got.RequiredEquity)
			}
		}
	}
}

func TestComputeIndifferenceDegenerateInputs(t *testing.T) {
	tests := []struct {
		name     string
		pot, bet float64
		want     float64
	}{
		{"zero bet", 100, 0, 0},
		{"zero pot and bet", 0, 0, 0},
		{"zero pot", 0, 50, 0.5},
		{"negative bet", 100, -20, 0},
		{"negative pot", -100, 50, 0.5},
		{"NaN bet", 100, math.NaN(), 0},
		{"infinite bet", 100, math.Inf(1), 0.5},
		{"overflowing bet", 100, math.MaxFloat64, 0.5},
		{"infinite pot", math.Inf(1), 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeIndifference(tt.pot, tt.bet)
			if math.Abs(got.RequiredEquity-tt.want) > eps {
				t.Errorf("RequiredEquity = %v, want %v", got.RequiredEquity, tt.want)
			}
			if math.Abs(got.OptimalValueFrequency-(1-tt.want)) > eps {
				t.Errorf("OptimalValueFrequency = %v, want %v", got.OptimalValueFrequency, 1-tt.want)
			}
		})
	}
}

func TestBetToPot(t *testing.T) {
	if got := BetToPot(100, 50); got != 0.5 {
		t.Errorf("BetToPot(100,50) = %v", got)
	}
	if got := BetToPot(0, 50); got != 0 {
		t.Errorf("BetToPot(0,50) = %v", got)
	}
}
