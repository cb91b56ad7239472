package gto

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluateDrawFlushDrawOnFlop(t *testing.T) {
	d := EvaluateDraw(100, 50, OutsFlushDraw, Flop)
	if math.Abs(d.Equity-0.36) > eps {
		t.Errorf("Equity = %v, want 0.36", d.Equity)
	}
	if math.Abs(d.PotOdds-0.25) > eps {
		t.Errorf("PotOdds = %v, want 0.25", d.PotOdds)
	}
	if math.Abs(d.Odds-3) > eps {
		t.Errorf("Odds = %v, want 3", d.Odds)
	}
	if !d.Profitable() || d.Verdict != Call {
		t.Errorf("Verdict = %v, want CALL", d.Verdict)
	}
	if math.Abs(d.EV-22) > 1e-6 {
		t.Errorf("EV = %v, want 22", d.EV)
	}
}

func TestEvaluateDrawFlushDrawOnTurn(t *testing.T) {
	d := EvaluateDraw(100, 50, OutsFlushDraw, Turn)
	if math.Abs(d.Equity-0.18) > eps {
		t.Errorf("Equity = %v, want 0.18", d.Equity)
	}
	if d.Verdict != Fold {
		t.Errorf("Verdict = %v, want FOLD", d.Verdict)
	}
	if math.Abs(d.EV-(-14)) > 1e-6 {
		t.Errorf("EV = %v, want -14", d.EV)
	}
}

func TestEvaluateDrawBoundaries(t *testing.T) {
	// Boundary: equity equal to pot odds is a call (10/50 = 20% vs 5 outs * 4%)
	d := EvaluateDraw(30, 10, 5, Flop)
	if d.Verdict != Call {
		t.Errorf("equal equity/pot odds: Verdict = %v, want CALL", d.Verdict)
	}

	// Boundary: no bet means nothing to call, odds undefined
	d = EvaluateDraw(100, 0, 0, Flop)
	if d.Odds != 0 || d.PotOdds != 0 || d.Verdict != Call {
		t.Errorf("zero bet: %+v", d)
	}

	// Boundary: outs are clamped
	d = EvaluateDraw(100, 50, -3, Flop)
	if d.Outs != 0 || d.Equity != 0 {
		t.Errorf("negative outs: %+v", d)
	}
	d = EvaluateDraw(100, 50, 60, Flop)
	if d.Outs != MaxOuts || d.Equity != 1 {
		t.Errorf("too many outs: %+v", d)
	}
}

func TestRuleOfFourAndTwo(t *testing.T) {
	tests := []struct {
		outs   int
		street Street
		want   float64
	}{
		{OutsGutshot, Flop, 0.16},
		{OutsGutshot, Turn, 0.08},
		{OutsOpenEnder, Flop, 0.32},
		{OutsOpenEnder, Turn, 0.16},
		{25, Flop, 1},
	}
	for _, tt := range tests {
		if got := RuleOfFourAndTwo(tt.outs, tt.street); math.Abs(got-tt.want) > eps {
			t.Errorf("RuleOfFourAndTwo(%d, %v) = %v, want %v", tt.outs, tt.street, got, tt.want)
		}
	}
}

func TestParseStreet(t *testing.T) {
	if s, err := ParseStreet("Turn"); err != nil || s != Turn {
		t.Errorf("ParseStreet(Turn) = %v, %v", s, err)
	}
	if s, err := ParseStreet("flop"); err != nil || s != Flop {
		t.Errorf("ParseStreet(flop) = %v, %v", s, err)
	}
	if _, err := ParseStreet("river"); !errors.Is(err, ErrInvalidStreet) {
		t.Errorf("ParseStreet(river) error = %v, want ErrInvalidStreet", err)
	}
}
