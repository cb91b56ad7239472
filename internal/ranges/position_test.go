package ranges

import (
	"errors"
	"testing"
)

func TestParsePosition(t *testing.T) {
	for _, p := range AllPositions() {
		got, err := ParsePosition(p.String())
		if err != nil {
			t.Fatalf("ParsePosition(%q) error: %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParsePosition(%q) = %v, want %v", p.String(), got, p)
		}
	}
	if got, err := ParsePosition("button"); err != nil || got != PosBTN {
		t.Errorf("ParsePosition(button) = %v, %v", got, err)
	}
	for _, in := range []string{"", "HJ", "UTG+1", "dealer"} {
		if _, err := ParsePosition(in); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("ParsePosition(%q) error = %v, want ErrInvalidPosition", in, err)
		}
	}
}

func TestParseAction(t *testing.T) {
	tests := map[string]Action{
		"RFI":            RaiseFirstIn,
		"raise-first-in": RaiseFirstIn,
		"vs 3-Bet":       VsThreeBet,
		"vs3bet":         VsThreeBet,
		"3bet":           VsThreeBet,
	}
	for in, want := range tests {
		got, err := ParseAction(in)
		if err != nil {
			t.Fatalf("ParseAction(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseAction(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseAction("limp"); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("ParseAction(limp) error = %v, want ErrInvalidAction", err)
	}
	if Action(5).Valid() || Position(9).Valid() {
		t.Error("out-of-range enums must be invalid")
	}
}
