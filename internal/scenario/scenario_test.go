package scenario

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/AkatukiSora/gto-poker-ref/internal/board"
	"github.com/AkatukiSora/gto-poker-ref/internal/cards"
	"github.com/AkatukiSora/gto-poker-ref/internal/gto"
	"github.com/AkatukiSora/gto-poker-ref/internal/opponent"
	"github.com/AkatukiSora/gto-poker-ref/internal/ranges"
	"github.com/AkatukiSora/gto-poker-ref/internal/tournament"
)

const fullScenario = `
name: river study
indifference:
  pot: 100
  bet: 50
draw:
  pot: 100
  bet: 50
  outs: 9
  street: flop
range:
  position: BTN
  action: RFI
board: "7c 8d 9h"
opponent:
  vpip: 45
  pfr: 10
  three_bet: 2
tournament:
  stack_bb: 8
  position: SB
`

func TestEvaluateFullScenario(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte(fullScenario))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r, err := Evaluate(s)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if r.Name != "river study" {
		t.Errorf("name = %q", r.Name)
	}
	if r.Indifference == nil || math.Abs(r.Indifference.RequiredEquity-0.25) > 1e-9 {
		t.Errorf("indifference = %+v", r.Indifference)
	}
	if r.Draw == nil || r.Draw.Verdict != gto.Call {
		t.Errorf("draw = %+v", r.Draw)
	}
	if r.Range == nil || r.Range.Position != ranges.PosBTN || r.Range.Action != ranges.RaiseFirstIn {
		t.Fatalf("range = %+v", r.Range)
	}
	if r.Range.Summary != ranges.Summarize(ranges.Generate(ranges.PosBTN, ranges.RaiseFirstIn)) {
		t.Errorf("range summary = %+v", r.Range.Summary)
	}
	if len(r.Range.Notes) != 1 {
		t.Errorf("range notes = %+v", r.Range.Notes)
	}
	if r.Board == nil || r.Board.Analysis.Texture != board.Dynamic || r.Board.Analysis.WetnessScore != 4 || len(r.Board.Cards) != 3 {
		t.Errorf("board = %+v", r.Board)
	}
	if r.Opponent == nil || r.Opponent.Archetype != opponent.FishStation {
		t.Errorf("opponent = %+v", r.Opponent)
	}
	if r.Tournament == nil || r.Tournament.Mode != tournament.ModePushFold || r.Tournament.Position != ranges.PosSB {
		t.Errorf("tournament = %+v", r.Tournament)
	}
}

func TestEvaluatePartialScenario(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte("opponent:\n  vpip: 10\n  pfr: 8\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r, err := Evaluate(s)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if r.Opponent == nil || r.Opponent.Archetype != opponent.Nit {
		t.Errorf("opponent = %+v", r.Opponent)
	}
	if r.Indifference != nil || r.Draw != nil || r.Range != nil || r.Board != nil || r.Tournament != nil {
		t.Errorf("absent sections evaluated: %+v", r)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"empty", "name: nothing\n", ErrEmptyScenario},
		{"bad position", "range:\n  position: HJ\n  action: RFI\n", ranges.ErrInvalidPosition},
		{"bad action", "range:\n  position: CO\n  action: limp\n", ranges.ErrInvalidAction},
		{"bad street", "draw:\n  pot: 10\n  bet: 5\n  outs: 4\n  street: river\n", gto.ErrInvalidStreet},
		{"bad card", "board: AsKsXs\n", cards.ErrInvalidRank},
		{"duplicate card", "board: As As Kd\n", cards.ErrDuplicateCard},
		{"bad tournament seat", "tournament:\n  stack_bb: 10\n  position: dealer\n", ranges.ErrInvalidPosition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Parse([]byte("unknown_key: 1\n")); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "study.yaml")
	if err := os.WriteFile(path, []byte(fullScenario), 0o600); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Board != "7c 8d 9h" {
		t.Errorf("board = %q", s.Board)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}
