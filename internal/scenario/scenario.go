// Package scenario reads YAML study sessions and runs every section through
// the poker-math core.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AkatukiSora/gto-poker-ref/internal/board"
	"github.com/AkatukiSora/gto-poker-ref/internal/cards"
	"github.com/AkatukiSora/gto-poker-ref/internal/gto"
	"github.com/AkatukiSora/gto-poker-ref/internal/opponent"
	"github.com/AkatukiSora/gto-poker-ref/internal/ranges"
	"github.com/AkatukiSora/gto-poker-ref/internal/tournament"
)

var ErrEmptyScenario = errors.New("scenario has no sections")

// Scenario is the on-disk description of a study session. Every section is
// optional, but at least one must be present.
type Scenario struct {
	Name         string        `yaml:"name"`
	Indifference *Indifference `yaml:"indifference"`
	Draw         *Draw         `yaml:"draw"`
	Range        *Range        `yaml:"range"`
	Board        string        `yaml:"board"`
	Opponent     *Opponent     `yaml:"opponent"`
	Tournament   *Tournament   `yaml:"tournament"`
}

type Indifference struct {
	Pot float64 `yaml:"pot"`
	Bet float64 `yaml:"bet"`
}

type Draw struct {
	Pot    float64 `yaml:"pot"`
	Bet    float64 `yaml:"bet"`
	Outs   int     `yaml:"outs"`
	Street string  `yaml:"street"`
}

type Range struct {
	Position string `yaml:"position"`
	Action   string `yaml:"action"`
}

type Opponent struct {
	VPIP     float64 `yaml:"vpip"`
	PFR      float64 `yaml:"pfr"`
	ThreeBet float64 `yaml:"three_bet"`
}

type Tournament struct {
	StackBB  float64 `yaml:"stack_bb"`
	Position string  `yaml:"position"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that the scenario has content and that every enumerated
// value is known.
func (s *Scenario) Validate() error {
	if s.Indifference == nil && s.Draw == nil && s.Range == nil && s.Board == "" && s.Opponent == nil && s.Tournament == nil {
		return ErrEmptyScenario
	}
	_, err := s.plan()
	return err
}

// plan holds the parsed enumerations of a scenario.
type plan struct {
	street       gto.Street
	rangePos     ranges.Position
	rangeAction  ranges.Action
	board        []cards.Card
	tournamentAt ranges.Position
}

func (s *Scenario) plan() (plan, error) {
	var p plan
	var err error
	if s.Draw != nil {
		if p.street, err = gto.ParseStreet(s.Draw.Street); err != nil {
			return p, fmt.Errorf("draw: %w", err)
		}
	}
	if s.Range != nil {
		if p.rangePos, err = ranges.ParsePosition(s.Range.Position); err != nil {
			return p, fmt.Errorf("range: %w", err)
		}
		if p.rangeAction, err = ranges.ParseAction(s.Range.Action); err != nil {
			return p, fmt.Errorf("range: %w", err)
		}
	}
	if s.Board != "" {
		if p.board, err = cards.ParseBoard(s.Board); err != nil {
			return p, fmt.Errorf("board: %w", err)
		}
	}
	if s.Tournament != nil {
		if p.tournamentAt, err = ranges.ParsePosition(s.Tournament.Position); err != nil {
			return p, fmt.Errorf("tournament: %w", err)
		}
	}
	return p, nil
}

// Report holds the result of every section present in a scenario.
type Report struct {
	Name         string
	Source       *Scenario
	Indifference *gto.SimulationResult
	Draw         *gto.DrawDecision
	Range        *RangeReport
	Board        *BoardReport
	Opponent     *opponent.Profile
	Tournament   *tournament.Advice
}

type RangeReport struct {
	Position ranges.Position
	Action   ranges.Action
	Grid     ranges.Grid
	Summary  ranges.Summary
	Notes    []ranges.Note
}

type BoardReport struct {
	Cards    []cards.Card
	Analysis board.Analysis
	Advice   []board.Tip
}

// Evaluate runs the scenario through the core.
func Evaluate(s *Scenario) (Report, error) {
	p, err := s.plan()
	if err != nil {
		return Report{}, err
	}

	r := Report{Name: s.Name, Source: s}
	if s.Indifference != nil {
		res := gto.ComputeIndifference(s.Indifference.Pot, s.Indifference.Bet)
		r.Indifference = &res
	}
	if s.Draw != nil {
		d := gto.EvaluateDraw(s.Draw.Pot, s.Draw.Bet, s.Draw.Outs, p.street)
		r.Draw = &d
	}
	if s.Range != nil {
		g := ranges.Generate(p.rangePos, p.rangeAction)
		r.Range = &RangeReport{
			Position: p.rangePos,
			Action:   p.rangeAction,
			Grid:     g,
			Summary:  ranges.Summarize(g),
			Notes:    ranges.Notes(p.rangePos, p.rangeAction),
		}
	}
	if s.Board != "" {
		a := board.Analyze(p.board)
		r.Board = &BoardReport{Cards: p.board, Analysis: a, Advice: board.Advice(a.Texture)}
	}
	if s.Opponent != nil {
		prof := opponent.Classify(opponent.Stats{VPIP: s.Opponent.VPIP, PFR: s.Opponent.PFR, ThreeBet: s.Opponent.ThreeBet})
		r.Opponent = &prof
	}
	if s.Tournament != nil {
		adv := tournament.Advise(s.Tournament.StackBB, p.tournamentAt)
		r.Tournament = &adv
	}
	return r, nil
}
