// Package tournament gives short-stack push/fold guidance for the late
// stages of a tournament.
package tournament

import (
	"math"

	"github.com/AkatukiSora/gto-poker-ref/internal/ranges"
)

// Stack depths (in big blinds) where the strategy changes.
const (
	PushAnyMaxBB  = 5
	PushFoldMaxBB = 10
	ChartMaxBB    = 15
)

// Mode is the overall strategy for a stack depth.
type Mode int

const (
	ModeStandardOpen Mode = iota // RFI / 3-Bet
	ModePushFold
)

func (m Mode) String() string {
	switch m {
	case ModePushFold:
		return "PUSH / FOLD"
	default:
		return "RFI / 3-BET"
	}
}

// Play is the recommended action for a single hand.
type Play int

const (
	PlayFold Play = iota
	PlayPush
	PlayPushAny
	PlayStandardOpen
)

func (p Play) String() string {
	switch p {
	case PlayPush:
		return "Push"
	case PlayPushAny:
		return "PUSH ANY"
	case PlayStandardOpen:
		return "Standard Open"
	default:
		return "Fold"
	}
}

// Advice is the stack-depth guidance for a seat.
type Advice struct {
	StackBB   float64
	Position  ranges.Position
	Mode      Mode
	PushRange float64 // fraction of hands shoved
	FoldRange float64
	Pressure  Pressure
}

// Pressure is the ICM remark for a stack depth. Key is stable for translation.
type Pressure struct {
	Key  string
	Text string
}

var (
	pressurePushFold = Pressure{
		Key:  "TournamentPressurePushFold",
		Text: "You are in the push/fold zone: there is no raise/fold. Go all-in or fold; stealing the blinds keeps you alive.",
	}
	pressureDeep = Pressure{
		Key:  "TournamentPressureDeep",
		Text: "You still have room to maneuver. Min-raising is fine, but avoid calling raises with marginal hands.",
	}
)

// pushChart10BB is the shove list at roughly ten big blinds (no antes).
var pushChart10BB = map[string]bool{
	"AA": true, "KK": true, "QQ": true, "JJ": true, "TT": true,
	"AKs": true, "AQs": true, "AJs": true, "ATs": true,
	"AKo": true, "AQo": true, "AJo": true, "ATo": true,
	"KQs": true, "KJs": true, "QJs": true,
	"22": true,
}

// Advise returns the push/fold guidance for an effective stack. Stacks that
// are negative or NaN count as zero.
func Advise(stackBB float64, pos ranges.Position) Advice {
	stackBB = normalizeStack(stackBB)
	a := Advice{StackBB: stackBB, Position: pos}
	switch {
	case stackBB <= PushAnyMaxBB:
		a.Mode, a.PushRange, a.FoldRange, a.Pressure = ModePushFold, 1, 0, pressurePushFold
	case stackBB <= PushFoldMaxBB:
		a.Mode, a.PushRange, a.FoldRange, a.Pressure = ModePushFold, 0.45, 0.55, pressurePushFold
	default:
		a.Mode, a.PushRange, a.FoldRange, a.Pressure = ModeStandardOpen, 0.25, 0.75, pressureDeep
	}
	return a
}

// HandAction returns the recommended play for a hand label at a stack depth.
// Unknown labels fold.
func HandAction(stackBB float64, label string) Play {
	stackBB = normalizeStack(stackBB)
	switch {
	case stackBB <= PushAnyMaxBB:
		return PlayPushAny
	case stackBB > ChartMaxBB:
		return PlayStandardOpen
	}
	canon, ok := ranges.CanonicalLabel(label)
	if ok && pushChart10BB[canon] {
		return PlayPush
	}
	return PlayFold
}

// PushGrid renders the strategy as a range grid: every hand at push-any
// depth, the chart between, and the regular opening range above the chart.
func PushGrid(stackBB float64, pos ranges.Position) ranges.Grid {
	stackBB = normalizeStack(stackBB)
	if stackBB > ChartMaxBB {
		return ranges.Generate(pos, ranges.RaiseFirstIn)
	}

	g := ranges.Generate(pos, ranges.RaiseFirstIn)
	for i := range g {
		for j := range g[i] {
			switch HandAction(stackBB, g[i][j].Label) {
			case PlayPush, PlayPushAny:
				g[i][j].Frequency = 1
			default:
				g[i][j].Frequency = 0
			}
		}
	}
	return g
}

func normalizeStack(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
