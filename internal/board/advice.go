package board

// Tip is one line of strategic advice. Key is stable for translation.
type Tip struct {
	Key  string
	Text string
}

var coordinatedAdvice = []Tip{
	{Key: "BoardAdviceBigSizing", Text: "Sizing: use bigger bets (66-75%) to charge the draws."},
	{Key: "BoardAdviceCheckRaise", Text: "Check-raise: very effective here with strong draws."},
	{Key: "BoardAdviceEquityShift", Text: "Equity: expect it to change drastically on the turn."},
}

var dryAdvice = []Tip{
	{Key: "BoardAdviceHighCBet", Text: "C-bet: high frequency, you hold the range advantage."},
	{Key: "BoardAdviceSmallSizing", Text: "Sizing: use small bets (33%) to bluff cheaply."},
	{Key: "BoardAdviceBluffs", Text: "Bluffs: very effective, villain rarely connects."},
}

// Advice returns the strategy list for a texture. Wet and Dynamic boards share
// one list, Static and Dry boards the other.
func Advice(t Texture) []Tip {
	src := dryAdvice
	if t.Coordinated() {
		src = coordinatedAdvice
	}
	return append([]Tip(nil), src...)
}
