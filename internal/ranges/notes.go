package ranges

// Note is a short strategic remark attached to a range.
// Key is stable across releases and used for translation.
type Note struct {
	Key  string
	Text string
}

// Notes returns the remarks that apply to a situation, most specific first.
func Notes(pos Position, action Action) []Note {
	var out []Note
	if action == RaiseFirstIn {
		switch pos {
		case PosUTG:
			out = append(out, Note{
				Key:  "RangeNoteUTGOpen",
				Text: "From UTG the range is tight: you act first postflop with many players left behind. Open premium hands and strong middle pairs only.",
			})
		case PosBTN:
			out = append(out, Note{
				Key:  "RangeNoteButtonOpen",
				Text: "The button is the strongest seat. Open wide to steal the blinds, including every suited ace, suited kings, low connectors and all pairs.",
			})
		case PosBB:
			out = append(out, Note{
				Key:  "RangeNoteBigBlindOpen",
				Text: "You cannot raise first in from the big blind: you are already in the pot and win it if everyone folds.",
			})
		}
	}
	if action == VsThreeBet {
		out = append(out, Note{
			Key:  "RangeNoteFacingThreeBet",
			Text: "Facing a 3-bet you defend far less. Fold speculative hands and continue only with good equity or postflop playability.",
		})
	}
	return out
}
