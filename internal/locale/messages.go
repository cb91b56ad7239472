package locale

import (
	"sort"
	"strconv"

	"github.com/AkatukiSora/gto-poker-ref/internal/board"
	"github.com/AkatukiSora/gto-poker-ref/internal/opponent"
	"github.com/AkatukiSora/gto-poker-ref/internal/ranges"
	"github.com/AkatukiSora/gto-poker-ref/internal/tournament"
)

var textures = []board.Texture{board.Dry, board.Static, board.Dynamic, board.Wet}

// MessageIDs lists, sorted, every message ID a Translator may look up.
func MessageIDs() []string {
	seen := map[string]struct{}{"BoardDescriptionPlaceholder": {}}
	add := func(id string) { seen[id] = struct{}{} }

	for _, t := range textures {
		add("BoardDescription" + t.String())
		for _, tip := range board.Advice(t) {
			add(tip.Key)
		}
	}
	for _, a := range opponent.AllArchetypes() {
		p := opponent.ProfileFor(a)
		key := "Opponent" + a.Key()
		add(key + "Description")
		for i := range p.ExploitTips {
			add(key + "Tip" + strconv.Itoa(i+1))
		}
	}
	for _, pos := range ranges.AllPositions() {
		for _, action := range ranges.AllActions() {
			for _, n := range ranges.Notes(pos, action) {
				add(n.Key)
			}
		}
	}
	for _, stack := range []float64{0, tournament.PushFoldMaxBB, tournament.ChartMaxBB + 1} {
		add(tournament.Advise(stack, ranges.PosBTN).Pressure.Key)
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
