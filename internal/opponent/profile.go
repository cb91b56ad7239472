// Package opponent classifies players into archetypes from HUD statistics
// and returns exploit advice for each archetype.
package opponent

// Stats holds HUD percentages in [0,100]. PFR is expected to be at most VPIP
// but this is not enforced.
type Stats struct {
	VPIP     float64
	PFR      float64
	ThreeBet float64
}

// Archetype is a player style.
type Archetype int

const (
	TAG Archetype = iota
	Nit
	LAG
	FishStation
	Maniac
)

func (a Archetype) String() string {
	switch a {
	case TAG:
		return "TAG"
	case Nit:
		return "Nit"
	case LAG:
		return "LAG"
	case FishStation:
		return "Fish/Station"
	case Maniac:
		return "Maniac"
	default:
		return "?"
	}
}

// Key is an identifier-safe name of the archetype, used for message lookups.
func (a Archetype) Key() string {
	if a == FishStation {
		return "Fish"
	}
	return a.String()
}

// Profile is the classification result for one player.
type Profile struct {
	Archetype   Archetype
	Description string
	ExploitTips []string
}

type profileText struct {
	description string
	tips        [3]string
}

var profiles = map[Archetype]profileText{
	FishStation: {
		description: "Plays far too many hands passively and calls with anything.",
		tips:        [3]string{"Value bet big", "NEVER bluff", "Play only strong hands"},
	},
	Maniac: {
		description: "Aggressive without logic; bets and raises constantly.",
		tips:        [3]string{"Let them bluff (trap)", "Call down lighter", "Wait for the nuts"},
	},
	Nit: {
		description: "Plays only the best cards (top 10-15%).",
		tips:        [3]string{"Always steal their blinds", "Fold when they show aggression", "Over-fold on the river"},
	},
	LAG: {
		description: "Loose aggressive: plays many hands aggressively but competently.",
		tips:        [3]string{"4-bet light", "Call c-bets when you have equity", "Attack their checks"},
	},
	TAG: {
		description: "Tight aggressive: the standard regular style.",
		tips:        [3]string{"Balance is required", "Look for specific postflop leaks", "Do not give away chips"},
	},
}

type rule struct {
	match     func(Stats) bool
	archetype Archetype
}

// rules are evaluated top-down; the first match wins and TAG is the fallback.
var rules = []rule{
	{func(s Stats) bool { return s.VPIP > 40 && s.PFR < 15 }, FishStation},
	{func(s Stats) bool { return s.VPIP > 35 && s.PFR > 25 }, Maniac},
	{func(s Stats) bool { return s.VPIP < 15 }, Nit},
	{func(s Stats) bool { return s.VPIP >= 25 && s.VPIP <= 35 && s.PFR >= 20 }, LAG},
}

// Classify returns the archetype profile for a set of HUD stats.
func Classify(s Stats) Profile {
	return ProfileFor(firstMatch(rules, s))
}

func firstMatch(rs []rule, s Stats) Archetype {
	for _, r := range rs {
		if r.match(s) {
			return r.archetype
		}
	}
	return TAG
}

// ProfileFor returns the fixed description and exploit tips of an archetype.
func ProfileFor(a Archetype) Profile {
	p, ok := profiles[a]
	if !ok {
		a = TAG
		p = profiles[TAG]
	}
	return Profile{
		Archetype:   a,
		Description: p.description,
		ExploitTips: append([]string(nil), p.tips[:]...),
	}
}

// AllArchetypes lists the archetypes in rule order, fallback last.
func AllArchetypes() []Archetype {
	return []Archetype{FishStation, Maniac, Nit, LAG, TAG}
}
