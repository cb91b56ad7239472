// gen_scenarios writes random study scenarios for drilling with the
// "scenario" and "watch" commands.
//
// Usage:
//
//	go run ./tools/gen_scenarios [flags]
//
// Flags:
//
//	--output-dir  where to write generated files (default: "./testdata/generated")
//	--count       number of files to generate (default: 20)
//	--seed        random seed; 0 = use current time (default: 0)
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AkatukiSora/gto-poker-ref/internal/cards"
	"github.com/AkatukiSora/gto-poker-ref/internal/gto"
	"github.com/AkatukiSora/gto-poker-ref/internal/ranges"
	"github.com/AkatukiSora/gto-poker-ref/internal/scenario"
)

var (
	betFractions = []float64{0.33, 0.5, 0.66, 0.75, 1, 1.5}
	drawOuts     = []int{gto.OutsGutshot, gto.OutsOpenEnder, gto.OutsFlushDraw, 12, 15}
	streets      = []gto.Street{gto.Flop, gto.Turn}
)

func main() {
	outputDir := flag.String("output-dir", "./testdata/generated", "where to write generated files")
	count := flag.Int("count", 20, "number of files to generate")
	seed := flag.Int64("seed", 0, "random seed; 0 = use current time")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	paths, err := generate(*outputDir, *count, rand.New(rand.NewSource(*seed)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d scenarios to %s (seed %d)\n", len(paths), *outputDir, *seed)
}

func generate(dir string, count int, rng *rand.Rand) ([]string, error) {
	paths := make([]string, 0, count)
	for i := 0; i < count; i++ {
		s := randomScenario(i+1, rng)
		data, err := yaml.Marshal(s)
		if err != nil {
			return paths, fmt.Errorf("marshal scenario %d: %w", i+1, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("drill_%03d.yaml", i+1))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func randomScenario(n int, rng *rand.Rand) scenario.Scenario {
	pot := float64(20 + rng.Intn(49)*10)
	bet := math.Round(pot * betFractions[rng.Intn(len(betFractions))])

	positions := ranges.AllPositions()
	actions := ranges.AllActions()

	return scenario.Scenario{
		Name:         fmt.Sprintf("drill %d", n),
		Indifference: &scenario.Indifference{Pot: pot, Bet: bet},
		Draw: &scenario.Draw{
			Pot:    pot,
			Bet:    bet,
			Outs:   drawOuts[rng.Intn(len(drawOuts))],
			Street: streets[rng.Intn(len(streets))].String(),
		},
		Range: &scenario.Range{
			Position: positions[rng.Intn(len(positions))].String(),
			Action:   actions[rng.Intn(len(actions))].String(),
		},
		Board: dealFlop(rng),
		Opponent: &scenario.Opponent{
			VPIP:     float64(5 + rng.Intn(56)),
			PFR:      float64(2 + rng.Intn(34)),
			ThreeBet: float64(rng.Intn(15)),
		},
		Tournament: &scenario.Tournament{
			StackBB:  float64(1 + rng.Intn(30)),
			Position: positions[rng.Intn(len(positions))].String(),
		},
	}
}

// dealFlop draws three distinct cards from a shuffled deck.
func dealFlop(rng *rand.Rand) string {
	deck := make([]cards.Card, 0, cards.RankCount*4)
	for _, r := range cards.AllRanks() {
		for _, s := range []cards.Suit{cards.Spades, cards.Hearts, cards.Diamonds, cards.Clubs} {
			deck = append(deck, cards.Card{Rank: r, Suit: s})
		}
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	flop := make([]string, 3)
	for i := range flop {
		flop[i] = deck[i].String()
	}
	return strings.Join(flop, " ")
}
