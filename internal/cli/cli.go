// Package cli is the terminal front end: one subcommand per tool, each
// rendered with pterm.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/AkatukiSora/gto-poker-ref/internal/board"
	"github.com/AkatukiSora/gto-poker-ref/internal/cards"
	"github.com/AkatukiSora/gto-poker-ref/internal/config"
	"github.com/AkatukiSora/gto-poker-ref/internal/gto"
	"github.com/AkatukiSora/gto-poker-ref/internal/locale"
	"github.com/AkatukiSora/gto-poker-ref/internal/opponent"
	"github.com/AkatukiSora/gto-poker-ref/internal/ranges"
	"github.com/AkatukiSora/gto-poker-ref/internal/scenario"
	"github.com/AkatukiSora/gto-poker-ref/internal/tournament"
	"github.com/AkatukiSora/gto-poker-ref/internal/watcher"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var errUsage = errors.New("usage")

type command struct {
	summary string
	run     func(ctx context.Context, a *App, args []string) error
}

var commands = map[string]command{
	"indifference": {"pot odds and optimal bluff/value mix for a bet", runIndifference},
	"draw":         {"call or fold a draw on direct odds", runDraw},
	"range":        {"preflop chart for a position and action", runRange},
	"board":        {"flop texture and c-bet advice", runBoard},
	"opponent":     {"classify an opponent from HUD stats", runOpponent},
	"pushfold":     {"short-stack tournament guidance", runPushFold},
	"scenario":     {"evaluate a YAML study scenario", runScenario},
	"watch":        {"re-evaluate a scenario file on every save", runWatch},
}

// App carries the settings shared by every command.
type App struct {
	cfg *config.Config
	out io.Writer
	r   renderer
}

// New builds an App writing to out.
func New(cfg *config.Config, out io.Writer) (*App, error) {
	tr, err := locale.New(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("cli locale: %w", err)
	}
	return &App{cfg: cfg, out: out, r: renderer{tr: tr, currency: cfg.Currency}}, nil
}

// Run executes the subcommand named by args[0] and returns a process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return ExitUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintln(a.out, pterm.Error.Sprintf("unknown command %q", args[0]))
		a.usage()
		return ExitUsage
	}

	slog.Debug("running command", "command", args[0], "args", args[1:])
	err := cmd.run(ctx, a, args[1:])
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, errUsage):
		return ExitUsage
	default:
		slog.Error("command failed", "command", args[0], "error", err)
		fmt.Fprintln(a.out, pterm.Error.Sprint(err))
		return ExitError
	}
}

func (a *App) usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := [][]string{{"Command", "Description"}}
	for _, name := range names {
		rows = append(rows, []string{name, commands[name].summary})
	}
	t, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return
	}
	fmt.Fprintln(a.out, "usage: gto-poker-ref <command> [flags]")
	fmt.Fprintln(a.out, t)
}

func (a *App) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// parseFlags marks parse failures as usage errors; the flag set has already
// reported them on its output.
func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", errUsage, err)
}

func (a *App) print(s string) {
	fmt.Fprintln(a.out, s)
}

func runIndifference(_ context.Context, a *App, args []string) error {
	fs := a.flags("indifference")
	pot := fs.Float64("pot", a.cfg.Defaults.Pot, "pot size before the bet")
	bet := fs.Float64("bet", a.cfg.Defaults.Bet, "bet size")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	out, err := a.r.indifference(*pot, *bet, gto.ComputeIndifference(*pot, *bet))
	if err != nil {
		return fmt.Errorf("render indifference: %w", err)
	}
	a.print(out)
	return nil
}

func runDraw(_ context.Context, a *App, args []string) error {
	fs := a.flags("draw")
	pot := fs.Float64("pot", a.cfg.Defaults.Pot, "pot size before the bet")
	bet := fs.Float64("bet", a.cfg.Defaults.Bet, "bet to call")
	outs := fs.Int("outs", gto.OutsFlushDraw, "number of outs")
	streetName := fs.String("street", gto.Flop.String(), "flop or turn")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	street, err := gto.ParseStreet(*streetName)
	if err != nil {
		return err
	}

	out, err := a.r.draw(*pot, *bet, gto.EvaluateDraw(*pot, *bet, *outs, street))
	if err != nil {
		return fmt.Errorf("render draw: %w", err)
	}
	a.print(out)
	return nil
}

func runRange(_ context.Context, a *App, args []string) error {
	fs := a.flags("range")
	posName := fs.String("pos", a.cfg.Defaults.Position, "position: UTG, MP, CO, BTN, SB, BB")
	actionName := fs.String("action", a.cfg.Defaults.Action, "RFI or vs3bet")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	pos, err := ranges.ParsePosition(*posName)
	if err != nil {
		return err
	}
	action, err := ranges.ParseAction(*actionName)
	if err != nil {
		return err
	}

	g := ranges.Generate(pos, action)
	out, err := a.r.rangeReport(scenario.RangeReport{
		Position: pos,
		Action:   action,
		Grid:     g,
		Summary:  ranges.Summarize(g),
		Notes:    ranges.Notes(pos, action),
	})
	if err != nil {
		return fmt.Errorf("render range: %w", err)
	}
	a.print(out)
	return nil
}

func runBoard(_ context.Context, a *App, args []string) error {
	fs := a.flags("board")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	cs, err := cards.ParseBoard(strings.Join(fs.Args(), " "))
	if err != nil {
		return err
	}

	an := board.Analyze(cs)
	a.print(a.r.board(scenario.BoardReport{Cards: cs, Analysis: an, Advice: board.Advice(an.Texture)}))
	return nil
}

func runOpponent(_ context.Context, a *App, args []string) error {
	fs := a.flags("opponent")
	vpip := fs.Float64("vpip", 0, "VPIP percentage")
	pfr := fs.Float64("pfr", 0, "PFR percentage")
	threeBet := fs.Float64("3bet", 0, "3-bet percentage")
	hands := fs.Int("hands", 0, "hands observed; when set, stats are computed from the counts below")
	vpipHands := fs.Int("vpip-hands", 0, "hands where villain put money in voluntarily")
	pfrHands := fs.Int("pfr-hands", 0, "hands where villain raised preflop")
	threeBets := fs.Int("3bets", 0, "3-bets made")
	threeBetOpps := fs.Int("3bet-opps", 0, "3-bet opportunities")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	st := opponent.Stats{VPIP: *vpip, PFR: *pfr, ThreeBet: *threeBet}
	if *hands > 0 {
		st = opponent.StatsFromCounts(*hands, *vpipHands, *pfrHands, *threeBets, *threeBetOpps)
	}
	a.print(a.r.opponent(st, opponent.Classify(st)))
	return nil
}

func runPushFold(_ context.Context, a *App, args []string) error {
	fs := a.flags("pushfold")
	stack := fs.Float64("stack", tournament.PushFoldMaxBB, "effective stack in big blinds")
	posName := fs.String("pos", a.cfg.Defaults.Position, "position")
	hand := fs.String("hand", "", "optional hand class, e.g. A5s")
	showGrid := fs.Bool("grid", false, "print the shove chart")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	pos, err := ranges.ParsePosition(*posName)
	if err != nil {
		return err
	}

	out, err := a.r.tournament(tournament.Advise(*stack, pos))
	if err != nil {
		return fmt.Errorf("render push/fold: %w", err)
	}
	a.print(out)

	if *hand != "" {
		label, ok := ranges.CanonicalLabel(*hand)
		if !ok {
			return fmt.Errorf("unknown hand %q: %w", *hand, errUsage)
		}
		a.print(fmt.Sprintf("%s: %s", label, tournament.HandAction(*stack, label)))
	}
	if *showGrid {
		g, err := a.r.grid(tournament.PushGrid(*stack, pos))
		if err != nil {
			return fmt.Errorf("render push chart: %w", err)
		}
		a.print(g)
	}
	return nil
}

func scenarioPath(fs *flag.FlagSet, args []string) (string, error) {
	if err := parseFlags(fs, args); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(fs.Output(), "usage: %s <file.yaml>\n", fs.Name())
		return "", errUsage
	}
	return fs.Arg(0), nil
}

func runScenario(_ context.Context, a *App, args []string) error {
	path, err := scenarioPath(a.flags("scenario"), args)
	if err != nil {
		return err
	}
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}
	rep, err := scenario.Evaluate(s)
	if err != nil {
		return err
	}
	out, err := a.r.report(rep)
	if err != nil {
		return fmt.Errorf("render scenario: %w", err)
	}
	a.print(out)
	return nil
}

func runWatch(ctx context.Context, a *App, args []string) error {
	path, err := scenarioPath(a.flags("watch"), args)
	if err != nil {
		return err
	}

	sw, err := watcher.New(path, watcher.Config{
		OnReport: func(rep scenario.Report) {
			out, err := a.r.report(rep)
			if err != nil {
				slog.Warn("render scenario", "path", path, "error", err)
				return
			}
			a.print(out)
		},
		OnError: func(err error) {
			a.print(pterm.Error.Sprint(err))
		},
	})
	if err != nil {
		return err
	}
	defer sw.Stop()

	if err := sw.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}
