package cli

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/AkatukiSora/gto-poker-ref/internal/format"
	"github.com/AkatukiSora/gto-poker-ref/internal/gto"
	"github.com/AkatukiSora/gto-poker-ref/internal/locale"
	"github.com/AkatukiSora/gto-poker-ref/internal/opponent"
	"github.com/AkatukiSora/gto-poker-ref/internal/ranges"
	"github.com/AkatukiSora/gto-poker-ref/internal/scenario"
	"github.com/AkatukiSora/gto-poker-ref/internal/tournament"
)

var (
	playedStyle = pterm.NewStyle(pterm.BgGreen, pterm.FgBlack)
	mixedStyle  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
)

// renderer turns core results into terminal text.
type renderer struct {
	tr       *locale.Translator
	currency string
}

func (r renderer) table(rows [][]string) (string, error) {
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
}

func (r renderer) box(title, body string) string {
	return pterm.DefaultBox.WithTitle(pterm.LightCyan(title)).WithTitleTopLeft().Sprint(body)
}

func (r renderer) indifference(pot, bet float64, res gto.SimulationResult) (string, error) {
	return r.table([][]string{
		{"Metric", "Value"},
		{"Pot", format.Currency(pot, r.currency)},
		{"Bet", format.Currency(bet, r.currency) + " (" + format.Multiplier(gto.BetToPot(pot, bet)) + " pot)"},
		{"Pot odds / required equity", format.Percent(res.RequiredEquity)},
		{"Optimal bluff frequency", format.Percent(res.OptimalBluffFrequency)},
		{"Optimal value frequency", format.Percent(res.OptimalValueFrequency)},
	})
}

func (r renderer) draw(pot, bet float64, d gto.DrawDecision) (string, error) {
	verdict := pterm.LightRed(d.Verdict.String())
	if d.Profitable() {
		verdict = pterm.LightGreen(d.Verdict.String())
	}
	return r.table([][]string{
		{"Metric", "Value"},
		{"Pot / bet", format.Currency(pot, r.currency) + " / " + format.Currency(bet, r.currency)},
		{"Outs (" + d.Street.String() + ")", fmt.Sprintf("%d", d.Outs)},
		{"Equity (rule of 4 and 2)", format.Percent(d.Equity)},
		{"Pot odds", format.Percent(d.PotOdds) + " (" + format.Ratio(d.Odds) + ")"},
		{"Expected value", format.SignedAmount(d.EV, r.currency)},
		{"Decision", verdict},
	})
}

// grid draws the 13x13 chart; played hands are green, mixed hands yellow.
func (r renderer) grid(g ranges.Grid) (string, error) {
	rows := make([][]string, 0, len(g))
	for _, row := range g {
		line := make([]string, 0, len(row))
		for _, cell := range row {
			switch {
			case cell.Mixed():
				line = append(line, mixedStyle.Sprint(cell.Label))
			case cell.Played():
				line = append(line, playedStyle.Sprint(cell.Label))
			default:
				line = append(line, pterm.Gray(cell.Label))
			}
		}
		rows = append(rows, line)
	}
	return pterm.DefaultTable.WithData(rows).Srender()
}

func (r renderer) rangeReport(rr scenario.RangeReport) (string, error) {
	grid, err := r.grid(rr.Grid)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", rr.Position, rr.Action)
	b.WriteString(grid)
	b.WriteString("\n")
	s := rr.Summary
	fmt.Fprintf(&b, "Combos: %d / %d (%.1f%%)\n", s.CombosPlayed, ranges.TotalCombos, s.PercentagePlayed)
	fmt.Fprintf(&b, "Pairs %.1f  Suited %.1f  Offsuit %.1f\n",
		s.ByCategory[ranges.CategoryPair], s.ByCategory[ranges.CategorySuited], s.ByCategory[ranges.CategoryOffsuit])
	for _, n := range rr.Notes {
		b.WriteString(pterm.Info.Sprintln(r.tr.Note(n)))
	}
	return b.String(), nil
}

func (r renderer) board(br scenario.BoardReport) string {
	a := br.Analysis
	cs := make([]string, len(br.Cards))
	for i, c := range br.Cards {
		cs[i] = c.String()
	}
	title := strings.Join(cs, " ")
	if !a.Complete {
		return r.box(title, r.tr.BoardDescription(a))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (score %d)\n", a.Texture, a.WetnessScore)
	fmt.Fprintf(&b, "high cards %d, suits %d, connectivity %d\n", a.HighCards, a.SuitScore, a.LinkScore)
	b.WriteString(r.tr.BoardDescription(a))
	b.WriteString("\n")
	for _, tip := range br.Advice {
		b.WriteString("\n- " + r.tr.Tip(tip))
	}
	return r.box(title, b.String())
}

func (r renderer) opponent(s opponent.Stats, p opponent.Profile) string {
	p = r.tr.Profile(p)
	var b strings.Builder
	fmt.Fprintf(&b, "VPIP %.0f  PFR %.0f  3-Bet %.0f\n", s.VPIP, s.PFR, s.ThreeBet)
	b.WriteString(p.Description)
	b.WriteString("\n")
	for _, tip := range p.ExploitTips {
		b.WriteString("\n- " + tip)
	}
	return r.box(p.Archetype.String(), b.String())
}

func (r renderer) tournament(a tournament.Advice) (string, error) {
	rows := [][]string{
		{"Metric", "Value"},
		{"Stack", fmt.Sprintf("%.1f bb", a.StackBB)},
		{"Position", a.Position.String()},
		{"Mode", a.Mode.String()},
		{"Push range", format.Percent(a.PushRange)},
		{"Fold range", format.Percent(a.FoldRange)},
	}
	t, err := r.table(rows)
	if err != nil {
		return "", err
	}
	return t + "\n" + pterm.Warning.Sprintln(r.tr.Pressure(a.Pressure)), nil
}

// report renders every section present in a scenario report.
func (r renderer) report(rep scenario.Report) (string, error) {
	s := rep.Source
	var parts []string
	if rep.Name != "" {
		parts = append(parts, pterm.DefaultSection.Sprint(rep.Name))
	}
	if rep.Indifference != nil {
		out, err := r.indifference(s.Indifference.Pot, s.Indifference.Bet, *rep.Indifference)
		if err != nil {
			return "", err
		}
		parts = append(parts, out)
	}
	if rep.Draw != nil {
		out, err := r.draw(s.Draw.Pot, s.Draw.Bet, *rep.Draw)
		if err != nil {
			return "", err
		}
		parts = append(parts, out)
	}
	if rep.Range != nil {
		out, err := r.rangeReport(*rep.Range)
		if err != nil {
			return "", err
		}
		parts = append(parts, out)
	}
	if rep.Board != nil {
		parts = append(parts, r.board(*rep.Board))
	}
	if rep.Opponent != nil {
		st := opponent.Stats{VPIP: s.Opponent.VPIP, PFR: s.Opponent.PFR, ThreeBet: s.Opponent.ThreeBet}
		parts = append(parts, r.opponent(st, *rep.Opponent))
	}
	if rep.Tournament != nil {
		out, err := r.tournament(*rep.Tournament)
		if err != nil {
			return "", err
		}
		parts = append(parts, out)
	}
	return strings.Join(parts, "\n"), nil
}
