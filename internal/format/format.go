// Package format turns ratios and amounts into display text.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultCurrency is used when the caller passes an empty symbol.
const DefaultCurrency = "€"

// Percent renders a ratio in [0,1] as a percentage with one decimal (0.25 -> "25.0%").
func Percent(ratio float64) string {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// Currency renders an amount with thousands grouping, e.g. "€1,250".
func Currency(amount float64, symbol string) string {
	if symbol == "" {
		symbol = DefaultCurrency
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return symbol + "-"
	}
	if amount < 0 {
		return "-" + symbol + humanize.Commaf(-amount)
	}
	return symbol + humanize.Commaf(amount)
}

// Ratio renders pot odds as "x : 1".
func Ratio(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "- : 1"
	}
	return fmt.Sprintf("%.1f : 1", x)
}

// Multiplier renders a bet/pot ratio such as "0.50x".
func Multiplier(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "-"
	}
	return fmt.Sprintf("%.2fx", x)
}

// SignedAmount renders an EV figure with an explicit sign, e.g. "+12.5€".
func SignedAmount(amount float64, symbol string) string {
	if symbol == "" {
		symbol = DefaultCurrency
	}
	var b strings.Builder
	if amount > 0 {
		b.WriteByte('+')
	}
	fmt.Fprintf(&b, "%.1f%s", amount, symbol)
	return b.String()
}
