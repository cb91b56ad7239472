package opponent

// StatsFromCounts builds HUD percentages from raw counters. A rate whose
// denominator is zero is reported as 0.
func StatsFromCounts(hands, vpipHands, pfrHands, threeBets, threeBetOpps int) Stats {
	return Stats{
		VPIP:     rate(vpipHands, hands),
		PFR:      rate(pfrHands, hands),
		ThreeBet: rate(threeBets, threeBetOpps),
	}
}

func rate(n, d int) float64 {
	if d <= 0 || n <= 0 {
		return 0
	}
	if n > d {
		return 100
	}
	return float64(n) / float64(d) * 100
}
