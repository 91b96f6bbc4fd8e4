package models

// EdgeMetrics tracks a placed edge over time so a downstream consumer can
// compute closing line value. The pipeline only produces the record; it never
// settles or reprices it.
type EdgeMetrics struct {
	Timestamp       string   `json:"timestamp"`
	League          string   `json:"league"`
	Match           string   `json:"match"`
	Bookmaker       string   `json:"bookmaker"`
	Market          string   `json:"market"`
	Outcome         string   `json:"outcome"`
	OddsTaken       float64  `json:"odds_taken"`
	EdgeAtPlacement float64  `json:"edge_at_placement"`
	ClosingOdds     *float64 `json:"closing_odds,omitempty"`
	ClosingEdge     *float64 `json:"closing_edge,omitempty"`
	Result          string   `json:"result,omitempty"` // "won", "lost", "void"
	Profit          *float64 `json:"profit,omitempty"`
}

// EdgeMetrics snapshots the bet at detection time; closing odds and result
// are filled in later by whoever settles the record.
func (b ValueBet) EdgeMetrics() EdgeMetrics {
	return EdgeMetrics{
		Timestamp:       NowUTC(),
		League:          b.League,
		Match:           b.Home + " vs " + b.Away,
		Bookmaker:       b.Bookmaker,
		Market:          b.Market,
		Outcome:         b.Outcome,
		OddsTaken:       b.SoftOdds,
		EdgeAtPlacement: b.EdgePercentage,
	}
}

// CLV returns the closing line value (odds taken vs closing odds), or false
// when no closing odds have been recorded yet.
func (m EdgeMetrics) CLV() (float64, bool) {
	if m.ClosingOdds == nil || *m.ClosingOdds == 0 {
		return 0, false
	}
	return m.OddsTaken / *m.ClosingOdds - 1.0, true
}
