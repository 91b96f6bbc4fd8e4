package models

import "time"

// Market keys supported by the analysis pipeline.
const (
	MarketMatchOdds      = "1x2"
	MarketOverUnder25    = "ou_2_5"
	MarketBothTeamsScore = "btts"
)

// SupportedMarkets lists the market types the pipeline analyzes, in
// processing order.
var SupportedMarkets = []string{MarketMatchOdds, MarketOverUnder25, MarketBothTeamsScore}

// Auxiliary keys that may appear inside a market map next to outcome odds.
// They carry metadata (bookmaker margin, goal line) and must never enter
// probability arithmetic.
const (
	AuxKeyMargin = "margin"
	AuxKeyLine   = "line"
)

// UnifiedEvent is one fixture as offered by one provider, reduced to a
// provider-independent shape. Scrapers construct it once per fetch; nothing
// downstream mutates it.
type UnifiedEvent struct {
	Provider        string                        `json:"provider"`
	ProviderEventID string                        `json:"provider_event_id"`
	League          string                        `json:"league"`
	Country         string                        `json:"country"`
	KickoffUTC      string                        `json:"kickoff_utc"` // ISO-8601, Z-suffixed
	Home            string                        `json:"home"`
	Away            string                        `json:"away"`
	Markets         map[string]map[string]float64 `json:"markets"` // market key -> outcome -> decimal odds
	ScrapedAt       string                        `json:"scraped_at"`
	IsLive          bool                          `json:"is_live"`
}

// NowUTC returns the current time formatted the way KickoffUTC/ScrapedAt are
// stored (RFC 3339, Z suffix).
func NowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
