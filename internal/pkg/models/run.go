package models

// RunSummary describes one pipeline run for persistence and reporting.
type RunSummary struct {
	ID           string `json:"id"`
	StartedAt    string `json:"started_at"`
	FinishedAt   string `json:"finished_at"`
	AnchorEvents int    `json:"anchor_events"`
	SoftEvents   int    `json:"soft_events"`
	MatchedPairs int    `json:"matched_pairs"`
	ValueBets    int    `json:"value_bets"`
}
