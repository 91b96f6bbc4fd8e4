package models

import "math"

// ValueBet is one detected opportunity: a soft-book price that pays more than
// the anchor-implied fair probability justifies. Immutable once produced;
// result sets are ordered by EdgePercentage descending.
type ValueBet struct {
	League    string `json:"league"`
	Kickoff   string `json:"kickoff"`
	Home      string `json:"home"`
	Away      string `json:"away"`
	Bookmaker string `json:"bookmaker"`
	Market    string `json:"market"`
	Outcome   string `json:"outcome"`

	SoftOdds   float64 `json:"soft_odds"`
	AnchorOdds float64 `json:"anchor_odds"`
	SoftProb   float64 `json:"soft_prob"`   // de-margined soft-book probability
	AnchorProb float64 `json:"anchor_prob"` // anchor-implied "true" probability

	EdgePercentage   float64 `json:"edge_percentage"`
	RecommendedStake float64 `json:"recommended_stake"`
	ExpectedValue    float64 `json:"expected_value"`
}

// Record is the flat display-level serialization of a ValueBet: probabilities
// rounded to 4 decimals, percentages and money to 2. Full precision stays on
// the ValueBet itself.
type Record struct {
	League           string  `json:"league"`
	Kickoff          string  `json:"kickoff"`
	Home             string  `json:"home"`
	Away             string  `json:"away"`
	Bookmaker        string  `json:"bookmaker"`
	Market           string  `json:"market"`
	Outcome          string  `json:"outcome"`
	SoftOdds         float64 `json:"soft_odds"`
	AnchorOdds       float64 `json:"anchor_odds"`
	SoftProb         float64 `json:"soft_prob"`
	AnchorProb       float64 `json:"anchor_prob"`
	EdgePct          float64 `json:"edge_pct"`
	RecommendedStake float64 `json:"recommended_stake"`
	ExpectedValue    float64 `json:"expected_value"`
}

// Record converts the bet to its display serialization.
func (b ValueBet) Record() Record {
	return Record{
		League:           b.League,
		Kickoff:          b.Kickoff,
		Home:             b.Home,
		Away:             b.Away,
		Bookmaker:        b.Bookmaker,
		Market:           b.Market,
		Outcome:          b.Outcome,
		SoftOdds:         b.SoftOdds,
		AnchorOdds:       b.AnchorOdds,
		SoftProb:         roundTo(b.SoftProb, 4),
		AnchorProb:       roundTo(b.AnchorProb, 4),
		EdgePct:          roundTo(b.EdgePercentage, 2),
		RecommendedStake: roundTo(b.RecommendedStake, 2),
		ExpectedValue:    roundTo(b.ExpectedValue, 2),
	}
}

func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
