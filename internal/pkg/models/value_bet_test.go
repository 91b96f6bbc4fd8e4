package models

import "testing"

func TestRecordRounding(t *testing.T) {
	bet := ValueBet{
		League:           "eredivisie",
		Home:             "ajax",
		Away:             "psv",
		SoftOdds:         2.3,
		AnchorOdds:       2.0,
		SoftProb:         0.416667,
		AnchorProb:       0.481481,
		EdgePercentage:   10.7407,
		RecommendedStake: 25.5555,
		ExpectedValue:    2.7456,
	}

	rec := bet.Record()
	if rec.SoftProb != 0.4167 {
		t.Errorf("SoftProb = %v, want 0.4167", rec.SoftProb)
	}
	if rec.AnchorProb != 0.4815 {
		t.Errorf("AnchorProb = %v, want 0.4815", rec.AnchorProb)
	}
	if rec.EdgePct != 10.74 {
		t.Errorf("EdgePct = %v, want 10.74", rec.EdgePct)
	}
	if rec.RecommendedStake != 25.56 {
		t.Errorf("RecommendedStake = %v, want 25.56", rec.RecommendedStake)
	}
	if rec.ExpectedValue != 2.75 {
		t.Errorf("ExpectedValue = %v, want 2.75", rec.ExpectedValue)
	}

	// Odds keep their full precision.
	if rec.SoftOdds != 2.3 || rec.AnchorOdds != 2.0 {
		t.Errorf("odds = %v/%v, want 2.3/2.0", rec.SoftOdds, rec.AnchorOdds)
	}
}
