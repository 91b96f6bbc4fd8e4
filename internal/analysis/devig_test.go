package analysis

import (
	"math"
	"testing"
)

func TestDevig_SumsToOne(t *testing.T) {
	markets := []map[string]float64{
		{"home": 2.0, "draw": 3.5, "away": 4.0},
		{"home": 1.12, "draw": 9.0, "away": 26.0},
		{"over": 1.85, "under": 1.95},
		{"yes": 1.62, "no": 2.25},
	}
	for _, odds := range markets {
		probs, ok := Devig(odds)
		if !ok {
			t.Fatalf("Devig(%v) failed", odds)
		}
		sum := 0.0
		for _, p := range probs {
			sum += p
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("Devig(%v) sums to %v, want 1.0", odds, sum)
		}
	}
}

func TestDevig_UniformOdds(t *testing.T) {
	probs, ok := Devig(map[string]float64{"home": 3.0, "draw": 3.0, "away": 3.0})
	if !ok {
		t.Fatal("Devig failed on uniform market")
	}
	for outcome, p := range probs {
		if math.Abs(p-1.0/3.0) > 1e-9 {
			t.Errorf("outcome %s: got %v, want 1/3", outcome, p)
		}
	}
}

func TestDevig_NearFairOdds(t *testing.T) {
	// A vig-free, nearly uniform market: the power transform should land
	// close to the plain normalized 1/odds probabilities.
	odds := map[string]float64{"home": 2.9, "draw": 3.0, "away": 3.1}
	probs, ok := Devig(odds)
	if !ok {
		t.Fatal("Devig failed on fair market")
	}

	totalImplied := 1/2.9 + 1/3.0 + 1/3.1
	for outcome, o := range odds {
		naive := (1 / o) / totalImplied
		if math.Abs(probs[outcome]-naive) > 0.01 {
			t.Errorf("outcome %s: got %v, naive %v, diff too large", outcome, probs[outcome], naive)
		}
	}
}

func TestDevig_FavoriteKeepsMoreProbability(t *testing.T) {
	// Margin is weighted towards longshots, so de-vigging must shrink the
	// outsider's implied probability harder than the favorite's.
	odds := map[string]float64{"home": 1.5, "draw": 4.2, "away": 6.5}
	probs, ok := Devig(odds)
	if !ok {
		t.Fatal("Devig failed")
	}
	if probs["home"] <= probs["draw"] || probs["draw"] <= probs["away"] {
		t.Errorf("probability order must follow odds order: %v", probs)
	}
	if probs["home"] < 1/1.5/(1/1.5+1/4.2+1/6.5) {
		t.Errorf("favorite lost probability relative to proportional rescaling: %v", probs)
	}
}

func TestDevig_SingleOutcome(t *testing.T) {
	probs, ok := Devig(map[string]float64{"home": 1.8})
	if !ok || probs["home"] != 1.0 {
		t.Errorf("single-outcome market: got %v ok=%v, want {home:1}", probs, ok)
	}
}

func TestDevig_AuxKeysExcluded(t *testing.T) {
	plain, ok1 := Devig(map[string]float64{"over": 1.85, "under": 1.95})
	withAux, ok2 := Devig(map[string]float64{"over": 1.85, "under": 1.95, "margin": 5.26, "line": 2.5})
	if !ok1 || !ok2 {
		t.Fatal("Devig failed")
	}
	if len(withAux) != 2 {
		t.Fatalf("aux keys leaked into probabilities: %v", withAux)
	}
	for k := range plain {
		if math.Abs(plain[k]-withAux[k]) > 1e-12 {
			t.Errorf("outcome %s: aux keys changed result (%v vs %v)", k, plain[k], withAux[k])
		}
	}
}

func TestDevig_Failures(t *testing.T) {
	cases := []map[string]float64{
		nil,
		{},
		{"margin": 4.1, "line": 2.5}, // nothing left after stripping aux keys
		{"home": 0, "draw": 3.5, "away": 4.0},
		{"home": -2.0, "draw": 3.5, "away": 4.0},
		{"home": math.Inf(1), "draw": 3.5, "away": 4.0},
	}
	for _, odds := range cases {
		if probs, ok := Devig(odds); ok {
			t.Errorf("Devig(%v) = %v, expected failure", odds, probs)
		}
	}
}

func TestEdge_Monotonic(t *testing.T) {
	if Edge(0.5, 2.1) <= Edge(0.5, 2.0) {
		t.Error("edge must increase with odds")
	}
	if Edge(0.55, 2.0) <= Edge(0.5, 2.0) {
		t.Error("edge must increase with true probability")
	}
	if e := Edge(0.5, 2.0); e != 0.0 {
		t.Errorf("fair price edge = %v, want 0", e)
	}
}

func TestKellyStake_NoEdgeNoStake(t *testing.T) {
	cases := []struct {
		edge, odds float64
	}{
		{0, 2.0},
		{-0.05, 2.0},
		{0.10, 1.0},
		{0.10, 0.5},
	}
	for _, c := range cases {
		if got := KellyStake(c.edge, c.odds, 1000, DefaultKellyFraction, DefaultMaxStakePct); got != 0 {
			t.Errorf("KellyStake(edge=%v, odds=%v) = %v, want 0", c.edge, c.odds, got)
		}
	}
}

func TestKellyStake_NonPositiveBankroll(t *testing.T) {
	// A bad bankroll must yield a zero stake, never a negative one.
	for _, bankroll := range []float64{0, -1000} {
		if got := KellyStake(0.05, 2.0, bankroll, DefaultKellyFraction, DefaultMaxStakePct); got != 0 {
			t.Errorf("KellyStake(bankroll=%v) = %v, want 0", bankroll, got)
		}
	}
}

func TestKellyStake_CappedAtMaxPercentage(t *testing.T) {
	bankroll := 1000.0
	cap := bankroll * DefaultMaxStakePct

	// Huge edge: the hard ceiling must hold.
	if got := KellyStake(0.9, 2.0, bankroll, DefaultKellyFraction, DefaultMaxStakePct); got != cap {
		t.Errorf("stake with huge edge = %v, want cap %v", got, cap)
	}

	for _, edge := range []float64{0.01, 0.05, 0.1, 0.3, 0.6} {
		for _, odds := range []float64{1.5, 2.0, 3.5, 8.0} {
			got := KellyStake(edge, odds, bankroll, DefaultKellyFraction, DefaultMaxStakePct)
			if got < 0 || got > cap {
				t.Errorf("KellyStake(edge=%v, odds=%v) = %v, outside [0, %v]", edge, odds, got, cap)
			}
		}
	}
}

func TestKellyStake_ModestEdge(t *testing.T) {
	// edge=0.05 at odds 2.0: p=0.525, q=0.475, b=1 -> kelly=0.05,
	// quarter-Kelly on 1000 -> 12.50.
	got := KellyStake(0.05, 2.0, 1000, 0.25, 0.05)
	if math.Abs(got-12.5) > 1e-9 {
		t.Errorf("KellyStake = %v, want 12.5", got)
	}
}
