package analysis

import (
	"math"
	"sort"

	"github.com/mvdberg/valuebet/internal/pkg/models"
)

const (
	// DefaultKellyFraction scales the raw Kelly stake down to quarter-Kelly.
	// Full Kelly is too volatile given the estimation error in the anchor
	// probabilities.
	DefaultKellyFraction = 0.25

	// DefaultMaxStakePct is the hard ceiling on a single stake as a fraction
	// of bankroll, applied after the fractional-Kelly scaling.
	DefaultMaxStakePct = 0.05

	// DefaultSwapHysteresis is the absolute divergence improvement the
	// swapped home/away hypothesis must show before it is adopted. Keeps
	// ordinary pricing noise from flip-flopping the orientation.
	DefaultSwapHysteresis = 0.05
)

// Devig removes the bookmaker margin from a market's decimal odds and returns
// true outcome probabilities summing to 1. Uses the multiplicative power
// method: margin is not spread uniformly across outcomes, so each implied
// probability is raised to n/(n-1) before renormalizing, which beats flat
// proportional rescaling.
//
// Auxiliary keys (margin, line) are excluded. Returns ok=false for an empty
// market or any non-positive odds; a single-outcome market degenerates to
// probability 1. Never panics: data-shape problems are the caller's expected,
// recoverable case.
func Devig(odds map[string]float64) (map[string]float64, bool) {
	keys := outcomeKeys(odds)
	n := len(keys)
	if n == 0 {
		return nil, false
	}
	implied := make(map[string]float64, n)
	total := 0.0
	for _, k := range keys {
		o := odds[k]
		if o <= 0 || math.IsNaN(o) || math.IsInf(o, 0) {
			return nil, false
		}
		p := 1.0 / o
		implied[k] = p
		total += p
	}
	if n == 1 {
		return map[string]float64{keys[0]: 1.0}, true
	}

	// exponent = (n-1)/n; each probability is raised to its reciprocal.
	power := float64(n) / float64(n-1)

	adjusted := make(map[string]float64, n)
	adjTotal := 0.0
	for _, k := range keys {
		v := math.Pow(implied[k], power) / math.Pow(total, power)
		adjusted[k] = v
		adjTotal += v
	}
	if adjTotal == 0 {
		return nil, false
	}
	for _, k := range keys {
		adjusted[k] /= adjTotal
	}
	return adjusted, true
}

// outcomeKeys returns the market's outcome keys minus auxiliary metadata,
// sorted for deterministic iteration.
func outcomeKeys(odds map[string]float64) []string {
	keys := make([]string, 0, len(odds))
	for k := range odds {
		if k == models.AuxKeyMargin || k == models.AuxKeyLine {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ResolveOrientation de-vigs a soft book's 3-way market while checking for an
// inverted home/away labeling relative to the anchor. Some providers report
// the fixture the wrong way round; unchecked, that silently corrupts every
// edge computed from the market. The swapped hypothesis is adopted only when
// its divergence from the anchor beats the normal orientation by more than
// the hysteresis margin.
//
// Returns the resolved probabilities and whether the swap was applied. If the
// soft market cannot be de-vigged the result is empty; if only the anchor
// fails, the unswapped soft probabilities are returned as-is.
func ResolveOrientation(softOdds, anchorOdds map[string]float64, hysteresis float64) (map[string]float64, bool) {
	normalProbs, normalOK := Devig(softOdds)
	anchorProbs, anchorOK := Devig(anchorOdds)

	if !normalOK {
		return map[string]float64{}, false
	}
	if !anchorOK {
		return normalProbs, false
	}

	_, hasHome := softOdds["home"]
	_, hasAway := softOdds["away"]
	if !hasHome || !hasAway {
		return normalProbs, false
	}

	normalDiv := divergence(normalProbs, anchorProbs)

	swappedOdds := map[string]float64{
		"home": softOdds["away"],
		"away": softOdds["home"],
	}
	if draw, ok := softOdds["draw"]; ok {
		swappedOdds["draw"] = draw
	}
	swappedProbs, ok := Devig(swappedOdds)
	if !ok {
		return normalProbs, false
	}
	swappedDiv := divergence(swappedProbs, anchorProbs)

	if swappedDiv+hysteresis < normalDiv {
		return swappedProbs, true
	}
	return normalProbs, false
}

// divergence sums |soft-anchor| over the anchor's outcome keys.
func divergence(soft, anchor map[string]float64) float64 {
	d := 0.0
	for k, ap := range anchor {
		d += math.Abs(soft[k] - ap)
	}
	return d
}

// Edge is the expected return per unit staked: trueProb*odds - 1. Positive
// means the offered price pays more than the fair probability justifies.
func Edge(trueProb, offeredOdds float64) float64 {
	return trueProb*offeredOdds - 1.0
}

// KellyStake sizes a bet with fractional Kelly, clamped to maxStakePct of
// bankroll. Returns 0 for non-positive edge, degenerate odds or a
// non-positive bankroll; a stake is never negative.
func KellyStake(edge, odds, bankroll, kellyFraction, maxStakePct float64) float64 {
	if edge <= 0 || odds <= 1.0 || bankroll <= 0 {
		return 0.0
	}

	// f = (b*p - q) / b, with p backed out of the edge.
	p := (1 + edge) / odds
	q := 1 - p
	b := odds - 1

	kelly := (b*p - q) / b
	fractional := math.Max(0, kelly*kellyFraction)

	return math.Max(0, math.Min(fractional*bankroll, bankroll*maxStakePct))
}
