package analysis

import (
	"log/slog"
	"sort"
	"time"

	"github.com/mvdberg/valuebet/internal/matching"
	"github.com/mvdberg/valuebet/internal/pkg/models"
)

// DefaultMinEdge is the minimum edge (2.5%) for a price to count as value.
const DefaultMinEdge = 0.025

// Params tunes the value bet pipeline. Zero values fall back to the package
// defaults via Normalize.
type Params struct {
	TimeTolerance   time.Duration // kickoff window for event matching
	MinSimilarity   float64       // fuzzy name threshold
	FuzzyPenaltySec float64       // exact-over-fuzzy candidate bias
	MinEdge         float64       // emit threshold
	Bankroll        float64       // stake basis
	KellyFraction   float64       // fractional Kelly multiplier
	MaxStakePct     float64       // hard per-bet ceiling as bankroll fraction
	SwapHysteresis  float64       // home/away swap adoption margin
}

// Normalize fills unset parameters with the documented defaults.
func (p Params) Normalize() Params {
	if p.TimeTolerance == 0 {
		p.TimeTolerance = matching.DefaultTimeTolerance
	}
	if p.MinSimilarity == 0 {
		p.MinSimilarity = matching.DefaultMinSimilarity
	}
	if p.FuzzyPenaltySec == 0 {
		p.FuzzyPenaltySec = matching.DefaultFuzzyPenaltySeconds
	}
	if p.MinEdge == 0 {
		p.MinEdge = DefaultMinEdge
	}
	if p.Bankroll == 0 {
		p.Bankroll = 1000.0
	}
	if p.KellyFraction == 0 {
		p.KellyFraction = DefaultKellyFraction
	}
	if p.MaxStakePct == 0 {
		p.MaxStakePct = DefaultMaxStakePct
	}
	if p.SwapHysteresis == 0 {
		p.SwapHysteresis = DefaultSwapHysteresis
	}
	return p
}

// Stats carries aggregate counts from one analysis pass.
type Stats struct {
	MatchedPairs int
}

// GenerateValueBets compares every soft book against the anchor and returns
// all opportunities with edge at or above the threshold, sorted by edge
// percentage descending (stable for ties), along with aggregate counts.
//
// Soft books and anchor outcome keys are iterated in sorted order so that
// identical inputs always produce identical output; map iteration order must
// never leak into results. A failure in any single fixture, market or
// provider skips that item only.
func GenerateValueBets(anchorEvents []models.UnifiedEvent, softBooks map[string][]models.UnifiedEvent, params Params) ([]models.ValueBet, Stats) {
	params = params.Normalize()

	var valueBets []models.ValueBet
	var stats Stats

	bookNames := make([]string, 0, len(softBooks))
	for name := range softBooks {
		bookNames = append(bookNames, name)
	}
	sort.Strings(bookNames)

	for _, bookName := range bookNames {
		pairs := matching.MatchEvents(softBooks[bookName], anchorEvents, params.TimeTolerance, params.MinSimilarity, params.FuzzyPenaltySec)
		slog.Info("matched fixtures for soft book", "book", bookName, "pairs", len(pairs))
		stats.MatchedPairs += len(pairs)

		for _, pair := range pairs {
			softEvent, anchorEvent := pair.Left, pair.Right

			for _, marketType := range models.SupportedMarkets {
				softMarket, softHas := softEvent.Markets[marketType]
				anchorMarket, anchorHas := anchorEvent.Markets[marketType]
				if !softHas || !anchorHas {
					continue
				}

				var softProbs map[string]float64
				if marketType == models.MarketMatchOdds {
					var swapped bool
					softProbs, swapped = ResolveOrientation(softMarket, anchorMarket, params.SwapHysteresis)
					if swapped {
						slog.Warn("detected home/away swap, using swapped probabilities",
							"book", bookName,
							"fixture", softEvent.Home+" vs "+softEvent.Away)
					}
				} else {
					softProbs, _ = Devig(softMarket)
				}

				anchorProbs, ok := Devig(anchorMarket)
				if len(softProbs) == 0 || !ok {
					continue
				}

				// Anchor's outcome set fixes the iteration order.
				outcomes := make([]string, 0, len(anchorProbs))
				for outcome := range anchorProbs {
					outcomes = append(outcomes, outcome)
				}
				sort.Strings(outcomes)

				for _, outcome := range outcomes {
					softOdds, offered := softMarket[outcome]
					if !offered {
						continue
					}

					trueProb := anchorProbs[outcome]
					edge := Edge(trueProb, softOdds)
					if edge < params.MinEdge {
						continue
					}

					stake := KellyStake(edge, softOdds, params.Bankroll, params.KellyFraction, params.MaxStakePct)
					valueBets = append(valueBets, models.ValueBet{
						League:           softEvent.League,
						Kickoff:          softEvent.KickoffUTC,
						Home:             softEvent.Home,
						Away:             softEvent.Away,
						Bookmaker:        bookName,
						Market:           marketType,
						Outcome:          outcome,
						SoftOdds:         softOdds,
						AnchorOdds:       anchorMarket[outcome],
						SoftProb:         softProbs[outcome],
						AnchorProb:       trueProb,
						EdgePercentage:   edge * 100,
						RecommendedStake: stake,
						ExpectedValue:    stake * edge,
					})
				}
			}
		}
	}

	sort.SliceStable(valueBets, func(i, j int) bool {
		return valueBets[i].EdgePercentage > valueBets[j].EdgePercentage
	})

	slog.Info("value bet analysis complete", "found", len(valueBets),
		"min_edge_pct", params.MinEdge*100)
	return valueBets, stats
}
