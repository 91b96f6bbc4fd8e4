package analysis

import (
	"reflect"
	"testing"

	"github.com/mvdberg/valuebet/internal/pkg/models"
)

func fixture(provider, league, home, away, kickoff string, markets map[string]map[string]float64) models.UnifiedEvent {
	return models.UnifiedEvent{
		Provider:        provider,
		ProviderEventID: provider + ":" + home,
		League:          league,
		Country:         "Netherlands",
		KickoffUTC:      kickoff,
		Home:            home,
		Away:            away,
		Markets:         markets,
	}
}

func TestGenerateValueBets_EndToEnd(t *testing.T) {
	anchor := []models.UnifiedEvent{
		fixture("pinnacle", "eredivisie", "Ajax", "PSV", "2026-09-05T18:45:00Z",
			map[string]map[string]float64{
				"1x2": {"home": 2.0, "draw": 3.5, "away": 4.0},
			}),
	}
	soft := map[string][]models.UnifiedEvent{
		"toto": {
			fixture("toto", "eredivisie", "Ajax", "PSV", "2026-09-05T18:45:00Z",
				map[string]map[string]float64{
					"1x2": {"home": 2.3, "draw": 3.5, "away": 4.0},
				}),
		},
	}

	bets, stats := GenerateValueBets(anchor, soft, Params{Bankroll: 1000})
	if len(bets) != 1 {
		t.Fatalf("expected exactly 1 value bet, got %d: %+v", len(bets), bets)
	}
	if stats.MatchedPairs != 1 {
		t.Errorf("stats.MatchedPairs = %d, want 1", stats.MatchedPairs)
	}

	bet := bets[0]
	if bet.Outcome != "home" || bet.Bookmaker != "toto" || bet.Market != "1x2" {
		t.Errorf("unexpected bet identity: %+v", bet)
	}
	if bet.EdgePercentage <= 0 {
		t.Errorf("edge must be positive, got %v", bet.EdgePercentage)
	}
	if bet.RecommendedStake <= 0 || bet.RecommendedStake > 1000*DefaultMaxStakePct {
		t.Errorf("stake %v outside (0, %v]", bet.RecommendedStake, 1000*DefaultMaxStakePct)
	}
	if bet.SoftOdds != 2.3 || bet.AnchorOdds != 2.0 {
		t.Errorf("odds carried wrong: %+v", bet)
	}
	if bet.ExpectedValue <= 0 {
		t.Errorf("expected value must be positive, got %v", bet.ExpectedValue)
	}
}

func TestGenerateValueBets_SortedByEdgeDescending(t *testing.T) {
	anchor := []models.UnifiedEvent{
		fixture("pinnacle", "eredivisie", "Ajax", "PSV", "2026-09-05T18:45:00Z",
			map[string]map[string]float64{
				"1x2":    {"home": 2.0, "draw": 3.5, "away": 4.0},
				"ou_2_5": {"over": 1.9, "under": 1.9},
			}),
	}
	soft := map[string][]models.UnifiedEvent{
		"toto": {
			fixture("toto", "eredivisie", "Ajax", "PSV", "2026-09-05T18:45:00Z",
				map[string]map[string]float64{
					"1x2":    {"home": 2.2, "draw": 3.7, "away": 4.4},
					"ou_2_5": {"over": 2.15, "under": 1.75},
				}),
		},
	}

	bets, _ := GenerateValueBets(anchor, soft, Params{Bankroll: 1000})
	if len(bets) < 2 {
		t.Fatalf("expected multiple bets across markets, got %d", len(bets))
	}
	for i := 1; i < len(bets); i++ {
		if bets[i].EdgePercentage > bets[i-1].EdgePercentage {
			t.Errorf("bets not sorted by edge desc at %d: %v > %v",
				i, bets[i].EdgePercentage, bets[i-1].EdgePercentage)
		}
	}
}

func TestGenerateValueBets_Deterministic(t *testing.T) {
	anchor := []models.UnifiedEvent{
		fixture("pinnacle", "eredivisie", "Ajax", "PSV", "2026-09-05T18:45:00Z",
			map[string]map[string]float64{
				"1x2":  {"home": 2.0, "draw": 3.5, "away": 4.0},
				"btts": {"yes": 1.7, "no": 2.1},
			}),
		fixture("pinnacle", "eredivisie", "Feyenoord", "AZ", "2026-09-06T14:30:00Z",
			map[string]map[string]float64{
				"1x2": {"home": 1.8, "draw": 3.8, "away": 4.5},
			}),
	}
	soft := map[string][]models.UnifiedEvent{
		"toto": {
			fixture("toto", "eredivisie", "Ajax", "PSV", "2026-09-05T18:45:00Z",
				map[string]map[string]float64{
					"1x2":  {"home": 2.25, "draw": 3.6, "away": 4.2},
					"btts": {"yes": 1.95, "no": 2.0},
				}),
		},
		"jacks": {
			fixture("jacks", "eredivisie", "Feyenoord Rotterdam", "AZ Alkmaar", "2026-09-06T14:30:00Z",
				map[string]map[string]float64{
					"1x2": {"home": 2.0, "draw": 3.9, "away": 4.3},
				}),
		},
	}

	first, stats := GenerateValueBets(anchor, soft, Params{Bankroll: 1000})
	// One pair per soft book.
	if stats.MatchedPairs != 2 {
		t.Errorf("stats.MatchedPairs = %d, want 2", stats.MatchedPairs)
	}
	for i := 0; i < 5; i++ {
		again, _ := GenerateValueBets(anchor, soft, Params{Bankroll: 1000})
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("non-deterministic output on run %d:%v\nvs\n%v", i, first, again)
		}
	}
}

func TestGenerateValueBets_MarketMissingOnOneSide(t *testing.T) {
	anchor := []models.UnifiedEvent{
		fixture("pinnacle", "eredivisie", "Ajax", "PSV", "2026-09-05T18:45:00Z",
			map[string]map[string]float64{
				"1x2": {"home": 2.0, "draw": 3.5, "away": 4.0},
			}),
	}
	soft := map[string][]models.UnifiedEvent{
		"toto": {
			fixture("toto", "eredivisie", "Ajax", "PSV", "2026-09-05T18:45:00Z",
				map[string]map[string]float64{
					// No 1x2; the over/under market has no anchor side.
					"ou_2_5": {"over": 2.4, "under": 1.6},
				}),
		},
	}

	if bets, _ := GenerateValueBets(anchor, soft, Params{Bankroll: 1000}); len(bets) != 0 {
		t.Fatalf("expected no bets when markets do not overlap, got %d", len(bets))
	}
}

func TestGenerateValueBets_MalformedMarketSkipped(t *testing.T) {
	anchor := []models.UnifiedEvent{
		fixture("pinnacle", "eredivisie", "Ajax", "PSV", "2026-09-05T18:45:00Z",
			map[string]map[string]float64{
				"1x2":  {"home": 2.0, "draw": 3.5, "away": 4.0},
				"btts": {"yes": 1.7, "no": 2.1},
			}),
	}
	soft := map[string][]models.UnifiedEvent{
		"toto": {
			fixture("toto", "eredivisie", "Ajax", "PSV", "2026-09-05T18:45:00Z",
				map[string]map[string]float64{
					"1x2":  {"home": 0, "draw": 3.5, "away": 4.0}, // unusable
					"btts": {"yes": 2.1, "no": 1.85},
				}),
		},
	}

	bets, _ := GenerateValueBets(anchor, soft, Params{Bankroll: 1000})
	for _, bet := range bets {
		if bet.Market == "1x2" {
			t.Errorf("malformed 1x2 market produced a bet: %+v", bet)
		}
	}
	if len(bets) == 0 {
		t.Fatal("healthy btts market should still produce value")
	}
}

func TestGenerateValueBets_NoValueIsNotAnError(t *testing.T) {
	anchor := []models.UnifiedEvent{
		fixture("pinnacle", "eredivisie", "Ajax", "PSV", "2026-09-05T18:45:00Z",
			map[string]map[string]float64{
				"1x2": {"home": 2.0, "draw": 3.5, "away": 4.0},
			}),
	}
	soft := map[string][]models.UnifiedEvent{
		// Soft book prices strictly worse than the anchor everywhere.
		"toto": {
			fixture("toto", "eredivisie", "Ajax", "PSV", "2026-09-05T18:45:00Z",
				map[string]map[string]float64{
					"1x2": {"home": 1.85, "draw": 3.3, "away": 3.7},
				}),
		},
	}

	if bets, _ := GenerateValueBets(anchor, soft, Params{Bankroll: 1000}); len(bets) != 0 {
		t.Fatalf("expected empty result, got %d bets", len(bets))
	}
}
