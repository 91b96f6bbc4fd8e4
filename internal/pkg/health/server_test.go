package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/mvdberg/valuebet/internal/pkg/models"
)

type stubBetSource struct {
	bets []models.ValueBet
	err  error
}

func (s stubBetSource) LatestValueBets(_ context.Context, _ int) ([]models.ValueBet, error) {
	return s.bets, s.err
}

func resetState() {
	mu.Lock()
	defer mu.Unlock()
	lastRun = nil
	lastBets = nil
	betSource = nil
}

func getValueBets(t *testing.T) []models.Record {
	t.Helper()
	rec := httptest.NewRecorder()
	handleValueBets(rec, httptest.NewRequest("GET", "/value-bets", nil))

	var records []models.Record
	if err := json.NewDecoder(rec.Body).Decode(&records); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return records
}

func TestValueBets_StoreFallbackBeforeFirstRun(t *testing.T) {
	resetState()
	defer resetState()

	SetBetSource(stubBetSource{bets: []models.ValueBet{
		{League: "eredivisie", Home: "ajax", Away: "psv", Bookmaker: "toto",
			Market: models.MarketMatchOdds, Outcome: "home", SoftOdds: 2.3},
	}})

	records := getValueBets(t)
	if len(records) != 1 {
		t.Fatalf("expected 1 stored bet before the first run, got %d", len(records))
	}
	if records[0].Bookmaker != "toto" || records[0].SoftOdds != 2.3 {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestValueBets_InMemoryRunWinsOverStore(t *testing.T) {
	resetState()
	defer resetState()

	SetBetSource(stubBetSource{bets: []models.ValueBet{{Bookmaker: "stale"}}})
	SetLastRun(models.RunSummary{ID: "run-1"}, []models.ValueBet{{Bookmaker: "jacks"}})

	records := getValueBets(t)
	if len(records) != 1 || records[0].Bookmaker != "jacks" {
		t.Fatalf("expected the finished run's bets, got %+v", records)
	}

	// An empty finished run must not fall back to stale storage.
	SetLastRun(models.RunSummary{ID: "run-2"}, nil)
	if records := getValueBets(t); len(records) != 0 {
		t.Fatalf("expected empty result after a no-value run, got %+v", records)
	}
}

func TestValueBets_StoreErrorServesEmpty(t *testing.T) {
	resetState()
	defer resetState()

	SetBetSource(stubBetSource{err: errors.New("connection refused")})

	if records := getValueBets(t); len(records) != 0 {
		t.Fatalf("expected empty result on store error, got %+v", records)
	}
}
