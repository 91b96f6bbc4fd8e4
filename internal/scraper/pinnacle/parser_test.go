package pinnacle

import (
	"encoding/json"
	"testing"

	"github.com/mvdberg/valuebet/internal/pkg/models"
)

func TestAmericanToDecimal(t *testing.T) {
	cases := []struct {
		price int
		want  float64
		ok    bool
	}{
		{100, 2.0, true},
		{150, 2.5, true},
		{-200, 1.5, true},
		{-110, 1.909, true},
		{0, 0, false},
	}
	for _, c := range cases {
		got, ok := americanToDecimal(c.price)
		if ok != c.ok || got != c.want {
			t.Errorf("americanToDecimal(%d) = (%v, %v), want (%v, %v)",
				c.price, got, ok, c.want, c.ok)
		}
	}
}

const marketsJSON = `[
  {"type": "moneyline", "period": 0, "prices": [
    {"designation": "home", "price": 100},
    {"designation": "draw", "price": 250},
    {"designation": "away", "price": 300}
  ]},
  {"type": "moneyline", "period": 1, "prices": [
    {"designation": "home", "price": 500},
    {"designation": "draw", "price": 500},
    {"designation": "away", "price": 500}
  ]},
  {"type": "total", "period": 0, "prices": [
    {"designation": "over", "price": -110, "points": 2.5},
    {"designation": "under", "price": -110, "points": 2.5}
  ]},
  {"type": "total", "period": 0, "prices": [
    {"designation": "over", "price": 200, "points": 3.5},
    {"designation": "under", "price": -300, "points": 3.5}
  ]},
  {"type": "both_teams_to_score", "period": 0, "prices": [
    {"designation": "yes", "price": -120},
    {"designation": "no", "price": 105}
  ]}
]`

func TestParseMarkets(t *testing.T) {
	var mkts []market
	if err := json.Unmarshal([]byte(marketsJSON), &mkts); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	out := parseMarkets(mkts)

	m1x2, ok := out[models.MarketMatchOdds]
	if !ok {
		t.Fatal("expected 1x2 market")
	}
	if m1x2["home"] != 2.0 || m1x2["draw"] != 3.5 || m1x2["away"] != 4.0 {
		t.Errorf("1x2 odds = %v", m1x2)
	}
	if _, ok := m1x2[models.AuxKeyMargin]; !ok {
		t.Error("1x2 market missing margin")
	}

	ou, ok := out[models.MarketOverUnder25]
	if !ok {
		t.Fatal("expected ou_2_5 market")
	}
	if ou["over"] != 1.909 || ou["under"] != 1.909 {
		t.Errorf("ou odds = %v", ou)
	}
	if ou[models.AuxKeyLine] != 2.5 {
		t.Errorf("ou line = %v, want 2.5", ou[models.AuxKeyLine])
	}

	btts, ok := out[models.MarketBothTeamsScore]
	if !ok {
		t.Fatal("expected btts market")
	}
	if btts["yes"] != 1.833 || btts["no"] != 2.05 {
		t.Errorf("btts odds = %v", btts)
	}
}

func TestParseMarketsIncomplete(t *testing.T) {
	// A moneyline missing its away price must not emit a 1x2 market.
	mkts := []market{{
		Type: "moneyline",
		Prices: []price{
			{Designation: "home", Price: 100},
			{Designation: "draw", Price: 250},
		},
	}}
	if out := parseMarkets(mkts); len(out) != 0 {
		t.Errorf("expected no markets, got %v", out)
	}
}

func TestHomeAwayPrefersParent(t *testing.T) {
	m := matchup{
		Parent: &matchupParent{Participants: []participant{
			{Name: "Ajax", Alignment: "home"},
			{Name: "PSV", Alignment: "away"},
		}},
		Participants: []participant{
			{Name: "Over", Alignment: "neutral"},
		},
	}
	home, away := homeAway(m)
	if home != "Ajax" || away != "PSV" {
		t.Errorf("homeAway = (%q, %q), want (Ajax, PSV)", home, away)
	}
}

func TestMatchLeagueName(t *testing.T) {
	cases := []struct {
		api     string
		pattern string
		want    bool
	}{
		{"Netherlands - Eredivisie", "netherlands - eredivisie", true},
		{"Netherlands - Eredivisie - Corners", "netherlands - eredivisie", false},
		{"England - Premier League U21", "england - premier league", false},
		{"Germany - Bundesliga - Bookings", "germany - bundesliga", false},
		{"Spain - La Liga", "spain - la liga", true},
		{"Italy - Serie B", "italy - serie a", false},
	}
	for _, c := range cases {
		if got := matchLeagueName(c.api, c.pattern); got != c.want {
			t.Errorf("matchLeagueName(%q, %q) = %v, want %v", c.api, c.pattern, got, c.want)
		}
	}
}
