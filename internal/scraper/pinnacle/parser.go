package pinnacle

import (
	"math"
	"strings"

	"github.com/mvdberg/valuebet/internal/pkg/models"
	"github.com/mvdberg/valuebet/internal/scraper"
)

// americanToDecimal converts an American price to decimal odds, rounded to
// three places. Returns false for a zero price.
func americanToDecimal(price int) (float64, bool) {
	switch {
	case price > 0:
		return round3(1.0 + float64(price)/100.0), true
	case price < 0:
		return round3(1.0 + 100.0/math.Abs(float64(price))), true
	default:
		return 0, false
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// parseMarkets reduces raw Arcadia markets to the supported market keys.
// Incomplete markets (a missing side, an off-line total) are dropped.
func parseMarkets(mkts []market) map[string]map[string]float64 {
	out := make(map[string]map[string]float64)

	for _, m := range mkts {
		// Period 0 is the full match; everything else is halves/extra time.
		if m.Period != 0 {
			continue
		}
		switch strings.ToLower(m.Type) {
		case "moneyline", "three_way_moneyline", "match_result", "1x2":
			three := map[string]float64{}
			for _, pr := range m.Prices {
				dec, ok := americanToDecimal(pr.Price)
				if !ok {
					continue
				}
				switch strings.ToLower(pr.Designation) {
				case "home":
					three["home"] = dec
				case "draw", "tie":
					three["draw"] = dec
				case "away":
					three["away"] = dec
				}
			}
			if len(three) == 3 {
				three[models.AuxKeyMargin] = scraper.Margin(three["home"], three["draw"], three["away"])
				out[models.MarketMatchOdds] = three
			}

		case "totals", "total", "goal_total":
			two := map[string]float64{}
			var line float64
			haveLine := false
			for _, pr := range m.Prices {
				if pr.Points != nil {
					line = *pr.Points
					haveLine = true
				}
				dec, ok := americanToDecimal(pr.Price)
				if !ok {
					continue
				}
				switch strings.ToLower(pr.Designation) {
				case "over":
					two["over"] = dec
				case "under":
					two["under"] = dec
				}
			}
			if haveLine && math.Abs(line-2.5) < 1e-6 && len(two) == 2 {
				two[models.AuxKeyLine] = 2.5
				two[models.AuxKeyMargin] = scraper.Margin(two["over"], two["under"])
				out[models.MarketOverUnder25] = two
			}

		case "both_teams_to_score", "btts":
			two := map[string]float64{}
			for _, pr := range m.Prices {
				dec, ok := americanToDecimal(pr.Price)
				if !ok {
					continue
				}
				switch strings.ToLower(pr.Designation) {
				case "yes":
					two["yes"] = dec
				case "no":
					two["no"] = dec
				}
			}
			if len(two) == 2 {
				two[models.AuxKeyMargin] = scraper.Margin(two["yes"], two["no"])
				out[models.MarketBothTeamsScore] = two
			}
		}
	}

	return out
}

// homeAway picks the home and away team names off a matchup, preferring the
// parent's participants (siblings carry the parent's fixture).
func homeAway(m matchup) (home, away string) {
	lists := [][]participant{}
	if m.Parent != nil {
		lists = append(lists, m.Parent.Participants)
	}
	lists = append(lists, m.Participants)
	for _, parts := range lists {
		for _, p := range parts {
			switch strings.ToLower(p.Alignment) {
			case "home":
				if home == "" {
					home = p.Name
				}
			case "away":
				if away == "" {
					away = p.Name
				}
			}
		}
		if home != "" && away != "" {
			return home, away
		}
	}
	return home, away
}

// leagueNameExclusions filters derivative competitions out of dynamic league
// discovery. A substring match on the league pattern is accepted only when
// none of these appear in the API name.
var leagueNameExclusions = []string{
	"corner", "booking", "card", "penalty", "throw", "goal kick",
	"offsides", "women", "youth", "u19", "u21", "u23", "reserve",
}

func matchLeagueName(apiName, pattern string) bool {
	apiName = strings.ToLower(strings.TrimSpace(apiName))
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if apiName == pattern {
		return true
	}
	if !strings.Contains(apiName, pattern) {
		return false
	}
	for _, excl := range leagueNameExclusions {
		if strings.Contains(apiName, excl) {
			return false
		}
	}
	return true
}
