package toto

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mvdberg/valuebet/internal/pkg/models"
	"github.com/mvdberg/valuebet/internal/scraper"
)

// outcomeOdds returns the first listed decimal price. Odds below 1.01 are
// placeholders for suspended selections and are rejected.
func outcomeOdds(o apiOutcome) (float64, bool) {
	if len(o.Prices) == 0 {
		return 0, false
	}
	v, err := o.Prices[0].Decimal.Float64()
	if err != nil || v < 1.01 {
		return 0, false
	}
	return math.Round(v*1000) / 1000, true
}

var lineRe = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// lineFromLabel pulls the goal line out of an outcome label like
// "Meer dan 2,5".
func lineFromLabel(label string) (float64, bool) {
	m := lineRe.FindString(label)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func outcomeLabel(o apiOutcome) string {
	if o.Name != "" {
		return strings.ToLower(o.Name)
	}
	return strings.ToLower(o.Label)
}

// parseMarkets maps TOTO's market list to the supported market keys. Labels
// arrive in Dutch on the consumer site and English on some templates; both
// are accepted. The first complete market of each type wins.
func parseMarkets(markets []apiMarket) map[string]map[string]float64 {
	out := make(map[string]map[string]float64)

	for _, m := range markets {
		var active []apiOutcome
		for _, o := range m.Outcomes {
			if o.Active {
				active = append(active, o)
			}
		}
		if len(active) == 0 {
			continue
		}

		group := strings.ToLower(m.GroupCode)
		template := strings.ToLower(m.TemplateName)
		kind := group + " " + template

		switch {
		case containsAny(kind, "match odds", "1x2", "match result"):
			if len(active) != 3 || out[models.MarketMatchOdds] != nil {
				continue
			}
			odds := map[string]float64{}
			for _, o := range active {
				dec, ok := outcomeOdds(o)
				if !ok {
					continue
				}
				switch outcomeLabel(o) {
				case "home", "thuis", "1":
					odds["home"] = dec
				case "draw", "gelijkspel", "x":
					odds["draw"] = dec
				case "away", "uit", "2":
					odds["away"] = dec
				}
			}
			if len(odds) == 3 {
				odds[models.AuxKeyMargin] = scraper.Margin(odds["home"], odds["draw"], odds["away"])
				out[models.MarketMatchOdds] = odds
			}

		case containsAny(group, "total goals", "over/under"):
			if len(active) != 2 || out[models.MarketOverUnder25] != nil {
				continue
			}
			line, err := m.Line.Float64()
			if err != nil {
				found := false
				for _, o := range active {
					if v, ok := lineFromLabel(o.Label + o.Name); ok {
						line, found = v, true
						break
					}
				}
				if !found {
					continue
				}
			}
			if math.Abs(line-2.5) >= 0.01 {
				continue
			}
			odds := map[string]float64{}
			for _, o := range active {
				dec, ok := outcomeOdds(o)
				if !ok {
					continue
				}
				label := outcomeLabel(o)
				switch {
				case strings.Contains(label, "over"), strings.Contains(label, "meer"):
					odds["over"] = dec
				case strings.Contains(label, "under"), strings.Contains(label, "minder"):
					odds["under"] = dec
				}
			}
			if len(odds) == 2 {
				odds[models.AuxKeyLine] = 2.5
				odds[models.AuxKeyMargin] = scraper.Margin(odds["over"], odds["under"])
				out[models.MarketOverUnder25] = odds
			}

		case containsAny(group, "both_teams_to_score", "btts"):
			if len(active) != 2 || out[models.MarketBothTeamsScore] != nil {
				continue
			}
			odds := map[string]float64{}
			for _, o := range active {
				dec, ok := outcomeOdds(o)
				if !ok {
					continue
				}
				switch outcomeLabel(o) {
				case "yes", "ja":
					odds["yes"] = dec
				case "no", "nee":
					odds["no"] = dec
				}
			}
			if len(odds) == 2 {
				odds[models.AuxKeyMargin] = scraper.Margin(odds["yes"], odds["no"])
				out[models.MarketBothTeamsScore] = odds
			}
		}
	}

	return out
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
