package jacks

import (
	"math"
	"strconv"
	"strings"

	"github.com/mvdberg/valuebet/internal/pkg/models"
	"github.com/mvdberg/valuebet/internal/scraper"
)

// kambiToDecimal converts Kambi's thousandths representation (1850 -> 1.85)
// to decimal odds. Values below 1000 would imply odds under 1.0.
func kambiToDecimal(odds int64) (float64, bool) {
	if odds < 1000 {
		return 0, false
	}
	return float64(odds) / 1000.0, true
}

// offerLine parses a bet offer's goal line. Split lines like "2.5/3" take
// the first component.
func offerLine(o betOffer) (float64, bool) {
	s := strings.Trim(string(o.Line), `"`)
	if s == "" || s == "null" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func openOutcomes(o betOffer) []outcome {
	var open []outcome
	for _, out := range o.Outcomes {
		status := strings.ToUpper(out.Status)
		if status == "OPEN" || status == "" {
			open = append(open, out)
		}
	}
	return open
}

// parseBetOffer classifies one Kambi bet offer. Three open outcomes labeled
// 1/X/2 form the match odds market; two-way offers are either a 2.5 total or
// a both-teams-score offer, recognized by its type name ("Beide teams
// scoren" on the Dutch site).
func parseBetOffer(o betOffer) (string, map[string]float64, bool) {
	open := openOutcomes(o)

	switch len(open) {
	case 3:
		odds := map[string]float64{}
		for _, out := range open {
			dec, ok := kambiToDecimal(out.Odds)
			if !ok {
				continue
			}
			switch strings.TrimSpace(out.Label) {
			case "1":
				odds["home"] = dec
			case "X":
				odds["draw"] = dec
			case "2":
				odds["away"] = dec
			}
		}
		if len(odds) == 3 {
			odds[models.AuxKeyMargin] = scraper.Margin(odds["home"], odds["draw"], odds["away"])
			return models.MarketMatchOdds, odds, true
		}

	case 2:
		if line, ok := offerLine(o); ok && math.Abs(line-2.5) < 0.01 {
			odds := map[string]float64{}
			for _, out := range open {
				dec, ok := kambiToDecimal(out.Odds)
				if !ok {
					continue
				}
				label := strings.ToLower(out.Label)
				switch {
				case strings.Contains(label, "over"):
					odds["over"] = dec
				case strings.Contains(label, "under"):
					odds["under"] = dec
				}
			}
			if len(odds) == 2 {
				odds[models.AuxKeyLine] = 2.5
				odds[models.AuxKeyMargin] = scraper.Margin(odds["over"], odds["under"])
				return models.MarketOverUnder25, odds, true
			}
		}

		betType := strings.ToLower(o.BetOfferType.Name)
		if strings.Contains(betType, "both") || strings.Contains(betType, "scoren") {
			odds := map[string]float64{}
			for _, out := range open {
				dec, ok := kambiToDecimal(out.Odds)
				if !ok {
					continue
				}
				switch strings.ToLower(out.Label) {
				case "yes", "ja":
					odds["yes"] = dec
				case "no", "nee":
					odds["no"] = dec
				}
			}
			if len(odds) == 2 {
				odds[models.AuxKeyMargin] = scraper.Margin(odds["yes"], odds["no"])
				return models.MarketBothTeamsScore, odds, true
			}
		}
	}

	return "", nil, false
}
