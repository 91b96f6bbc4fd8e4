// Package jacks scrapes Jack's Casino & Sports, a Kambi-platform book. A
// single listView call per league returns fixtures and their bet offers.
package jacks

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/mvdberg/valuebet/internal/pkg/leagues"
	"github.com/mvdberg/valuebet/internal/pkg/models"
	"github.com/mvdberg/valuebet/internal/scraper"
)

const baseURL = "https://eu1.offering-api.kambicdn.com/offering/v2018/jvh"

type Client struct {
	http *scraper.HTTPClient
}

func New(http *scraper.HTTPClient) *Client {
	return &Client{http: http}
}

func (c *Client) Name() string { return "jacks" }

// FetchLeagueEvents fetches the league's listView and keeps every fixture
// that yields at least one supported market.
func (c *Client) FetchLeagueEvents(ctx context.Context, league leagues.League) ([]models.UnifiedEvent, error) {
	if league.JacksPath == "" {
		slog.Warn("league has no jacks path", "league", league.Key)
		return nil, nil
	}

	params := url.Values{"lang": {"nl_NL"}, "market": {"NL"}}
	var resp listViewResponse
	found, err := c.http.GetJSON(ctx,
		fmt.Sprintf("%s/listView/%s.json", baseURL, league.JacksPath),
		params, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("fetch listView for %s: %w", league.Key, err)
	}
	if !found {
		return nil, nil
	}

	scrapedAt := models.NowUTC()
	var events []models.UnifiedEvent
	for _, item := range resp.Events {
		ev := item.Event
		if ev.ID == 0 {
			continue
		}
		kickoff := scraper.NormalizeISO(ev.Start)
		if ev.HomeName == "" || ev.AwayName == "" || kickoff == "" {
			continue
		}

		markets := make(map[string]map[string]float64)
		for _, offer := range item.BetOffers {
			if key, odds, ok := parseBetOffer(offer); ok {
				if _, exists := markets[key]; !exists {
					markets[key] = odds
				}
			}
		}
		if len(markets) == 0 {
			continue
		}

		events = append(events, models.UnifiedEvent{
			Provider:        "jacks",
			ProviderEventID: strconv.FormatInt(ev.ID, 10),
			League:          league.Key,
			Country:         league.Country,
			KickoffUTC:      kickoff,
			Home:            ev.HomeName,
			Away:            ev.AwayName,
			Markets:         markets,
			ScrapedAt:       scrapedAt,
			IsLive:          ev.LiveBetting,
		})
	}

	slog.Info("league scraped", "provider", "jacks", "league", league.Key,
		"listed", len(resp.Events), "events", len(events))
	return events, nil
}
