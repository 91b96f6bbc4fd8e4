// Package toto scrapes the TOTO sportsbook through its consumer site API:
// one POST for the league's event list, then one detail call per event for
// the market board.
package toto

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mvdberg/valuebet/internal/pkg/leagues"
	"github.com/mvdberg/valuebet/internal/pkg/models"
	"github.com/mvdberg/valuebet/internal/scraper"
)

const (
	eventListURL   = "https://sport-api.toto.nl/event/request"
	eventDetailURL = "https://sport-api.toto.nl/cms/content"

	// Delay between detail requests; the API throttles bursts.
	rateLimitDelay = 200 * time.Millisecond
)

type Client struct {
	http *scraper.HTTPClient
}

func New(http *scraper.HTTPClient) *Client {
	return &Client{http: http}
}

func (c *Client) Name() string { return "toto" }

func (c *Client) headers() map[string]string {
	return map[string]string{
		"Referer": "https://sport.toto.nl/",
		"Origin":  "https://sport.toto.nl",
	}
}

// FetchLeagueEvents lists the league's fixtures and fetches each event's
// market board sequentially, honoring the rate limit.
func (c *Client) FetchLeagueEvents(ctx context.Context, league leagues.League) ([]models.UnifiedEvent, error) {
	if league.TotoID == "" {
		slog.Warn("league has no toto id", "league", league.Key)
		return nil, nil
	}

	listed, err := c.fetchEventList(ctx, league.TotoID)
	if err != nil {
		return nil, fmt.Errorf("fetch event list for %s: %w", league.Key, err)
	}

	scrapedAt := models.NowUTC()
	var events []models.UnifiedEvent
	for _, ev := range listed {
		if ev.ID == 0 {
			continue
		}

		markets, err := c.fetchEventMarkets(ctx, ev)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			slog.Warn("event detail fetch failed",
				"provider", "toto", "event_id", ev.ID, "error", err)
			continue
		}
		if len(markets) == 0 {
			continue
		}

		var home, away string
		for _, t := range ev.Teams {
			switch strings.ToLower(t.Side) {
			case "home":
				home = t.Name
			case "away":
				away = t.Name
			}
		}
		kickoff := scraper.NormalizeISO(ev.StartTime)
		if home == "" || away == "" || kickoff == "" {
			continue
		}

		events = append(events, models.UnifiedEvent{
			Provider:        "toto",
			ProviderEventID: strconv.FormatInt(ev.ID, 10),
			League:          league.Key,
			Country:         league.Country,
			KickoffUTC:      kickoff,
			Home:            home,
			Away:            away,
			Markets:         markets,
			ScrapedAt:       scrapedAt,
			IsLive:          ev.LiveNow,
		})

		select {
		case <-time.After(rateLimitDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	slog.Info("league scraped", "provider", "toto", "league", league.Key,
		"listed", len(listed), "events", len(events))
	return events, nil
}

func (c *Client) fetchEventList(ctx context.Context, totoID string) ([]listEvent, error) {
	payload := map[string]any{
		"includedIds":   []map[string]string{{"selectionId": totoID}},
		"isLive":        true,
		"isPreMatch":    true,
		"order":         "START_TIME",
		"addOutRights":  false,
		"grouping":      "TIME",
		"eventListType": "STANDARD",
		"sortCode":      "MTCH",
	}

	var resp listResponse
	found, err := c.http.PostJSON(ctx, eventListURL, payload, c.headers(), &resp)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var events []listEvent
	for _, group := range resp.EventGroups {
		events = append(events, group.Events...)
	}
	return events, nil
}

func (c *Client) fetchEventMarkets(ctx context.Context, ev listEvent) (map[string]map[string]float64, error) {
	params := url.Values{
		"eventId":    {strconv.FormatInt(ev.ID, 10)},
		"freetext":   {strings.ReplaceAll(strings.ToLower(ev.Name), " ", "-")},
		"route":      {"Event"},
		"formFactor": {"mobile"},
	}

	var resp detailResponse
	found, err := c.http.GetJSON(ctx, eventDetailURL, params, c.headers(), &resp)
	if err != nil {
		return nil, err
	}
	if !found || len(resp.Items) == 0 {
		return nil, nil
	}
	return parseMarkets(resp.Items[0].Data.Event.Markets), nil
}
