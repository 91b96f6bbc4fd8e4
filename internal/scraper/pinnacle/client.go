// Package pinnacle scrapes the sharp book via the Arcadia guest API. Its
// odds anchor the whole analysis, so the scraper is deliberately strict:
// events without a parseable fixture or a complete market are dropped.
package pinnacle

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mvdberg/valuebet/internal/pkg/config"
	"github.com/mvdberg/valuebet/internal/pkg/leagues"
	"github.com/mvdberg/valuebet/internal/pkg/models"
	"github.com/mvdberg/valuebet/internal/scraper"
)

const (
	defaultBaseURL = "https://guest.api.arcadia.pinnacle.com/0.1"
	brandID        = "0"
	soccerSportID  = 29
	// Guest key and device UUID as served to anonymous web sessions.
	guestAPIKey     = "CmX2KcMrXuFmNg6YFbmTxE0y9CIrOi0R"
	guestDeviceUUID = "1a0d9901-387642a9-a10b0cb6-71185001"

	marketFetchConcurrency = 6
)

// Patterns the Arcadia league names are matched against during dynamic
// discovery, keyed by registry league key. Matching is exact-or-substring
// with derivative competitions (corners, bookings, youth) excluded.
var leaguePatterns = map[string][]string{
	"eredivisie":              {"netherlands - eredivisie"},
	"keuken_kampioen_divisie": {"netherlands - eerste divisie"},
	"premier_league":          {"england - premier league"},
	"championship":            {"england - championship"},
	"bundesliga":              {"germany - bundesliga"},
	"2_bundesliga":            {"germany - 2. bundesliga"},
	"la_liga":                 {"spain - la liga"},
	"serie_a":                 {"italy - serie a"},
	"ligue_1":                 {"france - ligue 1"},
	"jupiler_pro_league":      {"belgium - jupiler pro league"},
	"primeira_liga":           {"portugal - liga portugal", "portugal - primeira liga"},
}

// Client implements scraper.Scraper for Pinnacle.
type Client struct {
	http    *scraper.HTTPClient
	baseURL string
	apiKey  string

	mu         sync.Mutex
	allLeagues []apiLeague // nil until the first discovery call
	idCache    map[string]int64
}

// New builds a Pinnacle client. When cfg.MirrorURL is set the mirror is
// resolved once up front; a resolution failure falls back to the direct host.
func New(ctx context.Context, http *scraper.HTTPClient, cfg *config.PinnacleConfig, timeout time.Duration) *Client {
	c := &Client{
		http:    http,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		idCache: make(map[string]int64),
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.apiKey == "" {
		c.apiKey = guestAPIKey
	}

	if cfg.MirrorURL != "" {
		resolved, err := resolveMirror(ctx, cfg.MirrorURL, timeout)
		if err != nil {
			slog.Warn("mirror resolution failed, using direct host",
				"mirror", cfg.MirrorURL, "error", err)
		} else {
			c.baseURL = resolved
		}
	}
	return c
}

func (c *Client) Name() string { return "pinnacle" }

func (c *Client) headers() map[string]string {
	return map[string]string{
		"X-API-Key":     c.apiKey,
		"X-Device-UUID": guestDeviceUUID,
		"Referer":       "https://www.pinnacle.com/",
	}
}

func brandParams() url.Values {
	return url.Values{"brandId": {brandID}}
}

// FetchLeagueEvents returns all pre-match fixtures with supported markets
// for one league.
func (c *Client) FetchLeagueEvents(ctx context.Context, league leagues.League) ([]models.UnifiedEvent, error) {
	leagueID, err := c.resolveLeagueID(ctx, league)
	if err != nil {
		return nil, err
	}

	var matchups []matchup
	found, err := c.http.GetJSON(ctx,
		fmt.Sprintf("%s/leagues/%d/matchups", c.baseURL, leagueID),
		brandParams(), c.headers(), &matchups)
	if err != nil {
		return nil, fmt.Errorf("fetch matchups for %s: %w", league.Key, err)
	}
	if !found || len(matchups) == 0 {
		slog.Debug("no matchups", "provider", "pinnacle", "league", league.Key)
		return nil, nil
	}

	// Sibling matchups (alternate lines etc.) share a parent; fetch markets
	// once per parent.
	parents := dedupeParents(matchups)

	marketSets := make([]map[string]map[string]float64, len(parents))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(marketFetchConcurrency)
	for i, m := range parents {
		i, m := i, m
		g.Go(func() error {
			mkts, err := c.fetchParentMarkets(gctx, parentID(m))
			if err != nil {
				slog.Debug("market fetch failed",
					"provider", "pinnacle", "matchup", parentID(m), "error", err)
				return nil
			}
			marketSets[i] = parseMarkets(mkts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scrapedAt := models.NowUTC()
	var events []models.UnifiedEvent
	for i, m := range parents {
		markets := marketSets[i]
		if len(markets) == 0 {
			continue
		}
		home, away := homeAway(m)
		kickoff := scraper.NormalizeISO(startTime(m))
		if home == "" || away == "" || kickoff == "" {
			continue
		}
		events = append(events, models.UnifiedEvent{
			Provider:        "pinnacle",
			ProviderEventID: strconv.FormatInt(parentID(m), 10),
			League:          league.Key,
			Country:         league.Country,
			KickoffUTC:      kickoff,
			Home:            home,
			Away:            away,
			Markets:         markets,
			ScrapedAt:       scrapedAt,
			IsLive:          m.IsLive,
		})
	}

	slog.Info("league scraped", "provider", "pinnacle", "league", league.Key,
		"matchups", len(matchups), "events", len(events))
	return events, nil
}

func (c *Client) fetchParentMarkets(ctx context.Context, parentID int64) ([]market, error) {
	var lastErr error
	for _, path := range []string{
		fmt.Sprintf("%s/matchups/%d/markets/related/straight", c.baseURL, parentID),
		fmt.Sprintf("%s/matchups/%d/markets/straight", c.baseURL, parentID),
	} {
		var mkts []market
		found, err := c.http.GetJSON(ctx, path, brandParams(), c.headers(), &mkts)
		if err != nil {
			lastErr = err
			continue
		}
		if found && len(mkts) > 0 {
			return mkts, nil
		}
	}
	return nil, lastErr
}

// resolveLeagueID matches the league against live discovery first so renamed
// or reshuffled Arcadia IDs never silently fetch the wrong competition. The
// registry ID is the fallback when discovery is unavailable.
func (c *Client) resolveLeagueID(ctx context.Context, league leagues.League) (int64, error) {
	c.mu.Lock()
	if id, ok := c.idCache[league.Key]; ok {
		c.mu.Unlock()
		return id, nil
	}
	c.mu.Unlock()

	id := league.PinnacleID
	if all, err := c.fetchAllLeagues(ctx); err != nil {
		slog.Warn("league discovery failed, using registry id",
			"league", league.Key, "id", id, "error", err)
	} else {
		patterns := leaguePatterns[league.Key]
	match:
		for _, api := range all {
			for _, pattern := range patterns {
				if matchLeagueName(api.Name, pattern) {
					id = api.ID
					break match
				}
			}
		}
	}
	if id == 0 {
		return 0, fmt.Errorf("no arcadia league id for %q", league.Key)
	}

	c.mu.Lock()
	c.idCache[league.Key] = id
	c.mu.Unlock()
	return id, nil
}

func (c *Client) fetchAllLeagues(ctx context.Context) ([]apiLeague, error) {
	c.mu.Lock()
	cached := c.allLeagues
	c.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	params := brandParams()
	params.Set("all", "true")
	var all []apiLeague
	found, err := c.http.GetJSON(ctx,
		fmt.Sprintf("%s/sports/%d/leagues", c.baseURL, soccerSportID),
		params, c.headers(), &all)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("leagues endpoint returned no data")
	}

	c.mu.Lock()
	c.allLeagues = all
	c.mu.Unlock()
	return all, nil
}

func dedupeParents(matchups []matchup) []matchup {
	seen := make(map[int64]bool)
	var parents []matchup
	for _, m := range matchups {
		id := parentID(m)
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		parents = append(parents, m)
	}
	sort.Slice(parents, func(i, j int) bool { return parentID(parents[i]) < parentID(parents[j]) })
	return parents
}

func parentID(m matchup) int64 {
	if m.ParentID != 0 {
		return m.ParentID
	}
	return m.ID
}

func startTime(m matchup) string {
	if m.Parent != nil && m.Parent.StartTime != "" {
		return m.Parent.StartTime
	}
	return m.StartTime
}
