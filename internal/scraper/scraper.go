// Package scraper defines the provider scraper contract and the shared
// fetch plumbing (HTTP client, concurrency, odds helpers).
package scraper

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mvdberg/valuebet/internal/pkg/leagues"
	"github.com/mvdberg/valuebet/internal/pkg/models"
)

// Scraper fetches all pre-match events for one league from one provider.
type Scraper interface {
	Name() string
	FetchLeagueEvents(ctx context.Context, league leagues.League) ([]models.UnifiedEvent, error)
}

// FetchAll runs s over every league with bounded concurrency. A league that
// fails is logged and skipped so one provider outage never kills the run;
// FetchAll only returns an error when the context is cancelled.
func FetchAll(ctx context.Context, s Scraper, lgs []leagues.League, concurrency int) ([]models.UnifiedEvent, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([][]models.UnifiedEvent, len(lgs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, lg := range lgs {
		i, lg := i, lg
		g.Go(func() error {
			events, err := s.FetchLeagueEvents(ctx, lg)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				slog.Warn("league fetch failed",
					"provider", s.Name(), "league", lg.Key, "error", err)
				return nil
			}
			results[i] = events
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []models.UnifiedEvent
	for _, events := range results {
		all = append(all, events...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].League != all[j].League {
			return all[i].League < all[j].League
		}
		if all[i].KickoffUTC != all[j].KickoffUTC {
			return all[i].KickoffUTC < all[j].KickoffUTC
		}
		return all[i].ProviderEventID < all[j].ProviderEventID
	})
	return all, nil
}

// Margin returns the bookmaker overround of a set of decimal odds as a
// percentage, e.g. 4.7 for a 104.7% book. Odds <= 0 are ignored.
func Margin(odds ...float64) float64 {
	total := 0.0
	for _, o := range odds {
		if o > 0 {
			total += 1.0 / o
		}
	}
	if total == 0 {
		return 0
	}
	return (total - 1.0) * 100.0
}
