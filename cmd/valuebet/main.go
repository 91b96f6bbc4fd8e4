package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/mvdberg/valuebet/internal/analysis"
	"github.com/mvdberg/valuebet/internal/notify"
	"github.com/mvdberg/valuebet/internal/output"
	"github.com/mvdberg/valuebet/internal/pkg/config"
	"github.com/mvdberg/valuebet/internal/pkg/health"
	"github.com/mvdberg/valuebet/internal/pkg/leagues"
	"github.com/mvdberg/valuebet/internal/pkg/logging"
	"github.com/mvdberg/valuebet/internal/pkg/metrics"
	"github.com/mvdberg/valuebet/internal/pkg/models"
	"github.com/mvdberg/valuebet/internal/pkg/storage"
	"github.com/mvdberg/valuebet/internal/scraper"
	"github.com/mvdberg/valuebet/internal/scraper/jacks"
	"github.com/mvdberg/valuebet/internal/scraper/pinnacle"
	"github.com/mvdberg/valuebet/internal/scraper/toto"
)

const defaultConfigPath = "configs/production.yaml"

func main() {
	fmt.Println("Starting Value Betting System...")

	// Local .env for secrets; absence is fine in production.
	_ = godotenv.Load()

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	var (
		configPath  = flag.String("config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
		minEdge     = flag.Float64("min-edge", 0, "Minimum edge threshold override, e.g. 0.025")
		bankroll    = flag.Float64("bankroll", 0, "Bankroll override for stake calculations")
		maxPriority = flag.Int("max-priority", 0, "Maximum league priority to scrape (1=top leagues, 2=includes secondary)")
		topN        = flag.Int("top-n", 0, "Number of top bets to display")
		interval    = flag.Duration("interval", 0, "Rerun the pipeline on this interval (0 = run once and exit)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && *configPath == defaultConfigPath {
			fmt.Printf("Config %s not found, using defaults\n", *configPath)
			cfg = config.Default()
		} else {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	applyEnvOverrides(cfg)
	applyFlagOverrides(cfg, *minEdge, *bankroll, *maxPriority, *topN)

	_, timestamp, err := logging.SetupLogger(&cfg.Logging, "valuebet")
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Health.Addr != "" {
		health.Run(ctx, cfg.Health.Addr, "valuebet", cfg.Health.ReadHeaderTimeout)
	}

	app, err := newApp(ctx, cfg, timestamp)
	if err != nil {
		slog.Error("initialization failed", "error", err)
		os.Exit(1)
	}
	defer app.close()

	if err := app.runOnce(ctx); err != nil {
		slog.Error("run failed", "error", err)
		if *interval == 0 {
			os.Exit(1)
		}
	}

	if *interval == 0 {
		return
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("shutting down")
			return
		case <-ticker.C:
			if err := app.runOnce(ctx); err != nil {
				slog.Error("run failed", "error", err)
			}
		}
	}
}

func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Telegram.ChatID = id
		}
	}
	if v := os.Getenv("PINNACLE_API_KEY"); v != "" {
		cfg.Pinnacle.APIKey = v
	}
	if v := os.Getenv("PINNACLE_MIRROR_URL"); v != "" {
		cfg.Pinnacle.MirrorURL = v
	}
}

func applyFlagOverrides(cfg *config.Config, minEdge, bankroll float64, maxPriority, topN int) {
	if minEdge > 0 {
		cfg.Analysis.MinEdge = minEdge
	}
	if bankroll > 0 {
		cfg.Analysis.Bankroll = bankroll
	}
	if maxPriority > 0 {
		cfg.Leagues.MaxPriority = maxPriority
	}
	if topN > 0 {
		cfg.Output.TopN = topN
	}
}

// app holds the long-lived pieces shared between runs.
type app struct {
	cfg    *config.Config
	writer *output.Writer
	anchor scraper.Scraper
	soft   map[string]scraper.Scraper

	tracker  *logging.EdgeTracker
	store    *storage.PostgresStorage // optional
	notifier *notify.TelegramNotifier // optional
}

func newApp(ctx context.Context, cfg *config.Config, timestamp string) (*app, error) {
	writer, err := output.NewWriter(cfg.Output.Dir)
	if err != nil {
		return nil, err
	}

	httpClient := scraper.NewHTTPClient(&cfg.HTTP)
	a := &app{
		cfg:    cfg,
		writer: writer,
		anchor: pinnacle.New(ctx, httpClient, &cfg.Pinnacle, cfg.HTTP.Timeout),
		soft: map[string]scraper.Scraper{
			"jacks": jacks.New(httpClient),
			"toto":  toto.New(httpClient),
		},
	}

	if cfg.Logging.Dir != "" {
		tracker, err := logging.NewEdgeTracker(cfg.Logging.Dir, timestamp)
		if err != nil {
			return nil, err
		}
		a.tracker = tracker
	}

	if cfg.Postgres.DSN != "" {
		store, err := storage.NewPostgresStorage(&cfg.Postgres)
		if err != nil {
			return nil, err
		}
		a.store = store
		// Until the first run finishes, /value-bets serves the last
		// persisted run.
		health.SetBetSource(store)
	}

	var cooldown *storage.CooldownStore
	if cfg.Redis.Addr != "" {
		cooldown, err = storage.NewCooldownStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			// Alerts still work without cooldown suppression.
			slog.Warn("redis unavailable, alert cooldowns disabled", "error", err)
		}
	}

	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		notifier, err := notify.NewTelegramNotifier(&cfg.Telegram, cooldown)
		if err != nil {
			slog.Warn("telegram unavailable, notifications disabled", "error", err)
		} else {
			a.notifier = notifier
		}
	}

	return a, nil
}

func (a *app) close() {
	if a.tracker != nil {
		a.tracker.Close()
	}
	if a.store != nil {
		a.store.Close()
	}
}

func (a *app) runOnce(ctx context.Context) error {
	runStart := time.Now()
	run := models.RunSummary{
		ID:        uuid.NewString(),
		StartedAt: models.NowUTC(),
	}

	lgs := leagues.ByPriority(a.cfg.Leagues.MinPriority, a.cfg.Leagues.MaxPriority)
	slog.Info("run started", "run_id", run.ID, "leagues", len(lgs),
		"min_edge_pct", a.cfg.Analysis.MinEdge*100, "bankroll", a.cfg.Analysis.Bankroll)

	anchorEvents, softEvents, err := a.scrapeAll(ctx, lgs)
	if err != nil {
		return err
	}

	if _, err := a.writer.SaveEvents(a.anchor.Name(), anchorEvents); err != nil {
		slog.Warn("failed to save anchor events", "error", err)
	}
	for name, events := range softEvents {
		if _, err := a.writer.SaveEvents(name, events); err != nil {
			slog.Warn("failed to save events", "provider", name, "error", err)
		}
	}

	run.AnchorEvents = len(anchorEvents)
	for _, events := range softEvents {
		run.SoftEvents += len(events)
	}

	if len(anchorEvents) == 0 {
		return fmt.Errorf("no anchor events available, cannot calculate value bets")
	}

	params := analysis.Params{
		TimeTolerance:   time.Duration(a.cfg.Matching.TimeToleranceMinutes) * time.Minute,
		MinSimilarity:   a.cfg.Matching.MinSimilarity,
		FuzzyPenaltySec: a.cfg.Matching.FuzzyPenaltySec,
		MinEdge:         a.cfg.Analysis.MinEdge,
		Bankroll:        a.cfg.Analysis.Bankroll,
		KellyFraction:   a.cfg.Analysis.KellyFraction,
		MaxStakePct:     a.cfg.Analysis.MaxStakePct,
		SwapHysteresis:  a.cfg.Analysis.SwapHysteresis,
	}

	bets, stats := analysis.GenerateValueBets(anchorEvents, softEvents, params)
	run.MatchedPairs = stats.MatchedPairs
	run.ValueBets = len(bets)
	run.FinishedAt = models.NowUTC()

	metrics.MatchedPairs.Set(float64(run.MatchedPairs))
	metrics.ValueBetsDetected.Set(float64(run.ValueBets))
	metrics.RunDuration.Observe(time.Since(runStart).Seconds())

	if _, err := a.writer.SaveValueBetsJSON(bets); err != nil {
		slog.Warn("failed to save value bets json", "error", err)
	}
	if _, err := a.writer.SaveValueBetsCSV(bets); err != nil {
		slog.Warn("failed to save value bets csv", "error", err)
	}
	for _, b := range bets {
		a.tracker.Log(b)
	}

	output.PrintSummary(os.Stdout, bets, a.cfg.Output.TopN)
	logPortfolio(bets)

	health.SetLastRun(run, bets)

	if a.store != nil {
		if err := a.store.SaveRun(ctx, run, bets); err != nil {
			slog.Error("failed to persist run", "run_id", run.ID, "error", err)
		}
	}
	a.notifier.NotifyValueBets(ctx, bets)

	slog.Info("run complete", "run_id", run.ID,
		"anchor_events", run.AnchorEvents, "soft_events", run.SoftEvents,
		"matched_pairs", run.MatchedPairs, "value_bets", run.ValueBets,
		"duration", time.Since(runStart).Round(time.Millisecond))
	return nil
}

// scrapeAll fetches the anchor and every soft book concurrently. A failed
// provider yields no events but does not abort the run; context cancellation
// does.
func (a *app) scrapeAll(ctx context.Context, lgs []leagues.League) ([]models.UnifiedEvent, map[string][]models.UnifiedEvent, error) {
	var (
		mu           sync.Mutex
		anchorEvents []models.UnifiedEvent
		softEvents   = make(map[string][]models.UnifiedEvent, len(a.soft))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		events, err := a.fetchProvider(gctx, a.anchor, lgs)
		if err != nil {
			return err
		}
		anchorEvents = events
		return nil
	})
	for name, s := range a.soft {
		name, s := name, s
		g.Go(func() error {
			events, err := a.fetchProvider(gctx, s, lgs)
			if err != nil {
				return err
			}
			mu.Lock()
			softEvents[name] = events
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	slog.Info("provider collection done", "provider", a.anchor.Name(), "events", len(anchorEvents))
	for name, events := range softEvents {
		slog.Info("provider collection done", "provider", name, "events", len(events))
	}
	return anchorEvents, softEvents, nil
}

// fetchProvider returns an error only for context cancellation; provider
// failures count as zero events so the other books still get analyzed.
func (a *app) fetchProvider(ctx context.Context, s scraper.Scraper, lgs []leagues.League) ([]models.UnifiedEvent, error) {
	start := time.Now()
	events, err := scraper.FetchAll(ctx, s, lgs, a.cfg.HTTP.Concurrency)
	metrics.ScrapeDuration.WithLabelValues(s.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ScrapeErrors.WithLabelValues(s.Name()).Inc()
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Error("provider fetch failed", "provider", s.Name(), "error", err)
		return nil, nil
	}
	metrics.EventsScraped.WithLabelValues(s.Name()).Add(float64(len(events)))
	return events, nil
}

func logPortfolio(bets []models.ValueBet) {
	if len(bets) == 0 {
		return
	}
	var totalEV, totalStake, edgeSum float64
	for _, b := range bets {
		totalEV += b.ExpectedValue
		totalStake += b.RecommendedStake
		edgeSum += b.EdgePercentage
	}
	roi := 0.0
	if totalStake > 0 {
		roi = totalEV / totalStake * 100
	}
	slog.Info("portfolio statistics",
		"opportunities", len(bets),
		"avg_edge_pct", fmt.Sprintf("%.2f", edgeSum/float64(len(bets))),
		"total_stake", fmt.Sprintf("%.2f", totalStake),
		"total_ev", fmt.Sprintf("%.2f", totalEV),
		"expected_roi_pct", fmt.Sprintf("%.2f", roi))
}
