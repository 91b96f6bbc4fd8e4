// Package health serves the operational HTTP surface: liveness, run status,
// Prometheus metrics and the latest detected value bets.
package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mvdberg/valuebet/internal/pkg/models"
)

// storedBetLimit caps how many bets the store fallback serves.
const storedBetLimit = 100

// BetSource supplies persisted value bets for /value-bets until the first
// run of this process completes.
type BetSource interface {
	LatestValueBets(ctx context.Context, limit int) ([]models.ValueBet, error)
}

var (
	mu        sync.RWMutex
	startedAt = time.Now()
	lastRun   *models.RunSummary
	lastBets  []models.ValueBet
	betSource BetSource
)

// SetLastRun publishes the finished run to /health and /value-bets.
func SetLastRun(run models.RunSummary, bets []models.ValueBet) {
	mu.Lock()
	defer mu.Unlock()
	lastRun = &run
	lastBets = bets
}

// SetBetSource registers a store that backs /value-bets before the first
// in-process run finishes.
func SetBetSource(s BetSource) {
	mu.Lock()
	defer mu.Unlock()
	betSource = s
}

// Run starts the health server in the background and shuts it down when ctx
// is cancelled.
func Run(ctx context.Context, addr, service string, readHeaderTimeout time.Duration) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", handlePing)
	mux.HandleFunc("/health", handleHealth(service))
	mux.HandleFunc("/value-bets", handleValueBets)
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	go func() {
		slog.Info("health server listening", "service", service, "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("health server error", "service", service, "error", err)
		}
	}()
}

func handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

func handleHealth(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		mu.RLock()
		defer mu.RUnlock()

		resp := map[string]any{
			"service":        service,
			"status":         "ok",
			"uptime_seconds": int(time.Since(startedAt).Seconds()),
		}
		if lastRun != nil {
			resp["last_run"] = lastRun
		}
		writeJSON(w, resp)
	}
}

func handleValueBets(w http.ResponseWriter, r *http.Request) {
	mu.RLock()
	bets := lastBets
	haveRun := lastRun != nil
	src := betSource
	mu.RUnlock()

	if !haveRun && src != nil {
		stored, err := src.LatestValueBets(r.Context(), storedBetLimit)
		if err != nil {
			slog.Error("failed to load stored value bets", "error", err)
		} else {
			bets = stored
		}
	}

	records := make([]models.Record, 0, len(bets))
	for _, b := range bets {
		records = append(records, b.Record())
	}
	writeJSON(w, records)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
