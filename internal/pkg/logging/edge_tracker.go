package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mvdberg/valuebet/internal/pkg/models"
)

// EdgeTracker appends detected opportunities to a session-stamped,
// pipe-delimited log file so downstream tooling can analyze edges (and later
// compare against closing lines) without parsing the main log.
type EdgeTracker struct {
	mu   sync.Mutex
	file *os.File
}

// NewEdgeTracker opens logs/edge_tracking_<timestamp>.log in dir. A nil
// tracker is safe to use and logs nothing.
func NewEdgeTracker(dir, timestamp string) (*EdgeTracker, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("edge_tracking_%s.log", timestamp))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open edge tracking log: %w", err)
	}
	return &EdgeTracker{file: f}, nil
}

// Log records one opportunity as its placement-time edge snapshot.
func (t *EdgeTracker) Log(bet models.ValueBet) {
	if t == nil {
		return
	}
	m := bet.EdgeMetrics()
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.file, "%s|%s|%s|%s|%s|%s|%.3f|%.3f|%.2f|%.2f|%.2f\n",
		m.Timestamp, m.League, m.Match, m.Bookmaker, m.Market, m.Outcome,
		m.OddsTaken, bet.AnchorOdds, m.EdgeAtPlacement,
		bet.RecommendedStake, bet.ExpectedValue)
}

func (t *EdgeTracker) Close() error {
	if t == nil {
		return nil
	}
	return t.file.Close()
}
