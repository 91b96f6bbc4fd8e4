// Package output writes run artifacts: raw provider events as JSON for
// offline re-analysis, and detected value bets as JSON and CSV.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mvdberg/valuebet/internal/pkg/models"
)

type Writer struct {
	dir string
}

func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

func (w *Writer) saveJSON(filename string, data any) (string, error) {
	path := filepath.Join(w.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return path, nil
}

// SaveEvents writes one provider's unified events to <provider>.json.
func (w *Writer) SaveEvents(provider string, events []models.UnifiedEvent) (string, error) {
	if events == nil {
		events = []models.UnifiedEvent{}
	}
	return w.saveJSON(provider+".json", events)
}

// SaveValueBetsJSON writes the detected bets (display precision) to
// value_bets.json.
func (w *Writer) SaveValueBetsJSON(bets []models.ValueBet) (string, error) {
	records := make([]models.Record, 0, len(bets))
	for _, b := range bets {
		records = append(records, b.Record())
	}
	return w.saveJSON("value_bets.json", records)
}

// SaveValueBetsCSV writes value_bets.csv for spreadsheet analysis.
func (w *Writer) SaveValueBetsCSV(bets []models.ValueBet) (string, error) {
	path := filepath.Join(w.dir, "value_bets.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	header := []string{
		"League", "Kickoff", "Home", "Away", "Bookmaker",
		"Market", "Outcome", "Soft Odds", "Anchor Odds",
		"Edge %", "Recommended Stake", "Expected Value",
	}
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for _, b := range bets {
		row := []string{
			b.League, b.Kickoff, b.Home, b.Away, b.Bookmaker,
			b.Market, b.Outcome,
			fmt.Sprintf("%.3f", b.SoftOdds),
			fmt.Sprintf("%.3f", b.AnchorOdds),
			fmt.Sprintf("%.2f", b.EdgePercentage),
			fmt.Sprintf("%.2f", b.RecommendedStake),
			fmt.Sprintf("%.2f", b.ExpectedValue),
		}
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return path, nil
}

// LoadEvents reads a previously saved provider events file.
func LoadEvents(path string) ([]models.UnifiedEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var events []models.UnifiedEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return events, nil
}
