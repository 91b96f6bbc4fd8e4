// Command analyze-file re-runs the value analysis offline against provider
// event files saved by a previous run, so thresholds can be tuned without
// hitting the bookmakers again.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mvdberg/valuebet/internal/analysis"
	"github.com/mvdberg/valuebet/internal/output"
	"github.com/mvdberg/valuebet/internal/pkg/config"
	"github.com/mvdberg/valuebet/internal/pkg/logging"
	"github.com/mvdberg/valuebet/internal/pkg/models"
)

func main() {
	var (
		anchorPath = flag.String("anchor", "output/pinnacle.json", "Anchor events file")
		softList   = flag.String("soft", "jacks=output/jacks.json,toto=output/toto.json",
			"Comma-separated soft books as name=path")
		minEdge  = flag.Float64("min-edge", 0, "Minimum edge threshold override, e.g. 0.025")
		bankroll = flag.Float64("bankroll", 0, "Bankroll override for stake calculations")
		topN     = flag.Int("top-n", 10, "Number of top bets to display")
		outDir   = flag.String("out", "", "Write value_bets.json/.csv to this directory (empty = console only)")
	)
	flag.Parse()

	cfg := config.Default()
	if *minEdge > 0 {
		cfg.Analysis.MinEdge = *minEdge
	}
	if *bankroll > 0 {
		cfg.Analysis.Bankroll = *bankroll
	}
	cfg.Logging.Dir = ""
	if _, _, err := logging.SetupLogger(&cfg.Logging, "analyze-file"); err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}

	anchorEvents, err := output.LoadEvents(*anchorPath)
	if err != nil {
		log.Fatalf("Failed to load anchor events: %v", err)
	}
	fmt.Printf("Loaded %d anchor events from %s\n", len(anchorEvents), *anchorPath)

	softBooks := make(map[string][]models.UnifiedEvent)
	for _, spec := range strings.Split(*softList, ",") {
		name, path, ok := strings.Cut(strings.TrimSpace(spec), "=")
		if !ok {
			log.Fatalf("Bad -soft entry %q, want name=path", spec)
		}
		events, err := output.LoadEvents(path)
		if err != nil {
			log.Fatalf("Failed to load %s events: %v", name, err)
		}
		softBooks[name] = events
		fmt.Printf("Loaded %d %s events from %s\n", len(events), name, filepath.Clean(path))
	}

	params := analysis.Params{
		TimeTolerance:   time.Duration(cfg.Matching.TimeToleranceMinutes) * time.Minute,
		MinSimilarity:   cfg.Matching.MinSimilarity,
		FuzzyPenaltySec: cfg.Matching.FuzzyPenaltySec,
		MinEdge:         cfg.Analysis.MinEdge,
		Bankroll:        cfg.Analysis.Bankroll,
		KellyFraction:   cfg.Analysis.KellyFraction,
		MaxStakePct:     cfg.Analysis.MaxStakePct,
		SwapHysteresis:  cfg.Analysis.SwapHysteresis,
	}

	bets, _ := analysis.GenerateValueBets(anchorEvents, softBooks, params)
	output.PrintSummary(os.Stdout, bets, *topN)

	if *outDir != "" {
		writer, err := output.NewWriter(*outDir)
		if err != nil {
			log.Fatalf("Failed to create output dir: %v", err)
		}
		if path, err := writer.SaveValueBetsJSON(bets); err != nil {
			log.Fatalf("Failed to save json: %v", err)
		} else {
			fmt.Printf("Saved %s\n", path)
		}
		if path, err := writer.SaveValueBetsCSV(bets); err != nil {
			log.Fatalf("Failed to save csv: %v", err)
		} else {
			fmt.Printf("Saved %s\n", path)
		}
	}
}
