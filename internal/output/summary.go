package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mvdberg/valuebet/internal/pkg/models"
)

// PrintSummary writes the top-N bets to w in a console-friendly layout.
// Bets are assumed already sorted best edge first.
func PrintSummary(w io.Writer, bets []models.ValueBet, topN int) {
	rule := strings.Repeat("=", 100)

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "TOP %d VALUE BETS\n", topN)
	fmt.Fprintln(w, rule)

	if len(bets) == 0 {
		fmt.Fprintln(w, "\nNo value bets found.")
		fmt.Fprintf(w, "\n%s\n", rule)
		return
	}

	if topN > len(bets) {
		topN = len(bets)
	}
	for i, b := range bets[:topN] {
		fmt.Fprintf(w, "\n%d. %s vs %s\n", i+1, b.Home, b.Away)
		fmt.Fprintf(w, "   League: %s | Bookmaker: %s\n", b.League, strings.ToUpper(b.Bookmaker))
		fmt.Fprintf(w, "   Market: %s | Outcome: %s\n", strings.ToUpper(b.Market), b.Outcome)
		fmt.Fprintf(w, "   Soft Odds: %.3f | Anchor Odds: %.3f\n", b.SoftOdds, b.AnchorOdds)
		fmt.Fprintf(w, "   Edge: %.2f%% | Recommended Stake: EUR %.2f\n", b.EdgePercentage, b.RecommendedStake)
		fmt.Fprintf(w, "   Expected Value: EUR %.2f\n", b.ExpectedValue)
	}

	fmt.Fprintf(w, "\n%s\n", rule)
}
