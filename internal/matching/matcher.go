package matching

import (
	"log/slog"
	"time"

	"github.com/mvdberg/valuebet/internal/pkg/models"
)

const (
	// DefaultTimeTolerance is the maximum kickoff difference for two events
	// to be considered the same fixture.
	DefaultTimeTolerance = 12 * time.Minute

	// DefaultMinSimilarity is the average team-name similarity required when
	// normalized names are not exactly equal.
	DefaultMinSimilarity = 0.85

	// DefaultFuzzyPenaltySeconds is added to a candidate's time-difference
	// score when the name match is fuzzy rather than exact. At this value
	// any exact match beats any fuzzy one regardless of time proximity;
	// within the same certainty class the closest kickoff wins.
	DefaultFuzzyPenaltySeconds = 1000.0
)

// MatchedPair associates one event from a soft (comparison) provider with one
// event from the reference provider describing the same fixture.
type MatchedPair struct {
	Left  models.UnifiedEvent
	Right models.UnifiedEvent
}

// MatchEvents pairs events from two providers by team identity and kickoff
// time. Greedy and left-priority: left events are processed in order, each
// claiming its best qualifying right-side candidate; a claimed right event is
// never reused (1:1). Left events with no qualifying candidate are dropped;
// a left event with an unparseable kickoff is skipped with a warning. The
// processing order of left is part of the contract: it keeps ambiguous
// assignments reproducible.
//
// fuzzyPenaltySec biases candidate selection towards exact name matches; see
// DefaultFuzzyPenaltySeconds.
func MatchEvents(left, right []models.UnifiedEvent, tolerance time.Duration, minSimilarity, fuzzyPenaltySec float64) []MatchedPair {
	var pairs []MatchedPair
	used := make(map[int]bool)

	for _, leftEvent := range left {
		leftKickoff, err := ParseKickoff(leftEvent.KickoffUTC)
		if err != nil {
			slog.Warn("skipping event with unparseable kickoff",
				"home", leftEvent.Home, "away", leftEvent.Away,
				"kickoff", leftEvent.KickoffUTC, "error", err)
			continue
		}
		leftHome := Normalize(leftEvent.Home)
		leftAway := Normalize(leftEvent.Away)

		bestIdx := -1
		bestScore := 0.0
		bestExact := false
		bestSimilarity := 0.0

		for idx, rightEvent := range right {
			if used[idx] || rightEvent.League != leftEvent.League {
				continue
			}

			rightHome := Normalize(rightEvent.Home)
			rightAway := Normalize(rightEvent.Away)

			exact := leftHome == rightHome && leftAway == rightAway
			avgSimilarity := (Similarity(leftHome, rightHome) + Similarity(leftAway, rightAway)) / 2

			if !exact && avgSimilarity < minSimilarity {
				continue
			}

			rightKickoff, err := ParseKickoff(rightEvent.KickoffUTC)
			if err != nil {
				continue
			}
			timeDiff := leftKickoff.Sub(rightKickoff).Abs()
			if timeDiff > tolerance {
				continue
			}

			score := timeDiff.Seconds()
			if !exact {
				score += fuzzyPenaltySec
			}
			if bestIdx < 0 || score < bestScore {
				bestIdx = idx
				bestScore = score
				bestExact = exact
				bestSimilarity = avgSimilarity
			}
		}

		if bestIdx < 0 {
			continue
		}
		used[bestIdx] = true
		best := right[bestIdx]
		pairs = append(pairs, MatchedPair{Left: leftEvent, Right: best})

		if !bestExact {
			slog.Debug("fuzzy match",
				"left", leftEvent.Home+" vs "+leftEvent.Away,
				"right", best.Home+" vs "+best.Away,
				"similarity", bestSimilarity)
		}
	}

	slog.Info("matched events between providers", "pairs", len(pairs),
		"left", len(left), "right", len(right))
	return pairs
}

// ParseKickoff parses a Z-suffixed ISO-8601 kickoff string to UTC.
func ParseKickoff(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
