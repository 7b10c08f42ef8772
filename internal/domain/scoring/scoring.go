// Package scoring turns survey answers into per-gift totals and ranks them.
package scoring

import (
	"fmt"
	"sort"

	"github.com/okian/giftmatch/internal/domain/types"
)

// Layout exposes which questions are summed into each gift.
type Layout interface {
	GiftQuestions(g types.GiftCategory) []int
}

// Calculator sums survey answers into gift scores.
type Calculator struct {
	layout Layout
}

// NewCalculator creates a Calculator over the given question layout.
func NewCalculator(layout Layout) *Calculator {
	return &Calculator{layout: layout}
}

// Calculate sums the answers of each gift's questions. A repeated question
// ID keeps its last answer, a missing one counts as 0 and IDs the layout
// does not know are ignored. Answer values are taken as given.
//
// The result always holds every gift.
func (c *Calculator) Calculate(responses []types.QuestionResponse) types.GiftScores {
	answers := make(map[int]int, len(responses))
	for _, r := range responses {
		answers[r.QuestionID] = r.AnswerValue
	}

	scores := make(types.GiftScores, types.GiftCount)
	for _, g := range types.Gifts() {
		total := 0
		for _, id := range c.layout.GiftQuestions(g) {
			total += answers[id]
		}
		scores[g] = total
	}
	return scores
}

// Rank orders every gift by score, highest first. Equal scores keep gift
// declaration order. Gifts absent from scores rank with 0.
func Rank(scores types.GiftScores) []types.GiftScore {
	ranked := make([]types.GiftScore, 0, types.GiftCount)
	for _, g := range types.Gifts() {
		ranked = append(ranked, types.GiftScore{Gift: g, Score: scores[g]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// TopN returns the first n entries of Rank. An n at or above the gift count
// returns every gift.
func TopN(scores types.GiftScores, n int) ([]types.GiftScore, error) {
	if n < 0 {
		return nil, fmt.Errorf("top n %d: %w", n, ErrInvalidArgument)
	}
	ranked := Rank(scores)
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// Interpretation bands for a four-question gift total.
const (
	LevelStrong     = "Strong"
	LevelModerate   = "Moderate"
	LevelDeveloping = "Developing"
	LevelNone       = "Not primary"
)

// Interpret describes how pronounced a gift score is.
func Interpret(score int) string {
	switch {
	case score >= 16:
		return LevelStrong
	case score >= 12:
		return LevelModerate
	case score >= 8:
		return LevelDeveloping
	default:
		return LevelNone
	}
}
