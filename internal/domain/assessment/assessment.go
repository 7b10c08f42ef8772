// Package assessment composes the calculator, ranking and recommendation
// engine into the result returned to callers.
package assessment

import (
	"fmt"

	"github.com/okian/giftmatch/internal/domain/types"
)

const defaultTopGifts = 3

// Calculator turns answers into gift scores.
type Calculator interface {
	Calculate(responses []types.QuestionResponse) types.GiftScores
}

// Recommender ranks teams and opportunities.
type Recommender interface {
	RecommendTeams(scores types.GiftScores, interests []string, passions []types.PassionCategory, skills []types.SkillCategory) []types.Recommendation
	RecommendOpportunities(topGifts []types.GiftScore, interests []string, passions []types.PassionCategory, skills []types.SkillCategory) []types.SignUpOpportunity
}

// TopFunc returns the n best gifts of scores.
type TopFunc func(scores types.GiftScores, n int) ([]types.GiftScore, error)

// Input is an already validated submission.
type Input struct {
	Responses            []types.QuestionResponse
	TeamInterests        []string
	Passions             []types.PassionCategory
	Skills               []types.SkillCategory
	IncludeOpportunities bool
}

// Result is the assembled assessment outcome.
type Result struct {
	GiftScores      types.GiftScores          `json:"giftScores"`
	TopGifts        []types.GiftScore         `json:"topGifts"`
	Recommendations []types.Recommendation    `json:"recommendations"`
	Opportunities   []types.SignUpOpportunity `json:"opportunities,omitempty"`
}

// Option applies a configuration option to the Assembler.
type Option func(*Assembler)

// WithTopGifts sets how many ranked gifts the result carries.
func WithTopGifts(n int) Option {
	return func(a *Assembler) {
		a.topGifts = n
	}
}

// Assembler builds Results.
type Assembler struct {
	calc     Calculator
	top      TopFunc
	engine   Recommender
	topGifts int
}

// NewAssembler wires the collaborators together.
func NewAssembler(calc Calculator, top TopFunc, engine Recommender, opts ...Option) *Assembler {
	a := &Assembler{calc: calc, top: top, engine: engine, topGifts: defaultTopGifts}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble runs one submission through the pipeline.
func (a *Assembler) Assemble(in Input) (Result, error) {
	scores := a.calc.Calculate(in.Responses)

	top, err := a.top(scores, a.topGifts)
	if err != nil {
		return Result{}, fmt.Errorf("top gifts: %w", err)
	}

	res := Result{
		GiftScores:      scores,
		TopGifts:        top,
		Recommendations: a.engine.RecommendTeams(scores, in.TeamInterests, in.Passions, in.Skills),
	}
	if in.IncludeOpportunities {
		res.Opportunities = a.engine.RecommendOpportunities(top, in.TeamInterests, in.Passions, in.Skills)
	}
	return res, nil
}
