// Package recommend ranks ministry teams and sign-up opportunities for a
// gift profile combined with the interests, passions and skills a person
// selected.
//
// The Engine holds only its tables and weights. Every call allocates its own
// working state, so one Engine may serve concurrent callers.
package recommend

import (
	"strings"

	"github.com/okian/giftmatch/internal/domain/scoring"
	"github.com/okian/giftmatch/internal/domain/types"
)

// Tables is the reference data the engine reads.
type Tables interface {
	TeamsForGift(g types.GiftCategory) []string
	OpportunitiesForGift(g types.GiftCategory) []int
	TeamsForPassion(p types.PassionCategory) []string
	OpportunitiesForPassion(p types.PassionCategory) []int
	TeamsForSkill(s types.SkillCategory) []string
	OpportunitiesForSkill(s types.SkillCategory) []int
	OpportunityForTeam(name string) (int, bool)
	TeamByName(name string) (types.Team, bool)
	Opportunity(id int) (types.Opportunity, bool)
}

// Reason fragments attached to opportunity contributions.
const (
	reasonInterests = "your interests"
	reasonPassions  = "your passions"
	reasonSkills    = "your skills"
)

// Engine computes recommendations.
type Engine struct {
	tables           Tables
	giftWeights      []int
	interestWeight   int
	passionWeight    int
	skillWeight      int
	opportunityLimit int
}

// NewEngine creates an Engine over tables.
func NewEngine(tables Tables, opts ...Option) *Engine {
	e := &Engine{
		tables:           tables,
		giftWeights:      defaultGiftWeights(),
		interestWeight:   defaultInterestWeight,
		passionWeight:    defaultPassionWeight,
		skillWeight:      defaultSkillWeight,
		opportunityLimit: defaultOpportunityLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TopGiftCount is the number of ranked gifts that earn points.
func (e *Engine) TopGiftCount() int { return len(e.giftWeights) }

// RecommendTeams ranks every team that received at least one contribution.
//
// The top gifts earn their rank weight for each mapped team; a gift with no
// positive score earns nothing. Each selected team interest earns the
// interest weight, and each passion or skill earns its weight for every team
// it maps to. Teams missing from the catalog are skipped.
func (e *Engine) RecommendTeams(scores types.GiftScores, interests []string, passions []types.PassionCategory, skills []types.SkillCategory) []types.Recommendation {
	tl := newTally(func(name string) bool {
		_, ok := e.tables.TeamByName(name)
		return ok
	})

	for _, wg := range e.topGifts(scoring.Rank(scores)) {
		for _, name := range e.tables.TeamsForGift(wg.gift) {
			tl.add(name, wg.weight, dimGift, wg.gift, "")
		}
	}
	for _, name := range interests {
		tl.add(name, e.interestWeight, dimInterest, "", "")
	}
	for _, p := range passions {
		for _, name := range e.tables.TeamsForPassion(p) {
			tl.add(name, e.passionWeight, dimPassion, "", "")
		}
	}
	for _, s := range skills {
		for _, name := range e.tables.TeamsForSkill(s) {
			tl.add(name, e.skillWeight, dimSkill, "", "")
		}
	}

	ranked := tl.sorted()
	out := make([]types.Recommendation, 0, len(ranked))
	for i, en := range ranked {
		team, _ := e.tables.TeamByName(en.key)
		out = append(out, types.Recommendation{
			Team:      team,
			MatchType: classify(en.dims),
			GiftMatch: en.gift,
			Priority:  priority(i, len(ranked)),
		})
	}
	return out
}

// RecommendOpportunities returns the best scoring opportunities, each with
// the reasons it was picked. topGifts is expected in rank order; only as
// many entries as there are gift weights are used, and each earns the weight
// of its position.
func (e *Engine) RecommendOpportunities(topGifts []types.GiftScore, interests []string, passions []types.PassionCategory, skills []types.SkillCategory) []types.SignUpOpportunity {
	tl := newTally(func(id int) bool {
		_, ok := e.tables.Opportunity(id)
		return ok
	})

	for _, wg := range e.topGifts(topGifts) {
		reason := wg.gift.DisplayName() + " gift"
		for _, id := range e.tables.OpportunitiesForGift(wg.gift) {
			tl.add(id, wg.weight, dimGift, wg.gift, reason)
		}
	}
	for _, name := range interests {
		if id, ok := e.tables.OpportunityForTeam(name); ok {
			tl.add(id, e.interestWeight, dimInterest, "", reasonInterests)
		}
	}
	for _, p := range passions {
		for _, id := range e.tables.OpportunitiesForPassion(p) {
			tl.add(id, e.passionWeight, dimPassion, "", reasonPassions)
		}
	}
	for _, s := range skills {
		for _, id := range e.tables.OpportunitiesForSkill(s) {
			tl.add(id, e.skillWeight, dimSkill, "", reasonSkills)
		}
	}

	ranked := tl.sorted()
	if len(ranked) > e.opportunityLimit {
		ranked = ranked[:e.opportunityLimit]
	}
	out := make([]types.SignUpOpportunity, 0, len(ranked))
	for _, en := range ranked {
		opp, _ := e.tables.Opportunity(en.key)
		out = append(out, types.SignUpOpportunity{Opportunity: opp, Reason: renderReason(en.reasons)})
	}
	return out
}

type weightedGift struct {
	gift   types.GiftCategory
	weight int
}

// topGifts pairs the weighted prefix of ranked with the weight of its
// position. Gifts at or below 0 are dropped without shifting the others.
func (e *Engine) topGifts(ranked []types.GiftScore) []weightedGift {
	if len(ranked) > len(e.giftWeights) {
		ranked = ranked[:len(e.giftWeights)]
	}
	out := make([]weightedGift, 0, len(ranked))
	for i, gs := range ranked {
		if gs.Score > 0 {
			out = append(out, weightedGift{gift: gs.Gift, weight: e.giftWeights[i]})
		}
	}
	return out
}

func classify(d dimension) types.MatchType {
	switch {
	case d&dimGift != 0 && d&dimInterest != 0:
		return types.MatchPerfect
	case d&dimGift != 0:
		return types.MatchGiftBased
	case d&dimInterest != 0:
		return types.MatchUserInterest
	default:
		return types.MatchProfileBased
	}
}

// priority maps a rank index to tier 1, 2 or 3. Boundaries are ceil(n/3)
// and ceil(2n/3) over the full list.
func priority(i, n int) int {
	switch {
	case i < (n+2)/3:
		return 1
	case i < (2*n+2)/3:
		return 2
	default:
		return 3
	}
}

// renderReason joins fragments as "Matches a", "Matches a, b" or
// "Matches a, b & c".
func renderReason(fragments []string) string {
	switch len(fragments) {
	case 0:
		return ""
	case 1, 2:
		return "Matches " + strings.Join(fragments, ", ")
	default:
		last := len(fragments) - 1
		return "Matches " + strings.Join(fragments[:last], ", ") + " & " + fragments[last]
	}
}
