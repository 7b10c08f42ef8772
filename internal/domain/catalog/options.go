package catalog

import (
	"maps"
	"slices"

	"github.com/okian/giftmatch/internal/domain/types"
)

// Option applies a configuration option to the Catalog.
type Option func(*Catalog)

// WithTeams replaces the team catalog.
func WithTeams(teams []types.Team) Option {
	return func(c *Catalog) {
		c.teams = slices.Clone(teams)
	}
}

// WithOpportunities replaces the opportunity catalog.
func WithOpportunities(opps []types.Opportunity) Option {
	return func(c *Catalog) {
		c.opportunities = slices.Clone(opps)
	}
}

// WithGiftTeams replaces the gift to team table.
func WithGiftTeams(table map[types.GiftCategory][]string) Option {
	return func(c *Catalog) {
		c.giftTeams = maps.Clone(table)
	}
}

// WithGiftOpportunities replaces the gift to opportunity table.
func WithGiftOpportunities(table map[types.GiftCategory][]int) Option {
	return func(c *Catalog) {
		c.giftOpportunities = maps.Clone(table)
	}
}

// WithTeamOpportunity replaces the team to opportunity table.
func WithTeamOpportunity(table map[string]int) Option {
	return func(c *Catalog) {
		c.teamOpportunity = maps.Clone(table)
	}
}

// WithQuestions attaches question text. Entries are checked by Validate.
func WithQuestions(qs []Question) Option {
	return func(c *Catalog) {
		for _, q := range qs {
			c.questionText[q.ID] = q.Text
			if q.Gift != "" {
				c.questionDecl[q.ID] = q.Gift
			}
		}
	}
}

// WithOpportunityBaseURL sets the prefix used by OpportunityURL.
func WithOpportunityBaseURL(base string) Option {
	return func(c *Catalog) {
		if base != "" {
			c.opportunityBaseURL = base
		}
	}
}
