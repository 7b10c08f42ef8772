package catalog

import (
	"errors"
	"fmt"

	"github.com/okian/giftmatch/internal/domain/types"
)

const questionsPerGift = 4

// Validate checks the tables for referential integrity: every gift owns
// exactly four distinct question IDs, and every team name or opportunity ID
// a table mentions exists in its catalog. All problems are reported, each
// wrapping ErrInvalidCatalog.
//
// The engine tolerates gaps at request time by dropping them; Validate lets
// a process refuse to start on inconsistent data instead.
func (c *Catalog) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidCatalog}, args...)...))
	}

	owner := make(map[int]types.GiftCategory)
	for _, g := range types.Gifts() {
		ids := c.giftQuestions[g]
		if len(ids) != questionsPerGift {
			fail("gift %s has %d questions, want %d", g, len(ids), questionsPerGift)
		}
		for _, id := range ids {
			if prev, dup := owner[id]; dup {
				fail("question %d assigned to both %s and %s", id, prev, g)
				continue
			}
			owner[id] = g
		}
	}

	seenTeams := make(map[string]bool, len(c.teams))
	for _, team := range c.teams {
		if seenTeams[team.Name] {
			fail("duplicate team name %q", team.Name)
		}
		seenTeams[team.Name] = true
	}
	seenOpps := make(map[int]bool, len(c.opportunities))
	for _, opp := range c.opportunities {
		if seenOpps[opp.ID] {
			fail("duplicate opportunity id %d", opp.ID)
		}
		seenOpps[opp.ID] = true
	}

	checkTeams := func(table string, key any, names []string) {
		for _, name := range names {
			if _, ok := c.teamsByName[name]; !ok {
				fail("%s[%v] references unknown team %q", table, key, name)
			}
		}
	}
	checkOpps := func(table string, key any, ids []int) {
		for _, id := range ids {
			if _, ok := c.oppsByID[id]; !ok {
				fail("%s[%v] references unknown opportunity %d", table, key, id)
			}
		}
	}

	for _, g := range types.Gifts() {
		checkTeams("gift_teams", g, c.giftTeams[g])
		checkOpps("gift_opportunities", g, c.giftOpportunities[g])
	}
	for _, p := range types.Passions() {
		checkTeams("passion_teams", p, c.passionTeams[p])
		checkOpps("passion_opportunities", p, c.passionOpportunities[p])
	}
	for _, s := range types.Skills() {
		checkTeams("skill_teams", s, c.skillTeams[s])
		checkOpps("skill_opportunities", s, c.skillOpportunities[s])
	}
	for name, id := range c.teamOpportunity {
		checkTeams("team_opportunity", name, []string{name})
		if id > 0 {
			checkOpps("team_opportunity", name, []int{id})
		}
	}

	for id := range c.questionText {
		if _, ok := owner[id]; !ok {
			fail("question %d is not scored by any gift", id)
		}
	}
	for id, g := range c.questionDecl {
		if want, ok := owner[id]; ok && want != g {
			fail("question %d declared as %s but scored as %s", id, g, want)
		}
	}

	return errors.Join(errs...)
}
