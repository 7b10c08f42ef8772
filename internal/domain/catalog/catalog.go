// Package catalog holds the immutable reference data of the assessment:
// the gift questionnaire layout, the team and opportunity catalogs and every
// mapping table joining gifts, passions and skills to them.
//
// A Catalog is built once at process start and shared by reference. Nothing
// mutates it after New returns, so it is safe for concurrent readers.
package catalog

import (
	"slices"
	"sort"
	"strconv"

	"github.com/okian/giftmatch/internal/domain/types"
)

// Question is one survey item and the gift it contributes to.
type Question struct {
	ID   int                `json:"id" koanf:"id"`
	Text string             `json:"text" koanf:"text"`
	Gift types.GiftCategory `json:"giftCategory" koanf:"gift"`
}

// Choice is a selectable passion or skill with its display label.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catalog is the read-only set of mapping tables.
type Catalog struct {
	giftQuestions        map[types.GiftCategory][]int
	giftTeams            map[types.GiftCategory][]string
	giftOpportunities    map[types.GiftCategory][]int
	passionTeams         map[types.PassionCategory][]string
	passionOpportunities map[types.PassionCategory][]int
	skillTeams           map[types.SkillCategory][]string
	skillOpportunities   map[types.SkillCategory][]int
	teamOpportunity      map[string]int
	passionLabels        map[types.PassionCategory]string
	skillLabels          map[types.SkillCategory]string

	teams         []types.Team
	teamsByName   map[string]int
	opportunities []types.Opportunity
	oppsByID      map[int]int

	questionText       map[int]string
	questionDecl       map[int]types.GiftCategory
	opportunityBaseURL string
}

// New builds a Catalog from the built-in tables, then applies opts.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		giftQuestions:        defaultGiftQuestions(),
		giftTeams:            defaultGiftTeams(),
		giftOpportunities:    defaultGiftOpportunities(),
		passionTeams:         defaultPassionTeams(),
		passionOpportunities: defaultPassionOpportunities(),
		skillTeams:           defaultSkillTeams(),
		skillOpportunities:   defaultSkillOpportunities(),
		teamOpportunity:      defaultTeamOpportunity(),
		passionLabels:        defaultPassionLabels(),
		skillLabels:          defaultSkillLabels(),
		teams:                defaultTeams(),
		opportunities:        defaultOpportunities(),
		questionText:         make(map[int]string),
		questionDecl:         make(map[int]types.GiftCategory),
		opportunityBaseURL:   defaultOpportunityBaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.index()
	return c
}

func (c *Catalog) index() {
	c.teamsByName = make(map[string]int, len(c.teams))
	for i, team := range c.teams {
		c.teamsByName[team.Name] = i
	}
	c.oppsByID = make(map[int]int, len(c.opportunities))
	for i, opp := range c.opportunities {
		c.oppsByID[opp.ID] = i
	}
}

// GiftQuestions returns the question IDs summed into gift g.
func (c *Catalog) GiftQuestions(g types.GiftCategory) []int {
	return slices.Clone(c.giftQuestions[g])
}

// TeamsForGift returns the team names mapped from gift g, in table order.
func (c *Catalog) TeamsForGift(g types.GiftCategory) []string {
	return slices.Clone(c.giftTeams[g])
}

// OpportunitiesForGift returns the opportunity IDs mapped from gift g.
func (c *Catalog) OpportunitiesForGift(g types.GiftCategory) []int {
	return slices.Clone(c.giftOpportunities[g])
}

// TeamsForPassion returns the team names mapped from passion p.
func (c *Catalog) TeamsForPassion(p types.PassionCategory) []string {
	return slices.Clone(c.passionTeams[p])
}

// OpportunitiesForPassion returns the opportunity IDs mapped from passion p.
func (c *Catalog) OpportunitiesForPassion(p types.PassionCategory) []int {
	return slices.Clone(c.passionOpportunities[p])
}

// TeamsForSkill returns the team names mapped from skill s.
func (c *Catalog) TeamsForSkill(s types.SkillCategory) []string {
	return slices.Clone(c.skillTeams[s])
}

// OpportunitiesForSkill returns the opportunity IDs mapped from skill s.
func (c *Catalog) OpportunitiesForSkill(s types.SkillCategory) []int {
	return slices.Clone(c.skillOpportunities[s])
}

// OpportunityForTeam returns the single opportunity a team interest maps to.
// It reports false for unmapped teams and for the 0 sentinel.
func (c *Catalog) OpportunityForTeam(name string) (int, bool) {
	id, ok := c.teamOpportunity[name]
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// GiftsForTeam lists, in declaration order, the gifts whose table names team.
func (c *Catalog) GiftsForTeam(name string) []types.GiftCategory {
	var gifts []types.GiftCategory
	for _, g := range types.Gifts() {
		if slices.Contains(c.giftTeams[g], name) {
			gifts = append(gifts, g)
		}
	}
	return gifts
}

// Teams returns the team catalog in declaration order.
func (c *Catalog) Teams() []types.Team {
	return slices.Clone(c.teams)
}

// TeamByName looks a team up by its display name, the join key used by
// every mapping table.
func (c *Catalog) TeamByName(name string) (types.Team, bool) {
	i, ok := c.teamsByName[name]
	if !ok {
		return types.Team{}, false
	}
	return c.teams[i], true
}

// TeamByID looks a team up by its slug.
func (c *Catalog) TeamByID(id string) (types.Team, bool) {
	for _, team := range c.teams {
		if team.ID == id {
			return team, true
		}
	}
	return types.Team{}, false
}

// Opportunities returns the opportunity catalog in declaration order.
func (c *Catalog) Opportunities() []types.Opportunity {
	return slices.Clone(c.opportunities)
}

// Opportunity looks an opportunity up by id.
func (c *Catalog) Opportunity(id int) (types.Opportunity, bool) {
	i, ok := c.oppsByID[id]
	if !ok {
		return types.Opportunity{}, false
	}
	return c.opportunities[i], true
}

// OpportunityURL returns the sign-up page for opportunity id.
func (c *Catalog) OpportunityURL(id int) string {
	return c.opportunityBaseURL + strconv.Itoa(id)
}

// Questions returns every question ordered by id. Text is empty unless a
// question file was supplied.
func (c *Catalog) Questions() []Question {
	qs := make([]Question, 0, len(types.Gifts())*questionsPerGift)
	for g, ids := range c.giftQuestions {
		for _, id := range ids {
			qs = append(qs, Question{ID: id, Text: c.questionText[id], Gift: g})
		}
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })
	return qs
}

// Question looks a question up by id.
func (c *Catalog) Question(id int) (Question, bool) {
	for g, ids := range c.giftQuestions {
		if slices.Contains(ids, id) {
			return Question{ID: id, Text: c.questionText[id], Gift: g}, true
		}
	}
	return Question{}, false
}

// PassionChoices returns the passion options with their labels.
func (c *Catalog) PassionChoices() []Choice {
	out := make([]Choice, 0, len(c.passionLabels))
	for _, p := range types.Passions() {
		out = append(out, Choice{Value: string(p), Label: c.passionLabels[p]})
	}
	return out
}

// SkillChoices returns the skill options with their labels.
func (c *Catalog) SkillChoices() []Choice {
	out := make([]Choice, 0, len(c.skillLabels))
	for _, s := range types.Skills() {
		out = append(out, Choice{Value: string(s), Label: c.skillLabels[s]})
	}
	return out
}
