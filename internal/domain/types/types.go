// Package types contains the closed enumerations and value types shared by
// the scoring engine, the recommendation engine and the service layer.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a string does not name a member of a
// closed enumeration.
var ErrUnknownCategory = errors.New("unknown category")

// GiftCategory is one of the 11 spiritual-gift labels.
type GiftCategory string

// Gift categories in declaration order. The order is the tie-break order
// used by ranking.
const (
	Administration GiftCategory = "administration"
	Evangelism     GiftCategory = "evangelism"
	Exhortation    GiftCategory = "exhortation"
	Giving         GiftCategory = "giving"
	Hospitality    GiftCategory = "hospitality"
	Leadership     GiftCategory = "leadership"
	Mercy          GiftCategory = "mercy"
	Pastoring      GiftCategory = "pastoring"
	Serving        GiftCategory = "serving"
	Teaching       GiftCategory = "teaching"
	Wisdom         GiftCategory = "wisdom"
)

var allGifts = [...]GiftCategory{
	Administration, Evangelism, Exhortation, Giving, Hospitality, Leadership,
	Mercy, Pastoring, Serving, Teaching, Wisdom,
}

// Gifts returns every gift category in declaration order.
func Gifts() []GiftCategory {
	out := make([]GiftCategory, len(allGifts))
	copy(out, allGifts[:])
	return out
}

// GiftCount is the size of the gift enumeration.
const GiftCount = len(allGifts)

// Valid reports whether g is a member of the enumeration.
func (g GiftCategory) Valid() bool {
	for _, v := range allGifts {
		if v == g {
			return true
		}
	}
	return false
}

// DisplayName returns the gift label with its first letter upper-cased,
// e.g. "Teaching".
func (g GiftCategory) DisplayName() string {
	if g == "" {
		return ""
	}
	s := string(g)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseGift converts s into a GiftCategory.
func ParseGift(s string) (GiftCategory, error) {
	g := GiftCategory(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("gift %q: %w", s, ErrUnknownCategory)
	}
	return g, nil
}

// PassionCategory is one of the 11 self-reported passion areas.
type PassionCategory string

// Passion categories.
const (
	PassionEducation    PassionCategory = "Education"
	PassionAbuse        PassionCategory = "Abuse"
	PassionFinances     PassionCategory = "Finances"
	PassionPoverty      PassionCategory = "Poverty"
	PassionArtsMusic    PassionCategory = "Arts/Music"
	PassionOutdoors     PassionCategory = "Outdoors"
	PassionMarriage     PassionCategory = "Marriage"
	PassionSafety       PassionCategory = "Safety"
	PassionConstruction PassionCategory = "Construction"
	PassionParenting    PassionCategory = "Parenting"
	PassionHealth       PassionCategory = "Health"
)

var allPassions = [...]PassionCategory{
	PassionEducation, PassionAbuse, PassionFinances, PassionPoverty,
	PassionArtsMusic, PassionOutdoors, PassionMarriage, PassionSafety,
	PassionConstruction, PassionParenting, PassionHealth,
}

// Passions returns every passion category in declaration order.
func Passions() []PassionCategory {
	out := make([]PassionCategory, len(allPassions))
	copy(out, allPassions[:])
	return out
}

// Valid reports whether p is a member of the enumeration.
func (p PassionCategory) Valid() bool {
	for _, v := range allPassions {
		if v == p {
			return true
		}
	}
	return false
}

// ParsePassion converts s into a PassionCategory. Matching is exact.
func ParsePassion(s string) (PassionCategory, error) {
	p := PassionCategory(s)
	if !p.Valid() {
		return "", fmt.Errorf("passion %q: %w", s, ErrUnknownCategory)
	}
	return p, nil
}

// SkillCategory is one of the 7 self-reported skill areas.
type SkillCategory string

// Skill categories.
const (
	SkillTeaching   SkillCategory = "Teaching"
	SkillTangibly   SkillCategory = "Tangibly"
	SkillGiving     SkillCategory = "Giving"
	SkillCooking    SkillCategory = "Cooking"
	SkillOrganizing SkillCategory = "Organizing"
	SkillCounseling SkillCategory = "Counseling"
	SkillDesigning  SkillCategory = "Designing"
)

var allSkills = [...]SkillCategory{
	SkillTeaching, SkillTangibly, SkillGiving, SkillCooking,
	SkillOrganizing, SkillCounseling, SkillDesigning,
}

// Skills returns every skill category in declaration order.
func Skills() []SkillCategory {
	out := make([]SkillCategory, len(allSkills))
	copy(out, allSkills[:])
	return out
}

// Valid reports whether s is a member of the enumeration.
func (s SkillCategory) Valid() bool {
	for _, v := range allSkills {
		if v == s {
			return true
		}
	}
	return false
}

// ParseSkill converts s into a SkillCategory. Matching is exact.
func ParseSkill(s string) (SkillCategory, error) {
	k := SkillCategory(s)
	if !k.Valid() {
		return "", fmt.Errorf("skill %q: %w", s, ErrUnknownCategory)
	}
	return k, nil
}

// QuestionResponse is a single survey answer. The validate tags describe the
// survey scale; scoring itself accepts any integer.
type QuestionResponse struct {
	QuestionID  int `json:"questionId" validate:"gt=0"`
	AnswerValue int `json:"answerValue" validate:"min=1,max=4"`
}

// GiftScores maps every gift to its summed answer total.
type GiftScores map[GiftCategory]int

// GiftScore pairs a gift with its score in ranked output.
type GiftScore struct {
	Gift  GiftCategory `json:"gift"`
	Score int          `json:"score"`
}

// Team is a ministry team from the static catalog.
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// Opportunity is a sign-up slot in the external volunteer system.
type Opportunity struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MatchType classifies why a team was recommended.
type MatchType string

// Match types.
const (
	MatchPerfect      MatchType = "perfect"
	MatchGiftBased    MatchType = "gift-based"
	MatchUserInterest MatchType = "user-interest"
	MatchProfileBased MatchType = "profile-based"
)

// Recommendation is a ranked team recommendation. GiftMatch is empty when
// no gift contributed.
type Recommendation struct {
	Team      Team         `json:"team"`
	MatchType MatchType    `json:"matchType"`
	GiftMatch GiftCategory `json:"giftMatch,omitempty"`
	Priority  int          `json:"priority"`
}

// SignUpOpportunity is a recommended opportunity with a human-readable reason.
type SignUpOpportunity struct {
	Opportunity
	Reason string `json:"reason"`
}
