package model

import (
	"strings"
	"time"

	"github.com/okian/giftmatch/internal/domain/assessment"
	"github.com/okian/giftmatch/internal/domain/types"
)

// Assessment is a stored submission together with the result computed for it.
type Assessment struct {
	ID            string                   `json:"id"`
	FirstName     string                   `json:"firstName"`
	LastName      string                   `json:"lastName"`
	Email         string                   `json:"email"`
	CreatedAt     time.Time                `json:"createdAt"`
	Responses     []types.QuestionResponse `json:"responses"`
	TeamInterests []string                 `json:"teamInterests"`
	Passions      []types.PassionCategory  `json:"passions"`
	Skills        []types.SkillCategory    `json:"skills"`
	Result        assessment.Result        `json:"result"`
}

// TopGift returns the i-th ranked gift, or "" when there is none.
func (a Assessment) TopGift(i int) types.GiftCategory {
	if i < 0 || i >= len(a.Result.TopGifts) {
		return ""
	}
	return a.Result.TopGifts[i].Gift
}

// ListFilter narrows an assessment listing. Zero fields do not filter.
type ListFilter struct {
	// Search matches a case-insensitive substring of first name, last name
	// or email.
	Search  string
	TopGift types.GiftCategory
	// Start and End bound CreatedAt, both inclusive.
	Start time.Time
	End   time.Time
	Limit int
}

// Matches reports whether a passes every set criterion.
func (f ListFilter) Matches(a Assessment) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.FirstName), q) &&
			!strings.Contains(strings.ToLower(a.LastName), q) &&
			!strings.Contains(strings.ToLower(a.Email), q) {
			return false
		}
	}
	if f.TopGift != "" && a.TopGift(0) != f.TopGift {
		return false
	}
	if !f.Start.IsZero() && a.CreatedAt.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && a.CreatedAt.After(f.End) {
		return false
	}
	return true
}

// DateLayout is the calendar date format accepted by list filters.
const DateLayout = "2006-01-02"

// StartOfDay parses a calendar date as its first instant in UTC.
func StartOfDay(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// EndOfDay parses a calendar date as its last second in UTC, so that an end
// date includes the whole day.
func EndOfDay(s string) (time.Time, error) {
	d, err := StartOfDay(s)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(24*time.Hour - time.Second), nil
}

// Summary is the public view of a stored result. It leaves out contact
// details and raw answers.
type Summary struct {
	AssessmentID string    `json:"assessmentId"`
	FirstName    string    `json:"firstName"`
	CreatedAt    time.Time `json:"createdAt"`
	assessment.Result
}

// Summary returns the public view of a.
func (a Assessment) Summary() Summary {
	return Summary{AssessmentID: a.ID, FirstName: a.FirstName, CreatedAt: a.CreatedAt, Result: a.Result}
}
