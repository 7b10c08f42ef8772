package model

import "github.com/okian/giftmatch/internal/domain/types"

// Notification summarizes a new assessment for staff.
type Notification struct {
	AssessmentID  string
	FirstName     string
	LastName      string
	Email         string
	TopGifts      []types.GiftScore
	TeamInterests []string
	ResultsURL    string
	AdminURL      string
}
