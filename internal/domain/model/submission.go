// Package model contains domain models passed between layers.
package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/okian/giftmatch/internal/domain/assessment"
	"github.com/okian/giftmatch/internal/domain/types"
)

// Submission is a completed questionnaire as posted by a client.
type Submission struct {
	FirstName            string                   `json:"firstName" validate:"required,max=100"`
	LastName             string                   `json:"lastName" validate:"required,max=100"`
	Email                string                   `json:"email" validate:"required,email,max=254"`
	Responses            []types.QuestionResponse `json:"responses" validate:"max=200,dive"`
	TeamInterests        []string                 `json:"teamInterests" validate:"max=20,unique,dive,required,max=100"`
	Passions             []types.PassionCategory  `json:"passions" validate:"unique,dive,passion"`
	Skills               []types.SkillCategory    `json:"skills" validate:"unique,dive,skill"`
	IncludeOpportunities bool                     `json:"includeOpportunities"`
	IdempotencyKey       string                   `json:"idempotencyKey,omitempty" validate:"omitempty,max=128"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("passion", func(fl validator.FieldLevel) bool {
		return types.PassionCategory(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("skill", func(fl validator.FieldLevel) bool {
		return types.SkillCategory(fl.Field().String()).Valid()
	})
	return v
}

// Normalize trims whitespace from the contact fields.
func (s *Submission) Normalize() {
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.LastName = strings.TrimSpace(s.LastName)
	s.Email = strings.TrimSpace(s.Email)
	s.IdempotencyKey = strings.TrimSpace(s.IdempotencyKey)
}

// Validate checks the submission. The returned error wraps
// ErrInvalidSubmission and names the first failing field.
func (s Submission) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		return fmt.Errorf("%w: %s - %s", ErrInvalidSubmission, ve.Namespace(), ve.Tag())
	}
	return fmt.Errorf("%w: %w", ErrInvalidSubmission, err)
}

// Input converts the submission into engine input.
func (s Submission) Input() assessment.Input {
	return assessment.Input{
		Responses:            s.Responses,
		TeamInterests:        s.TeamInterests,
		Passions:             s.Passions,
		Skills:               s.Skills,
		IncludeOpportunities: s.IncludeOpportunities,
	}
}
