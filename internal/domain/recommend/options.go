package recommend

import "slices"

// Default weights.
const (
	defaultInterestWeight   = 3
	defaultPassionWeight    = 2
	defaultSkillWeight      = 2
	defaultOpportunityLimit = 3
)

func defaultGiftWeights() []int { return []int{5, 4, 3} }

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithGiftWeights sets the points awarded to the top ranked gifts. The
// number of weights is the number of top gifts considered.
func WithGiftWeights(weights ...int) Option {
	return func(e *Engine) {
		if len(weights) > 0 {
			e.giftWeights = slices.Clone(weights)
		}
	}
}

// WithInterestWeight sets the points awarded per selected team interest.
func WithInterestWeight(w int) Option {
	return func(e *Engine) {
		if w > 0 {
			e.interestWeight = w
		}
	}
}

// WithPassionWeight sets the points awarded per passion mapping.
func WithPassionWeight(w int) Option {
	return func(e *Engine) {
		if w > 0 {
			e.passionWeight = w
		}
	}
}

// WithSkillWeight sets the points awarded per skill mapping.
func WithSkillWeight(w int) Option {
	return func(e *Engine) {
		if w > 0 {
			e.skillWeight = w
		}
	}
}

// WithOpportunityLimit caps the number of opportunities returned.
func WithOpportunityLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.opportunityLimit = n
		}
	}
}
