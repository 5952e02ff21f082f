package matching

import (
	"fmt"
	"math"
)

// weightTolerance is how far the weight sum may drift from 1.0.
const weightTolerance = 1e-6

// Weights are the contributions of each sub-score to the overall score.
// They must be non-negative and sum to 1.0.
type Weights struct {
	Skills     float64 `json:"skills" mapstructure:"skills"`
	Experience float64 `json:"experience" mapstructure:"experience"`
	Education  float64 `json:"education" mapstructure:"education"`
}

// DefaultWeights returns the 50/30/20 split.
func DefaultWeights() Weights {
	return Weights{Skills: 0.5, Experience: 0.3, Education: 0.2}
}

// NewWeights builds validated weights.
func NewWeights(skills, experience, education float64) (Weights, error) {
	w := Weights{Skills: skills, Experience: experience, Education: education}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}

// Validate returns *ConfigurationError when a weight is negative or not a
// number, or when the weights do not sum to 1.0.
func (w Weights) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"weights.skills", w.Skills},
		{"weights.experience", w.Experience},
		{"weights.education", w.Education},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ConfigurationError{Field: f.name, Message: "must be a finite number"}
		}
		if f.value < 0 {
			return &ConfigurationError{Field: f.name, Message: fmt.Sprintf("must not be negative, got %g", f.value)}
		}
	}

	if sum := w.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return &ConfigurationError{Field: "weights", Message: fmt.Sprintf("must sum to 1.0, got %g", sum)}
	}
	return nil
}

// Sum returns the total of the three weights.
func (w Weights) Sum() float64 {
	return w.Skills + w.Experience + w.Education
}

// Combine returns the weighted sum of the three sub-scores.
func (w Weights) Combine(skills, experience, education float64) float64 {
	return w.Skills*skills + w.Experience*experience + w.Education*education
}
