package senses

import "math"

// TestResult represents the output of a single statistical test
type TestResult struct {
	TestName    string  `json:"test_name"`
	Statistic   float64 `json:"statistic"`
	PValue      float64 `json:"p_value"`
	DF          float64 `json:"degrees_freedom"`
	EffectSize  float64 `json:"effect_size"`
	Signal      string  `json:"signal"`      // "weak", "moderate", "strong", "very_strong"
	Description string  `json:"description"` // Human-readable explanation
}

// classifySignal converts effect size to signal strength
func classifySignal(effectSize float64) string {
	absEffect := math.Abs(effectSize)
	if absEffect < 0.2 {
		return "weak"
	} else if absEffect < 0.5 {
		return "moderate"
	} else if absEffect < 0.8 {
		return "strong"
	}
	return "very_strong"
}
