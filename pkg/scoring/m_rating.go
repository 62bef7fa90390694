package scoring

import "fmt"

// RatingMetric scores one ordinal factor. The 1-5 scale is inverted so that a
// rating of 5 contributes one Weight and a rating of 1 contributes 5 * Weight.
// Ratings are not clamped here; input policy is applied by the Engine.
type RatingMetric struct {
	Factor FactorKey
	Weight int
}

func (m *RatingMetric) Key() FactorKey { return m.Factor }
func (m *RatingMetric) Name() string   { return m.Factor.Label() }

func (m *RatingMetric) Evaluate(f RiskFactors) MetricResult {
	v, _ := f.Rating(m.Factor)
	c := (MaxRating + 1 - v) * m.Weight

	return MetricResult{
		Key:          m.Key(),
		Name:         m.Name(),
		Value:        v,
		Weight:       m.Weight,
		Contribution: c,
		Severity:     severityForRating(v),
		Summary:      fmt.Sprintf("rated %d/%d (%+d)", v, MaxRating, c),
	}
}
