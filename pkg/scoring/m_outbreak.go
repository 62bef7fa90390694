package scoring

// OutbreakMetric adds a flat penalty when disease outbreaks are reported nearby.
type OutbreakMetric struct {
	Penalty int
}

func (m *OutbreakMetric) Key() FactorKey { return FactorNearbyOutbreaks }
func (m *OutbreakMetric) Name() string   { return FactorNearbyOutbreaks.Label() }

func (m *OutbreakMetric) Evaluate(f RiskFactors) MetricResult {
	result := MetricResult{
		Key:      m.Key(),
		Name:     m.Name(),
		Weight:   m.Penalty,
		Severity: SeverityInfo,
		Summary:  "No outbreaks reported nearby",
	}

	if f.NearbyOutbreaks {
		result.Value = 1
		result.Contribution = m.Penalty
		result.Severity = SeverityHigh
		result.Summary = "Disease outbreak reported in the vicinity"
	}

	return result
}
