package scoring

// DefaultMetrics returns the standard set of factor metrics with default weights.
func DefaultMetrics() []Metric {
	return MetricsFor(DefaultWeights())
}

// MetricsFor returns one metric per factor, weighted by w, in display order.
func MetricsFor(w Weights) []Metric {
	metrics := []Metric{
		&OutbreakMetric{Penalty: w.NearbyOutbreaks},
	}
	for _, k := range OrdinalFactors {
		metrics = append(metrics, &RatingMetric{Factor: k, Weight: w.Of(k)})
	}
	return metrics
}
