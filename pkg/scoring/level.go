package scoring

import "fmt"

// RiskLevel is the ordinal bucket a score falls into.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Upper bounds (inclusive) of each bucket.
const (
	lowMax    = 25
	mediumMax = 50
	highMax   = 75
)

// Levels returns all risk levels from least to most severe.
func Levels() []RiskLevel {
	return []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}
}

// ClassifyRiskLevel maps a score to its risk level. Each bucket includes its
// upper boundary: 25 is low, 50 is medium, 75 is high.
func ClassifyRiskLevel(score int) RiskLevel {
	switch {
	case score <= lowMax:
		return RiskLow
	case score <= mediumMax:
		return RiskMedium
	case score <= highMax:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// ParseRiskLevel converts a level identifier back to a RiskLevel.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch l := RiskLevel(s); l {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return l, nil
	default:
		return "", fmt.Errorf("invalid risk level: %q", s)
	}
}

// Display color tokens, as utility-class pairs.
const (
	ColorLow      = "text-green-600 bg-green-100"
	ColorMedium   = "text-yellow-600 bg-yellow-100"
	ColorHigh     = "text-orange-600 bg-orange-100"
	ColorCritical = "text-red-600 bg-red-100"
	ColorNeutral  = "text-gray-600 bg-gray-100"
)

// ColorClassFor returns the display color token for a level. Unrecognized
// levels get the neutral token.
func ColorClassFor(level RiskLevel) string {
	switch level {
	case RiskLow:
		return ColorLow
	case RiskMedium:
		return ColorMedium
	case RiskHigh:
		return ColorHigh
	case RiskCritical:
		return ColorCritical
	default:
		return ColorNeutral
	}
}

var recommendations = map[RiskLevel][]string{
	RiskLow: {
		"Maintain current biosecurity standards",
		"Continue regular monitoring and assessments",
		"Keep up with staff training programs",
	},
	RiskMedium: {
		"Review and strengthen visitor access protocols",
		"Enhance feed storage security measures",
		"Increase staff training frequency",
	},
	RiskHigh: {
		"Immediately restrict all non-essential farm access",
		"Review and upgrade disinfection procedures",
		"Implement daily health monitoring protocols",
	},
	RiskCritical: {
		"Consider temporary operation restrictions",
		"Contact veterinary authorities immediately",
		"Implement emergency biosecurity protocols",
	},
}

// Recommendations returns the recommended actions for a level. The returned
// slice is a copy and may be modified by the caller.
func Recommendations(level RiskLevel) []string {
	recs := recommendations[level]
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}
