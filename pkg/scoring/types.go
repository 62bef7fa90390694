// Package scoring implements the FarmSecure biosecurity risk scoring engine.
// It maps a farm's biosecurity factors to a bounded score, a risk level and a
// display color token, with a per-factor breakdown explaining the result.
package scoring

import "time"

// Rating bounds for the ordinal factors. 5 is the best practice, 1 the worst.
const (
	MinRating = 1
	MaxRating = 5
)

// Score bounds. Only the upper bound is enforced on the aggregate.
const (
	MinScore = 0
	MaxScore = 100
)

// RiskFactors is the set of biosecurity factors a farm is assessed on.
type RiskFactors struct {
	NearbyOutbreaks bool `json:"nearby_outbreaks" yaml:"nearby_outbreaks" toml:"nearby_outbreaks"`
	VisitorControl  int  `json:"visitor_control" yaml:"visitor_control" toml:"visitor_control" validate:"min=1,max=5"`
	AnimalMovement  int  `json:"animal_movement" yaml:"animal_movement" toml:"animal_movement" validate:"min=1,max=5"`
	FeedSecurity    int  `json:"feed_security" yaml:"feed_security" toml:"feed_security" validate:"min=1,max=5"`
	WasteManagement int  `json:"waste_management" yaml:"waste_management" toml:"waste_management" validate:"min=1,max=5"`
	StaffTraining   int  `json:"staff_training" yaml:"staff_training" toml:"staff_training" validate:"min=1,max=5"`
}

// Profile is a named set of factors, typically one farm.
type Profile struct {
	Name    string      `json:"name" yaml:"name" toml:"name"`
	Factors RiskFactors `json:"factors" yaml:"factors" toml:"factors"`
}

// Assessment is the complete output of scoring one set of factors.
// Immutable once computed.
type Assessment struct {
	ID              string         `json:"id"`
	Farm            string         `json:"farm,omitempty"`
	Factors         RiskFactors    `json:"factors"`
	RawScore        int            `json:"raw_score"` // sum before the upper clamp
	Score           int            `json:"score"`
	Level           RiskLevel      `json:"level"`
	ColorClass      string         `json:"color_class"`
	Breakdown       []MetricResult `json:"breakdown"`
	Recommendations []string       `json:"recommendations"`
	AssessedAt      time.Time      `json:"assessed_at"`
}

// MetricResult is the contribution of a single factor to the score.
type MetricResult struct {
	Key          FactorKey `json:"key"`  // machine key: "visitor_control"
	Name         string    `json:"name"` // human name: "Visitor Access Control"
	Value        int       `json:"value"`
	Weight       int       `json:"weight"`
	Contribution int       `json:"contribution"`
	Severity     Severity  `json:"severity"`
	Summary      string    `json:"summary"`
}

// Severity indicates how concerning a single factor is.
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
	SeverityInfo   Severity = "INFO"
)

// severityForRating maps an ordinal rating to a severity. Ratings outside the
// valid range land in the nearest bucket.
func severityForRating(v int) Severity {
	switch {
	case v <= 2:
		return SeverityHigh
	case v == 3:
		return SeverityMedium
	case v == 4:
		return SeverityLow
	default:
		return SeverityInfo
	}
}
