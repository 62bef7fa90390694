package scoring

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Metric is the interface that all factor metrics implement.
type Metric interface {
	// Key returns the factor this metric scores.
	Key() FactorKey
	// Name returns the human-readable metric name.
	Name() string
	// Evaluate computes the metric's score contribution for a set of factors.
	Evaluate(f RiskFactors) MetricResult
}

// Engine runs all configured metrics against a set of factors and produces
// an Assessment. An Engine holds only immutable configuration and is safe
// for concurrent use.
type Engine struct {
	metrics []Metric
	policy  InputPolicy
	now     func() time.Time
	logger  *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics replaces the default metrics.
func WithMetrics(metrics ...Metric) Option {
	return func(e *Engine) { e.metrics = metrics }
}

// WithWeights uses the standard metrics with the given weights.
func WithWeights(w Weights) Option {
	return func(e *Engine) { e.metrics = MetricsFor(w) }
}

// WithPolicy sets how out-of-range ratings are handled.
func WithPolicy(p InputPolicy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithClock sets the time source used to stamp assessments.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the engine's logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates a scoring engine. Without options it uses the default
// weights and the strict input policy.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		metrics: DefaultMetrics(),
		policy:  PolicyStrict,
		now:     time.Now,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy returns the engine's input policy.
func (e *Engine) Policy() InputPolicy { return e.policy }

// Assess scores f and produces a complete Assessment.
func (e *Engine) Assess(f RiskFactors) (*Assessment, error) {
	return e.AssessProfile(Profile{Factors: f})
}

// AssessProfile scores a named profile.
func (e *Engine) AssessProfile(p Profile) (*Assessment, error) {
	f, err := e.policy.apply(p.Factors)
	if err != nil {
		return nil, err
	}

	result := &Assessment{
		ID:         uuid.NewString(),
		Farm:       p.Name,
		Factors:    f,
		AssessedAt: e.now().UTC(),
	}

	for _, m := range e.metrics {
		mr := m.Evaluate(f)
		result.Breakdown = append(result.Breakdown, mr)
		result.RawScore += mr.Contribution
	}

	result.Score = clampScore(result.RawScore)
	result.Level = ClassifyRiskLevel(result.Score)
	result.ColorClass = ColorClassFor(result.Level)
	result.Recommendations = Recommendations(result.Level)

	e.logger.Debug("assessed factors",
		zap.String("id", result.ID),
		zap.String("farm", result.Farm),
		zap.Int("raw_score", result.RawScore),
		zap.Int("score", result.Score),
		zap.String("level", string(result.Level)))

	return result, nil
}

var defaultMetrics = DefaultMetrics()

// ComputeRiskScore returns the risk score of f using the default weights.
// Ratings are used as given: out-of-range values are not rejected or
// clamped, and only the aggregate is capped at 100.
func ComputeRiskScore(f RiskFactors) int {
	raw := 0
	for _, m := range defaultMetrics {
		raw += m.Evaluate(f).Contribution
	}
	return clampScore(raw)
}

// clampScore caps the aggregate at MaxScore. There is no lower clamp.
func clampScore(raw int) int {
	if raw > MaxScore {
		return MaxScore
	}
	return raw
}
