package scoring

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidFactors is returned when factors fall outside the rating range
// under the strict input policy.
var ErrInvalidFactors = errors.New("invalid risk factors")

// InputPolicy decides how out-of-range ratings are handled before scoring.
type InputPolicy string

const (
	// PolicyStrict rejects any rating outside [1,5]. A zero rating is
	// treated as a missing field and rejected too.
	PolicyStrict InputPolicy = "strict"
	// PolicyClamp moves each rating into [1,5] before scoring.
	PolicyClamp InputPolicy = "clamp"
	// PolicyPassthrough scores ratings as given. Only the aggregate upper
	// bound is enforced, so the score may be negative.
	PolicyPassthrough InputPolicy = "passthrough"
)

// ParseInputPolicy converts a config string to an InputPolicy. The empty
// string selects PolicyStrict.
func ParseInputPolicy(s string) (InputPolicy, error) {
	switch p := InputPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyStrict, nil
	case PolicyStrict, PolicyClamp, PolicyPassthrough:
		return p, nil
	default:
		return "", fmt.Errorf("invalid input policy %q (want strict, clamp or passthrough)", s)
	}
}

var factorValidator = newFactorValidator()

func newFactorValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their wire names so errors match what users wrote.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that every ordinal rating lies in [1,5]. The returned
// error wraps ErrInvalidFactors and names each offending field.
func (f RiskFactors) Validate() error {
	err := factorValidator.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidFactors, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v must be between %d and %d", fe.Field(), fe.Value(), MinRating, MaxRating))
	}
	return fmt.Errorf("%w: %s", ErrInvalidFactors, strings.Join(msgs, "; "))
}

// Clamped returns a copy of f with each rating moved into [1,5].
func (f RiskFactors) Clamped() RiskFactors {
	for _, k := range OrdinalFactors {
		v, _ := f.Rating(k)
		f = f.WithRating(k, clampInt(v, MinRating, MaxRating))
	}
	return f
}

// apply runs the policy over f, returning the factors to score.
func (p InputPolicy) apply(f RiskFactors) (RiskFactors, error) {
	switch p {
	case PolicyClamp:
		return f.Clamped(), nil
	case PolicyPassthrough:
		return f, nil
	default:
		if err := f.Validate(); err != nil {
			return f, err
		}
		return f, nil
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
