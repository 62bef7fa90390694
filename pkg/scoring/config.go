package scoring

import (
	"fmt"
	"sort"
)

// Weights holds the scoring weight of every factor.
type Weights struct {
	// Flat penalty when an outbreak is reported nearby.
	NearbyOutbreaks int

	// Per-point penalties for the ordinal factors. A factor contributes
	// (6 - rating) * weight: one weight unit at 5, five at 1.
	VisitorControl  int
	AnimalMovement  int
	FeedSecurity    int
	WasteManagement int
	StaffTraining   int
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		NearbyOutbreaks: 30,

		VisitorControl:  8,
		AnimalMovement:  6,
		FeedSecurity:    8,
		WasteManagement: 6,
		StaffTraining:   7,
	}
}

// Of returns the weight for a factor key.
func (w Weights) Of(k FactorKey) int {
	switch k {
	case FactorNearbyOutbreaks:
		return w.NearbyOutbreaks
	case FactorVisitorControl:
		return w.VisitorControl
	case FactorAnimalMovement:
		return w.AnimalMovement
	case FactorFeedSecurity:
		return w.FeedSecurity
	case FactorWasteManagement:
		return w.WasteManagement
	case FactorStaffTraining:
		return w.StaffTraining
	default:
		return 0
	}
}

// WithOverrides returns a copy of w with the given per-factor weights
// applied. Keys must be factor keys and weights must be non-negative.
func (w Weights) WithOverrides(overrides map[string]int) (Weights, error) {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := overrides[k]
		if v < 0 {
			return w, fmt.Errorf("weight for %s must be non-negative, got %d", k, v)
		}
		switch FactorKey(k) {
		case FactorNearbyOutbreaks:
			w.NearbyOutbreaks = v
		case FactorVisitorControl:
			w.VisitorControl = v
		case FactorAnimalMovement:
			w.AnimalMovement = v
		case FactorFeedSecurity:
			w.FeedSecurity = v
		case FactorWasteManagement:
			w.WasteManagement = v
		case FactorStaffTraining:
			w.StaffTraining = v
		default:
			return w, fmt.Errorf("unknown factor %q in weights", k)
		}
	}
	return w, nil
}
