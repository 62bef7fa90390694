package scoring

// FactorKey identifies a biosecurity factor.
type FactorKey string

const (
	FactorNearbyOutbreaks FactorKey = "nearby_outbreaks"
	FactorVisitorControl  FactorKey = "visitor_control"
	FactorAnimalMovement  FactorKey = "animal_movement"
	FactorFeedSecurity    FactorKey = "feed_security"
	FactorWasteManagement FactorKey = "waste_management"
	FactorStaffTraining   FactorKey = "staff_training"
)

// OrdinalFactors lists the 1-5 rated factors in display order.
var OrdinalFactors = []FactorKey{
	FactorVisitorControl,
	FactorAnimalMovement,
	FactorFeedSecurity,
	FactorWasteManagement,
	FactorStaffTraining,
}

var factorLabels = map[FactorKey]string{
	FactorNearbyOutbreaks: "Disease Outbreaks Nearby",
	FactorVisitorControl:  "Visitor Access Control",
	FactorAnimalMovement:  "Animal Movement Control",
	FactorFeedSecurity:    "Feed Security & Storage",
	FactorWasteManagement: "Waste Management",
	FactorStaffTraining:   "Staff Training Level",
}

// Label returns the human-readable name of the factor, or the key itself
// when the factor is unknown.
func (k FactorKey) Label() string {
	if l, ok := factorLabels[k]; ok {
		return l
	}
	return string(k)
}

// IsKnown reports whether k names one of the six factors.
func (k FactorKey) IsKnown() bool {
	_, ok := factorLabels[k]
	return ok
}

// Rating returns the value of an ordinal factor. ok is false for the
// outbreak flag and for unknown keys.
func (f RiskFactors) Rating(k FactorKey) (v int, ok bool) {
	switch k {
	case FactorVisitorControl:
		return f.VisitorControl, true
	case FactorAnimalMovement:
		return f.AnimalMovement, true
	case FactorFeedSecurity:
		return f.FeedSecurity, true
	case FactorWasteManagement:
		return f.WasteManagement, true
	case FactorStaffTraining:
		return f.StaffTraining, true
	default:
		return 0, false
	}
}

// WithRating returns a copy of f with the ordinal factor k set to v.
// Unknown keys and the outbreak flag leave f unchanged.
func (f RiskFactors) WithRating(k FactorKey, v int) RiskFactors {
	switch k {
	case FactorVisitorControl:
		f.VisitorControl = v
	case FactorAnimalMovement:
		f.AnimalMovement = v
	case FactorFeedSecurity:
		f.FeedSecurity = v
	case FactorWasteManagement:
		f.WasteManagement = v
	case FactorStaffTraining:
		f.StaffTraining = v
	}
	return f
}

// BestPractice returns factors with every rating at 5 and no nearby outbreak.
func BestPractice() RiskFactors {
	return RiskFactors{
		VisitorControl:  MaxRating,
		AnimalMovement:  MaxRating,
		FeedSecurity:    MaxRating,
		WasteManagement: MaxRating,
		StaffTraining:   MaxRating,
	}
}
