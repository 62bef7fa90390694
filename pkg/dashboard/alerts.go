package dashboard

import "github.com/farmsecure/farmsecure/pkg/scoring"

// AllAlerts is the type or severity filter that matches every alert.
const AllAlerts = "all"

// FilterAlerts returns the alerts matching typ and severity. Either filter
// may be "all" or empty to match everything.
func FilterAlerts(alerts []Alert, typ, severity string) []Alert {
	var out []Alert
	for _, a := range alerts {
		if typ != "" && typ != AllAlerts && string(a.Type) != typ {
			continue
		}
		if severity != "" && severity != AllAlerts && string(a.Severity) != severity {
			continue
		}
		out = append(out, a)
	}
	return out
}

// DismissAlert returns alerts without the alert with the given id.
func DismissAlert(alerts []Alert, id int) []Alert {
	out := make([]Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}

// CountBySeverity returns the number of alerts at each severity.
func CountBySeverity(alerts []Alert) map[scoring.RiskLevel]int {
	counts := make(map[scoring.RiskLevel]int, len(scoring.Levels()))
	for _, l := range scoring.Levels() {
		counts[l] = 0
	}
	for _, a := range alerts {
		counts[a.Severity]++
	}
	return counts
}

// ActiveAlertCount returns the number of high and critical alerts.
func ActiveAlertCount(alerts []Alert) int {
	n := 0
	for _, a := range alerts {
		if a.Severity == scoring.RiskHigh || a.Severity == scoring.RiskCritical {
			n++
		}
	}
	return n
}

// SeverityColorClass returns the display color token for an alert severity.
func SeverityColorClass(s scoring.RiskLevel) string {
	switch s {
	case scoring.RiskCritical:
		return "bg-red-100 text-red-800 border-red-200"
	case scoring.RiskHigh:
		return "bg-orange-100 text-orange-800 border-orange-200"
	case scoring.RiskMedium:
		return "bg-yellow-100 text-yellow-800 border-yellow-200"
	case scoring.RiskLow:
		return "bg-blue-100 text-blue-800 border-blue-200"
	default:
		return "bg-gray-100 text-gray-800 border-gray-200"
	}
}

// TypeColorClass returns the display color token for an alert type.
func TypeColorClass(t AlertType) string {
	switch t {
	case AlertOutbreak:
		return "bg-red-100 text-red-600"
	case AlertRegulation:
		return "bg-blue-100 text-blue-600"
	case AlertWeather:
		return "bg-green-100 text-green-600"
	case AlertMaintenance:
		return "bg-purple-100 text-purple-600"
	default:
		return "bg-gray-100 text-gray-600"
	}
}
