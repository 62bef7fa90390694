// Package dashboard computes the FarmSecure dashboard views: the overview
// aggregates, the compliance checklist, training modules and alerts. Every
// function works on an explicitly passed Dataset and returns new values.
package dashboard

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/farmsecure/farmsecure/pkg/scoring"
)

// Dataset is everything the dashboard shows for one farm.
type Dataset struct {
	Farm      string              `json:"farm" yaml:"farm" toml:"farm"`
	Factors   scoring.RiskFactors `json:"factors" yaml:"factors" toml:"factors"`
	Checklist []ChecklistItem     `json:"checklist" yaml:"checklist" toml:"checklist"`
	Training  []TrainingModule    `json:"training" yaml:"training" toml:"training"`
	Alerts    []Alert             `json:"alerts" yaml:"alerts" toml:"alerts"`
}

// Priority of a checklist item.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ChecklistItem is one compliance requirement.
type ChecklistItem struct {
	ID        int      `json:"id" yaml:"id" toml:"id"`
	Name      string   `json:"name" yaml:"name" toml:"name"`
	Category  string   `json:"category" yaml:"category" toml:"category"`
	Completed bool     `json:"completed" yaml:"completed" toml:"completed"`
	DueDate   Date     `json:"due_date" yaml:"due_date" toml:"due_date"`
	Priority  Priority `json:"priority" yaml:"priority" toml:"priority"`
}

// TrainingModule is one unit of staff training.
type TrainingModule struct {
	ID        int    `json:"id" yaml:"id" toml:"id"`
	Title     string `json:"title" yaml:"title" toml:"title"`
	Progress  int    `json:"progress" yaml:"progress" toml:"progress"` // percent, 0-100
	Completed bool   `json:"completed" yaml:"completed" toml:"completed"`
}

// AlertType classifies where an alert comes from.
type AlertType string

const (
	AlertOutbreak    AlertType = "outbreak"
	AlertRegulation  AlertType = "regulation"
	AlertWeather     AlertType = "weather"
	AlertMaintenance AlertType = "maintenance"
)

// Alert is a notification shown on the alerts panel.
type Alert struct {
	ID       int               `json:"id" yaml:"id" toml:"id"`
	Type     AlertType         `json:"type" yaml:"type" toml:"type"`
	Severity scoring.RiskLevel `json:"severity" yaml:"severity" toml:"severity"`
	Message  string            `json:"message" yaml:"message" toml:"message"`
	Location string            `json:"location,omitempty" yaml:"location,omitempty" toml:"location,omitempty"`
	Date     Date              `json:"date" yaml:"date" toml:"date"`
}

const dateLayout = "2006-01-02"

// Date is a calendar date encoded as YYYY-MM-DD.
type Date time.Time

// NewDate returns the date for year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Time returns d as a time.Time.
func (d Date) Time() time.Time { return time.Time(d) }

// IsZero reports whether d is unset.
func (d Date) IsZero() bool { return time.Time(d).IsZero() }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return time.Time(d).Format(dateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(dateLayout, string(b))
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", b, err)
	}
	*d = Date(t)
	return nil
}

// UnmarshalYAML accepts unquoted dates, which YAML would otherwise
// resolve as timestamps.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}
