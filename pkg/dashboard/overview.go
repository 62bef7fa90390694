package dashboard

import (
	"fmt"
	"math"

	"github.com/farmsecure/farmsecure/pkg/scoring"
)

// Overview holds the headline numbers of the dashboard.
type Overview struct {
	Farm               string              `json:"farm,omitempty"`
	Risk               *scoring.Assessment `json:"risk"`
	ChecklistCompleted int                 `json:"checklist_completed"`
	ChecklistTotal     int                 `json:"checklist_total"`
	ChecklistProgress  int                 `json:"checklist_progress"` // percent
	TrainingCompleted  int                 `json:"training_completed"`
	TrainingTotal      int                 `json:"training_total"`
	TrainingProgress   int                 `json:"training_progress"` // percent
	ActiveAlerts       int                 `json:"active_alerts"`
}

// BuildOverview assesses the dataset's factors with engine and aggregates
// the checklist, training and alert sections.
func BuildOverview(engine *scoring.Engine, ds *Dataset) (*Overview, error) {
	if ds == nil {
		return nil, fmt.Errorf("dataset is nil")
	}

	risk, err := engine.AssessProfile(scoring.Profile{Name: ds.Farm, Factors: ds.Factors})
	if err != nil {
		return nil, fmt.Errorf("assessing farm factors: %w", err)
	}

	ov := &Overview{
		Farm:           ds.Farm,
		Risk:           risk,
		ChecklistTotal: len(ds.Checklist),
		TrainingTotal:  len(ds.Training),
		ActiveAlerts:   ActiveAlertCount(ds.Alerts),
	}
	ov.ChecklistCompleted, ov.ChecklistProgress = ChecklistProgress(ds.Checklist)
	ov.TrainingCompleted, ov.TrainingProgress = TrainingProgress(ds.Training)

	return ov, nil
}

// percent returns round(part/total*100), rounding halves up, or 0 when total is 0.
func percent(part, total float64) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(part/total*100 + 0.5))
}
