package dashboard

import (
	"fmt"
	"time"
)

// StatusFilter selects checklist items by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusCompleted StatusFilter = "completed"
	StatusPending   StatusFilter = "pending"
	StatusOverdue   StatusFilter = "overdue"
)

// AllCategories is the category filter that matches every item.
const AllCategories = "all"

// ParseStatusFilter converts a string to a StatusFilter. The empty string
// selects StatusAll.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(s); f {
	case "":
		return StatusAll, nil
	case StatusAll, StatusCompleted, StatusPending, StatusOverdue:
		return f, nil
	default:
		return "", fmt.Errorf("invalid status filter %q (want all, completed, pending or overdue)", s)
	}
}

// IsOverdue reports whether the item was due before now and is not completed.
// Items without a due date are never overdue.
func (c ChecklistItem) IsOverdue(now time.Time) bool {
	return !c.Completed && !c.DueDate.IsZero() && c.DueDate.Time().Before(now)
}

// FilterChecklist returns the items matching status and category.
func FilterChecklist(items []ChecklistItem, status StatusFilter, category string, now time.Time) []ChecklistItem {
	var out []ChecklistItem
	for _, item := range items {
		switch status {
		case StatusCompleted:
			if !item.Completed {
				continue
			}
		case StatusPending:
			if item.Completed {
				continue
			}
		case StatusOverdue:
			if !item.IsOverdue(now) {
				continue
			}
		}

		if category != "" && category != AllCategories && item.Category != category {
			continue
		}

		out = append(out, item)
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func Categories(items []ChecklistItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		out = append(out, item.Category)
	}
	return out
}

// ToggleItem returns a copy of items with the completion of item id flipped.
func ToggleItem(items []ChecklistItem, id int) []ChecklistItem {
	out := make([]ChecklistItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
		}
	}
	return out
}

// ChecklistProgress returns the number of completed items and the completed
// percentage.
func ChecklistProgress(items []ChecklistItem) (completed, pct int) {
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	return completed, percent(float64(completed), float64(len(items)))
}

// PriorityColorClass returns the display color token for a priority.
func PriorityColorClass(p Priority) string {
	switch p {
	case PriorityHigh:
		return "text-red-600 bg-red-100 border-red-200"
	case PriorityMedium:
		return "text-yellow-600 bg-yellow-100 border-yellow-200"
	case PriorityLow:
		return "text-green-600 bg-green-100 border-green-200"
	default:
		return "text-gray-600 bg-gray-100 border-gray-200"
	}
}
