package surface

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/farmsecure/farmsecure/pkg/dashboard"
	"github.com/farmsecure/farmsecure/pkg/i18n"
	"github.com/farmsecure/farmsecure/pkg/scoring"
)

// RenderOverview writes the dashboard headline numbers.
func (r *TerminalRenderer) RenderOverview(w io.Writer, ov *dashboard.Overview) error {
	p := r.palette()

	title := i18n.T(r.Lang, "farm_overview")
	if ov.Farm != "" {
		title += ": " + ov.Farm
	}
	fmt.Fprintf(w, "%s\n\n", p.bold.Sprint(title))

	table := newTable(w)
	table.Append([]string{
		i18n.T(r.Lang, "risk_score"),
		fmt.Sprintf("%d/%d %s", ov.Risk.Score, scoring.MaxScore, p.level(ov.Risk.Level).Sprint(i18n.LevelLabel(r.Lang, ov.Risk.Level))),
	})
	table.Append([]string{
		i18n.T(r.Lang, "checklist_progress"),
		fmt.Sprintf("%d%% (%d/%d)", ov.ChecklistProgress, ov.ChecklistCompleted, ov.ChecklistTotal),
	})
	table.Append([]string{
		i18n.T(r.Lang, "training_progress"),
		fmt.Sprintf("%d%% (%d/%d)", ov.TrainingProgress, ov.TrainingCompleted, ov.TrainingTotal),
	})
	table.Append([]string{
		i18n.T(r.Lang, "active_alerts"),
		fmt.Sprintf("%d", ov.ActiveAlerts),
	})
	table.Render()
	fmt.Fprintln(w)

	return nil
}

// RenderChecklist writes checklist items, marking overdue ones relative to now.
func (r *TerminalRenderer) RenderChecklist(w io.Writer, items []dashboard.ChecklistItem, now time.Time) error {
	p := r.palette()

	fmt.Fprintf(w, "%s\n\n", p.bold.Sprint(i18n.T(r.Lang, "digital_checklist")))
	if len(items) == 0 {
		fmt.Fprintln(w, "No matching items.")
		return nil
	}

	table := newTable(w, "ID", "Status", "Item", "Category", "Priority", "Due")
	for _, item := range items {
		status := "[ ]"
		switch {
		case item.Completed:
			status = "[x]"
		case item.IsOverdue(now):
			status = "[!]"
		}
		table.Append([]string{
			fmt.Sprintf("%d", item.ID),
			status,
			item.Name,
			item.Category,
			strings.ToUpper(string(item.Priority)),
			item.DueDate.String(),
		})
	}
	table.Render()

	completed, pct := dashboard.ChecklistProgress(items)
	fmt.Fprintf(w, "\n%s\n", p.dim.Sprintf("%d of %d completed (%d%%)", completed, len(items), pct))
	return nil
}

// RenderTraining writes training modules with their progress.
func (r *TerminalRenderer) RenderTraining(w io.Writer, modules []dashboard.TrainingModule) error {
	p := r.palette()

	fmt.Fprintf(w, "%s\n\n", p.bold.Sprint(i18n.T(r.Lang, "training_modules")))
	if len(modules) == 0 {
		fmt.Fprintln(w, "No training modules.")
		return nil
	}

	table := newTable(w, "ID", "Module", "Progress", "")
	for _, m := range modules {
		done := ""
		if m.Completed {
			done = "completed"
		}
		table.Append([]string{
			fmt.Sprintf("%d", m.ID),
			m.Title,
			fmt.Sprintf("%s %3d%%", progressBar(m.Progress, 20), m.Progress),
			done,
		})
	}
	table.Render()

	completed, pct := dashboard.TrainingProgress(modules)
	fmt.Fprintf(w, "\n%s\n", p.dim.Sprintf("%d of %d completed (%d%% overall)", completed, len(modules), pct))
	return nil
}

// RenderAlerts writes alerts followed by the per-severity counts.
func (r *TerminalRenderer) RenderAlerts(w io.Writer, alerts []dashboard.Alert) error {
	p := r.palette()

	fmt.Fprintf(w, "%s\n\n", p.bold.Sprint(i18n.T(r.Lang, "alerts")))
	if len(alerts) == 0 {
		fmt.Fprintln(w, "No matching alerts.")
		return nil
	}

	table := newTable(w, "ID", "Severity", "Type", "Date", "Message", "Location")
	for _, a := range alerts {
		table.Append([]string{
			fmt.Sprintf("%d", a.ID),
			strings.ToUpper(string(a.Severity)),
			string(a.Type),
			a.Date.String(),
			a.Message,
			a.Location,
		})
	}
	table.Render()

	counts := dashboard.CountBySeverity(alerts)
	var parts []string
	for _, l := range scoring.Levels() {
		parts = append(parts, fmt.Sprintf("%s %d", l, counts[l]))
	}
	fmt.Fprintf(w, "\n%s\n", p.dim.Sprint(strings.Join(parts, ", ")))
	return nil
}

// RenderBatch writes one summary row per assessment.
func (r *TerminalRenderer) RenderBatch(w io.Writer, results []*scoring.Assessment) error {
	table := newTable(w, "Farm", "Score", "Level")
	for _, a := range results {
		table.Append([]string{
			a.Farm,
			fmt.Sprintf("%d", a.Score),
			i18n.LevelLabel(r.Lang, a.Level),
		})
	}
	table.Render()
	return nil
}

func progressBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
}

// RenderLabels writes every display string in the renderer's language.
func (r *TerminalRenderer) RenderLabels(w io.Writer) error {
	table := newTable(w, "Key", "Label")
	for _, k := range i18n.Keys() {
		table.Append([]string{k, i18n.T(r.Lang, k)})
	}
	table.Render()
	return nil
}
