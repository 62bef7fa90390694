package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/farmsecure/farmsecure/pkg/i18n"
	"github.com/farmsecure/farmsecure/pkg/scoring"
)

// ReportRenderer writes an Assessment as a Markdown report.
type ReportRenderer struct {
	Lang i18n.Language
}

func (r *ReportRenderer) Render(w io.Writer, a *scoring.Assessment) error {
	_, err := io.WriteString(w, r.BuildReport(a).Summary)
	return err
}

// BuildReport creates the ReportData for an Assessment.
func (r *ReportRenderer) BuildReport(a *scoring.Assessment) ReportData {
	title := fmt.Sprintf("%s: %d/%d (%s)",
		i18n.T(r.Lang, "risk_score"), a.Score, scoring.MaxScore, i18n.LevelLabel(r.Lang, a.Level))

	conclusion := levelToConclusion(a.Level)
	return ReportData{
		Title:      title,
		Summary:    r.buildMarkdown(title, conclusion, a),
		Conclusion: conclusion,
	}
}

func levelToConclusion(l scoring.RiskLevel) string {
	switch l {
	case scoring.RiskLow:
		return "success"
	case scoring.RiskMedium:
		return "neutral"
	default:
		return "failure"
	}
}

func (r *ReportRenderer) buildMarkdown(title, conclusion string, a *scoring.Assessment) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## %s\n\n", title)
	if a.Farm != "" {
		fmt.Fprintf(&sb, "**Farm:** %s\n\n", a.Farm)
	}
	fmt.Fprintf(&sb, "**Conclusion:** %s\n\n", conclusion)
	if a.RawScore > a.Score {
		fmt.Fprintf(&sb, "_Raw score %d capped at %d._\n\n", a.RawScore, scoring.MaxScore)
	}

	sb.WriteString("### Factors\n\n")
	sb.WriteString("| Factor | Rating | Contribution | Severity |\n")
	sb.WriteString("|--------|--------|--------------|----------|\n")
	for _, mr := range a.Breakdown {
		fmt.Fprintf(&sb, "| %s %s | %s | %+d | %s |\n",
			severityIcon(mr.Severity), mr.Name, ratingCell(mr), mr.Contribution, mr.Severity)
	}
	sb.WriteString("\n")

	if len(a.Recommendations) > 0 {
		sb.WriteString("### Recommendations\n\n")
		for _, rec := range a.Recommendations {
			fmt.Fprintf(&sb, "- %s\n", rec)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func severityIcon(sev scoring.Severity) string {
	switch sev {
	case scoring.SeverityHigh:
		return ":red_circle:"
	case scoring.SeverityMedium:
		return ":orange_circle:"
	case scoring.SeverityLow:
		return ":yellow_circle:"
	default:
		return ":white_check_mark:"
	}
}
