package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/farmsecure/farmsecure/pkg/i18n"
	"github.com/farmsecure/farmsecure/pkg/scoring"
)

// TerminalRenderer renders an Assessment as colored terminal output.
// Color is disabled when NoColor is set or the NO_COLOR environment
// variable is present.
type TerminalRenderer struct {
	Lang    i18n.Language
	NoColor bool
}

type palette struct {
	bold   *color.Color
	dim    *color.Color
	green  *color.Color
	yellow *color.Color
	orange *color.Color
	red    *color.Color
}

func (r *TerminalRenderer) palette() *palette {
	p := &palette{
		bold:   color.New(color.Bold),
		dim:    color.New(color.Faint),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		orange: color.New(color.FgHiRed),
		red:    color.New(color.FgRed, color.Bold),
	}
	// fatih/color disables itself when stdout is not a terminal; the
	// writer here may be anything, so decide per renderer.
	disable := r.noColor()
	for _, c := range []*color.Color{p.bold, p.dim, p.green, p.yellow, p.orange, p.red} {
		if disable {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return p
}

func (r *TerminalRenderer) noColor() bool {
	if r.NoColor {
		return true
	}
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func (p *palette) level(l scoring.RiskLevel) *color.Color {
	switch l {
	case scoring.RiskLow:
		return p.green
	case scoring.RiskMedium:
		return p.yellow
	case scoring.RiskHigh:
		return p.orange
	default:
		return p.red
	}
}

func (r *TerminalRenderer) Render(w io.Writer, a *scoring.Assessment) error {
	p := r.palette()

	// Header
	fmt.Fprintf(w, "%s  %s\n",
		p.bold.Sprintf("%s: %d/%d", i18n.T(r.Lang, "risk_score"), a.Score, scoring.MaxScore),
		p.level(a.Level).Sprint(i18n.LevelLabel(r.Lang, a.Level)))
	if a.Farm != "" {
		fmt.Fprintf(w, "%s\n", p.dim.Sprint(a.Farm))
	}
	if a.RawScore > a.Score {
		fmt.Fprintf(w, "%s\n", p.dim.Sprintf("raw score %d capped at %d", a.RawScore, scoring.MaxScore))
	}
	fmt.Fprintln(w)

	// Breakdown
	table := newTable(w, "Factor", "Rating", "Weight", "Contribution", "Severity")
	for _, mr := range a.Breakdown {
		table.Append([]string{
			mr.Name,
			ratingCell(mr),
			fmt.Sprintf("%d", mr.Weight),
			fmt.Sprintf("%+d", mr.Contribution),
			string(mr.Severity),
		})
	}
	table.Render()
	fmt.Fprintln(w)

	// Recommendations
	if len(a.Recommendations) > 0 {
		fmt.Fprintln(w, "Recommendations:")
		for _, rec := range a.Recommendations {
			lines := wrapText(rec, 70)
			for i, line := range lines {
				if i == 0 {
					fmt.Fprintf(w, "  • %s\n", line)
					continue
				}
				fmt.Fprintf(w, "    %s\n", line)
			}
		}
		fmt.Fprintln(w)
	}

	return nil
}

func ratingCell(mr scoring.MetricResult) string {
	if mr.Key == scoring.FactorNearbyOutbreaks {
		if mr.Value != 0 {
			return "yes"
		}
		return "no"
	}
	return fmt.Sprintf("%d/%d", mr.Value, scoring.MaxRating)
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	if len(header) > 0 {
		table.SetHeader(header)
	}
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator(" ")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
