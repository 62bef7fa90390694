// Package surface defines output rendering for FarmSecure results.
// Implementations handle different output targets: terminal, JSON and a
// Markdown report.
package surface

import (
	"fmt"
	"io"

	"github.com/farmsecure/farmsecure/pkg/i18n"
	"github.com/farmsecure/farmsecure/pkg/scoring"
)

// Renderer produces formatted output from an Assessment.
type Renderer interface {
	// Render writes the formatted assessment to the writer.
	Render(w io.Writer, a *scoring.Assessment) error
}

// Output formats accepted by ForFormat.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// ForFormat returns the renderer for an output format name.
func ForFormat(format string, lang i18n.Language, noColor bool) (Renderer, error) {
	switch format {
	case FormatText, "":
		return &TerminalRenderer{Lang: lang, NoColor: noColor}, nil
	case FormatJSON:
		return &JSONRenderer{}, nil
	case FormatMarkdown:
		return &ReportRenderer{Lang: lang}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or markdown)", format)
	}
}

// ReportData holds a rendered assessment report.
type ReportData struct {
	Title      string `json:"title"`
	Summary    string `json:"summary"`    // Markdown body
	Conclusion string `json:"conclusion"` // success, neutral, failure
}
