package surface_test

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmsecure/farmsecure/pkg/dashboard"
	"github.com/farmsecure/farmsecure/pkg/i18n"
	"github.com/farmsecure/farmsecure/pkg/scoring"
	"github.com/farmsecure/farmsecure/pkg/surface"
)

var fixedNow = time.Date(2024, 9, 21, 12, 0, 0, 0, time.UTC)

func assess(t *testing.T, f scoring.RiskFactors) *scoring.Assessment {
	t.Helper()
	e := scoring.NewEngine(scoring.WithClock(func() time.Time { return fixedNow }))
	a, err := e.AssessProfile(scoring.Profile{Name: "Hill Farm", Factors: f})
	require.NoError(t, err)
	return a
}

// 24 + 12 + 16 + 6 + 14 = 72, high
func sampleAssessment(t *testing.T) *scoring.Assessment {
	return assess(t, scoring.RiskFactors{
		VisitorControl:  3,
		AnimalMovement:  4,
		FeedSecurity:    4,
		WasteManagement: 5,
		StaffTraining:   4,
	})
}

func TestTerminalRenderer_BasicOutput(t *testing.T) {
	r := &surface.TerminalRenderer{NoColor: true}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleAssessment(t)))

	out := buf.String()
	assert.Contains(t, out, "Risk Score: 72/100")
	assert.Contains(t, out, "High Risk")
	assert.Contains(t, out, "Hill Farm")
	assert.NotContains(t, out, "capped")

	assert.Contains(t, out, "Visitor Access Control")
	assert.Contains(t, out, "3/5")
	assert.Contains(t, out, "+24")
	assert.Contains(t, out, "Disease Outbreaks Nearby")

	assert.Contains(t, out, "Recommendations:")
	assert.Contains(t, out, "Immediately restrict all non-essential farm access")
	assert.NotContains(t, out, "\x1b[")
}

func TestTerminalRenderer_CappedScore(t *testing.T) {
	r := &surface.TerminalRenderer{NoColor: true}
	var buf bytes.Buffer
	worst := scoring.RiskFactors{NearbyOutbreaks: true, VisitorControl: 1, AnimalMovement: 1, FeedSecurity: 1, WasteManagement: 1, StaffTraining: 1}
	require.NoError(t, r.Render(&buf, assess(t, worst)))

	out := buf.String()
	assert.Contains(t, out, "Risk Score: 100/100")
	assert.Contains(t, out, "Critical Risk")
	assert.Contains(t, out, "raw score 205 capped at 100")
	assert.Contains(t, out, "yes")
}

func TestTerminalRenderer_Color(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")

	var buf bytes.Buffer
	require.NoError(t, (&surface.TerminalRenderer{}).Render(&buf, sampleAssessment(t)))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestTerminalRenderer_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, (&surface.TerminalRenderer{}).Render(&buf, sampleAssessment(t)))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestTerminalRenderer_Language(t *testing.T) {
	r := &surface.TerminalRenderer{Lang: i18n.Hindi, NoColor: true}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleAssessment(t)))

	out := buf.String()
	assert.Contains(t, out, "जोखिम स्कोर: 72/100")
	assert.Contains(t, out, "उच्च जोखिम")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&surface.JSONRenderer{}).Render(&buf, sampleAssessment(t)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, float64(72), got["score"])
	assert.Equal(t, "high", got["level"])
	assert.Equal(t, "text-orange-600 bg-orange-100", got["color_class"])
	assert.Equal(t, "Hill Farm", got["farm"])
	assert.Len(t, got["breakdown"], 6)
	assert.Equal(t, "2024-09-21T12:00:00Z", got["assessed_at"])
}

func TestReportRenderer(t *testing.T) {
	r := &surface.ReportRenderer{}
	data := r.BuildReport(sampleAssessment(t))

	assert.Equal(t, "Risk Score: 72/100 (High Risk)", data.Title)
	assert.Equal(t, "failure", data.Conclusion)
	assert.True(t, strings.HasPrefix(data.Summary, "## Risk Score: 72/100 (High Risk)\n"))
	assert.Contains(t, data.Summary, "| :orange_circle: Visitor Access Control | 3/5 | +24 | MEDIUM |")
	assert.Contains(t, data.Summary, "| :white_check_mark: Waste Management | 5/5 | +6 | INFO |")
	assert.Contains(t, data.Summary, "**Farm:** Hill Farm\n\n**Conclusion:** failure\n")
	assert.Contains(t, data.Summary, "### Recommendations")

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleAssessment(t)))
	assert.Equal(t, data.Summary, buf.String())
}

func TestReportRenderer_Conclusions(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{6, "success"}, // score 0, low
		{5, "neutral"}, // score 35, medium
		{4, "failure"}, // score 70, high
		{1, "failure"}, // score 100, critical
	}
	r := &surface.ReportRenderer{}
	e := scoring.NewEngine(scoring.WithPolicy(scoring.PolicyPassthrough))
	for _, tt := range tests {
		f := scoring.RiskFactors{
			VisitorControl: tt.rating, AnimalMovement: tt.rating, FeedSecurity: tt.rating,
			WasteManagement: tt.rating, StaffTraining: tt.rating,
		}
		a, err := e.Assess(f)
		require.NoError(t, err)
		assert.Equal(t, tt.want, r.BuildReport(a).Conclusion, "rating %d, level %s", tt.rating, a.Level)
	}
}

func TestForFormat(t *testing.T) {
	r, err := surface.ForFormat("", i18n.English, false)
	require.NoError(t, err)
	assert.IsType(t, &surface.TerminalRenderer{}, r)

	r, err = surface.ForFormat("json", i18n.English, false)
	require.NoError(t, err)
	assert.IsType(t, &surface.JSONRenderer{}, r)

	r, err = surface.ForFormat("markdown", i18n.Telugu, false)
	require.NoError(t, err)
	assert.Equal(t, &surface.ReportRenderer{Lang: i18n.Telugu}, r)

	_, err = surface.ForFormat("yaml", i18n.English, false)
	assert.Error(t, err)
}

func sampleDataset() *dashboard.Dataset {
	return &dashboard.Dataset{
		Farm:    "Hill Farm",
		Factors: scoring.BestPractice(),
		Checklist: []dashboard.ChecklistItem{
			{ID: 1, Name: "Sanitization Protocol", Category: "hygiene", Completed: true, DueDate: dashboard.NewDate(2024, 9, 1), Priority: dashboard.PriorityHigh},
			{ID: 2, Name: "Water Purity Check", Category: "water", DueDate: dashboard.NewDate(2024, 9, 15), Priority: dashboard.PriorityMedium},
		},
		Training: []dashboard.TrainingModule{
			{ID: 1, Title: "Introduction to Biosecurity", Progress: 100, Completed: true},
			{ID: 2, Title: "Disease Prevention", Progress: 50},
		},
		Alerts: []dashboard.Alert{
			{ID: 1, Type: dashboard.AlertOutbreak, Severity: scoring.RiskCritical, Message: "Avian influenza confirmed", Location: "Nalgonda", Date: dashboard.NewDate(2024, 9, 20)},
		},
	}
}

func TestTerminalRenderer_Views(t *testing.T) {
	r := &surface.TerminalRenderer{NoColor: true}
	ds := sampleDataset()

	t.Run("overview", func(t *testing.T) {
		ov, err := dashboard.BuildOverview(scoring.NewEngine(), ds)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.RenderOverview(&buf, ov))
		out := buf.String()
		assert.Contains(t, out, "Farm Overview: Hill Farm")
		assert.Contains(t, out, "35/100 Medium Risk")
		assert.Contains(t, out, "50% (1/2)")
		assert.Contains(t, out, "75% (1/2)")
	})

	t.Run("checklist", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.RenderChecklist(&buf, ds.Checklist, fixedNow))
		out := buf.String()
		assert.Contains(t, out, "[x]")
		assert.Contains(t, out, "[!]")
		assert.Contains(t, out, "2024-09-15")
		assert.Contains(t, out, "1 of 2 completed (50%)")
	})

	t.Run("empty checklist", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.RenderChecklist(&buf, nil, fixedNow))
		assert.Contains(t, buf.String(), "No matching items.")
	})

	t.Run("training", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.RenderTraining(&buf, ds.Training))
		out := buf.String()
		assert.Contains(t, out, "##########..........  50%")
		assert.Contains(t, out, "completed")
		assert.Contains(t, out, "1 of 2 completed (75% overall)")
	})

	t.Run("alerts", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.RenderAlerts(&buf, ds.Alerts))
		out := buf.String()
		assert.Contains(t, out, "CRITICAL")
		assert.Contains(t, out, "Nalgonda")
		assert.Contains(t, out, "low 0, medium 0, high 0, critical 1")
	})

	t.Run("batch", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.RenderBatch(&buf, []*scoring.Assessment{sampleAssessment(t)}))
		assert.Contains(t, buf.String(), "Hill Farm")
		assert.Contains(t, buf.String(), "72")
	})
}
