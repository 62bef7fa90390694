package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmsecure/farmsecure/pkg/dashboard"
	"github.com/farmsecure/farmsecure/pkg/profile"
	"github.com/farmsecure/farmsecure/pkg/scoring"
)

var wantFactors = scoring.RiskFactors{
	NearbyOutbreaks: true,
	VisitorControl:  2,
	AnimalMovement:  3,
	FeedSecurity:    4,
	WasteManagement: 5,
	StaffTraining:   1,
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfile_Formats(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		file    string
		content string
	}{
		{"hill.yaml", `
name: Hill Farm
factors:
  nearby_outbreaks: true
  visitor_control: 2
  animal_movement: 3
  feed_security: 4
  waste_management: 5
  staff_training: 1
`},
		{"hill.yml", `
name: Hill Farm
factors: {nearby_outbreaks: true, visitor_control: 2, animal_movement: 3, feed_security: 4, waste_management: 5, staff_training: 1}
`},
		{"hill.json", `{
  "name": "Hill Farm",
  "factors": {"nearby_outbreaks": true, "visitor_control": 2, "animal_movement": 3,
              "feed_security": 4, "waste_management": 5, "staff_training": 1}
}`},
		{"hill.toml", `
name = "Hill Farm"

[factors]
nearby_outbreaks = true
visitor_control = 2
animal_movement = 3
feed_security = 4
waste_management = 5
staff_training = 1
`},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			p, err := profile.LoadProfile(writeFile(t, dir, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, "Hill Farm", p.Name)
			assert.Equal(t, wantFactors, p.Factors)
		})
	}
}

func TestLoadProfile_NameFromFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "river-side.yaml", "factors:\n  visitor_control: 5\n")
	p, err := profile.LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "river-side", p.Name)
	assert.Equal(t, 5, p.Factors.VisitorControl)
}

func TestLoadProfile_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "reading"},
		{"bad extension", writeFile(t, dir, "farm.txt", "name: x"), "unsupported file extension"},
		{"unknown field", writeFile(t, dir, "typo.yaml", "factors:\n  visiter_control: 3\n"), "decoding"},
		{"unknown json field", writeFile(t, dir, "typo.json", `{"factors":{"feed":3}}`), "decoding"},
		{"unknown toml field", writeFile(t, dir, "typo.toml", "[factors]\nfeed = 3\n"), "decoding"},
		{"empty yaml", writeFile(t, dir, "empty.yaml", ""), "empty"},
		{"wrong type", writeFile(t, dir, "bad.json", `{"factors":{"visitor_control":"high"}}`), "decoding"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := profile.LoadProfile(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadProfiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", "factors: {visitor_control: 1}\n")
	b := writeFile(t, dir, "b.json", `{"name":"B","factors":{"visitor_control":2}}`)

	profiles, err := profile.LoadProfiles([]string{b, a})
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "B", profiles[0].Name)
	assert.Equal(t, "a", profiles[1].Name)

	_, err = profile.LoadProfiles([]string{a, filepath.Join(dir, "c.yaml")})
	assert.Error(t, err)
}

func TestLoadDataset(t *testing.T) {
	dir := t.TempDir()

	yamlPath := writeFile(t, dir, "farm.yaml", `
farm: Test Farm
factors: {visitor_control: 4, animal_movement: 4, feed_security: 4, waste_management: 4, staff_training: 4}
checklist:
  - {id: 1, name: Footbath, category: hygiene, completed: false, due_date: 2024-10-01, priority: high}
training:
  - {id: 1, title: Basics, progress: 40}
alerts:
  - {id: 7, type: weather, severity: critical, message: Storm, location: North shed, date: 2024-09-30}
`)
	tomlPath := writeFile(t, dir, "farm.toml", `
farm = "Test Farm"

[factors]
visitor_control = 4
animal_movement = 4
feed_security = 4
waste_management = 4
staff_training = 4

[[checklist]]
id = 1
name = "Footbath"
category = "hygiene"
completed = false
due_date = "2024-10-01"
priority = "high"

[[training]]
id = 1
title = "Basics"
progress = 40

[[alerts]]
id = 7
type = "weather"
severity = "critical"
message = "Storm"
location = "North shed"
date = "2024-09-30"
`)

	for _, path := range []string{yamlPath, tomlPath} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			ds, err := profile.LoadDataset(path)
			require.NoError(t, err)

			assert.Equal(t, "Test Farm", ds.Farm)
			require.Len(t, ds.Checklist, 1)
			assert.Equal(t, dashboard.NewDate(2024, 10, 1), ds.Checklist[0].DueDate)
			assert.Equal(t, dashboard.PriorityHigh, ds.Checklist[0].Priority)
			require.Len(t, ds.Training, 1)
			assert.Equal(t, 40, ds.Training[0].Progress)
			require.Len(t, ds.Alerts, 1)
			assert.Equal(t, dashboard.AlertWeather, ds.Alerts[0].Type)
			assert.Equal(t, scoring.RiskCritical, ds.Alerts[0].Severity)
			assert.Equal(t, "2024-09-30", ds.Alerts[0].Date.String())
		})
	}
}

func TestDefaultDataset(t *testing.T) {
	ds, err := profile.DefaultDataset()
	require.NoError(t, err)

	assert.NoError(t, ds.Factors.Validate())
	assert.Len(t, ds.Checklist, 2)
	assert.Len(t, ds.Training, 2)
	assert.Len(t, ds.Alerts, 2)

	ov, err := dashboard.BuildOverview(scoring.NewEngine(), ds)
	require.NoError(t, err)
	assert.Equal(t, 70, ov.Risk.Score)
	assert.Equal(t, scoring.RiskHigh, ov.Risk.Level)
	assert.Equal(t, 50, ov.ChecklistProgress)
	assert.Equal(t, 63, ov.TrainingProgress)
	assert.Equal(t, 1, ov.ActiveAlerts)

	ds.Farm = "changed"
	again, err := profile.DefaultDataset()
	require.NoError(t, err)
	assert.Equal(t, "Green Valley Farm", again.Farm)
}
