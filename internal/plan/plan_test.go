package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib823/cockpit-engine/internal/calendar"
)

const validPlan = `{
  "project": "Phoenix Rollout",
  "region": "ABMY",
  "start": "2026-03-01",
  "end": "2026-06-30",
  "resources": [
    {"id": "r1", "name": "Consultant A", "role": "FICO"},
    {"id": "r2", "name": "Consultant B"}
  ],
  "assignments": [
    {"resource": "r1", "owner": "Explore", "start": "2026-03-01", "end": "2026-03-31", "percent": 60},
    {"resource": "r1", "owner": "Realize", "start": "2026-03-15", "end": "2026-04-15", "percent": 50},
    {"resource": "r2", "start": "2026-03-01", "end": "2026-06-30", "percent": 100}
  ]
}`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	p, err := Load(writePlan(t, validPlan))
	require.NoError(t, err)

	assert.Equal(t, "Phoenix Rollout", p.Project)

	region, err := p.ParsedRegion()
	require.NoError(t, err)
	assert.Equal(t, calendar.RegionABMY, region)

	w, err := p.Window()
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", w.Start.String())

	assignments, err := p.AllocationAssignments()
	require.NoError(t, err)
	require.Len(t, assignments, 3)
	assert.Equal(t, "r1", assignments[0].ResourceID)
	assert.InDelta(t, 60, assignments[0].Percent, 1e-9)

	assert.Equal(t, "Consultant A", p.ResourceName("r1"))
	assert.Equal(t, "r9", p.ResourceName("r9"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadInvalidPlans(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errIs   error
	}{
		{
			name:    "bad json",
			content: "{",
		},
		{
			name:    "unknown region",
			content: `{"region": "ABUS", "start": "2026-03-01", "end": "2026-06-30"}`,
			errIs:   calendar.ErrUnknownRegion,
		},
		{
			name:    "inverted window",
			content: `{"region": "ABMY", "start": "2026-06-30", "end": "2026-03-01"}`,
			errIs:   calendar.ErrInvalidRange,
		},
		{
			name: "unknown resource reference",
			content: `{"region": "ABMY", "start": "2026-03-01", "end": "2026-06-30",
				"assignments": [{"resource": "ghost", "start": "2026-03-01", "end": "2026-03-31", "percent": 50}]}`,
		},
		{
			name: "percent above 100",
			content: `{"region": "ABMY", "start": "2026-03-01", "end": "2026-06-30",
				"resources": [{"id": "r1"}],
				"assignments": [{"resource": "r1", "start": "2026-03-01", "end": "2026-03-31", "percent": 150}]}`,
		},
		{
			name: "zero percent",
			content: `{"region": "ABMY", "start": "2026-03-01", "end": "2026-06-30",
				"resources": [{"id": "r1"}],
				"assignments": [{"resource": "r1", "start": "2026-03-01", "end": "2026-03-31", "percent": 0}]}`,
		},
		{
			name: "duplicate resource ids",
			content: `{"region": "ABMY", "start": "2026-03-01", "end": "2026-06-30",
				"resources": [{"id": "r1"}, {"id": "r1"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writePlan(t, tt.content))
			require.Error(t, err)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}
