package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayID_Truncates(t *testing.T) {
	p := &Project{ID: "550e8400-e29b-41d4-a716-446655440000"}
	assert.Equal(t, "550e8400", p.DisplayID())
}

func TestDisplayID_ShortID(t *testing.T) {
	p := &Project{ID: "abc"}
	assert.Equal(t, "abc", p.DisplayID())
}

func TestTouch_StoresUTC(t *testing.T) {
	loc := time.FixedZone("X", 3*3600)
	p := &Project{}
	p.Touch(time.Date(2025, 6, 15, 10, 0, 0, 0, loc))
	assert.Equal(t, time.UTC, p.LastModified.Location())
	assert.Equal(t, 7, p.LastModified.Hour())
}

func TestProject_JSONShape(t *testing.T) {
	raw := `{
		"name": "App",
		"projectStart": "2025-01-20",
		"projectBudget": 200000,
		"projectManager": "PM",
		"wbs": [{"id": "1", "name": "Plan", "level": 1, "startDate": "2025-01-20", "endDate": "2025-02-01",
			"duration": 12, "progress": 0, "status": "Not Started", "priority": "High", "riskLevel": "Low",
			"children": [{"id": "1.1", "name": "Req", "level": 2, "startDate": "2025-01-20", "endDate": "2025-01-25"}]}]
	}`
	var p Project
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, "App", p.Name)
	assert.Equal(t, MustParseDate("2025-01-20"), p.ProjectStart)
	require.Len(t, p.WBS, 1)
	assert.Equal(t, StatusNotStarted, p.WBS[0].Status)
	require.Len(t, p.WBS[0].Children, 1)
	assert.Equal(t, "1.1", p.WBS[0].Children[0].ID)
	assert.Equal(t, "1", p.WBS[0].Children[0].ParentID())
}
