package planning

import (
	"testing"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/wbs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const generatedReply = "Sure! Here is the plan:\n```json\n" + `{
  "projectName": "Clinic Website",
  "projectStart": "2025-03-03",
  "projectBudget": 50000,
  "wbs": [
    {
      "id": "1", "name": "Discovery", "level": 1,
      "startDate": "2025-03-03", "endDate": "2025-03-10",
      "status": "Not Started", "priority": "High",
      "children": [
        {"id": "1.1", "name": "Interviews", "startDate": "2025-03-03", "endDate": "2025-03-05", "cost": 2000,},
      ],
    },
    {"id": "2", "name": "Build", "startDate": "2025-03-11", "endDate": "2025-04-01"}
  ]
}` + "\n```"

func TestParseGenerated(t *testing.T) {
	g, err := ParseGenerated(generatedReply)
	require.NoError(t, err)

	assert.Equal(t, "Clinic Website", g.DisplayName())
	assert.Equal(t, "2025-03-03", g.ProjectStart.String())
	require.Len(t, g.WBS, 2)
	assert.Equal(t, 3, wbs.Count(g.WBS))

	child := g.WBS[0].Children[0]
	assert.Equal(t, 2, child.Level, "level derived from id")
	assert.Equal(t, 2, child.Duration, "duration derived from dates")
	assert.Equal(t, domain.StatusNotStarted, child.Status)
	assert.Equal(t, domain.PriorityMedium, child.Priority)
	assert.NotNil(t, child.Children)
	assert.NotNil(t, child.Dependencies)
	assert.NotEmpty(t, child.Key)

	assert.NoError(t, wbs.Validate(g.WBS))
}

func TestParseGenerated_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		msg  string
	}{
		{"no json", "Sorry, I can't help with that.", "no JSON object"},
		{"missing wbs", `{"projectName":"x"}`, "missing wbs"},
		{"wbs not array", `{"wbs":{"id":"1"}}`, "must be an array"},
		{"wbs null", `{"wbs":null}`, "must be an array"},
		{"broken json", `{"wbs":[{"id":"1",]`, ""},
		{"null child", `{"wbs":[{"id":"1","children":[null]}]}`, "wbs[0].children[0] is null"},
		{"bad date", `{"wbs":[{"id":"1","startDate":"next week"}]}`, "invalid date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGenerated(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPayload)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseGenerated_EmptyWBS(t *testing.T) {
	g, err := ParseGenerated(`{"projectName":"Empty","wbs":[]}`)
	require.NoError(t, err)
	assert.NotNil(t, g.WBS)
	assert.Empty(t, g.WBS)
}
