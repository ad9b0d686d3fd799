package wbs

import (
	"testing"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraft_Defaults(t *testing.T) {
	dr := NewDraft("Review")
	assert.Equal(t, 5, dr.Duration)
	assert.Equal(t, domain.PriorityMedium, dr.Priority)
	assert.Equal(t, domain.StatusNotStarted, dr.Status)
	assert.Equal(t, domain.RiskLow, dr.RiskLevel)
}

func TestAddTask_ChildStartsAfterParent(t *testing.T) {
	tree := sampleTree()

	out, added, err := AddTask(tree, "1", NewDraft("Sign-off"), d("2030-01-01"))
	require.NoError(t, err)
	assert.Equal(t, "1.3", added.ID)
	assert.Equal(t, "2025-01-16", added.StartDate.String())
	assert.Equal(t, "2025-01-21", added.EndDate.String())
	assert.Equal(t, "Team Member", added.Resources)
	assert.Empty(t, added.Dependencies)
	assert.NoError(t, Validate(out))
}

func TestAddTask_PhaseFollowsLastPhase(t *testing.T) {
	dr := NewDraft("Launch")
	dr.Duration = 10

	out, added, err := AddTask(sampleTree(), "", dr, d("2030-01-01"))
	require.NoError(t, err)
	assert.Equal(t, "3", added.ID)
	assert.Equal(t, "2025-02-11", added.StartDate.String())
	assert.Equal(t, "2025-02-21", added.EndDate.String())
	assert.Equal(t, []string{"2"}, added.Dependencies)
	assert.Equal(t, "Project Team", added.Resources)
	assert.Len(t, out, 3)
}

func TestAddTask_FirstPhaseStartsToday(t *testing.T) {
	_, added, err := AddTask(nil, "", NewDraft("Kickoff"), d("2025-06-02"))
	require.NoError(t, err)
	assert.Equal(t, "1", added.ID)
	assert.Equal(t, "2025-06-02", added.StartDate.String())
	assert.Empty(t, added.Dependencies)
}

func TestAddTask_Errors(t *testing.T) {
	_, _, err := AddTask(sampleTree(), "", NewDraft(" "), d("2025-01-01"))
	assert.ErrorIs(t, err, ErrEmptyName)

	_, _, err = AddTask(sampleTree(), "5", NewDraft("x"), d("2025-01-01"))
	assert.ErrorIs(t, err, ErrNodeNotFound)

	dr := NewDraft("x")
	dr.Duration = -2
	_, _, err = AddTask(sampleTree(), "", dr, d("2025-01-01"))
	assert.ErrorIs(t, err, ErrFieldValue)
}

func TestAddTask_KeepsExplicitResources(t *testing.T) {
	dr := NewDraft("x")
	dr.Resources = "Alice"
	_, added, err := AddTask(sampleTree(), "2", dr, d("2025-01-01"))
	require.NoError(t, err)
	assert.Equal(t, "Alice", added.Resources)
}
