package view

import (
	"testing"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.AvgProgress)
	assert.Equal(t, 0, s.HighPriority)
	assert.InDelta(t, 0.0, s.TotalCost, 1e-9)
	assert.Len(t, s.ByStatus, len(domain.TaskStatuses))
	for _, n := range s.ByStatus {
		assert.Equal(t, 0, n)
	}
}

func TestAggregate(t *testing.T) {
	tasks := []*domain.Task{
		{Status: domain.StatusCompleted, Priority: domain.PriorityHigh, Cost: 1000, Progress: 100},
		{Status: domain.StatusInProgress, Priority: domain.PriorityLow, Cost: 250.5, Progress: 25},
		{Status: domain.StatusBlocked, Priority: domain.PriorityHigh, Cost: 0, Progress: 0},
		{Status: domain.StatusCompleted, Priority: domain.PriorityMedium, Cost: 49.5, Progress: 100},
	}

	s := Aggregate(tasks)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Completed())
	assert.Equal(t, 1, s.ByStatus[domain.StatusBlocked])
	assert.Equal(t, 0, s.ByStatus[domain.StatusOnHold])
	assert.Equal(t, 2, s.HighPriority)
	assert.InDelta(t, 1300.0, s.TotalCost, 1e-9)
	assert.Equal(t, 56, s.AvgProgress) // 225/4 = 56.25
}

func TestAggregate_RoundsHalfUp(t *testing.T) {
	tasks := []*domain.Task{{Progress: 50}, {Progress: 51}}
	assert.Equal(t, 51, Aggregate(tasks).AvgProgress) // 50.5
}
