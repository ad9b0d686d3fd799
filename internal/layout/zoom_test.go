package layout

import (
	"testing"

	"github.com/alexanderramin/ganttly/internal/timeline"
	"github.com/stretchr/testify/assert"
)

func TestViewport_ZoomInStepsScalesThenFactor(t *testing.T) {
	v := DefaultViewport()

	v = v.ZoomIn()
	assert.Equal(t, Viewport{Scale: timeline.Week, Factor: 1}, v)
	v = v.ZoomIn()
	assert.Equal(t, Viewport{Scale: timeline.Day, Factor: 1}, v)

	v = v.ZoomIn()
	assert.Equal(t, timeline.Day, v.Scale)
	assert.InDelta(t, 1.25, v.Factor, 1e-9)

	for range 20 {
		v = v.ZoomIn()
	}
	assert.InDelta(t, MaxZoom, v.Factor, 1e-9)
}

func TestViewport_ZoomOutStepsScalesThenFactor(t *testing.T) {
	v := Viewport{Scale: timeline.Day, Factor: 3}

	v = v.ZoomOut()
	assert.Equal(t, Viewport{Scale: timeline.Week, Factor: 1}, v, "changing scale resets the factor")

	v = Viewport{Scale: timeline.Year, Factor: 1}.ZoomOut()
	assert.Equal(t, timeline.Year, v.Scale)
	assert.InDelta(t, 0.8, v.Factor, 1e-9)

	for range 20 {
		v = v.ZoomOut()
	}
	assert.InDelta(t, MinZoom, v.Factor, 1e-9)
}

func TestViewport_Reset(t *testing.T) {
	v := Viewport{Scale: timeline.Day, Factor: 4.2}.Reset()
	assert.Equal(t, DefaultViewport(), v)
}

func TestViewport_WithScale(t *testing.T) {
	v := Viewport{Scale: timeline.Day, Factor: 2}
	assert.Equal(t, v, v.WithScale(timeline.Day))
	assert.Equal(t, Viewport{Scale: timeline.Quarter, Factor: 1}, v.WithScale(timeline.Quarter))
}

func TestViewport_PixelsPerDay(t *testing.T) {
	assert.InDelta(t, 50.0, Viewport{Scale: timeline.Day, Factor: 1}.PixelsPerDay(BaseDayWidth), 1e-9)
	assert.InDelta(t, 50.0/7, Viewport{Scale: timeline.Week, Factor: 1}.PixelsPerDay(BaseDayWidth), 1e-9)
	assert.InDelta(t, 100.0/365, Viewport{Scale: timeline.Year, Factor: 2}.PixelsPerDay(BaseDayWidth), 1e-9)
}
