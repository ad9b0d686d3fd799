package layout

import (
	"github.com/alexanderramin/ganttly/internal/timeline"
)

const (
	// ZoomStep multiplies or divides the factor when no scale step is left.
	ZoomStep = 1.25
	// MaxZoom and MinZoom bound the continuous factor.
	MaxZoom = 6.0
	MinZoom = 0.2
)

// Viewport is the zoom state of a chart: a discrete scale plus a continuous
// factor applied on top of it.
type Viewport struct {
	Scale  timeline.Scale
	Factor float64
}

// DefaultViewport is month scale at 1.0.
func DefaultViewport() Viewport {
	return Viewport{Scale: timeline.Month, Factor: 1}
}

// ZoomIn moves one scale finer and resets the factor. At day scale it grows
// the factor instead, up to MaxZoom.
func (v Viewport) ZoomIn() Viewport {
	if s, ok := v.Scale.Finer(); ok {
		return Viewport{Scale: s, Factor: 1}
	}
	v.Factor = min(v.Factor*ZoomStep, MaxZoom)
	return v
}

// ZoomOut moves one scale coarser and resets the factor. At year scale it
// shrinks the factor instead, down to MinZoom.
func (v Viewport) ZoomOut() Viewport {
	if s, ok := v.Scale.Coarser(); ok {
		return Viewport{Scale: s, Factor: 1}
	}
	v.Factor = max(v.Factor/ZoomStep, MinZoom)
	return v
}

// Reset returns the default viewport.
func (v Viewport) Reset() Viewport {
	return DefaultViewport()
}

// WithScale switches to s, resetting the factor when the scale changes.
func (v Viewport) WithScale(s timeline.Scale) Viewport {
	if s == v.Scale {
		return v
	}
	return Viewport{Scale: s, Factor: 1}
}

// PixelsPerDay is baseDayWidth × factor spread over the scale's nominal bucket
// length.
func (v Viewport) PixelsPerDay(baseDayWidth float64) float64 {
	f := v.Factor
	if f <= 0 {
		f = 1
	}
	return baseDayWidth * f / v.Scale.AverageDays()
}
