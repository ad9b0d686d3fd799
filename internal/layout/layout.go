// Package layout converts a dated task tree into pixel geometry for a Gantt
// chart at a given viewport.
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/timeline"
	"github.com/alexanderramin/ganttly/internal/wbs"
)

const (
	// BaseDayWidth is the width of one day at day scale and factor 1.
	BaseDayWidth = 50.0
	// MinBarWidth keeps zero-length and very short tasks visible.
	MinBarWidth = 6.0
)

// ErrEmptyChart is returned by Compute for a tree without dated tasks.
var ErrEmptyChart = errors.New("no dated tasks to chart")

// Config holds the tunable layout constants.
type Config struct {
	BaseDayWidth float64
	MinBarWidth  float64
}

// DefaultConfig returns the standard constants.
func DefaultConfig() Config {
	return Config{BaseDayWidth: BaseDayWidth, MinBarWidth: MinBarWidth}
}

// Bar is the geometry of one task row.
type Bar struct {
	Task          *domain.Task
	Depth         int
	Offset        float64
	Width         float64
	ProgressWidth float64
}

// Chart is a computed Gantt layout.
type Chart struct {
	Viewport Viewport
	PxPerDay float64
	Start    domain.Date // origin: start of the first bucket
	End      domain.Date // last covered day, inclusive
	Buckets  []timeline.Bucket
	Headers  []timeline.HeaderGroup
	Bars     []Bar
	Width    float64
}

// Compute lays out every task of tree in pre-order, ignoring collapse state.
func Compute(tree []*domain.Task, vp Viewport, cfg Config) (*Chart, error) {
	return ComputeRows(tree, wbsRows(tree), vp, cfg)
}

// Row is one task to lay out together with its nesting depth.
type Row struct {
	Task  *domain.Task
	Depth int
}

// ComputeRows lays out the given rows against the span of the whole tree, so
// collapsing rows never shifts the time axis.
func ComputeRows(tree []*domain.Task, rows []Row, vp Viewport, cfg Config) (*Chart, error) {
	if !vp.Scale.Valid() {
		return nil, fmt.Errorf("layout: %w: %d", timeline.ErrUnknownScale, int(vp.Scale))
	}
	cfg = cfg.withDefaults()

	start, end, ok := wbs.Span(tree)
	if !ok {
		return nil, ErrEmptyChart
	}

	px := vp.PixelsPerDay(cfg.BaseDayWidth)
	buckets := timeline.BuildBuckets(vp.Scale, start, end, px)

	c := &Chart{
		Viewport: vp,
		PxPerDay: px,
		Start:    buckets[0].Start,
		End:      end,
		Buckets:  buckets,
		Headers:  timeline.BuildTopHeaders(vp.Scale.Grouping(), buckets),
		Bars:     make([]Bar, 0, len(rows)),
		Width:    timeline.TotalWidth(buckets),
	}
	for _, r := range rows {
		c.Bars = append(c.Bars, c.bar(r, cfg))
	}
	return c, nil
}

func (c *Chart) bar(r Row, cfg Config) Bar {
	t := r.Task
	b := Bar{Task: t, Depth: r.Depth}
	if t.StartDate.IsZero() {
		return b
	}
	b.Offset = Offset(c.Start, t.StartDate, c.PxPerDay)
	b.Width = max(float64(t.Duration)*c.PxPerDay, cfg.MinBarWidth)
	b.ProgressWidth = b.Width * float64(clamp(t.Progress, 0, 100)) / 100
	return b
}

// Offset is the ceiling of whole days from origin to d times pxPerDay.
func Offset(origin, d domain.Date, pxPerDay float64) float64 {
	hours := d.Time().Sub(origin.Time()).Hours()
	return math.Ceil(hours/24) * pxPerDay
}

// DateAt maps an x position back to the date under it.
func (c *Chart) DateAt(x float64) domain.Date {
	if c.PxPerDay <= 0 {
		return c.Start
	}
	return c.Start.AddDays(int(math.Floor(x / c.PxPerDay)))
}

func (cfg Config) withDefaults() Config {
	if cfg.BaseDayWidth <= 0 {
		cfg.BaseDayWidth = BaseDayWidth
	}
	if cfg.MinBarWidth <= 0 {
		cfg.MinBarWidth = MinBarWidth
	}
	return cfg
}

func wbsRows(tree []*domain.Task) []Row {
	var rows []Row
	wbs.Walk(tree, func(t *domain.Task, depth int) {
		rows = append(rows, Row{Task: t, Depth: depth})
	})
	return rows
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
