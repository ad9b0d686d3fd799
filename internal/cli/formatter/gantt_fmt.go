package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/ganttly/internal/layout"
	"github.com/charmbracelet/lipgloss"
)

// ColumnPixels is the number of layout pixels drawn as one terminal column.
const ColumnPixels = 10.0

const defaultLabelWidth = 28

// GanttOptions controls which slice of a chart is drawn.
type GanttOptions struct {
	LabelWidth  int   // task label column; 0 uses the default
	ScrollCol   int   // first chart column shown
	ViewCols    int   // chart columns shown; 0 shows all
	LineNumbers []int // per bar; missing entries count from 1
	Cursor      int   // highlighted bar, -1 for none
}

var styleCursor = lipgloss.NewStyle().Reverse(true)

// GanttColumns is the number of terminal columns the full chart spans.
func GanttColumns(c *layout.Chart) int {
	return int(math.Ceil(c.Width / ColumnPixels))
}

func toCol(px float64) int {
	return int(math.Floor(px / ColumnPixels))
}

type segment struct {
	start, end int
	label      string
}

// RenderGantt draws the chart as text: a group header row, a bucket row and
// one bar row per task. Summary tasks are drawn as a thin rule; leaf tasks
// show completed progress solid and the remainder shaded.
func RenderGantt(c *layout.Chart, opts GanttOptions) string {
	total := GanttColumns(c)
	labelW := opts.LabelWidth
	if labelW <= 0 {
		labelW = defaultLabelWidth
	}
	lo := max(0, min(opts.ScrollCol, total-1))
	hi := total
	if opts.ViewCols > 0 {
		hi = min(total, lo+opts.ViewCols)
	}

	var groups, buckets []segment
	var x float64
	for _, h := range c.Headers {
		groups = append(groups, segment{toCol(x), toCol(x + h.Width), h.Label})
		x += h.Width
	}
	x = 0
	for _, bk := range c.Buckets {
		buckets = append(buckets, segment{toCol(x), toCol(x + bk.Width), bk.Label})
		x += bk.Width
	}

	var b strings.Builder
	blank := strings.Repeat(" ", labelW)
	b.WriteString(blank + "│" + StyleHeader.Render(segmentRow(groups, lo, hi)) + "\n")
	b.WriteString(blank + "│" + Dim(segmentRow(buckets, lo, hi)) + "\n")
	b.WriteString(Dim(strings.Repeat("─", labelW)+"┼"+strings.Repeat("─", hi-lo)) + "\n")

	numWidth := len(fmt.Sprint(len(c.Bars)))
	for _, n := range opts.LineNumbers {
		numWidth = max(numWidth, len(fmt.Sprint(n)))
	}
	for i, bar := range c.Bars {
		n := i + 1
		if i < len(opts.LineNumbers) {
			n = opts.LineNumbers[i]
		}
		text := fmt.Sprintf("%*d %s%s", numWidth, n, strings.Repeat("  ", bar.Depth), bar.Task.Name)
		label := Truncate(text, labelW)
		switch {
		case i == opts.Cursor:
			label = styleCursor.Render(label)
		case bar.Task.HasChildren():
			label = Bold(label)
		}
		b.WriteString(label + Dim("│") + renderBar(bar, lo, hi) + "\n")
	}

	vp := c.Viewport
	b.WriteString(Dim(fmt.Sprintf("%s  zoom %.2fx  %s → %s", vp.Scale, vp.Factor, c.Start, c.End)) + "\n")
	return b.String()
}

// segmentRow lays labelled segments into the columns [lo, hi), marking each
// boundary and clipping labels to their segment.
func segmentRow(segs []segment, lo, hi int) string {
	cells := []rune(strings.Repeat(" ", hi-lo))
	for _, s := range segs {
		if s.end <= lo || s.start >= hi {
			continue
		}
		pos := s.start
		if pos >= lo {
			cells[pos-lo] = '┊'
			pos++
		} else {
			pos = lo
		}
		for _, r := range s.label {
			if pos >= s.end || pos >= hi {
				break
			}
			cells[pos-lo] = r
			pos++
		}
	}
	return string(cells)
}

func renderBar(bar layout.Bar, lo, hi int) string {
	width := hi - lo
	if bar.Task.StartDate.IsZero() || width <= 0 {
		return strings.Repeat(" ", max(0, width))
	}

	start := toCol(bar.Offset)
	cols := max(1, int(math.Round(bar.Width/ColumnPixels)))
	done := int(math.Round(bar.ProgressWidth / ColumnPixels))
	a, z := max(start, lo), min(start+cols, hi)
	if a >= z {
		return strings.Repeat(" ", width)
	}

	var fill strings.Builder
	for col := a; col < z; col++ {
		switch {
		case bar.Task.HasChildren():
			fill.WriteRune('━')
		case col-start < done:
			fill.WriteRune('█')
		default:
			fill.WriteRune('░')
		}
	}
	style := StatusStyle(bar.Task.Status)
	return strings.Repeat(" ", a-lo) + style.Render(fill.String()) + strings.Repeat(" ", hi-z)
}
