package timeline

import (
	"github.com/alexanderramin/ganttly/internal/domain"
)

// Bucket is one timeline column.
type Bucket struct {
	Start    domain.Date
	End      domain.Date // exclusive
	Days     int
	Width    float64
	Label    string
	SubLabel string
	Weekend  bool // day scale only
}

// BuildBuckets covers [start, end] (both inclusive) with buckets at scale s.
// Bucket boundaries come from the scale's calendar; the first bucket is
// clipped to start and the last to end+1 day, so Days counts only days inside
// the range. Labels are taken from the nominal bucket start. An empty slice
// is returned when start is after end.
func BuildBuckets(s Scale, start, end domain.Date, pxPerDay float64) []Bucket {
	if start.After(end) {
		return []Bucket{}
	}
	m := s.meta()
	endExclusive := end.AddDays(1)

	var buckets []Bucket
	for cursor := m.floor(start); cursor.Before(endExclusive); cursor = m.advance(cursor) {
		lo := domain.MaxDate(cursor, start)
		hi := domain.MinDate(m.advance(cursor), endExclusive)
		days := max(1, lo.DaysUntil(hi))
		buckets = append(buckets, Bucket{
			Start:    lo,
			End:      hi,
			Days:     days,
			Width:    float64(days) * pxPerDay,
			Label:    m.label(cursor),
			SubLabel: m.subLabel(cursor),
			Weekend:  s == Day && isWeekend(cursor),
		})
	}
	return buckets
}

// TotalWidth sums the widths of buckets.
func TotalWidth(buckets []Bucket) float64 {
	var w float64
	for _, b := range buckets {
		w += b.Width
	}
	return w
}

// TotalDays sums the day counts of buckets.
func TotalDays(buckets []Bucket) int {
	n := 0
	for _, b := range buckets {
		n += b.Days
	}
	return n
}

func isWeekend(d domain.Date) bool {
	wd := d.Weekday()
	return wd == 0 || wd == 6
}
