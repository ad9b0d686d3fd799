package timeline

import (
	"fmt"

	"github.com/alexanderramin/ganttly/internal/domain"
)

// HeaderGroup spans consecutive buckets that share a parent period.
type HeaderGroup struct {
	Key     string
	Label   string
	Start   domain.Date
	Width   float64
	Buckets int
}

// BuildTopHeaders groups buckets in one left-to-right pass. Month grouping
// keys on year-month ("Jan 2025"), year grouping on the year ("2025"). Any
// other grouping, including None, yields no headers.
func BuildTopHeaders(grouping Scale, buckets []Bucket) []HeaderGroup {
	if grouping != Month && grouping != Year {
		return []HeaderGroup{}
	}

	var headers []HeaderGroup
	for _, b := range buckets {
		key := groupKey(grouping, b.Start)
		if n := len(headers); n > 0 && headers[n-1].Key == key {
			headers[n-1].Width += b.Width
			headers[n-1].Buckets++
			continue
		}
		headers = append(headers, HeaderGroup{
			Key:     key,
			Label:   groupLabel(grouping, b.Start),
			Start:   b.Start,
			Width:   b.Width,
			Buckets: 1,
		})
	}
	if headers == nil {
		return []HeaderGroup{}
	}
	return headers
}

func groupKey(g Scale, d domain.Date) string {
	if g == Month {
		return fmt.Sprintf("%d-%02d", d.Year(), int(d.Month()))
	}
	return fmt.Sprintf("%d", d.Year())
}

func groupLabel(g Scale, d domain.Date) string {
	if g == Month {
		return fmt.Sprintf("%s %d", d.Month().String()[:3], d.Year())
	}
	return fmt.Sprintf("%d", d.Year())
}
