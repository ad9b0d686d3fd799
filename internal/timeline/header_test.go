package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTopHeaders_MonthGrouping(t *testing.T) {
	buckets := BuildBuckets(Day, d("2025-01-30"), d("2025-02-02"), 10)

	headers := BuildTopHeaders(Month, buckets)
	require.Len(t, headers, 2)
	assert.Equal(t, "2025-01", headers[0].Key)
	assert.Equal(t, "Jan 2025", headers[0].Label)
	assert.Equal(t, 2, headers[0].Buckets)
	assert.InDelta(t, 20.0, headers[0].Width, 0.0001)
	assert.Equal(t, "Feb 2025", headers[1].Label)
	assert.Equal(t, "2025-02-01", headers[1].Start.String())
}

func TestBuildTopHeaders_YearGroupingAcrossYears(t *testing.T) {
	buckets := BuildBuckets(Quarter, d("2024-08-01"), d("2025-05-01"), 1)

	headers := BuildTopHeaders(Year, buckets)
	require.Len(t, headers, 2)
	assert.Equal(t, []string{"2024", "2025"}, []string{headers[0].Label, headers[1].Label})
	assert.Equal(t, 2, headers[0].Buckets)
	assert.InDelta(t, TotalWidth(buckets), headers[0].Width+headers[1].Width, 0.0001)
}

func TestBuildTopHeaders_None(t *testing.T) {
	assert.Empty(t, BuildTopHeaders(None, BuildBuckets(Year, d("2025-01-01"), d("2026-01-01"), 1)))
	assert.Empty(t, BuildTopHeaders(Month, nil))
}
