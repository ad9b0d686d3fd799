package formatter

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/layout"
	tmpl "github.com/alexanderramin/ganttly/internal/template"
	"github.com/alexanderramin/ganttly/internal/testutil"
	"github.com/alexanderramin/ganttly/internal/timeline"
	"github.com/alexanderramin/ganttly/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1,000"},
		{12500, "$12,500"},
		{1234567.6, "$1,234,568"},
		{-4200, "-$4,200"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc  ", Truncate("abc", 5))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Just now", HumanTimestamp(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour), now))
	assert.Contains(t, HumanTimestamp(now.Add(-72*time.Hour), now), "2025")
}

func TestRenderProgress(t *testing.T) {
	assert.Equal(t, "[█████░░░░░]  50%", stripANSI(RenderProgress(50, 10)))
	assert.Equal(t, "[██████████] 100%", stripANSI(RenderProgress(150, 10)))
	assert.Equal(t, "[░░]   0%", stripANSI(RenderProgress(-5, 1)))
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTableAligned(
		[]string{"NAME", "COST"},
		[][]string{{Bold("Design"), "$3,000"}, {"QA", "$500"}},
		map[int]bool{1: true},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME"+strings.Repeat(" ", 6)+"COST", lines[0])
	assert.Equal(t, "Design  $3,000", lines[2])
	assert.Equal(t, "QA"+strings.Repeat(" ", 8)+"$500", lines[3])
}

func TestRenderTree(t *testing.T) {
	rows := view.FlattenWithLineNumbers(testutil.SampleWBS(), map[string]bool{"1": true})
	out := stripANSI(RenderTree(rows))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "1 ▾ 1 Design")
	assert.Contains(t, lines[1], "├─ ")
	assert.Contains(t, lines[2], "└─ ")
	assert.Contains(t, lines[3], "4 ▸ 2 Build")
	assert.Contains(t, lines[0], "[ 2025-01-06 → 2025-01-31 ]")
}

func TestRenderTree_Empty(t *testing.T) {
	assert.Empty(t, RenderTree(nil))
}

func dayChart(t *testing.T) *layout.Chart {
	t.Helper()
	tree := []*domain.Task{
		testutil.NewTestTask("1", "Alpha", "2025-01-06", "2025-01-08", testutil.WithProgress(50)),
	}
	c, err := layout.Compute(tree, layout.Viewport{Scale: timeline.Day, Factor: 1}, layout.DefaultConfig())
	require.NoError(t, err)
	return c
}

func TestRenderGantt_DayScale(t *testing.T) {
	c := dayChart(t)
	require.Equal(t, 15, GanttColumns(c))

	out := stripANSI(RenderGantt(c, GanttOptions{LabelWidth: 10, Cursor: -1}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Contains(t, lines[0], "Jan 2025")
	assert.True(t, strings.HasPrefix(lines[1], "          │┊6"))
	assert.Equal(t, "1 Alpha   │█████░░░░░     ", lines[3])
	assert.Contains(t, lines[4], "day  zoom 1.00x  2025-01-06 → 2025-01-08")
}

func TestRenderGantt_Scrolled(t *testing.T) {
	c := dayChart(t)
	out := stripANSI(RenderGantt(c, GanttOptions{LabelWidth: 10, ScrollCol: 7, ViewCols: 5, Cursor: -1}))
	lines := strings.Split(out, "\n")
	assert.Equal(t, "1 Alpha   │░░░  ", lines[3])
}

func TestRenderGantt_SummaryBar(t *testing.T) {
	c, err := layout.Compute(testutil.SampleWBS(), layout.Viewport{Scale: timeline.Month, Factor: 1}, layout.DefaultConfig())
	require.NoError(t, err)

	out := stripANSI(RenderGantt(c, GanttOptions{LineNumbers: []int{1, 2, 3, 4, 5, 6}, Cursor: 0}))
	assert.Contains(t, out, "━")
	assert.Contains(t, out, "Jan")
	assert.Contains(t, out, "Research")
}

func TestFormatProjectList(t *testing.T) {
	now := time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)
	p := testutil.NewTestProject("Website", testutil.WithBudget(25000))
	p.ID = "abcdef1234567890"
	p.LastModified = now.Add(-2 * time.Hour)

	out := stripANSI(FormatProjectList([]*domain.Project{p}, now))
	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "abcdef123")
	assert.Contains(t, out, "Website")
	assert.Contains(t, out, "$25,000")
	assert.Contains(t, out, "2h ago")

	assert.Contains(t, stripANSI(FormatProjectList(nil, now)), "No projects")
}

func TestFormatProjectShow(t *testing.T) {
	p := testutil.NewTestProject("Website")
	s := view.Aggregate(view.Tasks(view.FlattenWithLineNumbers(p.WBS, nil)))
	out := stripANSI(FormatProjectShow(p, s))
	assert.Contains(t, out, "WEBSITE")
	assert.Contains(t, out, "2025-01-06 → 2025-03-01")
	assert.Contains(t, out, "Test Manager")
	assert.Contains(t, out, "SUMMARY")
}

func TestFormatStats(t *testing.T) {
	s := view.Aggregate(testutil.SampleWBS()[0].Children)
	out := stripANSI(FormatStats(s))
	assert.Regexp(t, `Tasks\s+2\n`, out)
	assert.Regexp(t, `Completed\s+1\n`, out)
	assert.Regexp(t, `Blocked\s+0\n`, out)
	assert.Regexp(t, `High priority\s+1\n`, out)
	assert.Contains(t, out, "$3,000")
	assert.Contains(t, out, "70%")
}

func TestFormatTaskTable(t *testing.T) {
	out := stripANSI(FormatTaskTable(testutil.SampleWBS()[1].Children))
	assert.Contains(t, out, "2.1")
	assert.Contains(t, out, "Frontend")
	assert.Contains(t, out, "▲ High")
	assert.Contains(t, stripANSI(FormatTaskTable(nil)), "No matching tasks")
}

func TestFormatTaskDetail(t *testing.T) {
	task := testutil.SampleWBS()[0].Children[1]
	out := stripANSI(FormatTaskDetail(task))
	assert.Contains(t, out, "WIREFRAMES")
	assert.Contains(t, out, "2025-01-16 → 2025-01-31")
	assert.Contains(t, out, "● In Progress")
}

func TestFormatResources(t *testing.T) {
	out := stripANSI(FormatResources([]domain.Resource{
		{ResourceID: "R1", ResourceName: "Alice", Type: domain.ResourceLabor, CostUnit: domain.CostPerHour, UnitPrice: 120},
	}))
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "$120")
	assert.Contains(t, stripANSI(FormatResources(nil)), "No resources")
}

func TestFormatHistory(t *testing.T) {
	now := time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)
	out := stripANSI(FormatHistory([]domain.ConversationEntry{
		{Timestamp: now.Add(-time.Minute * 3), UserPrompt: "add QA phase", AIResponse: "Project updated successfully", TasksModified: 9, Action: domain.ActionCommand},
	}, now))
	assert.Contains(t, out, "3m ago")
	assert.Contains(t, out, "add QA phase")
	assert.Contains(t, out, "(9 tasks)")
}

func TestFormatTemplates(t *testing.T) {
	entries, err := tmpl.Catalog{}.Entries()
	require.NoError(t, err)
	out := stripANSI(FormatTemplates(entries))
	assert.Contains(t, out, "software")
	assert.Contains(t, out, "builtin")
}

func TestStartSpinner_ClearsLineOnStop(t *testing.T) {
	var buf bytes.Buffer
	stop := StartSpinner(&buf, "Generating plan...")
	stop()
	stop()

	out := buf.String()
	assert.Contains(t, stripANSI(out), "Generating plan...")
	assert.True(t, strings.HasSuffix(out, "\r\033[K"))
}
