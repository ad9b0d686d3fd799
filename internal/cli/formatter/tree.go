package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/view"
	"github.com/charmbracelet/lipgloss"
)

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderTree renders visible rows as an indented, line-numbered tree with
// box-drawing connectors. Collapsed summary rows get ▸, expanded ones ▾, and
// a date badge is right-aligned.
func RenderTree(rows []view.Row) string {
	if len(rows) == 0 {
		return ""
	}

	last := lastFlags(rows)
	numWidth := len(fmt.Sprint(rows[len(rows)-1].LineNumber))

	type line struct {
		content string
		badge   string
	}
	lines := make([]line, len(rows))
	maxWidth := 0

	// open[d] is true while the ancestor at depth d still has siblings below.
	var open []bool
	for i, r := range rows {
		open = append(open[:r.Depth], !last[i])

		var prefix strings.Builder
		for d := 1; d < r.Depth; d++ {
			if open[d] {
				prefix.WriteString(treePipe)
			} else {
				prefix.WriteString(treeBlank)
			}
		}
		if r.Depth > 0 {
			if last[i] {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}

		marker := "  "
		if r.HasChildren {
			marker = "▸ "
			if r.Expanded {
				marker = "▾ "
			}
		}

		t := r.Task
		title := t.ID + " " + t.Name
		switch t.Status {
		case domain.StatusCompleted:
			title = StyleGreen.Render("✔ ") + Dim(title)
		case domain.StatusInProgress:
			title = StyleYellowBold.Render("▶ " + title)
		case domain.StatusBlocked:
			title = StyleRed.Render("✖ " + title)
		default:
			if r.HasChildren {
				title = Bold(title)
			}
		}

		num := Dim(fmt.Sprintf("%*d ", numWidth, r.LineNumber))
		content := num + StyleDim.Render(prefix.String()) + marker + title
		lines[i].content = content
		if !t.StartDate.IsZero() {
			lines[i].badge = StyleBlue.Render(fmt.Sprintf("[ %s → %s ]", t.StartDate, t.EndDate))
		}
		maxWidth = max(maxWidth, lipgloss.Width(content))
	}

	var b strings.Builder
	for _, l := range lines {
		if l.badge == "" {
			b.WriteString(l.content + "\n")
			continue
		}
		pad := maxWidth - lipgloss.Width(l.content)
		b.WriteString(l.content + strings.Repeat(" ", pad) + "  " + l.badge + "\n")
	}
	return b.String()
}

// lastFlags reports, for every row, whether no later row is a sibling.
func lastFlags(rows []view.Row) []bool {
	last := make([]bool, len(rows))
	for i, r := range rows {
		last[i] = true
		for j := i + 1; j < len(rows); j++ {
			if rows[j].Depth < r.Depth {
				break
			}
			if rows[j].Depth == r.Depth {
				last[i] = false
				break
			}
		}
	}
	return last
}
