package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
	tmpl "github.com/alexanderramin/ganttly/internal/template"
	"github.com/alexanderramin/ganttly/internal/view"
	"github.com/alexanderramin/ganttly/internal/wbs"
)

// FormatProjectList renders projects as a table, newest first as given.
func FormatProjectList(projects []*domain.Project, now time.Time) string {
	if len(projects) == 0 {
		return Dim("No projects yet. Create one with 'ganttly project new' or 'ganttly project generate'.") + "\n"
	}

	headers := []string{"ID", "NAME", "START", "TASKS", "BUDGET", "MODIFIED"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			p.ProjectStart.String(),
			strconv.Itoa(wbs.Count(p.WBS)),
			Money(p.ProjectBudget),
			Dim(HumanTimestamp(p.LastModified, now)),
		})
	}
	return RenderTableAligned(headers, rows, map[int]bool{3: true, 4: true})
}

// FormatProjectShow renders a project summary box followed by its stats.
func FormatProjectShow(p *domain.Project, s view.Stats) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("ID:"), p.ID))
	if p.Description != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Description:"), p.Description))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Start:"), p.ProjectStart))
	if start, end, ok := wbs.Span(p.WBS); ok {
		b.WriteString(fmt.Sprintf("%s  %s → %s\n", Dim("Schedule:"), start, end))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Manager:"), p.ProjectManager))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Budget:"), Money(p.ProjectBudget)))
	if p.TemplateID != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Template:"), p.TemplateID))
	}
	b.WriteString(fmt.Sprintf("%s  %d\n", Dim("Resources:"), len(p.Resources)))
	b.WriteString("\n")
	b.WriteString(RenderProgress(s.AvgProgress, 30))

	return RenderBox(p.Name, b.String()) + "\n\n" + FormatStats(s)
}

// FormatHistory renders the assistant log oldest first.
func FormatHistory(entries []domain.ConversationEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("No assistant history.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header("History") + "\n")
	for _, e := range entries {
		action := StyleBlue.Render(string(e.Action))
		if e.Action == domain.ActionGenerate {
			action = StylePurple.Render(string(e.Action))
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n", Dim(HumanTimestamp(e.Timestamp, now)), action, Bold(e.UserPrompt)))
		b.WriteString(fmt.Sprintf("    %s %s\n", e.AIResponse, Dim(fmt.Sprintf("(%d tasks)", e.TasksModified))))
	}
	return b.String()
}

// FormatResources renders a project's registry with 1-based positions.
func FormatResources(list []domain.Resource) string {
	if len(list) == 0 {
		return Dim("No resources.") + "\n"
	}
	headers := []string{"#", "ID", "NAME", "TYPE", "UNIT", "PRICE"}
	rows := make([][]string, 0, len(list))
	for i, r := range list {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			Dim(r.ResourceID),
			Bold(r.ResourceName),
			string(r.Type),
			string(r.CostUnit),
			Money(r.UnitPrice),
		})
	}
	return RenderTableAligned(headers, rows, map[int]bool{0: true, 5: true})
}

// FormatTemplates renders the template catalog.
func FormatTemplates(entries []tmpl.Entry) string {
	if len(entries) == 0 {
		return Dim("No templates found.") + "\n"
	}
	headers := []string{"#", "ID", "NAME", "PHASES", "BUDGET", "SOURCE"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		src := e.Source
		if e.Builtin {
			src = Dim("builtin")
		}
		rows = append(rows, []string{
			strconv.Itoa(e.Index),
			e.Schema.ID,
			Bold(e.Schema.Name),
			strconv.Itoa(len(e.Schema.Phases)),
			Money(e.Schema.Budget),
			src,
		})
	}
	return RenderTableAligned(headers, rows, map[int]bool{0: true, 3: true, 4: true})
}
