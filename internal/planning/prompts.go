package planning

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttly/internal/domain"
)

const generateSystemPrompt = `You are a project management professional. You produce work breakdown structures as strict JSON.

Return ONLY a JSON object with this shape, no markdown and no commentary:
{
  "projectName": "...",
  "projectStart": "YYYY-MM-DD",
  "projectBudget": 200000,
  "projectManager": "Project Manager",
  "wbs": [
    {
      "id": "1", "name": "...", "level": 1,
      "startDate": "YYYY-MM-DD", "endDate": "YYYY-MM-DD", "duration": 10,
      "progress": 0, "status": "Not Started", "priority": "High",
      "riskLevel": "Medium", "resources": "...", "cost": 10000,
      "dependencies": [], "notes": "...",
      "children": [ { "id": "1.1", "level": 2, "children": [] } ]
    }
  ]
}

Rules:
- 4-5 phases with 3-5 tasks each.
- Ids are dotted outline numbers: phases "1", "2"; tasks "1.1", "1.2".
- level equals the number of dot-separated parts of the id.
- status is one of: Not Started, In Progress, Completed, On Hold, Blocked.
- priority and riskLevel are one of: High, Medium, Low.
- duration is endDate minus startDate in days.`

const editSystemPrompt = `You are a project management professional. You modify an existing project plan according to the user's command.

CRITICAL INSTRUCTIONS:
1. Return VALID JSON ONLY (no markdown, no text).
2. Must be parseable JSON (double quotes, no trailing commas).
3. Keep ALL existing tasks unless the command changes them.
4. Return the COMPLETE updated project JSON with the same shape you were given.`

// GenerateSystemPrompt is the system prompt for new plans.
func GenerateSystemPrompt() string { return generateSystemPrompt }

// EditSystemPrompt is the system prompt for edit commands.
func EditSystemPrompt() string { return editSystemPrompt }

// GeneratePrompt is the user message asking for a plan.
func GeneratePrompt(description string, today domain.Date) string {
	return fmt.Sprintf("Today is %s.\nCreate a project plan for:\n%s", today, strings.TrimSpace(description))
}

// EditPrompt is the user message carrying the current project and command.
// The conversation log is left out to keep the request small.
func EditPrompt(p domain.Project, command string) (string, error) {
	p.ConversationHistory = nil
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding project: %w", err)
	}
	return fmt.Sprintf("CURRENT PROJECT JSON:\n%s\n\nUSER COMMAND: %q", data, strings.TrimSpace(command)), nil
}
