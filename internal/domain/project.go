package domain

import "time"

// Project is the record owned by the document store. The schedule engine only
// reads and produces its WBS and Resources fields.
type Project struct {
	ID                  string              `json:"id,omitempty"`
	Name                string              `json:"name"`
	Description         string              `json:"description"`
	ProjectStart        Date                `json:"projectStart"`
	ProjectBudget       float64             `json:"projectBudget"`
	ProjectManager      string              `json:"projectManager"`
	WBS                 []*Task             `json:"wbs"`
	Resources           []Resource          `json:"resources"`
	ConversationHistory []ConversationEntry `json:"conversationHistory"`
	TemplateID          string              `json:"templateId,omitempty"` // set when created from a template
	CreatedAt           time.Time           `json:"createdAt"`
	LastModified        time.Time           `json:"lastModified"`
}

// DisplayID returns the first 8 characters of the project id.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// Touch stamps LastModified.
func (p *Project) Touch(now time.Time) {
	p.LastModified = now.UTC()
}

// Resource is an entry in a project's flat resource registry. Tasks refer to
// resources by free-text name only.
type Resource struct {
	ResourceID   string       `json:"resourceId"`
	ResourceName string       `json:"resourceName"`
	Type         ResourceType `json:"type"`
	CostUnit     CostUnit     `json:"costUnit"`
	UnitPrice    float64      `json:"unitPrice"`
}

// ConversationEntry is one line of a project's append-only assistant log.
type ConversationEntry struct {
	ID            string             `json:"id"`
	Timestamp     time.Time          `json:"timestamp"`
	UserPrompt    string             `json:"userPrompt"`
	AIResponse    string             `json:"aiResponse"`
	TasksModified int                `json:"tasksModified"`
	Action        ConversationAction `json:"action"`
}
