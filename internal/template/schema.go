// Package template builds dated projects from phase templates. Templates are
// JSON documents; a built-in set is embedded and more can be loaded from a
// directory.
package template

// TemplateSchema is the top-level JSON template structure.
type TemplateSchema struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Budget      float64       `json:"budget"`
	Manager     string        `json:"manager"`
	Phases      []PhaseConfig `json:"phases"`
}

// PhaseConfig is one phase. Its duration is split evenly across its tasks.
type PhaseConfig struct {
	Name     string   `json:"name"`
	Duration int      `json:"duration"`
	Tasks    []string `json:"tasks"`
}

// TaskCount is the number of leaf tasks the template produces.
func (s *TemplateSchema) TaskCount() int {
	n := 0
	for _, p := range s.Phases {
		n += len(p.Tasks)
	}
	return n
}
