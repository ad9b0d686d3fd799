package template

import (
	"fmt"
	"strings"
)

// ValidateSchema checks a TemplateSchema for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateSchema(schema *TemplateSchema) []error {
	var errs []error

	if schema.ID == "" {
		errs = append(errs, fmt.Errorf("template id is required"))
	}
	if schema.Name == "" {
		errs = append(errs, fmt.Errorf("template name is required"))
	}
	if schema.Budget < 0 {
		errs = append(errs, fmt.Errorf("budget must be >= 0, got %g", schema.Budget))
	}
	if len(schema.Phases) == 0 {
		errs = append(errs, fmt.Errorf("at least one phase is required"))
	}

	for i, p := range schema.Phases {
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Errorf("phase[%d]: name is required", i))
		}
		if p.Duration < 1 {
			errs = append(errs, fmt.Errorf("phase[%d]: duration must be >= 1, got %d", i, p.Duration))
		}
		if len(p.Tasks) == 0 {
			errs = append(errs, fmt.Errorf("phase[%d]: at least one task is required", i))
		}
		for j, t := range p.Tasks {
			if strings.TrimSpace(t) == "" {
				errs = append(errs, fmt.Errorf("phase[%d].tasks[%d]: name is required", i, j))
			}
		}
	}

	return errs
}
