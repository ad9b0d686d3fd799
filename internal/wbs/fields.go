package wbs

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/ganttly/internal/domain"
)

// Field names an editable scalar field of a task. Names match the JSON keys.
// id, level and children are structural and only change through InsertChild
// and DeleteNode.
type Field string

const (
	FieldName         Field = "name"
	FieldStartDate    Field = "startDate"
	FieldEndDate      Field = "endDate"
	FieldDuration     Field = "duration"
	FieldProgress     Field = "progress"
	FieldStatus       Field = "status"
	FieldPriority     Field = "priority"
	FieldRiskLevel    Field = "riskLevel"
	FieldResources    Field = "resources"
	FieldCost         Field = "cost"
	FieldDependencies Field = "dependencies"
	FieldNotes        Field = "notes"
)

// Fields lists every editable field.
var Fields = []Field{
	FieldName, FieldStartDate, FieldEndDate, FieldDuration, FieldProgress,
	FieldStatus, FieldPriority, FieldRiskLevel, FieldResources, FieldCost,
	FieldDependencies, FieldNotes,
}

// ParseField resolves a field name case-insensitively.
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// ParseFieldValue converts user text into the typed value UpdateField expects
// for f. Dependencies are comma separated.
func ParseFieldValue(f Field, raw string) (any, error) {
	switch f {
	case FieldName, FieldResources, FieldNotes:
		return raw, nil
	case FieldStartDate, FieldEndDate:
		d, err := domain.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFieldValue, f, err)
		}
		return d, nil
	case FieldDuration, FieldProgress:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be an integer, got %q", ErrFieldValue, f, raw)
		}
		return n, nil
	case FieldCost:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || !finite(v) {
			return nil, fmt.Errorf("%w: cost must be a number, got %q", ErrFieldValue, raw)
		}
		return v, nil
	case FieldStatus:
		return domain.TaskStatus(raw), nil
	case FieldPriority:
		return domain.Priority(raw), nil
	case FieldRiskLevel:
		return domain.RiskLevel(raw), nil
	case FieldDependencies:
		var deps []string
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				deps = append(deps, p)
			}
		}
		return deps, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
}

// FieldValue reads f from t, mainly for display and tests.
func FieldValue(t *domain.Task, f Field) (any, error) {
	switch f {
	case FieldName:
		return t.Name, nil
	case FieldStartDate:
		return t.StartDate, nil
	case FieldEndDate:
		return t.EndDate, nil
	case FieldDuration:
		return t.Duration, nil
	case FieldProgress:
		return t.Progress, nil
	case FieldStatus:
		return t.Status, nil
	case FieldPriority:
		return t.Priority, nil
	case FieldRiskLevel:
		return t.RiskLevel, nil
	case FieldResources:
		return t.Resources, nil
	case FieldCost:
		return t.Cost, nil
	case FieldDependencies:
		return t.Dependencies, nil
	case FieldNotes:
		return t.Notes, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
}

// setField writes value into t. Dates are authoritative: writing either date
// recomputes Duration, and writing Duration moves EndDate.
func setField(t *domain.Task, f Field, value any) error {
	switch f {
	case FieldName:
		s, err := asString(f, value)
		if err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: name cannot be empty", ErrFieldValue)
		}
		t.Name = s
	case FieldResources, FieldNotes:
		s, err := asString(f, value)
		if err != nil {
			return err
		}
		if f == FieldResources {
			t.Resources = s
		} else {
			t.Notes = s
		}
	case FieldStartDate, FieldEndDate:
		d, ok := value.(domain.Date)
		if !ok || d.IsZero() {
			return fmt.Errorf("%w: %s expects a date, got %T", ErrFieldValue, f, value)
		}
		start, end := t.StartDate, t.EndDate
		if f == FieldStartDate {
			start = d
		} else {
			end = d
		}
		if !start.IsZero() && !end.IsZero() && start.After(end) {
			return fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
		}
		t.StartDate, t.EndDate = start, end
		if !start.IsZero() && !end.IsZero() {
			t.Duration = start.DaysUntil(end)
		}
	case FieldDuration:
		n, err := asInt(f, value)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("%w: duration must be >= 0, got %d", ErrFieldValue, n)
		}
		t.Duration = n
		if !t.StartDate.IsZero() {
			t.EndDate = t.StartDate.AddDays(n)
		}
	case FieldProgress:
		n, err := asInt(f, value)
		if err != nil {
			return err
		}
		if n < 0 || n > 100 {
			return fmt.Errorf("%w: progress must be 0-100, got %d", ErrFieldValue, n)
		}
		t.Progress = n
	case FieldCost:
		v, err := asFloat(value)
		if err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("%w: cost must be >= 0, got %g", ErrFieldValue, v)
		}
		t.Cost = v
	case FieldStatus:
		s, err := asString(f, value)
		if err != nil {
			return err
		}
		if !domain.TaskStatus(s).Valid() {
			return fmt.Errorf("%w: status %q", ErrFieldValue, s)
		}
		t.Status = domain.TaskStatus(s)
	case FieldPriority:
		s, err := asString(f, value)
		if err != nil {
			return err
		}
		if !domain.Priority(s).Valid() {
			return fmt.Errorf("%w: priority %q", ErrFieldValue, s)
		}
		t.Priority = domain.Priority(s)
	case FieldRiskLevel:
		s, err := asString(f, value)
		if err != nil {
			return err
		}
		if !domain.RiskLevel(s).Valid() {
			return fmt.Errorf("%w: riskLevel %q", ErrFieldValue, s)
		}
		t.RiskLevel = domain.RiskLevel(s)
	case FieldDependencies:
		deps, ok := value.([]string)
		if !ok {
			return fmt.Errorf("%w: dependencies expects []string, got %T", ErrFieldValue, value)
		}
		t.Dependencies = append([]string(nil), deps...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return nil
}

func asString(f Field, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case domain.TaskStatus:
		return string(v), nil
	case domain.Priority:
		return string(v), nil
	case domain.RiskLevel:
		return string(v), nil
	default:
		return "", fmt.Errorf("%w: %s expects a string, got %T", ErrFieldValue, f, value)
	}
}

func asInt(f Field, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%w: %s must be a whole number, got %g", ErrFieldValue, f, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: %s expects an integer, got %T", ErrFieldValue, f, value)
	}
}

func asFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		if !finite(v) {
			return 0, fmt.Errorf("%w: cost must be finite, got %g", ErrFieldValue, v)
		}
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: cost expects a number, got %T", ErrFieldValue, value)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
