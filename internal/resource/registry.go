// Package resource edits a project's flat resource registry. Entries are
// addressed by position, and every operation returns a new slice.
package resource

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
)

var (
	ErrIndexOutOfRange = errors.New("resource index out of range")
	ErrInvalidResource = errors.New("invalid resource")
	ErrUnknownField    = errors.New("unknown resource field")
)

// Field names an editable resource field, spelled as in JSON.
type Field string

const (
	FieldID        Field = "resourceId"
	FieldName      Field = "resourceName"
	FieldType      Field = "type"
	FieldCostUnit  Field = "costUnit"
	FieldUnitPrice Field = "unitPrice"
)

var fields = []Field{FieldID, FieldName, FieldType, FieldCostUnit, FieldUnitPrice}

// ParseField resolves a field name case-insensitively. "id", "name" and
// "price" are accepted as short forms.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "id":
		return FieldID, nil
	case "name":
		return FieldName, nil
	case "unit", "cost-unit":
		return FieldCostUnit, nil
	case "price", "unit-price":
		return FieldUnitPrice, nil
	}
	for _, f := range fields {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// NewResource returns an empty labor resource billed per hour, with an id
// derived from now in milliseconds.
func NewResource(now time.Time) domain.Resource {
	return domain.Resource{
		ResourceID: "R-" + strconv.FormatInt(now.UnixMilli(), 10),
		Type:       domain.ResourceLabor,
		CostUnit:   domain.CostPerHour,
	}
}

// Validate checks enum fields and the price.
func Validate(r domain.Resource) error {
	if !domain.ValidResourceTypes[r.Type] {
		return fmt.Errorf("%w: type %q", ErrInvalidResource, r.Type)
	}
	if !domain.ValidCostUnits[r.CostUnit] {
		return fmt.Errorf("%w: cost unit %q", ErrInvalidResource, r.CostUnit)
	}
	if math.IsNaN(r.UnitPrice) || math.IsInf(r.UnitPrice, 0) {
		return fmt.Errorf("%w: unit price must be a finite number, got %g", ErrInvalidResource, r.UnitPrice)
	}
	if r.UnitPrice < 0 {
		return fmt.Errorf("%w: unit price must be >= 0, got %g", ErrInvalidResource, r.UnitPrice)
	}
	return nil
}

// Add appends r after validating it.
func Add(list []domain.Resource, r domain.Resource) ([]domain.Resource, error) {
	if err := Validate(r); err != nil {
		return list, err
	}
	out := make([]domain.Resource, len(list), len(list)+1)
	copy(out, list)
	return append(out, r), nil
}

// UpdateField sets one field of the resource at index from its text form.
func UpdateField(list []domain.Resource, index int, f Field, raw string) ([]domain.Resource, error) {
	if index < 0 || index >= len(list) {
		return list, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(list))
	}
	r := list[index]
	switch f {
	case FieldID:
		r.ResourceID = raw
	case FieldName:
		r.ResourceName = raw
	case FieldType:
		r.Type = domain.ResourceType(strings.ToLower(strings.TrimSpace(raw)))
	case FieldCostUnit:
		r.CostUnit = domain.CostUnit(strings.ToLower(strings.TrimSpace(raw)))
	case FieldUnitPrice:
		// An empty price clears to zero.
		if strings.TrimSpace(raw) == "" {
			r.UnitPrice = 0
			break
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return list, fmt.Errorf("%w: unit price must be a number, got %q", ErrInvalidResource, raw)
		}
		r.UnitPrice = v
	default:
		return list, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	if err := Validate(r); err != nil {
		return list, err
	}

	out := make([]domain.Resource, len(list))
	copy(out, list)
	out[index] = r
	return out, nil
}

// Delete removes the resource at index.
func Delete(list []domain.Resource, index int) ([]domain.Resource, error) {
	if index < 0 || index >= len(list) {
		return list, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(list))
	}
	out := make([]domain.Resource, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...), nil
}

// IndexOf returns the position of the resource with the given id, or -1.
func IndexOf(list []domain.Resource, id string) int {
	for i, r := range list {
		if r.ResourceID == id {
			return i
		}
	}
	return -1
}
