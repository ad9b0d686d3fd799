package wbs

import "errors"

var (
	// ErrNodeNotFound indicates a lookup or mutation addressed an id that is
	// not present in the tree. Mutations return the input tree unchanged
	// together with this error.
	ErrNodeNotFound = errors.New("task not found")

	// ErrMalformedTree indicates the tree violates a structural invariant
	// (missing field, duplicate id, level inconsistent with id or depth).
	ErrMalformedTree = errors.New("malformed tree")

	// ErrUnknownField indicates an update named a field that cannot be set.
	ErrUnknownField = errors.New("unknown task field")

	// ErrFieldValue indicates an update carried a value of the wrong type or
	// outside the field's domain.
	ErrFieldValue = errors.New("invalid field value")

	// ErrDuplicateID indicates an insert derived an id that another live node
	// already carries, which happens after a delete frees a lower sibling.
	ErrDuplicateID = errors.New("derived id already in use")

	// ErrInvalidRange indicates an edit would leave startDate after endDate.
	ErrInvalidRange = errors.New("start date after end date")
)
