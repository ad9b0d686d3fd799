package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// timeLayout keeps sub-second precision so that List ordering is stable for
// projects created in quick succession.
const timeLayout = time.RFC3339Nano

// marshalDoc encodes a JSON column. nil slices are stored as [] so that a
// round-tripped project never gains null collections.
func marshalDoc[T any](column string, v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", column, err)
	}
	return string(b), nil
}

func unmarshalDoc[T any](column, raw string) ([]T, error) {
	out := []T{}
	if raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", column, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(column, s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}
