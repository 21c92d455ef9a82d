package service

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotOwner is returned when the acting profile does not own the
	// resource it is trying to mutate.
	ErrNotOwner = errors.New("not the owner of this resource")
)

// FieldErrors carries per-field validation messages back to the form that
// submitted them. Nothing is persisted when a handler sees one.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
