package validator

import "fmt"

// FieldErrors accumulates validation failures keyed by field path, keeping
// insertion order so the summary message always names the first violation.
// A nil or empty FieldErrors means the payload passed.
type FieldErrors struct {
	order  []string
	fields map[string][]string
}

// NewFieldErrors creates an empty FieldErrors.
func NewFieldErrors() *FieldErrors {
	return &FieldErrors{fields: make(map[string][]string)}
}

// Add records a failure message for a field path.
func (e *FieldErrors) Add(field, message string) {
	if _, seen := e.fields[field]; !seen {
		e.order = append(e.order, field)
	}
	e.fields[field] = append(e.fields[field], message)
}

// Addf records a formatted failure message for a field path.
func (e *FieldErrors) Addf(field, format string, args ...interface{}) {
	e.Add(field, fmt.Sprintf(format, args...))
}

// Merge appends all failures from other, preserving its insertion order.
func (e *FieldErrors) Merge(other *FieldErrors) {
	if other == nil {
		return
	}
	for _, field := range other.order {
		for _, msg := range other.fields[field] {
			e.Add(field, msg)
		}
	}
}

// Empty reports whether no failures were recorded.
func (e *FieldErrors) Empty() bool {
	return e == nil || len(e.order) == 0
}

// Count returns the total number of recorded messages.
func (e *FieldErrors) Count() int {
	n := 0
	for _, msgs := range e.fields {
		n += len(msgs)
	}
	return n
}

// Fields returns the field→messages map for the response body.
func (e *FieldErrors) Fields() map[string][]string {
	return e.fields
}

// Message renders the aggregate summary: the first failure, annotated with
// how many more were found alongside it.
func (e *FieldErrors) Message() string {
	if e.Empty() {
		return ""
	}
	first := e.fields[e.order[0]][0]
	if n := e.Count() - 1; n > 0 {
		return fmt.Sprintf("%s. (and %d more errors)", first, n)
	}
	return first + "."
}
