package parser

import (
	"fmt"
	"slices"

	"chrono/pkg/datetime/field"
	dErrors "chrono/pkg/domain-errors"
	"chrono/pkg/platform/sentinel"
)

// Result accumulates the field values captured while scanning text.
//
// Values are stored raw; Field validates them against the field's range on
// the way out so that a well-formed but out-of-range token is reported as a
// calendar error, not a grammar error.
type Result struct {
	values map[field.Field]int
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{values: make(map[field.Field]int, 3)}
}

// Set records a captured value. Each field may be captured once.
func (r *Result) Set(f field.Field, value int) error {
	if !f.IsValid() {
		return dErrors.Newf(dErrors.CodeInvalidInput, "unknown field %d", int(f))
	}
	if _, ok := r.values[f]; ok {
		return dErrors.Wrap(sentinel.ErrConflict, dErrors.CodeParseGrammar,
			fmt.Sprintf("field %s captured twice", f))
	}
	r.values[f] = value
	return nil
}

// Has reports whether f was captured.
func (r *Result) Has(f field.Field) bool {
	_, ok := r.values[f]
	return ok
}

// Field returns the captured value of f.
//
// Errors: CodeMissingField (wrapping sentinel.ErrNotFound) when f was not
// captured; CodeCalendarRange when the value is outside f's range.
func (r *Result) Field(f field.Field) (int, error) {
	v, ok := r.values[f]
	if !ok {
		e := dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeMissingField,
			fmt.Sprintf("field %s is not present in the parse result", f))
		e.Field = f.Name()
		return 0, e
	}
	if err := f.Check(v); err != nil {
		return 0, err
	}
	return v, nil
}

// Fields returns the captured fields in declaration order.
func (r *Result) Fields() []field.Field {
	out := make([]field.Field, 0, len(r.values))
	for f := range r.values {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}
