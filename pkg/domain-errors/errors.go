// Package domainerrors defines the coded error type returned by calendar
// value construction, parsing and field extraction.
//
// Callers branch on the Code, never on the message:
//
//	ym, err := datetime.ParseYearMonth(text, nil)
//	if dErrors.HasCode(err, dErrors.CodeParseGrammar) { ... }
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain failure.
type Code string

const (
	// CodeCalendarRange: a year, month or day is outside its valid range, or
	// a time zone identifier is unknown.
	CodeCalendarRange Code = "calendar_range"

	// CodeParseGrammar: text does not match the grammar of the chosen parser.
	CodeParseGrammar Code = "parse_grammar"

	// CodeMissingField: a field requested from a parse result was not captured.
	CodeMissingField Code = "missing_field"

	// CodeInvalidInput: a loosely typed value could not be coerced.
	CodeInvalidInput Code = "invalid_input"
)

// Error is a coded domain error. Field, Value, Min and Max are set for range
// failures; Position is the byte offset for grammar failures, or -1.
type Error struct {
	Code     Code
	Message  string
	Field    string
	Value    int
	Min      int
	Max      int
	Position int
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with the given code and message.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, Position: -1}
}

// Newf creates an error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, msg string) *Error {
	e := New(code, msg)
	e.Err = err
	return e
}

// Range reports value as outside [min, max] for the named field.
func Range(field string, value, min, max int) *Error {
	e := Newf(CodeCalendarRange, "%s must be in the interval [%d, %d], got %d", field, min, max, value)
	e.Field = field
	e.Value = value
	e.Min = min
	e.Max = max
	return e
}

// At reports a grammar failure at byte offset pos.
func At(pos int, format string, args ...any) *Error {
	e := Newf(CodeParseGrammar, format, args...)
	e.Position = pos
	return e
}

// HasCode reports whether err or any error it wraps carries code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// CodeOf returns the code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// UnknownTimeZone reports an unrecognised zone identifier.
func UnknownTimeZone(zone string, err error) *Error {
	return Wrap(err, CodeCalendarRange, fmt.Sprintf("unknown time zone (%s)", zone))
}
