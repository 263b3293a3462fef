package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	t.Run("direct error", func(t *testing.T) {
		err := New(CodeCalendarRange, "month out of range")
		assert.True(t, HasCode(err, CodeCalendarRange))
		assert.False(t, HasCode(err, CodeParseGrammar))
	})

	t.Run("wrapped by fmt", func(t *testing.T) {
		err := fmt.Errorf("loading: %w", New(CodeMissingField, "no year"))
		assert.True(t, HasCode(err, CodeMissingField))
	})

	t.Run("plain error has no code", func(t *testing.T) {
		assert.Equal(t, Code(""), CodeOf(errors.New("boom")))
		assert.False(t, HasCode(nil, CodeInvalidInput))
	})
}

func TestRange(t *testing.T) {
	err := Range("MonthOfYear", 13, 1, 12)

	assert.Equal(t, CodeCalendarRange, err.Code)
	assert.Equal(t, "MonthOfYear", err.Field)
	assert.Equal(t, 13, err.Value)
	assert.Equal(t, 1, err.Min)
	assert.Equal(t, 12, err.Max)
	assert.Equal(t, "calendar_range: MonthOfYear must be in the interval [1, 12], got 13", err.Error())
}

func TestWrap(t *testing.T) {
	cause := errors.New("not found")
	err := Wrap(cause, CodeMissingField, "field Year was not parsed")

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "missing_field: field Year was not parsed: not found", err.Error())
	assert.Equal(t, -1, err.Position)
}

func TestAt(t *testing.T) {
	err := At(4, "expected %q", "-")

	assert.Equal(t, CodeParseGrammar, err.Code)
	assert.Equal(t, 4, err.Position)
	assert.Equal(t, `parse_grammar: expected "-"`, err.Error())
}

func TestUnknownTimeZone(t *testing.T) {
	err := UnknownTimeZone("Mars/Olympus", errors.New("unknown time zone Mars/Olympus"))

	assert.True(t, HasCode(err, CodeCalendarRange))
	assert.Contains(t, err.Error(), "unknown time zone (Mars/Olympus)")
}
