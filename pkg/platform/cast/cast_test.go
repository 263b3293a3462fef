package cast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "chrono/pkg/domain-errors"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int
	}{
		{"int", 2007, 2007},
		{"negative int64", int64(-12), -12},
		{"uint8", uint8(12), 12},
		{"uint32", uint32(70000), 70000},
		{"integral float", 12.0, 12},
		{"float32", float32(3), 3},
		{"string", "2007", 2007},
		{"signed string", "-44", -44},
		{"plus string", "+7", 7},
		{"padded string", " 12 ", 12},
		{"zero padded string", "007", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInt(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToInt_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"fractional float", 1.5},
		{"NaN", math.NaN()},
		{"infinity", math.Inf(1)},
		{"empty string", ""},
		{"decimal string", "1.0"},
		{"word", "twelve"},
		{"bool", true},
		{"overflowing uint64", uint64(math.MaxUint64)},
		{"slice", []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToInt(tt.input)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
}
