package parser

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chrono/pkg/datetime/field"
	dErrors "chrono/pkg/domain-errors"
)

func TestISOYearMonth(t *testing.T) {
	tests := []struct {
		text  string
		year  int
		month int
	}{
		{"2007-12", 2007, 12},
		{"0001-01", 1, 1},
		{"05-03", 5, 3},
		{"-12-01", -12, 1},
		{"+2007-06", 2007, 6},
		{"123456-07", 123456, 7},
		{"2007-13", 2007, 13},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r, err := ISOYearMonth().Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, []field.Field{field.Year, field.MonthOfYear}, r.Fields())

			y, err := r.Field(field.Year)
			require.NoError(t, err)
			assert.Equal(t, tt.year, y)
			assert.True(t, r.Has(field.MonthOfYear))
		})
	}
}

func TestISOYearMonth_Malformed(t *testing.T) {
	tests := []struct {
		text string
		pos  int
	}{
		{"", 0},
		{"2007", 4},
		{"2007-", 5},
		{"2007-1", 5},
		{"2007/12", 4},
		{"2007-12-01", 7},
		{"7-12", 0},
		{"-", 0},
		{"1234567-01", 6},
		{"2007-1a", 5},
		{" 2007-12", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ISOYearMonth().Parse(tt.text)
			require.Error(t, err)

			var de *dErrors.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, dErrors.CodeParseGrammar, de.Code)
			assert.Equal(t, tt.pos, de.Position)
		})
	}
}

func TestISODate(t *testing.T) {
	r, err := ISODate().Parse("2007-12-03")
	require.NoError(t, err)

	for f, want := range map[field.Field]int{field.Year: 2007, field.MonthOfYear: 12, field.DayOfMonth: 3} {
		got, err := r.Field(f)
		require.NoError(t, err)
		assert.Equal(t, want, got, f.Name())
	}

	_, err = ISODate().Parse("2007-12")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeParseGrammar))
}

func TestISOYear(t *testing.T) {
	r, err := ISOYear().Parse("-0044")
	require.NoError(t, err)
	y, err := r.Field(field.Year)
	require.NoError(t, err)
	assert.Equal(t, -44, y)

	_, err = ISOYear().Parse("2007-01")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeParseGrammar))
}

func TestDefaultParsers_AreSharedAndConcurrent(t *testing.T) {
	assert.Same(t, ISOYearMonth(), ISOYearMonth())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := ISODate().Parse("2024-02-29")
			if assert.NoError(t, err) {
				d, _ := r.Field(field.DayOfMonth)
				assert.Equal(t, 29, d)
			}
		}()
	}
	wg.Wait()
}

func TestBuilder(t *testing.T) {
	t.Run("ordinal date pattern", func(t *testing.T) {
		p, err := NewBuilder().
			AppendValue(field.Year, 4, 4).
			AppendLiteral("-").
			AppendValue(field.DayOfYear, 3, 3).
			Build()
		require.NoError(t, err)

		r, err := p.Parse("2007-123")
		require.NoError(t, err)
		doy, err := r.Field(field.DayOfYear)
		require.NoError(t, err)
		assert.Equal(t, 123, doy)
		assert.Equal(t, "Year{4} '-' DayOfYear{3}", p.String())
	})

	t.Run("invalid definitions", func(t *testing.T) {
		tests := map[string]*Builder{
			"empty":           NewBuilder(),
			"empty literal":   NewBuilder().AppendLiteral(""),
			"zero width":      NewBuilder().AppendValue(field.Year, 0, 4),
			"inverted widths": NewBuilder().AppendValue(field.Year, 4, 2),
			"too wide":        NewBuilder().AppendValue(field.Year, 1, 10),
			"unknown field":   NewBuilder().AppendValue(field.Field(0), 1, 2),
			"duplicate field": NewBuilder().AppendValue(field.Year, 4, 4).AppendValue(field.Year, 4, 4),
		}
		for name, b := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := b.Build()
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			})
		}
	})
}

func TestPatternParser_String(t *testing.T) {
	assert.Equal(t, "±Year{2,6} '-' MonthOfYear{2}", ISOYearMonth().(*PatternParser).String())
}
