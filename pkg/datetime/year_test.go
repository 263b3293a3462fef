package datetime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chrono/pkg/datetime"
	"chrono/pkg/datetime/field"
	"chrono/pkg/datetime/mocks"
	dErrors "chrono/pkg/domain-errors"
	"chrono/pkg/testutil"
)

func TestYear_IsLeap(t *testing.T) {
	tests := map[int]bool{
		2024: true,
		2023: false,
		2000: true,
		1900: false,
		0:    true,
		-4:   true,
		-100: false,
		-400: true,
	}

	for value, leap := range tests {
		y, err := datetime.YearOf(value)
		require.NoError(t, err)
		assert.Equal(t, leap, y.IsLeap(), "year %d", value)
		if leap {
			assert.Equal(t, 366, y.Length())
		} else {
			assert.Equal(t, 365, y.Length())
		}
	}
}

func TestYearOf_OutOfRange(t *testing.T) {
	_, err := datetime.YearOf(field.MaxYear + 1)
	de := testutil.RequireCode(t, err, dErrors.CodeCalendarRange)
	assert.Equal(t, field.MinYear, de.Min)
	assert.Equal(t, field.MaxYear, de.Max)
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		text string
		want int
		str  string
	}{
		{"2007", 2007, "2007"},
		{"+2007", 2007, "2007"},
		{"-0044", -44, "-44"},
		{"07", 7, "07"},
		{"999999", 999999, "999999"},
	}

	for _, tt := range tests {
		y, err := datetime.ParseYear(tt.text, nil)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, y.Value())
		assert.Equal(t, tt.str, y.String())
	}

	_, err := datetime.ParseYear("7", nil)
	testutil.RequireCode(t, err, dErrors.CodeParseGrammar)
}

func TestYear_AtMonthAndDay(t *testing.T) {
	leap, err := datetime.YearOf(2024)
	require.NoError(t, err)
	common, err := datetime.YearOf(2023)
	require.NoError(t, err)

	ym, err := leap.AtMonth(2)
	require.NoError(t, err)
	assert.Equal(t, "2024-02", ym.String())
	_, err = leap.AtMonth(0)
	testutil.RequireCode(t, err, dErrors.CodeCalendarRange)

	tests := []struct {
		year datetime.Year
		day  int
		want string
	}{
		{leap, 1, "2024-01-01"},
		{leap, 60, "2024-02-29"},
		{common, 60, "2023-03-01"},
		{leap, 366, "2024-12-31"},
		{common, 365, "2023-12-31"},
	}
	for _, tt := range tests {
		d, err := tt.year.AtDay(tt.day)
		require.NoError(t, err)
		assert.Equal(t, tt.want, d.String())
		assert.Equal(t, tt.day, d.DayOfYear())
	}

	_, err = common.AtDay(366)
	de := testutil.RequireCode(t, err, dErrors.CodeCalendarRange)
	assert.Equal(t, 365, de.Max)

	_, err = leap.AtDay(0)
	testutil.RequireCode(t, err, dErrors.CodeCalendarRange)
}

func TestYearNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Date(2007, time.June, 1, 12, 0, 0, 0, time.UTC))

	y, err := datetime.YearNow(datetime.UTC(), clock)
	require.NoError(t, err)
	assert.Equal(t, 2007, y.Value())
}
