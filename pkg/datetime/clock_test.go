package datetime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chrono/pkg/datetime"
	dErrors "chrono/pkg/domain-errors"
	"chrono/pkg/testutil"
)

func TestTimeZoneOf(t *testing.T) {
	z, err := datetime.TimeZoneOf("UTC")
	require.NoError(t, err)
	assert.Equal(t, "UTC", z.ID())

	for _, id := range []string{"", "Mars/Olympus_Mons"} {
		_, err := datetime.TimeZoneOf(id)
		de := testutil.RequireCode(t, err, dErrors.CodeCalendarRange)
		assert.Contains(t, de.Message, "unknown time zone ("+id+")")
	}
}

func TestTimeZone_ZeroValueIsUTC(t *testing.T) {
	var z datetime.TimeZone
	assert.Equal(t, time.UTC, z.Location())
	assert.Equal(t, datetime.UTC().ID(), z.ID())
	assert.Equal(t, time.UTC, datetime.TimeZoneOfLocation(nil).Location())
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	now := datetime.SystemClock().Now()
	assert.False(t, now.Before(before))
}
