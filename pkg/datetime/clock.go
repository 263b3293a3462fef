package datetime

//go:generate mockgen -source=clock.go -destination=mocks/clock.go -package=mocks Clock

import (
	"time"

	dErrors "chrono/pkg/domain-errors"
)

// Clock supplies the current instant. It is the only source of "now" for the
// value types; pass a fixed implementation in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the operating system clock.
func SystemClock() Clock {
	return systemClock{}
}

// TimeZone is an opaque zone used only to turn an instant into a calendar
// date. The zero value is UTC.
type TimeZone struct {
	loc *time.Location
}

// TimeZoneOf resolves an IANA identifier such as "Europe/Paris".
//
// Errors: CodeCalendarRange when the identifier is empty or unknown.
func TimeZoneOf(id string) (TimeZone, error) {
	if id == "" {
		return TimeZone{}, dErrors.UnknownTimeZone(id, nil)
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return TimeZone{}, dErrors.UnknownTimeZone(id, err)
	}
	return TimeZone{loc: loc}, nil
}

// TimeZoneOfLocation wraps loc; nil means UTC.
func TimeZoneOfLocation(loc *time.Location) TimeZone {
	return TimeZone{loc: loc}
}

func UTC() TimeZone {
	return TimeZone{loc: time.UTC}
}

func (z TimeZone) Location() *time.Location {
	if z.loc == nil {
		return time.UTC
	}
	return z.loc
}

func (z TimeZone) ID() string {
	return z.Location().String()
}

func (z TimeZone) String() string {
	return z.ID()
}

func resolveClock(clock Clock) Clock {
	if clock == nil {
		return SystemClock()
	}
	return clock
}
