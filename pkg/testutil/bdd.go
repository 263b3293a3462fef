// Package testutil holds helpers shared by the calendar tests: scenario
// wording, a frozen clock and coded-error assertions.
package testutil

import "testing"

// Given, When and Then name nested subtests so a failing calendar scenario
// reads as one sentence: "Given a leap year/When adding a year/Then ...".
func Given(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Given "+desc, fn)
}

func When(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("When "+desc, fn)
}

func Then(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Then "+desc, fn)
}
