package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	dErrors "chrono/pkg/domain-errors"
)

// RequireCode fails the test unless err carries code, and returns the coded
// error for further assertions.
func RequireCode(t *testing.T, err error, code dErrors.Code) *dErrors.Error {
	t.Helper()
	require.Error(t, err)

	var de *dErrors.Error
	require.ErrorAs(t, err, &de)
	require.Equal(t, code, de.Code, "unexpected code for %v", err)
	return de
}
