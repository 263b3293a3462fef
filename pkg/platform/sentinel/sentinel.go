package sentinel

import "errors"

// Sentinel errors for lookup facts. Parse results and registries return
// these wrapped in a coded domain error so callers can match either the code
// or the fact:
// - ErrNotFound: the requested key was never recorded
// - ErrConflict: the key was recorded twice
//
// For range and grammar failures, use pkg/domain-errors directly.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
