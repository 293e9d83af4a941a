package forge

import (
	"errors"
	"fmt"
)

// ErrForge is the base error for every failure returned by this package.
// The narrower sentinels below wrap it, so callers can match generically
// with errors.Is(err, ErrForge) or on the specific kind.
var (
	ErrForge = errors.New("forge")

	ErrAuthFailed    = fmt.Errorf("%w: authentication failed", ErrForge)
	ErrRequestFailed = fmt.Errorf("%w: request failed", ErrForge)
	ErrTimeout       = fmt.Errorf("%w: completion timed out", ErrForge)
)
