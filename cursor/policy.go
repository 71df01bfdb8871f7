package cursor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned by ParsePolicy for an unrecognised name.
var ErrUnknownPolicy = errors.New("cursor: unknown policy")

// Policy selects what happens after the last waypoint.
type Policy int

const (
	// ClampAtEnd holds the last waypoint as the target once it is reached.
	ClampAtEnd Policy = iota

	// Cyclic wraps back to the first waypoint.
	Cyclic
)

// String returns "clamp" or "cyclic".
func (p Policy) String() string {
	switch p {
	case ClampAtEnd:
		return "clamp"
	case Cyclic:
		return "cyclic"
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps a case-insensitive name to a Policy. Accepted names are
// "clamp", "clamp-at-end", "cyclic" and "loop".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamp", "clamp-at-end", "clampatend":
		return ClampAtEnd, nil
	case "cyclic", "loop":
		return Cyclic, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}
