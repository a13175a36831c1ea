package walker

import (
	"strings"

	"github.com/durp-dev/durp/pkg/errors"
)

// Mode controls what a walk does when a component fails validation
type Mode string

const (
	// ModeFailFast aborts the walk on the first invalid component
	ModeFailFast Mode = "fail-fast"
	// ModeCollect records invalid components as diagnostics and keeps going
	ModeCollect Mode = "collect"
)

// ParseMode parses a mode name. The empty string selects ModeFailFast.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fail-fast", "failfast":
		return ModeFailFast, nil
	case "collect":
		return ModeCollect, nil
	default:
		return ModeFailFast, errors.Newf(errors.ErrInvalidInput, "unknown walk mode: %s", s)
	}
}
