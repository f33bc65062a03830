package accordion

import (
	"fmt"
	"strings"
)

// Mode selects how a group reacts when one of its items is toggled.
type Mode int

const (
	// ModeSingle keeps at most one item expanded; opening an item collapses the rest.
	ModeSingle Mode = iota
	// ModeMultiple lets every item expand and collapse independently.
	ModeMultiple
)

// String returns the manifest spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMultiple:
		return "multiple"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m == ModeSingle || m == ModeMultiple
}

// ParseMode converts "single" or "multiple" (any case) to a Mode. An empty
// value selects ModeSingle.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "single":
		return ModeSingle, nil
	case "multiple":
		return ModeMultiple, nil
	default:
		return ModeSingle, fmt.Errorf("%w: %q", ErrInvalidMode, value)
	}
}
