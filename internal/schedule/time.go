package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned when a time string is not a parseable
// "HH:mm" value. Malformed input is never silently clamped.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// ToMinutes converts an "HH:mm" string to minutes since midnight, in
// [0, 1439].
func ToMinutes(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, hhmm)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, hhmm)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, hhmm)
	}
	return hours*60 + minutes, nil
}

// FromMinutes converts minutes since midnight back to a zero-padded "HH:mm"
// string. Values outside [0, 1439] are a caller contract violation and are
// rejected, never clamped.
func FromMinutes(m int) (string, error) {
	if m < 0 || m > 23*60+59 {
		return "", fmt.Errorf("%w: %d minutes", ErrInvalidTimeFormat, m)
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60), nil
}
