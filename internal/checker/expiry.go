package checker

import (
	"fmt"
	"time"

	"github.com/opsprobe/check-domain/internal/plugin"
)

// expirationLayouts are tried in order; registries emit eventDate both with
// and without fractional seconds. Only the literal Z designator is accepted,
// numeric offsets are not.
var expirationLayouts = []string{
	"2006-01-02T15:04:05.999999Z",
	"2006-01-02T15:04:05Z",
}

// ParseError reports an expiration date string matching none of the layouts.
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid expiration date format: %s", e.Value)
}

// ParseExpirationDate converts an RDAP eventDate string to a UTC instant.
// Sub-second precision is dropped when the instant is reduced to epoch
// seconds downstream.
func ParseExpirationDate(s string) (time.Time, error) {
	for _, layout := range expirationLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &ParseError{Value: s}
}

const secondsPerDay = 86400

// DaysLeft is the number of whole days from now until expiresAt, floored.
// A domain 12 hours past expiry is therefore -1, not 0.
func DaysLeft(expiresAt, now time.Time) int {
	secs := expiresAt.Unix() - now.Unix()
	days := secs / secondsPerDay
	if secs < 0 && secs%secondsPerDay != 0 {
		days--
	}
	return int(days)
}

// Evaluate maps days-to-expiry onto a status. Comparisons are strict, so a
// daysLeft equal to a threshold stays in the less severe state. The critical
// comparison runs first; a critical threshold above the warning one is
// honored literally, not corrected.
func Evaluate(expiresAt, now time.Time, warningDays, criticalDays int) (plugin.Status, int) {
	daysLeft := DaysLeft(expiresAt, now)
	switch {
	case daysLeft < 0:
		return plugin.StatusCritical, daysLeft
	case daysLeft < criticalDays:
		return plugin.StatusCritical, daysLeft
	case daysLeft < warningDays:
		return plugin.StatusWarning, daysLeft
	default:
		return plugin.StatusOK, daysLeft
	}
}
