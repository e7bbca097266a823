// Package civil provides a leap-second-aware civil calendar timestamp for
// scientific and aerospace timekeeping.
//
// Unlike Unix and NTP timestamps, which silently repeat or smear the
// inserted second, a [Timestamp] can represent 23:59:60 on the days the
// IERS inserts a leap second, and the epoch offsets produced by
// [Scale.Seconds] count every elapsed SI second, leap seconds included.
// That makes differences between two values exact, which matters for
// mission elapsed time and other monotonic counting schemes.
//
// All calendar arithmetic is relative to a [Scale], an immutable value that
// carries the epoch year and the leap-second tables. Build one with
// [NewScale] or [LoadScale] and share it freely between goroutines.
//
// Only the proleptic Gregorian calendar in UTC is supported.
package civil

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	// ErrCivil wraps parsing errors returned by the civil package.
	ErrCivil = errors.New("civil")

	// ErrScale wraps errors raised while loading a Scale.
	ErrScale = errors.New("scale")
)

const (
	// DefaultEpochYear is the epoch year of an uninitialized Scale, and the
	// year NTP and the IERS leap-second list count from.
	DefaultEpochYear = 1900

	// MaxYear is the last year a valid Timestamp may fall in.
	MaxYear = 9999

	monthsPerYear    = 12
	hoursPerDay      = 24
	minutesPerHour   = 60
	secondsPerMinute = 60 // excluding leap seconds
	daysPerYear      = 365

	secondsPerHour = minutesPerHour * secondsPerMinute
	secondsPerDay  = hoursPerDay * secondsPerHour
	secondsPerYear = daysPerYear * secondsPerDay
)

// daysPerMonth contains the length of each month in a common year.
//
//nolint:gochecknoglobals
var daysPerMonth = [monthsPerYear]int64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// floorDiv returns a divided by b rounded toward negative infinity. b must
// be positive.
func floorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
