package civil

import (
	"cmp"
	"time"
)

// Timestamp is a UTC calendar date and time of day with fractional seconds.
//
// A Timestamp may hold fields outside their valid ranges, for example after
// adding a number of seconds directly to Second. [Scale.Valid] reports
// whether it is in range and [Scale.Normalize] carries any excess into the
// coarser fields, accounting for leap days and leap seconds.
type Timestamp struct {
	Year   int64
	Month  int64 // 1..12
	Day    int64 // 1..28, 29, 30, or 31
	Hour   int64 // 0..23
	Minute int64 // 0..59
	Second int64 // 0..59, or 0..60 in a minute ending in a leap second

	// Frac is the fractional part of the second, in [0, 1).
	Frac float64
}

// New returns a Timestamp with the given fields. The fields are not
// checked or normalized.
func New(year, month, day, hour, minute, second int64, frac float64) Timestamp {
	return Timestamp{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
		Frac:   frac,
	}
}

// FromTime converts src to a Timestamp in UTC. Since time.Time does not
// represent leap seconds, the result never has Second set to 60.
func FromTime(src time.Time) Timestamp {
	src = src.UTC()
	return Timestamp{
		Year:   int64(src.Year()),
		Month:  int64(src.Month()),
		Day:    int64(src.Day()),
		Hour:   int64(src.Hour()),
		Minute: int64(src.Minute()),
		Second: int64(src.Second()),
		Frac:   float64(src.Nanosecond()) / float64(time.Second),
	}
}

// IsLeapYear reports whether t falls in a leap year.
func (t Timestamp) IsLeapYear() bool { return IsLeapYear(t.Year) }

// Compare compares t with u field by field, from Year down to Frac. If t
// is before u, it returns -1; if t is after u, it returns +1; if they're
// the same, it returns 0.
func (t Timestamp) Compare(u Timestamp) int {
	if c := t.compareSeconds(u); c != 0 {
		return c
	}
	return cmp.Compare(t.Frac, u.Frac)
}

// compareSeconds is like Compare but ignores Frac.
func (t Timestamp) compareSeconds(u Timestamp) int {
	for _, c := range [...]int{
		cmp.Compare(t.Year, u.Year),
		cmp.Compare(t.Month, u.Month),
		cmp.Compare(t.Day, u.Day),
		cmp.Compare(t.Hour, u.Hour),
		cmp.Compare(t.Minute, u.Minute),
		cmp.Compare(t.Second, u.Second),
	} {
		if c != 0 {
			return c
		}
	}
	return 0
}

// Equal returns true if every field of t equals that of u, including Frac.
func (t Timestamp) Equal(u Timestamp) bool { return t.Compare(u) == 0 }

// EqualIgnoringFrac returns true if t and u are equal down to the whole
// second.
func (t Timestamp) EqualIgnoringFrac(u Timestamp) bool { return t.compareSeconds(u) == 0 }

// Before returns true if t sorts before u.
func (t Timestamp) Before(u Timestamp) bool { return t.Compare(u) < 0 }

// After returns true if t sorts after u.
func (t Timestamp) After(u Timestamp) bool { return t.Compare(u) > 0 }

// sameMinute returns true if t and u share every field down to Minute.
func (t Timestamp) sameMinute(u Timestamp) bool {
	return t.Year == u.Year && t.Month == u.Month && t.Day == u.Day &&
		t.Hour == u.Hour && t.Minute == u.Minute
}
