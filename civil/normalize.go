package civil

import "math"

// step is one correction in the normalization pipeline. It brings a single
// field of t into range, carrying any excess into coarser fields and
// re-running the steps for those fields as needed.
type step struct {
	name string
	fix  func(sc *Scale, t *Timestamp)
}

// pipeline lists the normalization steps in the order Normalize runs them,
// coarsest field first. Each step is a no-op when its field is already in
// range and requires every coarser field to be in range when it runs, so
// the order must not change.
//
//nolint:gochecknoglobals
var pipeline = [...]step{
	{"month", (*Scale).fixMonth},
	{"day", (*Scale).fixDay},
	{"hour", (*Scale).fixHour},
	{"minute", (*Scale).fixMinute},
	{"second", (*Scale).fixSecond},
	{"frac", (*Scale).fixFrac},
}

// Valid returns true if every field of t is in range: Year from the epoch
// year through [MaxYear], Day within the month, and Second up to 60 only
// in a minute ending in a leap second.
func (sc *Scale) Valid(t Timestamp) bool {
	sc.checkInit()
	return sc.valid(t)
}

func (sc *Scale) valid(t Timestamp) bool {
	return t.Year >= sc.epochYear && t.Year <= MaxYear &&
		monthInRange(t) && dayInRange(t) &&
		t.Hour >= 0 && t.Hour < hoursPerDay &&
		t.Minute >= 0 && t.Minute < minutesPerHour &&
		t.Second >= 0 && t.Second < sc.secondsInMinute(t) &&
		t.Frac >= 0 && t.Frac < 1
}

func monthInRange(t Timestamp) bool { return t.Month >= 1 && t.Month <= monthsPerYear }

func dayInRange(t Timestamp) bool { return t.Day >= 1 && t.Day <= DaysIn(t.Year, t.Month) }

// Normalize returns t with every field carried into range, so that, for
// example, 02:02:59 plus one second becomes 02:03:00 and 23:59:60 on a day
// without a leap second becomes 00:00:00 the next day. Any finite amount
// may be added to or subtracted from any field before normalizing.
//
// Years are not limited, so the result may be before the epoch or after
// [MaxYear]; check [Scale.Valid] when that matters.
func (sc *Scale) Normalize(t Timestamp) Timestamp {
	sc.checkInit()
	return sc.normalize(t)
}

func (sc *Scale) normalize(t Timestamp) Timestamp {
	if sc.valid(t) {
		return t
	}
	for _, s := range pipeline {
		s.fix(sc, &t)
	}
	return t
}

func (*Scale) fixMonth(t *Timestamp) {
	if monthInRange(*t) {
		return
	}
	n := floorDiv(t.Month-1, monthsPerYear)
	t.Year += n
	t.Month -= n * monthsPerYear
}

// stepMonth walks Day into range one month at a time.
func (sc *Scale) stepMonth(t *Timestamp, daysIn func(year, month int64) int64) {
	for t.Day > daysIn(t.Year, t.Month) {
		t.Day -= daysIn(t.Year, t.Month)
		t.Month++
		sc.fixMonth(t)
	}
	for t.Day < 1 {
		t.Month--
		sc.fixMonth(t)
		t.Day += daysIn(t.Year, t.Month)
	}
}

func commonDaysIn(_, month int64) int64 { return daysPerMonth[month-1] }

func (sc *Scale) fixDay(t *Timestamp) {
	if dayInRange(*t) {
		return
	}

	// Jump whole 365-day years and walk the months at their common-year
	// lengths from the first of the month, then take back the leap days
	// that walk skipped over and finish at the true month lengths.
	start := Timestamp{Year: t.Year, Month: t.Month, Day: 1}
	n := floorDiv(t.Day-1, daysPerYear)
	t.Year += n
	t.Day -= n * daysPerYear
	sc.stepMonth(t, commonDaysIn)

	t.Day -= LeapDaysBetween(start, *t)
	sc.stepMonth(t, DaysIn)
}

func (sc *Scale) fixHour(t *Timestamp) {
	if t.Hour >= 0 && t.Hour < hoursPerDay {
		return
	}
	n := floorDiv(t.Hour, hoursPerDay)
	t.Day += n
	t.Hour -= n * hoursPerDay
	sc.fixDay(t)
}

func (sc *Scale) fixMinute(t *Timestamp) {
	if t.Minute >= 0 && t.Minute < minutesPerHour {
		return
	}
	n := floorDiv(t.Minute, minutesPerHour)
	t.Hour += n
	t.Minute -= n * minutesPerHour
	sc.fixHour(t)
}

func (sc *Scale) fixSecond(t *Timestamp) {
	if t.Second >= 0 && t.Second < sc.secondsInMinute(*t) {
		return
	}

	// Jump whole 60-second minutes from the top of the current minute,
	// then take back the leap seconds between the two offsets.
	sec := t.Second
	t.Second = 0
	from := sc.seconds(*t)

	n := floorDiv(sec, secondsPerMinute)
	t.Minute += n
	sec -= n * secondsPerMinute
	sc.fixMinute(t)

	t.Second = sec
	t.Second -= sc.leapSecondsBetween(from, sc.seconds(*t))
	sc.fixMinute(t)

	// Finish a minute at a time at each minute's true length.
	for {
		size := sc.secondsInMinute(*t)
		if t.Second < size {
			break
		}
		t.Second -= size
		t.Minute++
		sc.fixMinute(t)
	}
	for t.Second < 0 {
		t.Minute--
		sc.fixMinute(t)
		t.Second += sc.secondsInMinute(*t)
	}
}

func (sc *Scale) fixFrac(t *Timestamp) {
	if t.Frac >= 0 && t.Frac < 1 {
		return
	}
	n := math.Floor(t.Frac)
	t.Second += int64(n)
	t.Frac -= n

	// A Frac just below zero rounds to exactly 1 above.
	if t.Frac >= 1 {
		t.Frac = 0
		t.Second++
	}
	sc.fixSecond(t)
}
