package civil

// IsLeapYear reports whether year is a Gregorian leap year: divisible by 4,
// except centuries not divisible by 400.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%400 == 0 || year%100 != 0)
}

// DaysIn returns the number of days in month of year. month must be in
// 1..12.
func DaysIn(year, month int64) int64 {
	if month == 2 && IsLeapYear(year) {
		return daysPerMonth[1] + 1
	}
	return daysPerMonth[month-1]
}

// leapDaysThrough returns the number of leap years in 1..year.
func leapDaysThrough(year int64) int64 {
	return floorDiv(year, 4) + floorDiv(year, 400) - floorDiv(year, 100)
}

// LeapDaysBetweenYears returns the number of leap days between 1 January of
// start and 1 January of end; negative when end precedes start. A leap
// year's own February 29 is never counted for either endpoint.
func LeapDaysBetweenYears(start, end int64) int64 {
	return leapDaysThrough(yearBeforeLeapDay(end)) - leapDaysThrough(yearBeforeLeapDay(start))
}

// yearBeforeLeapDay returns year, or the year before it for leap years, so
// that leapDaysThrough excludes the year's own February 29.
func yearBeforeLeapDay(year int64) int64 {
	if IsLeapYear(year) {
		return year - 1
	}
	return year
}

// LeapDaysBetween returns the number of February 29ths walked through
// going from start to end; negative when end precedes start. A leap day is
// walked through only once the date is past it: a timestamp in January or
// in February on or before the 29th has not yet passed its year's leap day.
// Only the date fields are consulted.
func LeapDaysBetween(start, end Timestamp) int64 {
	return leapDaysThrough(leapDayYear(end)) - leapDaysThrough(leapDayYear(start))
}

// leapDayYear returns the year to pass to leapDaysThrough so that the
// result counts only the leap days before t.
func leapDayYear(t Timestamp) int64 {
	if IsLeapYear(t.Year) && (t.Month == 1 || (t.Month == 2 && t.Day <= 29)) {
		return t.Year - 1
	}
	return t.Year
}

// secondsBetweenEpochs returns the number of seconds, excluding leap
// seconds, from 1 January of start to 1 January of end.
func secondsBetweenEpochs(start, end int64) int64 {
	return (end-start)*secondsPerYear + LeapDaysBetweenYears(start, end)*secondsPerDay
}
