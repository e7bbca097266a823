package civil

// Seconds returns the number of seconds elapsed from the epoch to t,
// counting every leap second in between. t should be valid; see
// [Scale.Normalize]. Offsets for timestamps before the epoch are negative.
func (sc *Scale) Seconds(t Timestamp) int64 {
	sc.checkInit()
	return sc.seconds(t)
}

// SecondsFrac is like Seconds but also returns t's fractional second.
func (sc *Scale) SecondsFrac(t Timestamp) (int64, float64) {
	sc.checkInit()
	return sc.seconds(t), t.Frac
}

func (sc *Scale) seconds(t Timestamp) int64 {
	// Months are summed at their common-year lengths: a per-year correction
	// would only cover the current year. LeapDaysBetween below corrects for
	// every leap day since the epoch at once.
	var sum int64
	for m := int64(1); m < t.Month && m <= monthsPerYear; m++ {
		sum += daysPerMonth[m-1] * secondsPerDay
	}

	sum += (t.Year - sc.epochYear) * secondsPerYear
	sum += (t.Day-1)*secondsPerDay + t.Hour*secondsPerHour + t.Minute*secondsPerMinute
	sum += LeapDaysBetween(sc.Epoch(), t) * secondsPerDay
	sum += sc.leapSecondsBefore(t)
	return sum + t.Second
}

// FromSeconds returns the Timestamp n seconds after the epoch, counting
// leap seconds.
func (sc *Scale) FromSeconds(n int64) Timestamp {
	sc.checkInit()
	return sc.fromSeconds(n, 0)
}

// FromSecondsFrac returns the Timestamp n+frac seconds after the epoch,
// counting leap seconds. frac may be any finite value; it need not be in
// [0, 1).
func (sc *Scale) FromSecondsFrac(n int64, frac float64) Timestamp {
	sc.checkInit()
	return sc.fromSeconds(n, frac)
}

// fromSeconds adds the offset directly to the epoch's Second and Frac
// fields and lets normalization turn the result into a calendar value.
func (sc *Scale) fromSeconds(n int64, frac float64) Timestamp {
	t := sc.Epoch()
	t.Second += n
	t.Frac += frac
	return sc.normalize(t)
}

// Sub returns the number of seconds from u to t, leap seconds included.
// The integral and fractional parts of each operand are combined only after
// subtracting, so no precision is lost to large offsets.
func (sc *Scale) Sub(t, u Timestamp) float64 {
	sc.checkInit()
	whole := sc.seconds(t) - sc.seconds(u)
	return float64(whole) + (t.Frac - u.Frac)
}

// LeapSecondsBefore returns the number of leap seconds that have fully
// elapsed before t, ignoring t's fractional second. A leap second instant
// does not count itself.
func (sc *Scale) LeapSecondsBefore(t Timestamp) int64 {
	sc.checkInit()
	return sc.leapSecondsBefore(t)
}

func (sc *Scale) leapSecondsBefore(t Timestamp) int64 {
	var n int64
	for _, inst := range sc.instants {
		if t.compareSeconds(inst) <= 0 {
			break
		}
		n++
	}
	return n
}

// LeapSecondsBetween returns the number of leap seconds whose epoch offsets
// lie in the closed interval between start and end. The count is positive
// when end is after start, negative when end is before start, and zero when
// they are equal.
func (sc *Scale) LeapSecondsBetween(start, end int64) int64 {
	sc.checkInit()
	return sc.leapSecondsBetween(start, end)
}

func (sc *Scale) leapSecondsBetween(start, end int64) int64 {
	lo, hi, sign := start, end, int64(1)
	switch {
	case end == start:
		return 0
	case end < start:
		lo, hi, sign = end, start, -1
	}

	var n int64
	for _, d := range sc.deltas {
		if d > hi {
			break
		}
		if d >= lo {
			n++
		}
	}
	return sign * n
}

// IsLeapMinute returns true if the minute containing t ends in a leap
// second.
func (sc *Scale) IsLeapMinute(t Timestamp) bool {
	sc.checkInit()
	return sc.isLeapMinute(t)
}

func (sc *Scale) isLeapMinute(t Timestamp) bool {
	for _, inst := range sc.instants {
		if t.sameMinute(inst) {
			return true
		}
	}
	return false
}

// SecondsInMinute returns the number of seconds in the minute containing
// t: 61 for a minute ending in a leap second, otherwise 60.
func (sc *Scale) SecondsInMinute(t Timestamp) int64 {
	sc.checkInit()
	return sc.secondsInMinute(t)
}

func (sc *Scale) secondsInMinute(t Timestamp) int64 {
	if sc.isLeapMinute(t) {
		return secondsPerMinute + 1
	}
	return secondsPerMinute
}
