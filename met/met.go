// Package met converts between civil timestamps and mission elapsed time
// (MET): the number of SI seconds, leap seconds included, since a mission's
// reference instant.
//
// A [Converter] records the reference instant and its epoch offset once;
// each conversion is then a single epoch conversion plus a subtraction or
// addition. All arithmetic is relative to the [civil.Scale] the Converter is
// built with, so use the same Scale that produced any epoch offsets passed
// to [FromEpoch].
package met

import (
	"math"

	"github.com/theory/leaptime/civil"
)

// Converter converts timestamps to and from elapsed seconds relative to a
// fixed reference instant, typically a mission start. It is immutable and
// safe for concurrent use.
type Converter struct {
	scale *civil.Scale
	start civil.Timestamp
	sec   int64
	frac  float64
}

// New returns a Converter with start as its reference instant. start is
// normalized first. A nil sc means [civil.Default].
func New(sc *civil.Scale, start civil.Timestamp) *Converter {
	if sc == nil {
		sc = civil.Default()
	}
	start = sc.Normalize(start)
	sec, frac := sc.SecondsFrac(start)
	return &Converter{scale: sc, start: start, sec: sec, frac: frac}
}

// FromEpoch returns a Converter whose reference instant is sec+frac seconds
// after the epoch of sc. frac may be any finite value. A nil sc means
// [civil.Default].
func FromEpoch(sc *civil.Scale, sec int64, frac float64) *Converter {
	if sc == nil {
		sc = civil.Default()
	}
	sec, frac = carry(sec, frac)
	return &Converter{
		scale: sc,
		start: sc.FromSecondsFrac(sec, frac),
		sec:   sec,
		frac:  frac,
	}
}

// Start returns the reference instant.
func (c *Converter) Start() civil.Timestamp { return c.start }

// StartSeconds returns the epoch offset of the reference instant, split
// into whole and fractional seconds.
func (c *Converter) StartSeconds() (int64, float64) { return c.sec, c.frac }

// Scale returns the Scale c converts with.
func (c *Converter) Scale() *civil.Scale { return c.scale }

// MET returns the number of seconds from the reference instant to t,
// negative if t precedes it. Whole and fractional seconds are subtracted
// separately before being combined.
func (c *Converter) MET(t civil.Timestamp) float64 {
	sec, frac := c.scale.SecondsFrac(t)
	return float64(sec-c.sec) + (frac - c.frac)
}

// Split is like MET but returns the result as whole seconds, rounded down,
// plus the fractional remainder in [0, 1). The two always sum to MET(t),
// so a time 0.25 s before the reference instant splits into -1 and 0.75.
func (c *Converter) Split(t civil.Timestamp) (int64, float64) {
	sec, frac := c.scale.SecondsFrac(t)
	return carry(sec-c.sec, frac-c.frac)
}

// Integral returns the whole seconds returned by Split: MET(t) rounded
// down.
func (c *Converter) Integral(t civil.Timestamp) int64 {
	sec, _ := c.Split(t)
	return sec
}

// UTC returns the Timestamp met seconds after the reference instant. met
// must be finite. Use UTCSplit to avoid losing precision for METs beyond
// the range float64 represents to the desired fraction of a second.
func (c *Converter) UTC(met float64) civil.Timestamp {
	whole := math.Floor(met)
	return c.UTCSplit(int64(whole), met-whole)
}

// UTCSplit returns the Timestamp whole+frac seconds after the reference
// instant. frac may be any finite value.
func (c *Converter) UTCSplit(whole int64, frac float64) civil.Timestamp {
	return c.scale.FromSecondsFrac(c.sec+whole, c.frac+frac)
}

// carry moves the whole part of frac into sec, leaving frac in [0, 1).
func carry(sec int64, frac float64) (int64, float64) {
	if frac >= 0 && frac < 1 {
		return sec, frac
	}
	n := math.Floor(frac)
	sec += int64(n)
	frac -= n
	if frac >= 1 {
		// Rounding of a tiny negative fraction.
		return sec + 1, 0
	}
	return sec, frac
}
