// Package leap reads leap-second lists in the format published by the IERS
// and the IETF, typically distributed as "leap-seconds.list".
//
// Each data line starts with the NTP timestamp (seconds since 1900-01-01
// 00:00:00, counted without leap seconds) at which a new TAI-UTC offset
// takes effect. Only that leading field is consumed; the offset column and
// any trailing comment are ignored. Comment lines start with "#".
package leap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// ErrLeap wraps errors returned by the leap package.
var ErrLeap = errors.New("leap")

// ntpUnixOffset is the number of seconds from the NTP era (1900-01-01) to
// the Unix epoch (1970-01-01).
const ntpUnixOffset = 2208988800

// ParseLine returns the value of the leading run of decimal digits in line.
// Returns false if line does not start with a digit or if the value does
// not fit in a uint64.
func ParseLine(line string) (uint64, bool) {
	end := 0
	for end < len(line) && line[end] >= '0' && line[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseUint(line[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Read returns the leading NTP timestamps of every data line in r, in file
// order. Lines that do not start with a number are skipped.
func Read(r io.Reader) ([]uint64, error) {
	var list []uint64
	sc := NewScanner(r)
	for sc.Scan() {
		if v, ok := ParseLine(sc.Text()); ok {
			list = append(list, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrLeap, sc.Line(), err)
	}
	return list, nil
}

// ReadFile opens path and passes it to [Read]. The file is read exactly
// once; there are no retries.
func ReadFile(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %q: %w", ErrLeap, path, err)
	}
	defer f.Close()
	return Read(f)
}

// NTPSeconds returns the NTP timestamp of midnight at the start of the
// given UTC date.
func NTPSeconds(year int, month time.Month, day int) uint64 {
	return uint64(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() + ntpUnixOffset)
}

// builtin lists the dates on which each leap second through the end of
// 2016 took effect, i.e. the day after the inserted 23:59:60.
//
//nolint:gochecknoglobals
var builtin = []struct {
	year  int
	month time.Month
}{
	{1972, time.July},
	{1973, time.January},
	{1974, time.January},
	{1975, time.January},
	{1976, time.January},
	{1977, time.January},
	{1978, time.January},
	{1979, time.January},
	{1980, time.January},
	{1981, time.July},
	{1982, time.July},
	{1983, time.July},
	{1985, time.July},
	{1988, time.January},
	{1990, time.January},
	{1991, time.January},
	{1992, time.July},
	{1993, time.July},
	{1994, time.July},
	{1996, time.January},
	{1997, time.July},
	{1999, time.January},
	{2006, time.January},
	{2009, time.January},
	{2012, time.July},
	{2015, time.July},
	{2017, time.January},
}

// Builtin returns the NTP timestamps of all leap seconds announced by the
// IERS up to Bulletin C 70. Unlike the published list it omits the 1 Jan
// 1972 entry, which sets the initial TAI-UTC offset rather than inserting
// a leap second. A fresh slice is returned on every call.
func Builtin() []uint64 {
	list := make([]uint64, len(builtin))
	for i, b := range builtin {
		list[i] = NTPSeconds(b.year, b.month, 1)
	}
	return list
}
