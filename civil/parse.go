package civil

import (
	"fmt"
	"regexp"
	"strconv"
)

// timestampPattern matches a date with "-" or "/" separators, optionally
// followed by a space or "T" and a time with optional seconds and fraction.
// Field widths are not limited so that out-of-range values can be parsed
// and then normalized.
//
//nolint:gochecknoglobals
var timestampPattern = regexp.MustCompile(
	`^(\d+)[-/](\d+)[-/](\d+)(?:[ T]+(\d+):(\d+)(?::(\d+)(\.\d*)?)?)?$`,
)

// Parse parses src into a Timestamp. It accepts the formats produced by
// [Timestamp.String], [Timestamp.Format], and [Timestamp.MarshalJSON]:
//
//	2012/06/30 23:59:60
//	2012-06-30T23:59:60.25
//	2012-06-30 23:59
//	2012-06-30
//
// Omitted time fields are zero. The fields are not range checked; pass the
// result to [Scale.Normalize] or [Scale.Valid] as appropriate.
func Parse(src string) (Timestamp, error) {
	m := timestampPattern.FindStringSubmatch(src)
	if m == nil {
		return Timestamp{}, fmt.Errorf(
			`%w: format is not recognized: "%v"`,
			ErrCivil, src,
		)
	}

	var fields [6]int64
	for i, s := range m[1:7] {
		if s == "" {
			continue
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Timestamp{}, fmt.Errorf("%w: %q out of range in %q", ErrCivil, s, src)
		}
		fields[i] = v
	}

	var frac float64
	if m[7] != "" {
		// Cannot fail: the pattern allows only digits after the dot.
		frac, _ = strconv.ParseFloat("0"+m[7], 64)
	}

	return New(fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], frac), nil
}

// MustParse is like Parse but panics on parse failure.
func MustParse(src string) Timestamp {
	ts, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return ts
}
