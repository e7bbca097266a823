package civil

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultDateSeparator separates the year, month, and day in the output of
// [Timestamp.String].
const DefaultDateSeparator = '/'

// DateString returns the date part of t as "YYYY<sep>MM<sep>DD", zero
// padded.
func (t Timestamp) DateString(sep rune) string {
	return fmt.Sprintf("%04d%c%02d%c%02d", t.Year, sep, t.Month, sep, t.Day)
}

// TimeString returns the time part of t as "HH:MM:SS", zero padded. A
// non-zero Frac is appended with as many digits as needed to represent it
// exactly, e.g., "14:30:05.25".
func (t Timestamp) TimeString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%02d:%02d:", t.Hour, t.Minute)
	switch {
	case t.Frac == 0:
		fmt.Fprintf(&b, "%02d", t.Second)
	case t.Frac > 0 && t.Frac < 1:
		fmt.Fprintf(&b, "%02d", t.Second)
		// Drop the leading "0" of "0.xxx".
		b.WriteString(strconv.FormatFloat(t.Frac, 'f', -1, 64)[1:])
	default:
		// Out of range; show the combined value rather than hide it.
		sec := float64(t.Second) + t.Frac
		if sec >= 0 && sec < 10 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.FormatFloat(sec, 'f', -1, 64))
	}
	return b.String()
}

// Format returns t as the date, using sep between its fields, followed by a
// space and the time.
func (t Timestamp) Format(sep rune) string {
	return t.DateString(sep) + " " + t.TimeString()
}

// String returns t in the format "YYYY/MM/DD HH:MM:SS[.fraction]".
func (t Timestamp) String() string {
	return t.Format(DefaultDateSeparator)
}

// isoString returns t in the format "YYYY-MM-DDTHH:MM:SS[.fraction]".
func (t Timestamp) isoString() string {
	return t.DateString('-') + "T" + t.TimeString()
}

// MarshalJSON implements the json.Marshaler interface. The timestamp is a
// quoted string in the format "YYYY-MM-DDTHH:MM:SS[.fraction]".
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, t.isoString()), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The timestamp
// must be a quoted string in a format accepted by [Parse].
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	src, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: Cannot parse %s as timestamp", ErrCivil, data)
	}
	ts, err := Parse(src)
	if err != nil {
		return fmt.Errorf("%w: Cannot parse %s as timestamp", ErrCivil, data)
	}
	*t = ts
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface, using the
// same format as MarshalJSON.
func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.isoString()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The
// text must be in a format accepted by [Parse].
func (t *Timestamp) UnmarshalText(data []byte) error {
	ts, err := Parse(string(data))
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
