package civil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		ts   Timestamp
		str  string
		iso  string
	}{
		{
			name: "whole_second",
			ts:   New(2012, 7, 12, 10, 51, 18, 0),
			str:  "2012/07/12 10:51:18",
			iso:  "2012-07-12T10:51:18",
		},
		{
			name: "leap_second",
			ts:   New(2012, 6, 30, 23, 59, 60, 0),
			str:  "2012/06/30 23:59:60",
			iso:  "2012-06-30T23:59:60",
		},
		{
			name: "frac",
			ts:   New(2012, 6, 30, 23, 59, 60, 0.25),
			str:  "2012/06/30 23:59:60.25",
			iso:  "2012-06-30T23:59:60.25",
		},
		{
			name: "small_frac",
			ts:   New(2001, 1, 1, 0, 0, 5, 0.001),
			str:  "2001/01/01 00:00:05.001",
			iso:  "2001-01-01T00:00:05.001",
		},
		{
			name: "padded_year",
			ts:   New(99, 1, 2, 3, 4, 5, 0),
			str:  "0099/01/02 03:04:05",
			iso:  "0099-01-02T03:04:05",
		},
		{
			name: "frac_out_of_range",
			ts:   New(2012, 1, 1, 0, 0, 5, 1.5),
			str:  "2012/01/01 00:00:06.5",
			iso:  "2012-01-01T00:00:06.5",
		},
		{
			name: "second_out_of_range",
			ts:   New(2012, 1, 1, 0, 0, 75, 0),
			str:  "2012/01/01 00:00:75",
			iso:  "2012-01-01T00:00:75",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			a.Equal(tc.str, tc.ts.String())
			a.Equal(tc.str, tc.ts.Format(DefaultDateSeparator))
			a.Equal(tc.iso, tc.ts.isoString())

			text, err := tc.ts.MarshalText()
			a.NoError(err)
			a.Equal(tc.iso, string(text))
		})
	}
}

func TestDateString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	ts := New(2012, 6, 30, 23, 59, 60, 0)
	a.Equal("2012-06-30", ts.DateString('-'))
	a.Equal("2012/06/30", ts.DateString('/'))
	a.Equal("2012.06.30", ts.DateString('.'))
	a.Equal("23:59:60", ts.TimeString())
	a.Equal("2012-06-30 23:59:60", ts.Format('-'))
}

func TestJSON(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	type doc struct {
		At Timestamp `json:"at"`
	}

	src := doc{At: New(2012, 6, 30, 23, 59, 60, 0.5)}
	data, err := json.Marshal(src)
	r.NoError(err)
	a.JSONEq(`{"at": "2012-06-30T23:59:60.5"}`, string(data))

	var dst doc
	r.NoError(json.Unmarshal(data, &dst))
	a.Equal(src, dst)

	// Also accepts the String format.
	r.NoError(json.Unmarshal([]byte(`{"at": "2001/01/01 00:00:00"}`), &dst))
	a.Equal(New(2001, 1, 1, 0, 0, 0, 0), dst.At)
}

func TestUnmarshalJSONErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		data string
		err  string
	}{
		{"not_string", `12`, `civil: Cannot parse 12 as timestamp`},
		{"bad_format", `"nope"`, `civil: Cannot parse "nope" as timestamp`},
		{"no_time_seconds", `"2012-06-30 23"`, `civil: Cannot parse "2012-06-30 23" as timestamp`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var ts Timestamp
			err := ts.UnmarshalJSON([]byte(tc.data))
			require.EqualError(t, err, tc.err)
			require.ErrorIs(t, err, ErrCivil)
			assert.Equal(t, Timestamp{}, ts)
		})
	}
}

func TestUnmarshalText(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	var ts Timestamp
	r.NoError(ts.UnmarshalText([]byte("2012-06-30T23:59:60")))
	a.Equal(New(2012, 6, 30, 23, 59, 60, 0), ts)

	err := ts.UnmarshalText([]byte("yesterday"))
	r.EqualError(err, `civil: format is not recognized: "yesterday"`)
	r.ErrorIs(err, ErrCivil)
}
