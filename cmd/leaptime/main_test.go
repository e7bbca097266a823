package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestCommands(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		args []string
		out  string
	}{
		{
			name: "seconds",
			args: []string{"--epoch-year", "1990", "seconds", "2001-01-01 00:00:00"},
			out:  "347,155,207\n",
		},
		{
			name: "seconds_frac",
			args: []string{"--epoch-year", "1990", "seconds", "1990-12-31T23:59:60.25"},
			out:  "31,536,000.25\n",
		},
		{
			name: "seconds_before_epoch",
			args: []string{"--epoch-year", "1990", "seconds", "1989-12-31 23:59:59.75"},
			out:  "-0.25\n",
		},
		{
			name: "from_seconds",
			args: []string{"--epoch-year", "1990", "from-seconds", "709948809"},
			out:  "2012/06/30 23:59:60\n",
		},
		{
			name: "from_seconds_frac",
			args: []string{"--epoch-year", "1990", "from-seconds", "31536000.5"},
			out:  "1990/12/31 23:59:60.5\n",
		},
		{
			name: "normalize",
			args: []string{"normalize", "2012-06-30 23:59:75"},
			out:  "2012/07/01 00:00:14\n",
		},
		{
			name: "met",
			args: []string{"--epoch-year", "1990", "met", "2001-01-01", "2012-07-12 10:51:18"},
			out:  "363,783,081\n",
		},
		{
			name: "met_negative",
			args: []string{"met", "2001-01-01 00:00:00.25", "2001-01-01"},
			out:  "-0.25\n",
		},
		{
			name: "utc",
			args: []string{"--epoch-year", "1990", "utc", "2001-01-01", "363783081"},
			out:  "2012/07/12 10:51:18\n",
		},
		{
			name: "utc_negative",
			args: []string{"utc", "--", "2012-07-01", "-1"},
			out:  "2012/06/30 23:59:60\n",
		},
		{
			name: "leaps",
			args: []string{"--epoch-year", "2010", "leaps"},
			out: "2012/06/30 23:59:60\t78,796,800\n" +
				"2015/06/30 23:59:60\t173,404,801\n" +
				"2016/12/31 23:59:60\t220,924,802\n",
		},
		{
			name: "leaps_from_file",
			args: []string{
				"--epoch-year", "2010", "leaps",
				"--leap-file", filepath.Join("..", "..", "leap", "testdata", "leap-seconds.list"),
			},
			out: "2012/06/30 23:59:60\t78,796,800\n" +
				"2015/06/30 23:59:60\t173,404,801\n" +
				"2016/12/31 23:59:60\t220,924,802\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			code, stdout, stderr := execute(tc.args...)
			a.Equal(0, code)
			a.Equal(tc.out, stdout)
			a.Empty(stderr)
		})
	}
}

func TestJSONOutput(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	code, stdout, stderr := execute(
		"-o", "json", "--epoch-year", "1990",
		"met", "2001-01-01", "2012-07-12 10:51:18",
	)
	a.Equal(0, code)
	a.Empty(stderr)
	a.JSONEq(`{
		"start": "2001-01-01T00:00:00",
		"timestamp": "2012-07-12T10:51:18",
		"met": 363783081,
		"whole": 363783081,
		"frac": 0
	}`, stdout)

	code, stdout, _ = execute("--output", "json", "normalize", "2013-02-29")
	a.Equal(0, code)
	a.JSONEq(`{
		"input": "2013-02-29T00:00:00",
		"timestamp": "2013-03-01T00:00:00",
		"valid": false
	}`, stdout)
}

func TestYAMLOutput(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	code, stdout, stderr := execute("-o", "yaml", "--epoch-year", "1990", "seconds", "2001-01-01")
	a.Equal(0, code)
	a.Empty(stderr)

	var res struct {
		Timestamp string  `yaml:"timestamp"`
		Seconds   int64   `yaml:"seconds"`
		Frac      float64 `yaml:"frac"`
	}
	r.NoError(yaml.Unmarshal([]byte(stdout), &res))
	a.Equal("2001-01-01T00:00:00", res.Timestamp)
	a.Equal(int64(347155207), res.Seconds)
	a.InDelta(0.0, res.Frac, 0)

	code, stdout, _ = execute("-o", "yaml", "--epoch-year", "2015", "leaps")
	a.Equal(0, code)
	var leaps []map[string]any
	r.NoError(yaml.Unmarshal([]byte(stdout), &leaps))
	r.Len(leaps, 2)
	a.Equal(181*86400, leaps[0]["seconds"])
}

func TestErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		args []string
		err  string
	}{
		{
			name: "bad_time",
			args: []string{"seconds", "nope"},
			err:  `Error: civil: format is not recognized: "nope"`,
		},
		{
			name: "bad_seconds",
			args: []string{"from-seconds", "12abc"},
			err:  `Error: usage: invalid seconds "12abc"`,
		},
		{
			name: "seconds_overflow",
			args: []string{"from-seconds", "99999999999999999999"},
			err:  `Error: usage: seconds "99999999999999999999" out of range`,
		},
		{
			name: "bad_log_level",
			args: []string{"--log-level", "loud", "version"},
			err:  `Error: usage: not a valid logrus Level: "loud"`,
		},
		{
			name: "bad_output",
			args: []string{"-o", "xml", "leaps"},
			err:  `Error: usage: unknown output format "xml"`,
		},
		{
			name: "missing_args",
			args: []string{"met", "2001-01-01"},
			err:  "Error: accepts 2 arg(s), received 1",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			code, stdout, stderr := execute(tc.args...)
			a.Equal(1, code)
			a.Empty(stdout)
			a.Contains(stderr, tc.err)
		})
	}
}

func TestMissingLeapFile(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	path := filepath.Join(t.TempDir(), "leap-seconds.list")
	code, stdout, stderr := execute("--leap-file", path, "--epoch-year", "2010", "leaps")
	a.Equal(0, code)
	a.Empty(stdout)
	a.Contains(stderr, "level=error")
	a.Contains(stderr, "cannot load leap seconds")
}

func TestVersion(t *testing.T) {
	t.Parallel()
	code, stdout, _ := execute("version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "leaptime dev (go")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("LEAPTIME_EPOCH_YEAR", "1990")
	t.Setenv("LEAPTIME_LOG_LEVEL", "error")
	a := assert.New(t)

	code, stdout, _ := execute("seconds", "2001-01-01")
	a.Equal(0, code)
	a.Equal("347,155,207\n", stdout)

	// Flags override the environment.
	code, stdout, _ = execute("--epoch-year", "2001", "seconds", "2001-01-01")
	a.Equal(0, code)
	a.Equal("0\n", stdout)

	t.Setenv("LEAPTIME_EPOCH_YEAR", "nineteen")
	code, stdout, stderr := execute("seconds", "2001-01-01")
	a.Equal(1, code)
	a.Empty(stdout)
	a.Contains(stderr, "leaptime: usage: invalid LEAPTIME_EPOCH_YEAR")
}

func TestEnvOr(t *testing.T) {
	t.Setenv("LEAPTIME_TEST_SET", "hello")
	t.Setenv("LEAPTIME_TEST_EMPTY", "")
	a := assert.New(t)

	a.Equal("hello", envOr("LEAPTIME_TEST_SET", "default"))
	a.Equal("default", envOr("LEAPTIME_TEST_EMPTY", "default"))
	a.Equal("fallback", envOr("LEAPTIME_TEST_UNSET_XYZ", "fallback"))
}

func TestParseSeconds(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		src   string
		whole int64
		frac  float64
		ok    bool
	}{
		{"0", 0, 0, true},
		{"363783081", 363783081, 0, true},
		{"12.5", 12, 0.5, true},
		{"12.", 12, 0, true},
		{"-1", -1, 0, true},
		{"-1.25", -1, -0.25, true},
		{"", 0, 0, false},
		{"-", 0, 0, false},
		{".5", 0, 0, false},
		{"+1", 0, 0, false},
		{"1e3", 0, 0, false},
		{"1.5e3", 0, 0, false},
		{"--1", 0, 0, false},
		{"1.2.3", 0, 0, false},
	} {
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			whole, frac, err := parseSeconds(tc.src)
			if !tc.ok {
				a.ErrorIs(err, errUsage)
				return
			}
			a.NoError(err)
			a.Equal(tc.whole, whole)
			a.InDelta(tc.frac, frac, 0)
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal("0", formatSeconds(0, 0))
	a.Equal("363,783,081", formatSeconds(363783081, 0))
	a.Equal("1,234.5", formatSeconds(1234, 0.5))
	a.Equal("-86,400", formatSeconds(-86400, 0))
	a.Equal("-0.25", formatSeconds(-1, 0.75))
	a.Equal("-1,233.5", formatSeconds(-1234, 0.5))
}
