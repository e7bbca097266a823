package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/theory/leaptime/civil"
	"github.com/theory/leaptime/leap"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// errUsage wraps invalid flag and argument values.
var errUsage = errors.New("usage")

// app holds shared state for all subcommands.
type app struct {
	out io.Writer
	log *logrus.Logger

	epochYear int64
	leapFile  string
	logLevel  string
	format    string

	scale *civil.Scale
}

// newApp resolves the flag defaults from the environment.
func newApp(stdout, stderr io.Writer) (*app, error) {
	epochYear, err := strconv.ParseInt(
		envOr("LEAPTIME_EPOCH_YEAR", strconv.Itoa(civil.DefaultEpochYear)), 10, 64,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid LEAPTIME_EPOCH_YEAR: %w", errUsage, err)
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return &app{
		out:       stdout,
		log:       log,
		epochYear: epochYear,
		leapFile:  envOr("LEAPTIME_LEAP_FILE", ""),
		logLevel:  envOr("LEAPTIME_LOG_LEVEL", logrus.WarnLevel.String()),
		format:    formatText,
	}, nil
}

// addFlags binds the persistent flags to a.
func (a *app) addFlags(fs *pflag.FlagSet) {
	fs.Int64Var(&a.epochYear, "epoch-year", a.epochYear,
		"year whose first second is epoch offset zero (env LEAPTIME_EPOCH_YEAR)")
	fs.StringVar(&a.leapFile, "leap-file", a.leapFile,
		"IERS leap-seconds.list to load instead of the built-in list (env LEAPTIME_LEAP_FILE)")
	fs.StringVar(&a.logLevel, "log-level", a.logLevel,
		"log level: panic, fatal, error, warning, info, debug, or trace (env LEAPTIME_LOG_LEVEL)")
	fs.StringVarP(&a.format, "output", "o", a.format, "output format: text, json, or yaml")
}

// setup validates the flags, configures logging, and builds the scale.
// A leap file that cannot be read is logged and leaves the scale without
// leap seconds rather than failing the command.
func (a *app) setup() error {
	lvl, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	a.log.SetLevel(lvl)

	switch a.format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("%w: unknown output format %q", errUsage, a.format)
	}

	if a.leapFile == "" {
		a.scale = civil.NewScale(a.epochYear, leap.Builtin(), civil.WithLogger(a.log))
		return nil
	}

	//nolint:errcheck
	a.scale, _ = civil.LoadScale(a.epochYear, a.leapFile, civil.WithLogger(a.log))
	return nil
}

// textWriter is implemented by command results to render text output.
type textWriter interface {
	writeText(w io.Writer) error
}

// print writes v to the output in the selected format.
func (a *app) print(v textWriter) error {
	switch a.format {
	case formatJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return v.writeText(a.out)
	}
}

// envOr returns the value of the environment variable key, or def if it is
// unset or empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
