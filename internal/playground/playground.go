// Package playground implements the conversions behind the browser
// playground. Each returns its result as JSON text, or an error message
// starting with "Error", ready to display.
package playground

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/theory/leaptime/civil"
	"github.com/theory/leaptime/leap"
	"github.com/theory/leaptime/met"
)

// Option bits selecting the conversion and its output.
const (
	OptSeconds int = 1 << iota
	OptFromSeconds
	OptNormalize
	OptMET
	OptUTC
	OptIndent
)

// Execute runs the conversion selected by opts on a scale with the
// built-in leap seconds counting from epochYear. start is the reference
// instant for OptMET and OptUTC; input is a timestamp, or a number of
// seconds for OptFromSeconds and OptUTC.
func Execute(epochYear int64, start, input string, opts int) string {
	log := logrus.New()
	log.SetOutput(io.Discard)
	sc := civil.NewScale(epochYear, leap.Builtin(), civil.WithLogger(log))

	res, err := convert(sc, start, input, opts)
	if err != nil {
		return fmt.Sprintf("Error %v", err)
	}

	// Serialize the result
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if opts&OptIndent == OptIndent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		return fmt.Sprintf("Error serializing results: %v", err)
	}

	return html.EscapeString(buf.String())
}

type result struct {
	Timestamp civil.Timestamp  `json:"timestamp"`
	Seconds   *int64           `json:"seconds,omitempty"`
	Frac      *float64         `json:"frac,omitempty"`
	MET       *float64         `json:"met,omitempty"`
	Start     *civil.Timestamp `json:"start,omitempty"`
	Valid     *bool            `json:"valid,omitempty"`
}

func convert(sc *civil.Scale, start, input string, opts int) (*result, error) {
	switch {
	case opts&OptSeconds == OptSeconds:
		ts, err := parse(sc, input)
		if err != nil {
			return nil, err
		}
		sec, frac := sc.SecondsFrac(ts)
		return &result{Timestamp: ts, Seconds: &sec, Frac: &frac}, nil
	case opts&OptFromSeconds == OptFromSeconds:
		n, err := parseFloat(input)
		if err != nil {
			return nil, err
		}
		whole := math.Floor(n)
		return &result{Timestamp: sc.FromSecondsFrac(int64(whole), n-whole)}, nil
	case opts&OptNormalize == OptNormalize:
		ts, err := civil.Parse(input)
		if err != nil {
			return nil, err
		}
		valid := sc.Valid(ts)
		return &result{Timestamp: sc.Normalize(ts), Valid: &valid}, nil
	case opts&OptMET == OptMET:
		conv, err := converter(sc, start)
		if err != nil {
			return nil, err
		}
		ts, err := parse(sc, input)
		if err != nil {
			return nil, err
		}
		s, elapsed := conv.Start(), conv.MET(ts)
		return &result{Timestamp: ts, Start: &s, MET: &elapsed}, nil
	case opts&OptUTC == OptUTC:
		conv, err := converter(sc, start)
		if err != nil {
			return nil, err
		}
		elapsed, err := parseFloat(input)
		if err != nil {
			return nil, err
		}
		s := conv.Start()
		return &result{Timestamp: conv.UTC(elapsed), Start: &s, MET: &elapsed}, nil
	}
	return nil, errors.New("no conversion selected")
}

func parse(sc *civil.Scale, src string) (civil.Timestamp, error) {
	ts, err := civil.Parse(src)
	if err != nil {
		return ts, err
	}
	return sc.Normalize(ts), nil
}

func converter(sc *civil.Scale, start string) (*met.Converter, error) {
	ts, err := parse(sc, start)
	if err != nil {
		return nil, fmt.Errorf("parsing start: %w", err)
	}
	return met.New(sc, ts), nil
}

func parseFloat(src string) (float64, error) {
	n, err := strconv.ParseFloat(src, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, fmt.Errorf("parsing seconds: invalid number %q", src)
	}
	return n, nil
}
