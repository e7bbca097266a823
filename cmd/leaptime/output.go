package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/theory/leaptime/civil"
)

type timestampResult struct {
	Timestamp civil.Timestamp `json:"timestamp" yaml:"timestamp"`
}

func (r timestampResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.Timestamp)
	return err
}

type secondsResult struct {
	Timestamp civil.Timestamp `json:"timestamp" yaml:"timestamp"`
	Seconds   int64           `json:"seconds"   yaml:"seconds"`
	Frac      float64         `json:"frac"      yaml:"frac"`
}

func (r secondsResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintln(w, formatSeconds(r.Seconds, r.Frac))
	return err
}

type normalizeResult struct {
	Input     civil.Timestamp `json:"input"     yaml:"input"`
	Timestamp civil.Timestamp `json:"timestamp" yaml:"timestamp"`
	Valid     bool            `json:"valid"     yaml:"valid"` // input already valid
}

func (r normalizeResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.Timestamp)
	return err
}

type metResult struct {
	Start     civil.Timestamp `json:"start"     yaml:"start"`
	Timestamp civil.Timestamp `json:"timestamp" yaml:"timestamp"`
	MET       float64         `json:"met"       yaml:"met"`
	Whole     int64           `json:"whole"     yaml:"whole"`
	Frac      float64         `json:"frac"      yaml:"frac"`
}

func (r metResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintln(w, formatSeconds(r.Whole, r.Frac))
	return err
}

type leapEntry struct {
	Timestamp civil.Timestamp `json:"timestamp" yaml:"timestamp"`
	Seconds   int64           `json:"seconds"   yaml:"seconds"`
}

type leapList []leapEntry

func (l leapList) writeText(w io.Writer) error {
	for _, e := range l {
		if _, err := fmt.Fprintf(w, "%v\t%v\n", e.Timestamp, humanize.Comma(e.Seconds)); err != nil {
			return err
		}
	}
	return nil
}

// formatSeconds renders whole+frac with thousands separators. frac must be
// in [0, 1).
func formatSeconds(whole int64, frac float64) string {
	switch {
	case frac == 0:
		return humanize.Comma(whole)
	case whole < 0:
		return humanize.Commaf(float64(whole) + frac)
	default:
		return humanize.Comma(whole) + strconv.FormatFloat(frac, 'f', -1, 64)[1:]
	}
}

const digits = "0123456789"

// parseSeconds parses a decimal number of seconds such as "-12.5" into
// whole and fractional parts without routing the whole part through a
// float64.
func parseSeconds(src string) (int64, float64, error) {
	s, neg := strings.CutPrefix(src, "-")
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" || strings.Trim(intPart, digits) != "" || strings.Trim(fracPart, digits) != "" {
		return 0, 0, fmt.Errorf("%w: invalid seconds %q", errUsage, src)
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: seconds %q out of range", errUsage, src)
	}

	var frac float64
	if hasFrac {
		// Cannot fail: only digits follow the dot.
		frac, _ = strconv.ParseFloat("0."+fracPart, 64)
	}

	if neg {
		return -whole, -frac, nil
	}
	return whole, frac, nil
}
