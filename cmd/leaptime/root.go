package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/theory/leaptime/civil"
	"github.com/theory/leaptime/met"
)

const timeFormats = `Timestamps may be written as "2012-06-30 23:59:60.5",
"2012/06/30T23:59:60", "2012-06-30 23:59", or "2012-06-30". Fields out of
range are normalized, so "2012-06-30 23:59:75" reads as 2012-07-01 00:00:14,
counting the leap second at 23:59:60.`

// newRootCmd builds the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "leaptime",
		Short: "Leap-second-aware timestamp and mission elapsed time conversions",
		Long: `Convert UTC timestamps to and from seconds since an epoch and mission
elapsed time, counting every leap second.

` + timeFormats,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
	}
	a.addFlags(root.PersistentFlags())

	root.AddCommand(
		newSecondsCmd(a),
		newFromSecondsCmd(a),
		newNormalizeCmd(a),
		newMETCmd(a),
		newUTCCmd(a),
		newLeapsCmd(a),
		newVersionCmd(),
	)
	return root
}

func newSecondsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seconds TIME",
		Short: "Show the seconds from the epoch to TIME",
		Long:  "Show the seconds from the epoch to TIME, leap seconds included.\n\n" + timeFormats,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ts, err := a.parse(args[0])
			if err != nil {
				return err
			}
			sec, frac := a.scale.SecondsFrac(ts)
			return a.print(secondsResult{Timestamp: ts, Seconds: sec, Frac: frac})
		},
	}
}

func newFromSecondsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "from-seconds SECONDS",
		Short: "Show the timestamp SECONDS after the epoch",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sec, frac, err := parseSeconds(args[0])
			if err != nil {
				return err
			}
			return a.print(timestampResult{Timestamp: a.scale.FromSecondsFrac(sec, frac)})
		},
	}
}

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize TIME",
		Short: "Carry out-of-range fields of TIME into range",
		Long:  "Carry out-of-range fields of TIME into range.\n\n" + timeFormats,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ts, err := civil.Parse(args[0])
			if err != nil {
				return err
			}
			norm := a.scale.Normalize(ts)
			if !a.scale.Valid(norm) {
				a.log.WithField("timestamp", norm.String()).Warn("timestamp outside the supported years")
			}
			return a.print(normalizeResult{Input: ts, Timestamp: norm, Valid: a.scale.Valid(ts)})
		},
	}
}

func newMETCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "met START TIME",
		Short: "Show the mission elapsed time from START to TIME",
		Long:  "Show the mission elapsed time in seconds from START to TIME.\n\n" + timeFormats,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			start, err := a.parse(args[0])
			if err != nil {
				return err
			}
			ts, err := a.parse(args[1])
			if err != nil {
				return err
			}
			conv := met.New(a.scale, start)
			whole, frac := conv.Split(ts)
			return a.print(metResult{
				Start:     conv.Start(),
				Timestamp: ts,
				MET:       conv.MET(ts),
				Whole:     whole,
				Frac:      frac,
			})
		},
	}
}

func newUTCCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "utc START MET",
		Short: "Show the timestamp MET seconds after START",
		Long:  "Show the timestamp MET seconds after START.\n\n" + timeFormats,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			start, err := a.parse(args[0])
			if err != nil {
				return err
			}
			whole, frac, err := parseSeconds(args[1])
			if err != nil {
				return err
			}
			conv := met.New(a.scale, start)
			return a.print(timestampResult{Timestamp: conv.UTCSplit(whole, frac)})
		},
	}
}

func newLeapsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "leaps",
		Short: "List the leap seconds after the epoch and their epoch offsets",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			instants := a.scale.LeapSeconds()
			offsets := a.scale.LeapOffsets()
			list := make(leapList, len(instants))
			for i, ts := range instants {
				list[i] = leapEntry{Timestamp: ts, Seconds: offsets[i]}
			}
			return a.print(list)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "leaptime %s (%s)\n", version, runtime.Version())
			return err
		},
	}
}

// parse parses src and normalizes the result.
func (a *app) parse(src string) (civil.Timestamp, error) {
	ts, err := civil.Parse(src)
	if err != nil {
		return ts, err
	}
	return a.scale.Normalize(ts), nil
}
