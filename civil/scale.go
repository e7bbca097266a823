package civil

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/theory/leaptime/leap"
)

// Scale is the time scale every Timestamp calculation is anchored to: the
// epoch year from which seconds are counted, plus the leap seconds inserted
// since then. A Scale is immutable once built and safe for concurrent use.
//
// Each leap second is recorded twice: as the calendar instant of the
// inserted second (23:59:60 on the day it occurred), used to decide which
// minutes have 61 seconds, and as its offset in seconds from the epoch,
// used to count leap seconds between two offsets without converting them
// back to calendar values.
type Scale struct {
	epochYear   int64
	instants    []Timestamp
	deltas      []int64
	initialized bool
	log         logrus.FieldLogger
	warnOnce    sync.Once
}

// Option configures a Scale.
type Option func(*Scale)

// WithLogger sets the logger a Scale reports diagnostics to. Defaults to
// the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(sc *Scale) {
		if log != nil {
			sc.log = log
		}
	}
}

//nolint:gochecknoglobals
var defaultScale = newScale(DefaultEpochYear)

// Default returns the uninitialized Scale: epoch year 1900 and no leap
// seconds. The first calculation using it logs a warning.
func Default() *Scale { return defaultScale }

func newScale(epochYear int64, opts ...Option) *Scale {
	sc := &Scale{epochYear: epochYear, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// NewScale builds a Scale counting from 1 January of epochYear, with the
// leap seconds in leaps. Each element of leaps is an NTP timestamp as read
// by [leap.Read]: the second, counted from 1900 without leap seconds, at
// which a leap second's correction takes effect. The leap second itself is
// the 23:59:60 immediately before it.
//
// Leap seconds on or before the epoch are dropped silently. Entries that
// do not fall on a minute boundary or that do not increase are dropped
// with a warning.
func NewScale(epochYear int64, leaps []uint64, opts ...Option) *Scale {
	sc := newScale(epochYear, opts...)
	sc.initialized = true

	// The list counts from 1900 without leap seconds; shift each entry to
	// this epoch, then add the leap seconds already recorded.
	fromNTP := secondsBetweenEpochs(DefaultEpochYear, epochYear)
	var prev int64 = math.MinInt64
	for _, v := range leaps {
		if v > math.MaxInt64 {
			sc.log.WithField("ntp", v).Warn("leap second out of range; dropped")
			continue
		}
		ntp := int64(v)
		if ntp <= fromNTP {
			continue
		}
		if ntp%secondsPerMinute != 0 {
			sc.log.WithField("ntp", v).Warn("leap second not on a minute boundary; dropped")
			continue
		}
		if ntp <= prev {
			sc.log.WithField("ntp", v).Warn("leap second out of order; dropped")
			continue
		}
		prev = ntp

		k := int64(len(sc.deltas))
		offset := ntp - fromNTP + k

		// The second before offset reads 23:59:59 without this leap second
		// in the tables; the leap second is the 23:59:60 that follows.
		instant := sc.fromSeconds(offset-1, 0)
		instant.Second++

		sc.instants = append(sc.instants, instant)
		sc.deltas = append(sc.deltas, offset)
	}

	sc.log.WithFields(logrus.Fields{
		"epoch_year":   epochYear,
		"leap_seconds": len(sc.deltas),
	}).Debug("leap-second scale initialized")
	return sc
}

// LoadScale reads the leap-second list at path with [leap.ReadFile] and
// passes it to [NewScale]. If the file cannot be read, LoadScale logs the
// failure and returns an uninitialized Scale with the default epoch along
// with an error wrapping [ErrScale]. The returned Scale is usable either
// way, so callers may choose to carry on without leap-second handling.
func LoadScale(epochYear int64, path string, opts ...Option) (*Scale, error) {
	leaps, err := leap.ReadFile(path)
	if err != nil {
		sc := newScale(DefaultEpochYear, opts...)
		sc.log.WithError(err).WithField("path", path).Error("cannot load leap seconds")
		return sc, fmt.Errorf("%w: %w", ErrScale, err)
	}
	return NewScale(epochYear, leaps, opts...), nil
}

// EpochYear returns the year whose first instant is epoch offset zero.
func (sc *Scale) EpochYear() int64 { return sc.epochYear }

// Epoch returns the Timestamp for epoch offset zero: 00:00:00 on 1 January
// of the epoch year.
func (sc *Scale) Epoch() Timestamp {
	return Timestamp{Year: sc.epochYear, Month: 1, Day: 1}
}

// Initialized returns true if sc was built from a leap-second list, and
// false for the default Scale or one that failed to load.
func (sc *Scale) Initialized() bool { return sc.initialized }

// LeapSeconds returns the instant of every leap second after the epoch, in
// order. Each has Second set to 60.
func (sc *Scale) LeapSeconds() []Timestamp {
	return append([]Timestamp(nil), sc.instants...)
}

// LeapOffsets returns the epoch offset of every leap second after the
// epoch, in order, matching [Scale.LeapSeconds].
func (sc *Scale) LeapOffsets() []int64 {
	return append([]int64(nil), sc.deltas...)
}

// checkInit warns the first time an uninitialized Scale is used.
func (sc *Scale) checkInit() {
	if sc.initialized {
		return
	}
	sc.warnOnce.Do(func() {
		sc.log.WithField("epoch_year", sc.epochYear).Warn(
			"leap-second scale not initialized: no leap-second handling and default epoch",
		)
	})
}

// key is an unexported type for keys defined in this package. This prevents
// collisions with keys defined in other packages.
type key int

// scaleKey is the key for *Scale values in Contexts. It is unexported;
// clients use ContextWithScale and ScaleFromContext instead of using this
// key directly.
const scaleKey key = 0

// ContextWithScale returns a new Context that carries sc.
func ContextWithScale(ctx context.Context, sc *Scale) context.Context {
	if sc == nil {
		return ctx
	}
	return context.WithValue(ctx, scaleKey, sc)
}

// ScaleFromContext returns the Scale stored in ctx, or [Default].
func ScaleFromContext(ctx context.Context) *Scale {
	if sc, ok := ctx.Value(scaleKey).(*Scale); ok {
		return sc
	}
	return Default()
}
