package bench

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Clock returns the current time. Durations are taken with Time.Sub, so
// the monotonic reading from time.Now is used when present.
type Clock func() time.Time

// Option configures a Harness via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds Harness parameters.
type Options struct {
	// Logger receives run events. Failures log at Warn, runs at Debug.
	Logger zerolog.Logger

	// Clock times each search call.
	Clock Clock

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op logger and time.Now.
func DefaultOptions() Options {
	return Options{
		Logger: zerolog.Nop(),
		Clock:  time.Now,
	}
}

// WithLogger sets the structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithClock replaces the time source, mainly for tests.
func WithClock(c Clock) Option {
	return func(o *Options) {
		if c == nil {
			o.err = fmt.Errorf("%w: clock is nil", ErrOptionViolation)
			return
		}
		o.Clock = c
	}
}
