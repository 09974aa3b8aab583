package waveform

import (
	"math/rand"
	"time"
)

const (
	// DefaultScale is the default amplitude of generated series
	DefaultScale = 5.0

	// DefaultPeriods is the default number of pattern repetitions
	DefaultPeriods = 10
)

type options struct {
	scale   float64
	periods int
	rnd     *rand.Rand
}

// Option to configure a generated series
type Option func(*options)

// Scale sets the amplitude of the series
func Scale(scale float64) Option {
	return func(o *options) {
		o.scale = scale
	}
}

// Periods sets the number of times the pattern is repeated over the series
func Periods(periods int) Option {
	return func(o *options) {
		o.periods = periods
	}
}

// Rand injects the random source used by random walks
func Rand(rnd *rand.Rand) Option {
	return func(o *options) {
		o.rnd = rnd
	}
}

// Seed makes random walks reproducible
func Seed(seed int64) Option {
	return Rand(rand.New(rand.NewSource(seed))) // #nosec
}

func defaultOptions(opts []Option) options {
	o := options{
		scale:   DefaultScale,
		periods: DefaultPeriods,
	}
	for _, apply := range opts {
		apply(&o)
	}
	if o.rnd == nil {
		o.rnd = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec
	}
	return o
}
