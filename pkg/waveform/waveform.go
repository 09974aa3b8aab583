package waveform

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidShape is returned when the requested size and periods can't produce a series
	ErrInvalidShape = errors.New("invalid series shape")

	// ErrUnknownKind is returned for an unsupported waveform
	ErrUnknownKind = errors.New("unknown waveform")
)

// Kind of waveform
type Kind uint8

// Supported waveforms
const (
	Walk Kind = iota + 1
	Sin
	Square
	Sawtooth
)

var kindNames = map[Kind]string{
	Walk:     "walk",
	Sin:      "sin",
	Square:   "square",
	Sawtooth: "sawtooth",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a waveform name to a Kind
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, kn := range kindNames {
		if kn == n {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", name)
}

// Generate a series of size values.
//
// Square and sawtooth repeat a pattern of size/periods values. When size is not
// a multiple of periods, the remaining values continue the pattern rather than
// being padded.
func Generate(size int, kind Kind, opts ...Option) ([]float64, error) {
	o := defaultOptions(opts)
	if size < 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "negative size %d", size)
	}
	if o.periods < 1 {
		return nil, errors.Wrapf(ErrInvalidShape, "periods must be at least 1, got %d", o.periods)
	}

	switch kind {
	case Walk:
		return walk(size, o), nil
	case Sin:
		return sine(size, o), nil
	case Square:
		pattern, err := patternFor(size, o)
		if err != nil {
			return nil, err
		}
		half := len(pattern) / 2
		for i := range pattern {
			if i < half {
				pattern[i] = -o.scale
			} else {
				pattern[i] = o.scale
			}
		}
		return tile(pattern, size), nil
	case Sawtooth:
		pattern, err := patternFor(size, o)
		if err != nil {
			return nil, err
		}
		copy(pattern, linspace(-o.scale, o.scale, len(pattern)))
		return tile(pattern, size), nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%d", uint8(kind))
	}
}

func walk(size int, o options) []float64 {
	x := make([]float64, size)
	var (
		sum, peak float64
	)
	for i := range x {
		sum += o.rnd.Float64() - 0.5
		x[i] = sum
		peak = math.Max(peak, math.Abs(sum))
	}
	if peak == 0 {
		return x
	}
	for i := range x {
		x[i] = x[i] / peak * o.scale
	}
	return x
}

func sine(size int, o options) []float64 {
	x := linspace(0, 2*math.Pi*float64(o.periods), size)
	for i := range x {
		x[i] = math.Sin(x[i]) * o.scale
	}
	return x
}

func patternFor(size int, o options) ([]float64, error) {
	length := size / o.periods
	if length == 0 && size > 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "%d values can't hold %d periods", size, o.periods)
	}
	return make([]float64, length), nil
}

// tile repeats the pattern until size values are produced
func tile(pattern []float64, size int) []float64 {
	out := make([]float64, size)
	for i := range out {
		out[i] = pattern[i%len(pattern)]
	}
	return out
}

// linspace returns n evenly spaced values over [start, stop]
func linspace(start, stop float64, n int) []float64 {
	x := make([]float64, n)
	switch n {
	case 0:
		return x
	case 1:
		x[0] = start
		return x
	}
	step := (stop - start) / float64(n-1)
	for i := range x {
		x[i] = start + float64(i)*step
	}
	x[n-1] = stop
	return x
}
