package waveform

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/blackfynn/blackfynn-go/pkg/epoch"
	"github.com/pkg/errors"
)

// FrameStart is the timestamp of the first row of generated frames
var FrameStart = time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)

// Column names of generated frames, in order
const (
	ColumnWalk     = "random-walk"
	ColumnSin      = "sin"
	ColumnSawtooth = "sawtooth"
	ColumnSquare   = "square"
)

// MaxFrameRows bounds the number of rows of a generated frame
const MaxFrameRows = 1 << 28

// Column is a named series
type Column struct {
	Name   string
	Values []float64
}

// Frame is a set of series sharing a time index
type Frame struct {
	Index   []time.Time
	Columns []Column
}

// Len is the number of rows
func (f *Frame) Len() int {
	return len(f.Index)
}

// Column looks up a series by name
func (f *Frame) Column(name string) ([]float64, bool) {
	for _, c := range f.Columns {
		if c.Name == name {
			return c.Values, true
		}
	}
	return nil, false
}

// GenerateFrame builds a demo frame spanning some minutes, sampled at freq Hz,
// starting at FrameStart. The end of the span is excluded.
//
// Options apply to every column.
func GenerateFrame(minutes int, freq float64, opts ...Option) (*Frame, error) {
	if minutes < 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "negative duration %d minutes", minutes)
	}
	if freq <= 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "sampling frequency must be positive, got %v", freq)
	}
	step := time.Duration(float64(time.Second) / freq)
	if step <= 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "sampling frequency %v is too high", freq)
	}

	if int64(minutes) > math.MaxInt64/int64(time.Minute) {
		return nil, errors.Wrapf(ErrInvalidShape, "duration of %d minutes is out of range", minutes)
	}

	span := time.Duration(minutes) * time.Minute
	rows := span / step
	if span%step != 0 {
		rows++
	}
	if rows > MaxFrameRows {
		return nil, errors.Wrapf(ErrInvalidShape, "%d minutes at %v Hz exceed %d rows", minutes, freq, MaxFrameRows)
	}
	n := int(rows)
	frame := &Frame{
		Index: make([]time.Time, n),
	}
	for i := range frame.Index {
		frame.Index[i] = FrameStart.Add(time.Duration(i) * step)
	}

	// all columns draw from the same source, so a seed reproduces the whole frame
	o := defaultOptions(opts)
	colOpts := append(append(make([]Option, 0, len(opts)+1), opts...), Rand(o.rnd))

	for _, spec := range []struct {
		name string
		kind Kind
	}{
		{ColumnWalk, Walk},
		{ColumnSin, Sin},
		{ColumnSawtooth, Sawtooth},
		{ColumnSquare, Square},
	} {
		values, err := Generate(n, spec.kind, colOpts...)
		if err != nil {
			return nil, errors.Wrapf(err, "column %s", spec.name)
		}
		frame.Columns = append(frame.Columns, Column{Name: spec.name, Values: values})
	}
	return frame, nil
}

// WriteCSV writes the frame with a header row. The first column holds
// timestamps as microseconds since the epoch.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, len(f.Columns)+1)
	header = append(header, "timestamp")
	for _, c := range f.Columns {
		header = append(header, c.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for i, ts := range f.Index {
		record[0] = strconv.FormatInt(epoch.Microseconds(ts), 10)
		for j, c := range f.Columns {
			record[j+1] = strconv.FormatFloat(c.Values[i], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
