package waveform

import (
	"bytes"
	"encoding/csv"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFrame(t *testing.T) {
	frame, err := GenerateFrame(2, 100, Seed(1))
	require.NoError(t, err)

	require.Equal(t, 12000, frame.Len())
	assert.Equal(t, FrameStart, frame.Index[0])
	assert.Equal(t, FrameStart.Add(10*time.Millisecond), frame.Index[1])
	assert.Equal(t, FrameStart.Add(2*time.Minute-10*time.Millisecond), frame.Index[frame.Len()-1])

	names := make([]string, 0, len(frame.Columns))
	for _, c := range frame.Columns {
		names = append(names, c.Name)
		assert.Len(t, c.Values, frame.Len())
	}
	assert.Equal(t, []string{ColumnWalk, ColumnSin, ColumnSawtooth, ColumnSquare}, names)

	again, err := GenerateFrame(2, 100, Seed(1))
	require.NoError(t, err)
	assert.Equal(t, frame, again)
}

func TestGenerateFrameFrequency(t *testing.T) {
	frame, err := GenerateFrame(1, 4)
	require.NoError(t, err)
	require.Equal(t, 240, frame.Len())
	assert.Equal(t, FrameStart.Add(250*time.Millisecond), frame.Index[1])

	square, ok := frame.Column(ColumnSquare)
	require.True(t, ok)
	assert.Equal(t, -5.0, square[0])

	_, ok = frame.Column("missing")
	assert.False(t, ok)
}

func TestGenerateFrameErrors(t *testing.T) {
	_, err := GenerateFrame(-1, 100)
	assert.True(t, errors.Is(err, ErrInvalidShape))

	_, err = GenerateFrame(1, 0)
	assert.True(t, errors.Is(err, ErrInvalidShape))
}

func TestGenerateFrameTooLarge(t *testing.T) {
	for _, toPin := range []struct {
		name    string
		minutes int
		freq    float64
	}{
		{name: "duration overflow", minutes: 200000000, freq: 1},
		{name: "max duration", minutes: math.MaxInt32, freq: 1},
		{name: "too many rows", minutes: 60 * 24, freq: 1e6},
	} {
		tc := toPin
		t.Run(tc.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				frame, err := GenerateFrame(tc.minutes, tc.freq)
				assert.Nil(t, frame)
				assert.True(t, errors.Is(err, ErrInvalidShape))
			})
		})
	}
}

func TestWriteCSV(t *testing.T) {
	frame := &Frame{
		Index: []time.Time{FrameStart, FrameStart.Add(10 * time.Millisecond)},
		Columns: []Column{
			{Name: "a", Values: []float64{1, -0.5}},
			{Name: "b", Values: []float64{2.25, 3}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, frame.WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"timestamp", "a", "b"},
		{"1483228800000000", "1", "2.25"},
		{"1483228800010000", "-0.5", "3"},
	}, records)
}
