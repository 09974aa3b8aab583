package epoch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/blackfynn/blackfynn-go/pkg/epoch/status"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// DateParseError is returned when a value cannot be interpreted as a date.
//
// It matches status.ErrDateParse.
type DateParseError struct {
	Value interface{}
	Err   error
}

func (e *DateParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v (%T): %v", status.ErrDateParse, e.Value, e.Value, e.Err)
	}
	return fmt.Sprintf("%v: %v (%T)", status.ErrDateParse, e.Value, e.Value)
}

// Unwrap the cause
func (e *DateParseError) Unwrap() error {
	return e.Err
}

// Is status.ErrDateParse
func (e *DateParseError) Is(target error) bool {
	return target == status.ErrDateParse
}

// InferMilliseconds interprets v as a point in time, as milliseconds since the epoch.
//
// A time.Time is converted. A native number is assumed to already be a count of
// milliseconds, and is truncated to an integer. A string is parsed as an integer
// count of milliseconds.
func InferMilliseconds(v interface{}) (int64, error) {
	switch t := v.(type) {
	case time.Time:
		return Milliseconds(t), nil
	case *time.Time:
		if t == nil {
			return 0, &DateParseError{Value: v}
		}
		return Milliseconds(*t), nil
	case string:
		ms, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, &DateParseError{Value: v, Err: err}
		}
		return ms, nil
	}
	return numeric(v)
}

// InferMicroseconds interprets v as a point in time, as microseconds since the epoch.
//
// A time.Time is converted. A native number is assumed to already be a count of
// microseconds, and is truncated to an integer.
//
// Unlike InferMilliseconds, strings are not accepted.
func InferMicroseconds(v interface{}) (int64, error) {
	switch t := v.(type) {
	case time.Time:
		return Microseconds(t), nil
	case *time.Time:
		if t == nil {
			return 0, &DateParseError{Value: v}
		}
		return Microseconds(*t), nil
	}
	return numeric(v)
}

func numeric(v interface{}) (int64, error) {
	switch n := v.(type) {
	case float32:
		return fromFloat(v, float64(n))
	case float64:
		return fromFloat(v, n)
	case uint:
		return fromUnsigned(v, uint64(n))
	case uint64:
		return fromUnsigned(v, n)
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		i, err := cast.ToInt64E(n)
		if err != nil {
			return 0, &DateParseError{Value: v, Err: err}
		}
		return i, nil
	default:
		return 0, &DateParseError{Value: v}
	}
}

func fromUnsigned(v interface{}, u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, &DateParseError{Value: v, Err: errors.New("out of range")}
	}
	return int64(u), nil
}

func fromFloat(v interface{}, f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, &DateParseError{Value: v, Err: errors.New("out of range")}
	}
	return int64(f), nil
}
