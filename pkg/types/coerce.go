package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/blackfynn/blackfynn-go/pkg/epoch"
	"github.com/blackfynn/blackfynn-go/pkg/types/status"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// CoercionError is returned when a value cannot be converted into the requested type.
//
// It matches status.ErrCoercion.
type CoercionError struct {
	Value  interface{}
	Target Type
	Err    error
}

func (e *CoercionError) Error() string {
	msg := fmt.Sprintf("unable to set value=%v as type %s", e.Value, e.Target)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap the cause
func (e *CoercionError) Unwrap() error {
	return e.Err
}

// Is status.ErrCoercion
func (e *CoercionError) Is(target error) bool {
	return target == status.ErrCoercion
}

// Coerce converts v into the target type.
//
// The result is a string, an int64, a float64, a bool or, for dates, an int64
// count of milliseconds since the epoch.
//
// Booleans coerce to true only when the lower-cased textual form is exactly "true".
func Coerce(v interface{}, target Type) (interface{}, error) {
	if v == nil {
		return nil, &CoercionError{Value: v, Target: target, Err: status.ErrNilValue}
	}

	var (
		res interface{}
		err error
	)
	switch target {
	case String:
		res = Text(v)
	case Integer:
		res, err = toInteger(v)
	case Double:
		res, err = toDouble(v)
	case Date:
		res, err = epoch.InferMilliseconds(v)
	case Boolean:
		res = strings.ToLower(Text(v)) == "true"
	default:
		err = status.ErrUnknownType
	}
	if err != nil {
		return nil, &CoercionError{Value: v, Target: target, Err: err}
	}
	return res, nil
}

// CoerceString coerces some text into the type with the given name
func CoerceString(text, typeName string) (interface{}, error) {
	target, err := ParseType(typeName)
	if err != nil {
		return nil, err
	}
	return Coerce(text, target)
}

func toInteger(v interface{}) (int64, error) {
	switch n := v.(type) {
	case float32:
		return truncate(float64(n))
	case float64:
		return truncate(n)
	case string:
		return parseInteger(n)
	case []byte:
		return parseInteger(string(n))
	case fmt.Stringer:
		return parseInteger(n.String())
	case uint:
		return fromUnsigned(uint64(n))
	case uint64:
		return fromUnsigned(n)
	}
	return cast.ToInt64E(v)
}

func toDouble(v interface{}) (float64, error) {
	switch n := v.(type) {
	case string:
		return parseDouble(n)
	case []byte:
		return parseDouble(string(n))
	case fmt.Stringer:
		return parseDouble(n.String())
	}
	return cast.ToFloat64E(v)
}

func parseInteger(text string) (int64, error) {
	digits, ok := numericText(strings.TrimSpace(text))
	if !ok {
		return 0, errors.Errorf("%q is not a decimal integer", text)
	}
	return strconv.ParseInt(digits, 10, 64)
}

func parseDouble(text string) (float64, error) {
	digits, ok := numericText(strings.TrimSpace(text))
	if !ok {
		return 0, errors.Errorf("%q is not a decimal number", text)
	}
	return strconv.ParseFloat(digits, 64)
}

func fromUnsigned(u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, errors.Errorf("%d is out of the integer range", u)
	}
	return int64(u), nil
}

func truncate(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, errors.Errorf("%v is out of the integer range", f)
	}
	return int64(f), nil
}
