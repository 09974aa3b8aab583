package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/blackfynn/blackfynn-go/pkg/epoch"
	"github.com/spf13/cast"
)

// Infer the best-fit data type for v.
//
// The normalized data is:
//   - Date: microseconds since the epoch (int64)
//   - Boolean: "true" or "false"
//   - Double: float64
//   - Integer: int64, or the uint64 itself when it exceeds the int64 range
//   - String: the textual form of v
func Infer(v interface{}) Value {
	switch t := v.(type) {
	case time.Time:
		return Value{Type: Date, Data: epoch.Microseconds(t)}
	case *time.Time:
		if t != nil {
			return Value{Type: Date, Data: epoch.Microseconds(*t)}
		}
	case bool:
		return Value{Type: Boolean, Data: strconv.FormatBool(t)}
	case float32:
		return Value{Type: Double, Data: float64(t)}
	case float64:
		return Value{Type: Double, Data: t}
	case uint:
		if uint64(t) > math.MaxInt64 {
			return Value{Type: Integer, Data: uint64(t)}
		}
		return Value{Type: Integer, Data: int64(t)}
	case uint64:
		if t > math.MaxInt64 {
			return Value{Type: Integer, Data: t}
		}
		return Value{Type: Integer, Data: int64(t)}
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		if n, err := cast.ToInt64E(t); err == nil {
			return Value{Type: Integer, Data: n}
		}
	}
	return inferText(Text(v))
}

func inferText(s string) Value {
	digits, ok := numericText(strings.TrimSpace(s))
	if !ok {
		return Value{Type: String, Data: s}
	}
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return Value{Type: Integer, Data: n}
	}
	if f, err := strconv.ParseFloat(digits, 64); err == nil {
		return Value{Type: Double, Data: f}
	}
	return Value{Type: String, Data: s}
}

// numericText drops the underscores grouping digits, as in "1_000".
// Hexadecimal forms and misplaced underscores are not numeric text.
func numericText(s string) (string, bool) {
	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return "", false
	}
	if !strings.Contains(s, "_") {
		return s, true
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return strings.ReplaceAll(s, "_", ""), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Text returns the textual form of v. nil yields an empty string.
func Text(v interface{}) string {
	if t, ok := v.(time.Time); ok {
		return t.Format(time.RFC3339Nano)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}
