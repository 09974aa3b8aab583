package types

import (
	"fmt"
	"strings"

	"github.com/blackfynn/blackfynn-go/pkg/types/status"
	"github.com/pkg/errors"
)

// Type is the semantic data type of a value
type Type uint8

// Supported data types
const (
	String Type = iota + 1
	Integer
	Double
	Boolean
	Date
)

var typeNames = map[Type]string{
	String:  "string",
	Integer: "integer",
	Double:  "double",
	Boolean: "boolean",
	Date:    "date",
}

// Types lists all supported data types
func Types() []Type {
	return []Type{String, Integer, Double, Boolean, Date}
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// MarshalText yields the type name
func (t Type) MarshalText() ([]byte, error) {
	name, ok := typeNames[t]
	if !ok {
		return nil, errors.Wrapf(status.ErrUnknownType, "%d", uint8(t))
	}
	return []byte(name), nil
}

// UnmarshalText parses a type name
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseType maps a type name to a Type. Names are case insensitive.
func ParseType(name string) (Type, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for t, tn := range typeNames {
		if tn == n {
			return t, nil
		}
	}
	return 0, errors.Wrapf(status.ErrUnknownType, "%q", name)
}

// Value is a value normalized for its inferred data type
type Value struct {
	Type Type
	Data interface{}
}

func (v Value) String() string {
	return fmt.Sprintf("%s(%v)", v.Type, v.Data)
}
