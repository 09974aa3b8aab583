// Package status exports errors produced by the types package.
package status

import (
	"github.com/pkg/errors"
)

var (
	// ErrCoercion indicates a value could not be converted into the requested type
	ErrCoercion = errors.New("unable to coerce value")

	// ErrUnknownType indicates a type name outside of the supported set
	ErrUnknownType = errors.New("unknown data type")

	// ErrNilValue is returned when attempting to coerce a nil value
	ErrNilValue = errors.New("nil value")
)
