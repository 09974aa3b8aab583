// Package status exports errors produced by the epoch package.
package status

import (
	"github.com/pkg/errors"
)

var (
	// ErrDateParse indicates a value is not a recognized date-like representation
	ErrDateParse = errors.New("cannot interpret as a date")
)
