// Package status exports errors produced by the api package.
package status

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotFound indicates the remote object does not exist
	ErrNotFound = errors.New("not found")

	// ErrRemote indicates the platform API answered with an unexpected status
	ErrRemote = errors.New("platform API error")

	// ErrNoSession indicates no session token is configured for the active profile
	ErrNoSession = errors.New("no session token configured")
)
