// Package api is a minimal client for the Blackfynn platform API, covering what
// the bf commands need.
//
// Sessions are obtained out of band: the client sends a pre-issued session
// token with every request.
package api

import (
	"context"

	"github.com/blackfynn/blackfynn-go/pkg/model"
)

// Client knows how to query and update platform objects
type Client interface {
	// GetPackage retrieves a package or collection by id
	GetPackage(context.Context, string) (*model.Package, error)

	// GetDataset retrieves a dataset by id
	GetDataset(context.Context, string) (*model.Dataset, error)

	// Move packages into a destination collection. A nil destination moves
	// them to the top of their dataset.
	Move(ctx context.Context, destination *model.Package, things ...*model.Package) error

	// Profile of the session user
	Profile(context.Context) (*model.UserProfile, error)

	// Organization retrieves an organization by id
	Organization(context.Context, string) (*model.Organization, error)
}
