// Package model describes the platform objects handled by the bf CLI:
// datasets, packages and collections, users and organizations.
package model
