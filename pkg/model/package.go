package model

import "fmt"

// CollectionType is the package type of folders
const CollectionType = "Collection"

// Package is an item stored in a dataset: a file, a time series or a collection.
type Package struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"packageType" yaml:"type"`
	DatasetID string `json:"datasetId" yaml:"dataset"`
	ParentID  string `json:"parentId,omitempty" yaml:"parent,omitempty"`
	State     string `json:"state,omitempty" yaml:"state,omitempty"`
	_         struct{}
}

// IsCollection tells if this package may contain other packages
func (p *Package) IsCollection() bool {
	return p != nil && p.Type == CollectionType
}

func (p *Package) String() string {
	if p == nil {
		return "<dataset root>"
	}
	kind := p.Type
	if kind == "" {
		kind = "Package"
	}
	return fmt.Sprintf("<%s name=%q id=%q>", kind, p.Name, p.ID)
}
