package model

import "fmt"

// Dataset is the top-level container of packages
type Dataset struct {
	ID          string `json:"id" yaml:"id"`
	IntID       int64  `json:"intId,omitempty" yaml:"intId,omitempty"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	_           struct{}
}

func (d *Dataset) String() string {
	return fmt.Sprintf("%s (id: %s)", d.Name, d.ID)
}
