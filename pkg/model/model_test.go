package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackage(t *testing.T) {
	var root *Package
	assert.False(t, root.IsCollection())
	assert.Equal(t, "<dataset root>", root.String())

	folder := &Package{ID: "N:collection:1", Name: "folder", Type: CollectionType}
	assert.True(t, folder.IsCollection())
	assert.Equal(t, `<Collection name="folder" id="N:collection:1">`, folder.String())

	file := &Package{ID: "N:package:2", Name: "eeg"}
	assert.False(t, file.IsCollection())
	assert.Equal(t, `<Package name="eeg" id="N:package:2">`, file.String())
}

func TestDataset(t *testing.T) {
	ds := &Dataset{ID: "N:dataset:1", Name: "trials"}
	assert.Equal(t, "trials (id: N:dataset:1)", ds.String())
}
