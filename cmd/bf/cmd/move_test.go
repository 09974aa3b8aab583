package cmd

import (
	"errors"
	"testing"

	"github.com/blackfynn/blackfynn-go/internal/rand"
	"github.com/blackfynn/blackfynn-go/pkg/api/status"
	"github.com/blackfynn/blackfynn-go/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

var (
	testItem = &model.Package{
		ID:        "N:package:4a2e6c0f",
		Name:      "recording.edf",
		Type:      "TimeSeries",
		DatasetID: "N:dataset:1",
	}
	testCollection = &model.Package{
		ID:        "N:collection:89a1d9b2",
		Name:      "sessions",
		Type:      model.CollectionType,
		DatasetID: "N:dataset:1",
	}
	testOtherPackage = &model.Package{
		ID:        "N:package:77",
		Name:      "notes.txt",
		Type:      "Text",
		DatasetID: "N:dataset:1",
	}
)

func notFound(id string) error {
	return &notFoundError{id: id}
}

type notFoundError struct{ id string }

func (e *notFoundError) Error() string { return e.id + ": not found" }
func (e *notFoundError) Is(target error) bool { return target == status.ErrNotFound }

func TestMove(t *testing.T) {
	te, cleanup := setupTests(t, nil)
	defer cleanup()

	te.client.On("GetPackage", testItem.ID).Return(testItem, nil)
	te.client.On("GetPackage", testCollection.ID).Return(testCollection, nil)
	te.client.On("Move", testCollection, []*model.Package{testItem}).Return(nil)

	rootCmd.SetArgs([]string{"move", testItem.ID, testCollection.ID})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, 0, te.exits.fatalCalls())
	assert.Contains(t, te.out.String(), "Moved")
	assert.Contains(t, te.out.String(), testCollection.ID)
	te.client.AssertExpectations(t)
}

func TestMoveToDatasetRoot(t *testing.T) {
	te, cleanup := setupTests(t, nil)
	defer cleanup()

	te.client.On("GetPackage", testItem.ID).Return(testItem, nil)
	te.client.On("Move", (*model.Package)(nil), []*model.Package{testItem}).Return(nil)

	rootCmd.SetArgs([]string{"move", testItem.ID})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, 0, te.exits.fatalCalls())
	assert.Contains(t, te.out.String(), "<dataset root>")
	te.client.AssertExpectations(t)
}

func TestMoveIntoPackage(t *testing.T) {
	te, cleanup := setupTests(t, nil)
	defer cleanup()

	te.client.On("GetPackage", testItem.ID).Return(testItem, nil)
	te.client.On("GetPackage", testOtherPackage.ID).Return(testOtherPackage, nil)

	rootCmd.SetArgs([]string{"move", testItem.ID, testOtherPackage.ID})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, 1, te.exits.fatalCalls())
	te.client.AssertNotCalled(t, "Move", mock.Anything, mock.Anything)
}

func TestMoveFailure(t *testing.T) {
	te, cleanup := setupTests(t, nil)
	defer cleanup()

	te.client.On("GetPackage", testItem.ID).Return(testItem, nil)
	te.client.On("GetPackage", testCollection.ID).Return(testCollection, nil)
	te.client.On("Move", testCollection, []*model.Package{testItem}).Return(errors.New("permission denied on sessions"))

	rootCmd.SetArgs([]string{"move", testItem.ID, testCollection.ID})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, 1, te.exits.fatalCalls())
	assert.Contains(t, te.out.String(), "permission denied on sessions")
	assert.NotContains(t, te.out.String(), "Moved")
}

func TestMoveNotFound(t *testing.T) {
	missingItem, missingCollection := rand.NodeID("package"), rand.NodeID("collection")
	for _, toPin := range []struct {
		name string
		args []string
		prep func(*ClientMock)
	}{
		{
			name: "item",
			args: []string{"move", missingItem, testCollection.ID},
			prep: func(c *ClientMock) {
				c.On("GetPackage", missingItem).Return(nil, notFound(missingItem))
			},
		},
		{
			name: "destination",
			args: []string{"move", testItem.ID, missingCollection},
			prep: func(c *ClientMock) {
				c.On("GetPackage", testItem.ID).Return(testItem, nil)
				c.On("GetPackage", missingCollection).Return(nil, notFound(missingCollection))
			},
		},
	} {
		tc := toPin
		t.Run(tc.name, func(t *testing.T) {
			te, cleanup := setupTests(t, nil)
			defer cleanup()
			tc.prep(te.client)

			rootCmd.SetArgs(tc.args)
			require.NoError(t, rootCmd.Execute())

			assert.Equal(t, 1, te.exits.fatalCalls())
			assert.Equal(t, int(unix.ENOENT), te.exits.lastStatus())
			te.client.AssertNotCalled(t, "Move", mock.Anything, mock.Anything)
		})
	}
}

func TestMoveArgs(t *testing.T) {
	_, cleanup := setupTests(t, nil)
	defer cleanup()

	rootCmd.SetArgs([]string{"move", "a", "b", "c"})
	assert.Error(t, rootCmd.Execute())
}
