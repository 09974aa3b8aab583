package settings

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const workingDatasetFile = ".working_dataset"

// WorkingDataset returns the id of the dataset commands apply to by default.
//
// An empty string is returned when none is set.
func (s *Settings) WorkingDataset() (string, error) {
	b, err := afero.ReadFile(s.fs, filepath.Join(s.ConfigDir, workingDatasetFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrap(err, "reading working dataset")
	}
	return strings.TrimSpace(string(b)), nil
}

// SetWorkingDataset records the dataset commands apply to by default
func (s *Settings) SetWorkingDataset(id string) error {
	if err := s.fs.MkdirAll(s.ConfigDir, 0o700); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	return afero.WriteFile(s.fs, filepath.Join(s.ConfigDir, workingDatasetFile), []byte(id+"\n"), 0o600)
}
