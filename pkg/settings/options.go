package settings

import (
	"github.com/spf13/afero"
)

type options struct {
	profile   string
	configDir string
	fs        afero.Fs
}

// Option to load settings
type Option func(*options)

// WithProfile selects the active profile, overriding BLACKFYNN_PROFILE and the config default
func WithProfile(name string) Option {
	return func(o *options) {
		o.profile = name
	}
}

// WithConfigDir sets the directory holding the config file, overriding BLACKFYNN_CONFIG_DIR
func WithConfigDir(dir string) Option {
	return func(o *options) {
		o.configDir = dir
	}
}

// WithFs sets the file system holding the config directory
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		if fs != nil {
			o.fs = fs
		}
	}
}

func defaultOptions(opts []Option) options {
	o := options{
		fs: afero.NewOsFs(),
	}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
