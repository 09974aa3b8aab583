package settings

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Defaults
const (
	DefaultProfile          = "default"
	DefaultAPIHost          = "https://api.blackfynn.io"
	DefaultStreamingAPIHost = "https://streaming.blackfynn.io"
	DefaultConceptsAPIHost  = "https://concepts.blackfynn.io"
	DefaultLogLevel         = "info"

	configName = "config"

	envPrefix         = "blackfynn"
	configDirKey      = "config_dir"
	profileKey        = "profile"
	defaultProfileKey = "default_profile"
	profilesKey       = "profiles"
)

// Environment variables
const (
	EnvConfigDir        = "BLACKFYNN_CONFIG_DIR"
	EnvProfile          = "BLACKFYNN_PROFILE"
	EnvAPIHost          = "BLACKFYNN_API_LOC"
	EnvStreamingAPIHost = "BLACKFYNN_STREAMING_API_LOC"
	EnvConceptsAPIHost  = "BLACKFYNN_CONCEPTS_API_LOC"
	EnvAPIToken         = "BLACKFYNN_API_TOKEN"
	EnvSessionToken     = "BLACKFYNN_SESSION_TOKEN"
	EnvLogLevel         = "BLACKFYNN_LOG_LEVEL"
)

// ErrUnknownProfile is returned when the requested profile is not in the config file
var ErrUnknownProfile = errors.New("unknown profile")

// Profile holds the settings of a named profile
type Profile struct {
	APIHost          string `mapstructure:"api_host" json:"api_host" yaml:"api_host"`
	StreamingAPIHost string `mapstructure:"streaming_api_host" json:"streaming_api_host" yaml:"streaming_api_host"`
	ConceptsAPIHost  string `mapstructure:"concepts_api_host" json:"concepts_api_host" yaml:"concepts_api_host"`
	APIToken         string `mapstructure:"api_token" json:"api_token" yaml:"api_token"`
	SessionToken     string `mapstructure:"session_token" json:"-" yaml:"-"`
	LogLevel         string `mapstructure:"log_level" json:"log_level" yaml:"log_level"`
}

type override struct {
	env   string
	key   string
	def   string
	field func(*Profile) *string
}

var overrides = []override{
	{env: EnvAPIHost, key: "api_host", def: DefaultAPIHost, field: func(p *Profile) *string { return &p.APIHost }},
	{env: EnvStreamingAPIHost, key: "streaming_api_host", def: DefaultStreamingAPIHost, field: func(p *Profile) *string { return &p.StreamingAPIHost }},
	{env: EnvConceptsAPIHost, key: "concepts_api_host", def: DefaultConceptsAPIHost, field: func(p *Profile) *string { return &p.ConceptsAPIHost }},
	{env: EnvAPIToken, key: "api_token", field: func(p *Profile) *string { return &p.APIToken }},
	{env: EnvSessionToken, key: "session_token", field: func(p *Profile) *string { return &p.SessionToken }},
	{env: EnvLogLevel, key: "log_level", def: DefaultLogLevel, field: func(p *Profile) *string { return &p.LogLevel }},
}

// Settings are the resolved settings of the active profile
type Settings struct {
	Profile

	ActiveProfile string
	ConfigDir     string
	ConfigFile    string

	env map[string]string
	fs  afero.Fs
}

// Load resolves settings from the config file and the environment
func Load(opts ...Option) (*Settings, error) {
	o := defaultOptions(opts)

	// BLACKFYNN_CONFIG_DIR, BLACKFYNN_PROFILE
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	dir := o.configDir
	if dir == "" {
		dir = v.GetString(configDirKey)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "locating home directory")
		}
		dir = filepath.Join(home, ".blackfynn")
	}

	v.SetFs(o.fs)
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "reading config in %s", dir)
		}
	}

	name := o.profile
	if name == "" {
		name = v.GetString(profileKey)
	}
	if name == "" {
		name = v.GetString(defaultProfileKey)
	}
	if name == "" {
		name = DefaultProfile
	}
	name = strings.ToLower(name)

	section := profilesKey + "." + name
	if !v.IsSet(section) && name != DefaultProfile {
		return nil, errors.Wrapf(ErrUnknownProfile, "%q", name)
	}

	s := &Settings{
		ActiveProfile: name,
		ConfigDir:     dir,
		ConfigFile:    v.ConfigFileUsed(),
		env:           make(map[string]string),
		fs:            o.fs,
	}
	for _, ov := range overrides {
		key := section + "." + ov.key
		if ov.def != "" {
			v.SetDefault(key, ov.def)
		}
		if err := v.BindEnv(key, ov.env); err != nil {
			return nil, errors.Wrapf(err, "binding %s", ov.env)
		}
		*ov.field(&s.Profile) = v.GetString(key)

		if value, isSet := os.LookupEnv(ov.env); isSet && value != "" {
			s.env[ov.env] = value
		}
	}
	return s, nil
}

// Env returns the environment variables overriding settings, with their value
func (s *Settings) Env() map[string]string {
	env := make(map[string]string, len(s.env))
	for k, v := range s.env {
		env[k] = v
	}
	return env
}

// EnvVars lists the environment variables overriding settings, sorted
func (s *Settings) EnvVars() []string {
	vars := make([]string, 0, len(s.env))
	for k := range s.env {
		vars = append(vars, k)
	}
	sort.Strings(vars)
	return vars
}

// Name returns the setting overridden by an environment variable, or an empty string
func Name(envVar string) string {
	for _, ov := range overrides {
		if ov.env == envVar {
			return ov.key
		}
	}
	return ""
}
