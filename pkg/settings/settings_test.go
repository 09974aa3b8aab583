package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testConfigDir = "/home/tester/.blackfynn"
	testConfig    = `
default_profile: lab
profiles:
  lab:
    api_host: https://lab.example.com
    session_token: lab-session
    log_level: debug
  Prod:
    api_host: https://prod.example.com
    api_token: prod-token
`
)

var allEnv = []string{
	EnvConfigDir, EnvProfile, EnvAPIHost, EnvStreamingAPIHost, EnvConceptsAPIHost,
	EnvAPIToken, EnvSessionToken, EnvLogLevel,
}

// setEnv clears BLACKFYNN_* variables then sets vars, for the duration of the test
func setEnv(t *testing.T, vars map[string]string) {
	for _, k := range allEnv {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func setupFs(t *testing.T, config string) afero.Fs {
	fs := afero.NewMemMapFs()
	if config != "" {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(testConfigDir, "config.yaml"), []byte(config), 0o600))
	}
	return fs
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, nil)
	s, err := Load(WithFs(setupFs(t, "")), WithConfigDir(testConfigDir))
	require.NoError(t, err)

	assert.Equal(t, DefaultProfile, s.ActiveProfile)
	assert.Equal(t, DefaultAPIHost, s.APIHost)
	assert.Equal(t, DefaultStreamingAPIHost, s.StreamingAPIHost)
	assert.Equal(t, DefaultConceptsAPIHost, s.ConceptsAPIHost)
	assert.Equal(t, DefaultLogLevel, s.LogLevel)
	assert.Empty(t, s.SessionToken)
	assert.Empty(t, s.ConfigFile)
	assert.Empty(t, s.Env())
}

func TestLoadConfigFile(t *testing.T) {
	setEnv(t, nil)
	fs := setupFs(t, testConfig)

	s, err := Load(WithFs(fs), WithConfigDir(testConfigDir))
	require.NoError(t, err)
	assert.Equal(t, "lab", s.ActiveProfile)
	assert.Equal(t, "https://lab.example.com", s.APIHost)
	assert.Equal(t, DefaultStreamingAPIHost, s.StreamingAPIHost)
	assert.Equal(t, "lab-session", s.SessionToken)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, filepath.Join(testConfigDir, "config.yaml"), s.ConfigFile)

	s, err = Load(WithFs(fs), WithConfigDir(testConfigDir), WithProfile("PROD"))
	require.NoError(t, err)
	assert.Equal(t, "prod", s.ActiveProfile)
	assert.Equal(t, "https://prod.example.com", s.APIHost)
	assert.Equal(t, "prod-token", s.APIToken)
	assert.Equal(t, DefaultLogLevel, s.LogLevel)
}

func TestLoadProfileFromEnv(t *testing.T) {
	fs := setupFs(t, testConfig)

	setEnv(t, map[string]string{
		EnvConfigDir: testConfigDir,
		EnvProfile:   "prod",
	})

	s, err := Load(WithFs(fs))
	require.NoError(t, err)
	assert.Equal(t, "prod", s.ActiveProfile)
	assert.Equal(t, testConfigDir, s.ConfigDir)

	// the flag wins over the environment
	s, err = Load(WithFs(fs), WithProfile("lab"))
	require.NoError(t, err)
	assert.Equal(t, "lab", s.ActiveProfile)
}

func TestLoadUnknownProfile(t *testing.T) {
	setEnv(t, nil)
	_, err := Load(WithFs(setupFs(t, testConfig)), WithConfigDir(testConfigDir), WithProfile("staging"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownProfile))

	s, err := Load(WithFs(setupFs(t, "")), WithConfigDir(testConfigDir), WithProfile("Default"))
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile, s.ActiveProfile)
}

func TestLoadInvalidConfig(t *testing.T) {
	setEnv(t, nil)
	_, err := Load(WithFs(setupFs(t, "profiles: [")), WithConfigDir(testConfigDir))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	setEnv(t, map[string]string{
		EnvAPIHost:  "http://localhost:8080",
		EnvLogLevel: "WARNING",
	})

	s, err := Load(WithFs(setupFs(t, testConfig)), WithConfigDir(testConfigDir))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", s.APIHost)
	assert.Equal(t, "WARNING", s.LogLevel)
	assert.Equal(t, "lab-session", s.SessionToken)
	assert.Equal(t, map[string]string{
		EnvAPIHost:  "http://localhost:8080",
		EnvLogLevel: "WARNING",
	}, s.Env())
	assert.Equal(t, []string{EnvAPIHost, EnvLogLevel}, s.EnvVars())
}

func TestName(t *testing.T) {
	assert.Equal(t, "api_host", Name(EnvAPIHost))
	assert.Equal(t, "streaming_api_host", Name(EnvStreamingAPIHost))
	assert.Equal(t, "concepts_api_host", Name(EnvConceptsAPIHost))
	assert.Equal(t, "log_level", Name(EnvLogLevel))
	assert.Equal(t, "", Name("HOME"))
}

func TestWorkingDataset(t *testing.T) {
	setEnv(t, nil)
	s, err := Load(WithFs(setupFs(t, "")), WithConfigDir(testConfigDir))
	require.NoError(t, err)

	id, err := s.WorkingDataset()
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, s.SetWorkingDataset("N:dataset:1234"))
	id, err = s.WorkingDataset()
	require.NoError(t, err)
	assert.Equal(t, "N:dataset:1234", id)
}

func TestEnvOverridesProfileSection(t *testing.T) {
	setEnv(t, map[string]string{
		EnvStreamingAPIHost: "https://streaming.local",
		EnvSessionToken:     "",
	})

	s, err := Load(WithFs(setupFs(t, testConfig)), WithConfigDir(testConfigDir), WithProfile("prod"))
	require.NoError(t, err)

	assert.Equal(t, "https://prod.example.com", s.APIHost)
	assert.Equal(t, "https://streaming.local", s.StreamingAPIHost)
	assert.Equal(t, "prod-token", s.APIToken)
	assert.Empty(t, s.SessionToken, "an empty variable does not override")
	assert.Equal(t, []string{EnvStreamingAPIHost}, s.EnvVars())
}
