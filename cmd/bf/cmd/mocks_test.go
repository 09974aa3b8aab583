package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/blackfynn/blackfynn-go/pkg/api"
	"github.com/blackfynn/blackfynn-go/pkg/dlogger"
	"github.com/blackfynn/blackfynn-go/pkg/model"
	"github.com/blackfynn/blackfynn-go/pkg/settings"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testConfigDir = "/home/tester/.blackfynn"
	testConfig    = `
default_profile: lab
profiles:
  lab:
    api_host: https://lab.example.com
    streaming_api_host: https://streaming.lab.example.com
    session_token: lab-session
`
)

type ExitMocks struct {
	mock.Mock
	exitStatuses []int
}

func (m *ExitMocks) Fatalf(format string, v ...interface{}) {
	m.exitStatuses = append(m.exitStatuses, 1)
}

func (m *ExitMocks) Fatalln(v ...interface{}) {
	m.exitStatuses = append(m.exitStatuses, 1)
}

func (m *ExitMocks) Exit(code int) {
	m.exitStatuses = append(m.exitStatuses, code)
}

func (m *ExitMocks) fatalCalls() int {
	return len(m.exitStatuses)
}

func (m *ExitMocks) lastStatus() int {
	if len(m.exitStatuses) == 0 {
		return 0
	}
	return m.exitStatuses[len(m.exitStatuses)-1]
}

// https://github.com/stretchr/testify/issues/610
func MakeFatalfMock(m *ExitMocks) func(string, ...interface{}) {
	return func(format string, v ...interface{}) {
		m.Fatalf(format, v...)
	}
}

func MakeFatallnMock(m *ExitMocks) func(...interface{}) {
	return func(v ...interface{}) {
		m.Fatalln(v...)
	}
}

func MakeExitMock(m *ExitMocks) func(int) {
	return func(code int) {
		m.Exit(code)
	}
}

// ClientMock stands for the remote platform
type ClientMock struct {
	mock.Mock
}

var _ api.Client = &ClientMock{}

func (m *ClientMock) GetPackage(_ context.Context, id string) (*model.Package, error) {
	args := m.Called(id)
	pkg, _ := args.Get(0).(*model.Package)
	return pkg, args.Error(1)
}

func (m *ClientMock) GetDataset(_ context.Context, id string) (*model.Dataset, error) {
	args := m.Called(id)
	ds, _ := args.Get(0).(*model.Dataset)
	return ds, args.Error(1)
}

func (m *ClientMock) Move(_ context.Context, destination *model.Package, things ...*model.Package) error {
	args := m.Called(destination, things)
	return args.Error(0)
}

func (m *ClientMock) Profile(_ context.Context) (*model.UserProfile, error) {
	args := m.Called()
	user, _ := args.Get(0).(*model.UserProfile)
	return user, args.Error(1)
}

func (m *ClientMock) Organization(_ context.Context, id string) (*model.Organization, error) {
	args := m.Called(id)
	org, _ := args.Get(0).(*model.Organization)
	return org, args.Error(1)
}

type testEnv struct {
	exits  *ExitMocks
	client *ClientMock
	fs     afero.Fs
	out    *bytes.Buffer
}

// resetFlags restores flag values left over by previous runs of the command tree
func resetFlags() {
	bfFlags.root.profile = ""
	bfFlags.root.dataset = ""
	bfFlags.root.logLevel = dlogger.LogLevelNone
	bfFlags.status.output = outputText
	bfFlags.value.typeName = ""
	bfFlags.epoch.unit = unitMicroseconds
	bfFlags.generate.minutes = 2
	bfFlags.generate.freq = 100
	bfFlags.generate.out = ""
	bfFlags.generate.seed = 0
	bfFlags.generate.kind = "sin"
	bfFlags.generate.size = 100
	bfFlags.generate.scale = 5
	bfFlags.generate.periods = 10
	generateCmd.Flags().Lookup(seedFlag).Changed = false
	generateSeriesCmd.Flags().Lookup(seedFlag).Changed = false
}

// setEnv clears BLACKFYNN_* variables then sets env, for the duration of the test
func setEnv(t *testing.T, env map[string]string) {
	for _, k := range []string{
		settings.EnvConfigDir, settings.EnvProfile, settings.EnvAPIHost, settings.EnvStreamingAPIHost,
		settings.EnvConceptsAPIHost, settings.EnvAPIToken, settings.EnvSessionToken, settings.EnvLogLevel,
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func setupTests(t *testing.T, env map[string]string) (*testEnv, func()) {
	resetFlags()
	setEnv(t, env)

	te := &testEnv{
		exits:  new(ExitMocks),
		client: new(ClientMock),
		fs:     afero.NewMemMapFs(),
		out:    new(bytes.Buffer),
	}
	require.NoError(t, afero.WriteFile(te.fs, filepath.Join(testConfigDir, "config.yaml"), []byte(testConfig), 0o600))

	logFatalf = MakeFatalfMock(te.exits)
	logFatalln = MakeFatallnMock(te.exits)
	osExit = MakeExitMock(te.exits)
	infoLogger.SetOutput(te.out)

	settingsOptions = []settings.Option{
		settings.WithFs(te.fs),
		settings.WithConfigDir(testConfigDir),
	}
	origClient := newClient
	newClient = func(_ *settings.Settings, _ *zap.Logger) (api.Client, error) {
		return te.client, nil
	}
	appFs = te.fs

	return te, func() {
		infoLogger.SetOutput(os.Stdout)
		settingsOptions = nil
		appFs = afero.NewOsFs()
		newClient = origClient
	}
}
