package cmd

import (
	"log"

	"github.com/blackfynn/blackfynn-go/pkg/api"
	"github.com/blackfynn/blackfynn-go/pkg/dlogger"
	"github.com/blackfynn/blackfynn-go/pkg/settings"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bf",
	Short: "bf is the command line client of the Blackfynn platform",
	Long: `bf is the command line client of the Blackfynn platform.

It manages the items stored in your datasets, and carries a few helpers to
work with typed values, timestamps and demo time series.

Settings are read from the active profile in ~/.blackfynn/config.yaml and
may be overridden with BLACKFYNN_* environment variables.
`,
	// errors are reported once, by Execute
	SilenceErrors: true,
}

var (
	// used to patch over settings and client resolution during test
	settingsOptions []settings.Option
	newClient       = func(s *settings.Settings, l *zap.Logger) (api.Client, error) {
		return api.New(
			api.Host(s.APIHost),
			api.SessionToken(s.SessionToken),
			api.Logger(l),
		)
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logFatalln(err)
	}
}

func init() {
	log.SetFlags(0)

	addProfileFlag(rootCmd)
	addDatasetFlag(rootCmd)
	addLogLevel(rootCmd)
}

// loadSettings resolves the settings of the active profile
func loadSettings() (*settings.Settings, error) {
	opts := make([]settings.Option, 0, len(settingsOptions)+1)
	opts = append(opts, settingsOptions...)
	if bfFlags.root.profile != "" {
		opts = append(opts, settings.WithProfile(bfFlags.root.profile))
	}
	return settings.Load(opts...)
}

// getLogger builds a logger, with the level from the command line or else from settings
func getLogger(s *settings.Settings) (*zap.Logger, error) {
	level := bfFlags.root.logLevel
	if level == "" && s != nil {
		level = s.LogLevel
	}
	if level == "" {
		level = dlogger.LogLevelInfo
	}
	return dlogger.GetLogger(level)
}

// platform bundles what commands talking to the platform need
type platform struct {
	settings *settings.Settings
	logger   *zap.Logger
	client   api.Client
}

func newPlatform() (*platform, error) {
	s, err := loadSettings()
	if err != nil {
		return nil, errors.Wrap(err, "loading settings")
	}
	l, err := getLogger(s)
	if err != nil {
		return nil, errors.Wrap(err, "get logger")
	}
	client, err := newClient(s, l)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting with profile %q", s.ActiveProfile)
	}
	l.Debug("connected", zap.String("profile", s.ActiveProfile), zap.String("api", s.APIHost))
	return &platform{
		settings: s,
		logger:   l,
		client:   client,
	}, nil
}
