package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/blackfynn/blackfynn-go/pkg/settings"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"

	datasetNotSet = "Not set."
)

type envEntry struct {
	Key      string `json:"key" yaml:"key"`
	Value    string `json:"value" yaml:"value"`
	Variable string `json:"variable" yaml:"variable"`
}

type statusReport struct {
	Profile          string     `json:"profile" yaml:"profile"`
	Env              []envEntry `json:"environment,omitempty" yaml:"environment,omitempty"`
	User             string     `json:"user" yaml:"user"`
	Organization     string     `json:"organization" yaml:"organization"`
	Dataset          string     `json:"dataset" yaml:"dataset"`
	APIHost          string     `json:"apiLocation" yaml:"api_location"`
	StreamingAPIHost string     `json:"streamingApi" yaml:"streaming_api"`
	ConceptsAPIHost  string     `json:"modelsApi" yaml:"models_api"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active profile and the platform environment",
	Long: `Show the active profile, the environment variables overriding its settings,
the current user, organization and working dataset, and the API locations in use.
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := newPlatform()
		if err != nil {
			wrapFatalln("status", err)
			return
		}

		report, err := buildStatus(context.Background(), p)
		if err != nil {
			wrapFatalln("status", err)
			return
		}

		switch bfFlags.status.output {
		case outputYAML:
			o, err := yaml.Marshal(report)
			if err != nil {
				wrapFatalln("marshal status as yaml", err)
				return
			}
			infoLogger.Print(string(o))
		case outputJSON:
			o, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(report, "", "  ")
			if err != nil {
				wrapFatalln("marshal status as json", err)
				return
			}
			infoLogger.Println(string(o))
		default:
			infoLogger.Print(report.text())
		}
	},
}

func buildStatus(ctx context.Context, p *platform) (*statusReport, error) {
	s := p.settings
	report := &statusReport{
		Profile:          s.ActiveProfile,
		Dataset:          datasetNotSet,
		APIHost:          s.APIHost,
		StreamingAPIHost: s.StreamingAPIHost,
		ConceptsAPIHost:  s.ConceptsAPIHost,
	}

	env := s.Env()
	for _, v := range s.EnvVars() {
		report.Env = append(report.Env, envEntry{
			Key:      settings.Name(v),
			Value:    redact(v, env[v]),
			Variable: v,
		})
	}

	user, err := p.client.Profile(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get user profile")
	}
	report.User = user.Email

	org, err := p.client.Organization(ctx, user.PreferredOrganization)
	if err != nil {
		return nil, errors.Wrapf(err, "get organization %q", user.PreferredOrganization)
	}
	report.Organization = fmt.Sprintf("%s (id: %s)", org.Name, org.ID)

	datasetID := bfFlags.root.dataset
	if datasetID == "" {
		datasetID, err = s.WorkingDataset()
		if err != nil {
			p.logger.Debug("no working dataset", zap.Error(err))
		}
	}
	if datasetID != "" {
		ds, err := p.client.GetDataset(ctx, datasetID)
		if err != nil {
			p.logger.Debug("cannot resolve working dataset", zap.String("dataset", datasetID), zap.Error(err))
		} else {
			report.Dataset = ds.String()
		}
	}

	return report, nil
}

// redact hides secrets but their last characters
func redact(envVar, value string) string {
	if envVar != settings.EnvAPIToken && envVar != settings.EnvSessionToken {
		return value
	}
	const visible = 4
	if len(value) <= visible {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(value)-visible) + value[len(value)-visible:]
}

func (r *statusReport) text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Active profile:\n  %s\n\n", color.GreenString(r.Profile))

	if len(r.Env) > 0 {
		table := uitable.New()
		table.Separator = "    "
		table.AddRow("Key", "Value", "Environment Variable")
		for _, e := range r.Env {
			table.AddRow(e.Key, e.Value, e.Variable)
		}
		lines := strings.Split(table.String(), "\n")

		b.WriteString("Environment variables:\n")
		fmt.Fprintf(&b, "  %s\n", color.New(color.Underline).Sprint(lines[0]))
		for _, line := range lines[1:] {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteString("\n")
	}

	b.WriteString("Blackfynn environment:\n")
	fmt.Fprintf(&b, "  User               : %s\n", r.User)
	fmt.Fprintf(&b, "  Organization       : %s\n", r.Organization)
	fmt.Fprintf(&b, "  Dataset            : %s\n", r.Dataset)
	fmt.Fprintf(&b, "  API Location       : %s\n", r.APIHost)
	fmt.Fprintf(&b, "  Streaming API      : %s\n", r.StreamingAPIHost)
	fmt.Fprintf(&b, "  Models API         : %s\n", r.ConceptsAPIHost)
	return b.String()
}

func init() {
	rootCmd.AddCommand(statusCmd)
	addOutputFlag(statusCmd)
}
