package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// set at build time with -ldflags "-X"
var (
	Version   string
	BuildDate string
	GitCommit string
	GitState  string
)

// VersionInfo describes the build of this binary
type VersionInfo struct {
	Version   string `json:"version,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
	GitState  string `json:"gitState,omitempty"`
}

// NewVersionInfo reports "dev" for binaries built without version information
func NewVersionInfo() VersionInfo {
	ver := VersionInfo{
		Version:   "dev",
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}
	if Version != "" {
		ver.Version = Version
		ver.GitState = "clean"
	}
	if GitState != "" {
		ver.GitState = GitState
	}
	return ver
}

func (v VersionInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Version: %s\n", v.Version)
	fmt.Fprintf(&b, "Build date: %s\n", v.BuildDate)
	fmt.Fprintf(&b, "Commit: %s\n", v.GitCommit)
	fmt.Fprintf(&b, "Working tree: %s\n", v.GitState)
	return b.String()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version of bf",
	Long: `Prints the version of bf:
	* Semver (output of git describe --tags)
	* Build date
	* Git commit the binary was built from
	* Git state: dirty when the build had uncommitted changes
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		infoLogger.Print(NewVersionInfo().String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
