package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Write the bf reference manual as markdown",
	Long: `Write one markdown page per bf command into the target directory,
each page stamped with the version of this binary.

Example:
	% bf usage --target-dir ./docs
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := writeManual(bfFlags.doc.docTarget); err != nil {
			wrapFatalln("write manual", err)
		}
	},
}

// writeManual renders the command tree, with links between pages kept relative
func writeManual(dir string) error {
	version := NewVersionInfo().Version
	header := func(page string) string {
		title := strings.ReplaceAll(strings.TrimSuffix(filepath.Base(page), ".md"), "_", " ")
		return fmt.Sprintf("<!-- %s, bf %s -->\n\n", title, version)
	}
	link := func(name string) string { return name }

	return doc.GenMarkdownTreeCustom(rootCmd, dir, header, link)
}

func init() {
	addTargetFlag(usageCmd)
	rootCmd.AddCommand(usageCmd)
}
