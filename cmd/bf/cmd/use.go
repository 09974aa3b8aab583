package cmd

import (
	"context"
	"errors"

	"github.com/blackfynn/blackfynn-go/pkg/api/status"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

var useCmd = &cobra.Command{
	Use:   "use <dataset>",
	Short: "Set your working dataset",
	Long: `Set the dataset commands apply to when no --dataset is given.

Example:
	% bf use N:dataset:5f1c27a0
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := newPlatform()
		if err != nil {
			wrapFatalln("use", err)
			return
		}

		ds, err := p.client.GetDataset(context.Background(), args[0])
		if err != nil {
			if errors.Is(err, status.ErrNotFound) {
				wrapFatalWithCodef(int(unix.ENOENT), "didn't find dataset %q", args[0])
				return
			}
			wrapFatalln("get dataset", err)
			return
		}

		if err = p.settings.SetWorkingDataset(ds.ID); err != nil {
			wrapFatalln("set working dataset", err)
			return
		}
		infoLogger.Printf("Working dataset: %v", ds)
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
