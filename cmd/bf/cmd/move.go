package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/blackfynn/blackfynn-go/pkg/api/status"
	"github.com/blackfynn/blackfynn-go/pkg/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

var moveCmd = &cobra.Command{
	Use:   "move <item> [<destination>]",
	Short: "Move a package or collection",
	Long: `Move an item (package or collection) into a collection.

When no destination is given, the item is moved to the top level of its dataset.

Example:
	% bf move N:package:4a2e6c0f N:collection:89a1d9b2
`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		p, err := newPlatform()
		if err != nil {
			wrapFatalln("move", err)
			return
		}

		item, err := p.client.GetPackage(ctx, args[0])
		if err != nil {
			if errors.Is(err, status.ErrNotFound) {
				wrapFatalWithCodef(int(unix.ENOENT), "didn't find item %q", args[0])
				return
			}
			wrapFatalln(fmt.Sprintf("get item %q", args[0]), err)
			return
		}

		var destination *model.Package
		if len(args) > 1 {
			destination, err = p.client.GetPackage(ctx, args[1])
			if err != nil {
				if errors.Is(err, status.ErrNotFound) {
					wrapFatalWithCodef(int(unix.ENOENT), "didn't find destination %q", args[1])
					return
				}
				wrapFatalln(fmt.Sprintf("get destination %q", args[1]), err)
				return
			}
			if !destination.IsCollection() {
				logFatalln("Destination must be a collection.")
				return
			}
		}

		if err = p.client.Move(ctx, destination, item); err != nil {
			p.logger.Debug("move failed", zap.Stringer("item", item), zap.Stringer("destination", destination), zap.Error(err))
			infoLogger.Println(err)
			logFatalf("Failed to move %v into %v.", item, destination)
			return
		}

		infoLogger.Printf("Moved %v into %v.", item, destination)
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
