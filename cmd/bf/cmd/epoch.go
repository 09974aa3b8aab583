package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/blackfynn/blackfynn-go/pkg/epoch"
	"github.com/spf13/cobra"
)

const (
	unitMilliseconds = "ms"
	unitMicroseconds = "us"
)

var epochCmd = &cobra.Command{
	Use:   "epoch <value>...",
	Short: "Convert timestamps to and from epoch offsets",
	Long: `Convert RFC3339 timestamps to offsets since the epoch, and integer offsets back to timestamps.

Time zones are dropped: the wall clock is read as UTC. Offsets are truncated toward zero.

Example:
	% bf epoch --unit ms 2017-01-01T00:00:00.0019Z 1483228800001
	1483228800001
	2017-01-01T00:00:00.001Z
`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := make([]string, 0, len(args))
		for _, arg := range args {
			converted, err := convertEpoch(arg, bfFlags.epoch.unit)
			if err != nil {
				wrapFatalln("epoch", err)
				return
			}
			out = append(out, converted)
		}
		for _, o := range out {
			infoLogger.Println(o)
		}
	},
}

func convertEpoch(arg, unit string) (string, error) {
	if unit != unitMilliseconds && unit != unitMicroseconds {
		return "", fmt.Errorf("unsupported unit %q: expected %s or %s", unit, unitMilliseconds, unitMicroseconds)
	}

	text := strings.TrimSpace(arg)
	if offset, err := strconv.ParseInt(text, 10, 64); err == nil {
		var t time.Time
		if unit == unitMilliseconds {
			t = epoch.FromMilliseconds(offset)
		} else {
			t = epoch.FromMicroseconds(offset)
		}
		return t.Format(time.RFC3339Nano), nil
	}

	t, err := time.Parse(time.RFC3339Nano, text)
	if err != nil {
		return "", fmt.Errorf("%q is neither an integer offset nor an RFC3339 timestamp", arg)
	}
	if unit == unitMilliseconds {
		return strconv.FormatInt(epoch.Milliseconds(t), 10), nil
	}
	return strconv.FormatInt(epoch.Microseconds(t), 10), nil
}

func init() {
	addUnitFlag(epochCmd)
	rootCmd.AddCommand(epochCmd)
}
