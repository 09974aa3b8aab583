package cmd

import (
	"fmt"

	"github.com/blackfynn/blackfynn-go/pkg/types"
	"github.com/spf13/cobra"
)

var valueCmd = &cobra.Command{
	Use:   "value",
	Short: "Commands to work with typed values",
	Long: `Values stored as properties on the platform carry a data type:
string, integer, double, boolean or date.

These commands show how values given on the command line are typed by the platform clients.
`,
}

var valueInferCmd = &cobra.Command{
	Use:   "infer <value>...",
	Short: "Infer the data type of values",
	Long: `Infer the data type of values, and print their normalized form.

Example:
	% bf value infer 42 42.5 abc
	integer	42
	double	42.5
	string	abc
`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, arg := range args {
			v := types.Infer(arg)
			infoLogger.Printf("%s\t%v", v.Type, v.Data)
		}
	},
}

var valueCoerceCmd = &cobra.Command{
	Use:   "coerce --type <type> <value>...",
	Short: "Convert values to a data type",
	Long: `Convert values to a data type: string, integer, double, boolean or date.

Dates are expressed as milliseconds since the epoch.

Example:
	% bf value coerce --type integer 12 " 7 "
	12
	7
`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := make([]string, 0, len(args))
		for _, arg := range args {
			v, err := types.CoerceString(arg, bfFlags.value.typeName)
			if err != nil {
				wrapFatalln("coerce", err)
				return
			}
			out = append(out, fmt.Sprint(v))
		}
		for _, o := range out {
			infoLogger.Println(o)
		}
	},
}

func init() {
	requireFlags(valueCoerceCmd,
		addTypeFlag(valueCoerceCmd),
	)

	valueCmd.AddCommand(valueInferCmd)
	valueCmd.AddCommand(valueCoerceCmd)
	rootCmd.AddCommand(valueCmd)
}
