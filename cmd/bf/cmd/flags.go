package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type flagsT struct {
	root struct {
		profile  string
		dataset  string
		logLevel string
	}
	status struct {
		output string
	}
	value struct {
		typeName string
	}
	epoch struct {
		unit string
	}
	generate struct {
		minutes int
		freq    float64
		out     string
		seed    int64
		kind    string
		size    int
		scale   float64
		periods int
	}
	doc struct {
		docTarget string
	}
}

var bfFlags = flagsT{}

func addProfileFlag(cmd *cobra.Command) string {
	profile := "profile"
	cmd.PersistentFlags().StringVar(&bfFlags.root.profile, profile, "", "Use specified profile (instead of default)")
	return profile
}

func addDatasetFlag(cmd *cobra.Command) string {
	dataset := "dataset"
	cmd.PersistentFlags().StringVar(&bfFlags.root.dataset, dataset, "", "Use specified dataset (instead of your current working dataset)")
	return dataset
}

func addLogLevel(cmd *cobra.Command) string {
	loglevel := "loglevel"
	cmd.PersistentFlags().StringVar(&bfFlags.root.logLevel, loglevel, "",
		"The logging level, overriding the profile setting. Levels by increasing order of verbosity: none, error, warn, info, debug")
	return loglevel
}

func addOutputFlag(cmd *cobra.Command) string {
	output := "output"
	cmd.Flags().VarP(newEnumValue(&bfFlags.status.output, outputText, outputText, outputYAML, outputJSON),
		output, "o", "Output format: text, yaml or json")
	return output
}

func addTypeFlag(cmd *cobra.Command) string {
	typeName := "type"
	cmd.Flags().StringVar(&bfFlags.value.typeName, typeName, "", "The target data type: string, integer, double, boolean or date")
	return typeName
}

func addUnitFlag(cmd *cobra.Command) string {
	unit := "unit"
	cmd.Flags().Var(newEnumValue(&bfFlags.epoch.unit, unitMicroseconds, unitMilliseconds, unitMicroseconds),
		unit, "Resolution of epoch offsets: ms or us")
	return unit
}

func addMinutesFlag(cmd *cobra.Command) string {
	minutes := "minutes"
	cmd.Flags().IntVar(&bfFlags.generate.minutes, minutes, 2, "Duration of the generated time series, in minutes")
	return minutes
}

func addFreqFlag(cmd *cobra.Command) string {
	freq := "freq"
	cmd.Flags().Float64Var(&bfFlags.generate.freq, freq, 100, "Sampling frequency of the generated time series, in Hz")
	return freq
}

func addOutFlag(cmd *cobra.Command) string {
	out := "out"
	cmd.Flags().StringVar(&bfFlags.generate.out, out, "", "The file to write to (defaults to stdout)")
	return out
}

const seedFlag = "seed"

func addSeedFlag(cmd *cobra.Command) string {
	cmd.Flags().Int64Var(&bfFlags.generate.seed, seedFlag, 0, "Seed of random walks, for reproducible output")
	return seedFlag
}

func addKindFlag(cmd *cobra.Command) string {
	kind := "kind"
	cmd.Flags().StringVar(&bfFlags.generate.kind, kind, "sin", "The waveform: walk, sin, square or sawtooth")
	return kind
}

func addSizeFlag(cmd *cobra.Command) string {
	size := "size"
	cmd.Flags().IntVar(&bfFlags.generate.size, size, 100, "Number of generated values")
	return size
}

func addScaleFlag(cmd *cobra.Command) string {
	scale := "scale"
	cmd.Flags().Float64Var(&bfFlags.generate.scale, scale, 5, "Amplitude of the waveform")
	return scale
}

func addPeriodsFlag(cmd *cobra.Command) string {
	periods := "periods"
	cmd.Flags().IntVar(&bfFlags.generate.periods, periods, 10, "Number of pattern repetitions")
	return periods
}

func addTargetFlag(cmd *cobra.Command) string {
	c := "target-dir"
	cmd.Flags().StringVar(&bfFlags.doc.docTarget, c, ".", "The target directory where to generate the markdown documentation")
	return c
}

// enumValue is a string flag restricted to a set of values
type enumValue struct {
	target  *string
	allowed []string
}

func newEnumValue(target *string, value string, allowed ...string) pflag.Value {
	*target = value
	return &enumValue{target: target, allowed: allowed}
}

func (e *enumValue) String() string {
	return *e.target
}

func (e *enumValue) Set(value string) error {
	for _, a := range e.allowed {
		if value == a {
			*e.target = value
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(e.allowed, ", "))
}

func (e *enumValue) Type() string {
	return "string"
}

func requireFlags(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		err := cmd.MarkFlagRequired(flag)
		if err != nil {
			err = cmd.MarkPersistentFlagRequired(flag)
		}
		if err != nil {
			wrapFatalln(fmt.Sprintf("error attempting to mark the required flag %q", flag), err)
			return
		}
	}
}
