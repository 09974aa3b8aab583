package cmd

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/blackfynn/blackfynn-go/pkg/waveform"
	units "github.com/docker/go-units"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

// appFs is the file system generated files are written to
var appFs = afero.NewOsFs()

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a demo time series frame as CSV",
	Long: `Generate a demo time series frame, starting 2017-01-01T00:00:00Z, with four
channels: random-walk, sin, sawtooth and square.

The frame is written as CSV, with timestamps in microseconds since the epoch.

Example:
	% bf generate --minutes 2 --freq 100 --out demo.csv --seed 42
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var opts []waveform.Option
		if cmd.Flags().Changed(seedFlag) {
			opts = append(opts, waveform.Seed(bfFlags.generate.seed))
		}

		frame, err := waveform.GenerateFrame(bfFlags.generate.minutes, bfFlags.generate.freq, opts...)
		if err != nil {
			wrapFatalln("generate frame", err)
			return
		}

		if bfFlags.generate.out == "" {
			if err = frame.WriteCSV(os.Stdout); err != nil {
				wrapFatalln("write frame", err)
			}
			return
		}

		written, err := writeFile(bfFlags.generate.out, frame.WriteCSV)
		if err != nil {
			wrapFatalln("write frame", err)
			return
		}
		infoLogger.Printf("wrote %d rows to %s (%s)", frame.Len(), bfFlags.generate.out, units.HumanSize(float64(written)))
	},
}

var generateSeriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Generate a single waveform, one value per line",
	Long: `Generate a single waveform: walk, sin, square or sawtooth.

Example:
	% bf generate series --kind square --size 20 --periods 2 --scale 1
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := waveform.ParseKind(bfFlags.generate.kind)
		if err != nil {
			wrapFatalln("generate series", err)
			return
		}
		opts := []waveform.Option{
			waveform.Scale(bfFlags.generate.scale),
			waveform.Periods(bfFlags.generate.periods),
		}
		if cmd.Flags().Changed(seedFlag) {
			opts = append(opts, waveform.Seed(bfFlags.generate.seed))
		}

		values, err := waveform.Generate(bfFlags.generate.size, kind, opts...)
		if err != nil {
			wrapFatalln("generate series", err)
			return
		}

		write := func(w io.Writer) error {
			for _, v := range values {
				if _, err := io.WriteString(w, strconv.FormatFloat(v, 'g', -1, 64)+"\n"); err != nil {
					return err
				}
			}
			return nil
		}

		if bfFlags.generate.out == "" {
			bw := bufio.NewWriter(os.Stdout)
			if err = write(bw); err == nil {
				err = bw.Flush()
			}
			if err != nil {
				wrapFatalln("write series", err)
			}
			return
		}

		written, err := writeFile(bfFlags.generate.out, write)
		if err != nil {
			wrapFatalln("write series", err)
			return
		}
		infoLogger.Printf("wrote %d values to %s (%s)", len(values), bfFlags.generate.out, units.HumanSize(float64(written)))
	},
}

// countingWriter counts the bytes going through
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// writeFile creates a file on appFs and returns the number of bytes written to it
func writeFile(path string, write func(io.Writer) error) (int64, error) {
	f, err := appFs.Create(path)
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: f}
	bw := bufio.NewWriter(cw)
	if err = write(bw); err == nil {
		err = bw.Flush()
	}
	return cw.n, multierr.Append(err, f.Close())
}

func init() {
	addMinutesFlag(generateCmd)
	addFreqFlag(generateCmd)
	addOutFlag(generateCmd)
	addSeedFlag(generateCmd)

	addKindFlag(generateSeriesCmd)
	addSizeFlag(generateSeriesCmd)
	addScaleFlag(generateSeriesCmd)
	addPeriodsFlag(generateSeriesCmd)
	addOutFlag(generateSeriesCmd)
	addSeedFlag(generateSeriesCmd)

	generateCmd.AddCommand(generateSeriesCmd)
	rootCmd.AddCommand(generateCmd)
}
