// Command aoc runs the puzzle solvers of every collection, in order, against
// the real inputs or the samples.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/puzzlebox/aoc"
	"github.com/puzzlebox/aoc/internal/config"
	"github.com/puzzlebox/aoc/y2024"
	"github.com/puzzlebox/aoc/y2025"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// collection is a year of puzzles.
type collection struct {
	year int
	run  func(*aoc.Runner) error
}

var collections = []collection{
	{2024, y2024.Run},
	{2025, y2025.Run},
}

type options struct {
	inputDir  string
	sampleDir string
	year      int
	day       int
	part      string
	sample    bool
	verbose   bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	cfg := config.Load()
	var (
		opts   options
		logger *zap.Logger
	)
	cmd := &cobra.Command{
		Use:   "aoc",
		Short: "Solve the puzzles of every collection",
		Long: `aoc runs each day's solver and prints one line per part.

Inputs are read from <input-dir>/aoc_YY/day_NN.txt, or with --sample from
<sample-dir>/aoc_YY/day_NN_sample.txt where answers are checked against the
expected values recorded with the solvers.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.day != 0 && opts.year == 0 {
				return fmt.Errorf("--day needs --year")
			}
			zc := zap.NewProductionConfig()
			if opts.verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, out, logger)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.inputDir, "input-dir", cfg.InputDir, "directory of the puzzle inputs ($AOC_INPUT_DIR)")
	f.StringVar(&opts.sampleDir, "sample-dir", cfg.SampleDir, "directory of the sample inputs ($AOC_SAMPLE_DIR)")
	f.IntVar(&opts.year, "year", 0, "only run this year")
	f.IntVar(&opts.day, "day", 0, "only run this day (needs --year)")
	f.StringVar(&opts.part, "part", "", "only run this part")
	f.BoolVar(&opts.sample, "sample", false, "run against the samples and check the answers")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	return cmd
}

func run(opts options, out io.Writer, logger *zap.Logger) error {
	ran := false
	for _, c := range collections {
		if opts.year != 0 && opts.year != c.year {
			continue
		}
		ran = true
		r := &aoc.Runner{
			InputDir:   opts.inputDir,
			SampleDir:  opts.sampleDir,
			Day:        opts.day,
			Part:       opts.part,
			SampleMode: opts.sample,
			Out:        out,
			Logger:     logger.Named(fmt.Sprint(c.year)),
		}
		if err := c.run(r); err != nil {
			return fmt.Errorf("%d: %w", c.year, err)
		}
	}
	if !ran {
		return fmt.Errorf("no collection for year %d", opts.year)
	}
	return nil
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
