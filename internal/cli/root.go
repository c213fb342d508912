package cli

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type ExitCode int

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

func Run() ExitCode {
	rootCmd := newRootCmd(loadDefaults(), os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		return exitCodeError
	}
	return exitCodeSuccess
}

func newRootCmd(d defaults, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "seqkit",
		Short:        "Ranges, lazy sequences and combinatorics from the command line.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}
			return nil
		},
	}
	rootCmd.SetOut(out)

	var verbose bool
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", d.verbose, "set debug logging level")

	var seed uint64
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", d.seed, "random seed (0 picks a random one)")

	var plain bool
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "print plain lines instead of tables")

	rootCmd.AddCommand(
		NewRangeCmd().Command(),
		NewFixedCmd().Command(),
		NewPrimesCmd().Command(),
		NewGCDCmd().Command(),
		NewModCmd().Command(),
		NewShuffleCmd().Command(),
		NewProductCmd().Command(),
		NewWindowCmd().Command(),
		NewPermutationsCmd().Command(),
	)

	return rootCmd
}

// env holds what every subcommand reads from the persistent flags.
type env struct {
	log  *slog.Logger
	out  output
	rand *rand.Rand
}

func newEnv(cmd *cobra.Command) (*env, error) {
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	seed, err := cmd.Root().PersistentFlags().GetUint64("seed")
	if err != nil {
		return nil, fmt.Errorf("failed to get seed flag: %w", err)
	}
	plain, err := cmd.Root().PersistentFlags().GetBool("plain")
	if err != nil {
		return nil, fmt.Errorf("failed to get plain flag: %w", err)
	}

	e := &env{
		log: newLogger(verbose),
		out: output{w: cmd.OutOrStdout(), plain: plain},
	}
	if seed != 0 {
		e.rand = rand.New(rand.NewPCG(seed, seed))
	}
	e.log.Debug("Parsed global flags", "seed", seed, "plain", plain)
	return e, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
}
