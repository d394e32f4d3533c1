package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/on-the-ground/stonecount/blink"
	"github.com/on-the-ground/stonecount/effects/log"
	"github.com/on-the-ground/stonecount/stones"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrNoInput = errors.New("no input line")

type cliConfig struct {
	blinks    []int
	shareMemo bool
	memoLimit int
	verbose   bool
	jsonLog   bool
}

func newRootCmd() *cobra.Command {
	cfg := cliConfig{}

	root := &cobra.Command{
		Use:   "stonecount",
		Short: "Count the stones a line of engraved numbers turns into after repeated blinks",
		Long: `stonecount reads one line of whitespace separated stone numbers from stdin ` +
			`and prints, for each blink budget, how many stones there are after that many rounds. ` +
			`The default budgets print the totals after 25 and 75 rounds.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flag errors are printed by cobra; errors from here on are logged by run.
			cmd.SilenceErrors = true
			return cfg.run(cmd)
		},
	}

	flags := root.Flags()
	flags.IntSliceVarP(&cfg.blinks, "blinks", "b", blink.DefaultConfig().Budgets, "Blink budgets to evaluate, in output order")
	flags.BoolVar(&cfg.shareMemo, "share-memo", false, "Reuse one memo table across all budgets")
	flags.IntVar(&cfg.memoLimit, "memo-limit", 0, "Maximum memo entries per table (0 means unbounded)")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "Log memo statistics and timings")
	flags.BoolVar(&cfg.jsonLog, "json-log", false, "Output logs in JSON format.")

	return root
}

func (cfg cliConfig) setupLogger(w io.Writer) *zap.Logger {
	var zapCfg zap.Config
	if cfg.verbose {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	var encoder zapcore.Encoder
	if cfg.jsonLog {
		encoder = zapcore.NewJSONEncoder(zapCfg.EncoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(zapCfg.EncoderConfig)
	}
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zapCfg.Level))
}

func (cfg cliConfig) run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, endOfLog := log.WithZapEffectHandler(ctx, cfg.setupLogger(cmd.ErrOrStderr()))
	defer endOfLog()

	totals, err := cfg.count(ctx, cmd.InOrStdin())
	if err != nil {
		log.Effect(ctx, log.LogError, "stone count failed", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	for _, total := range totals {
		fmt.Fprintln(out, total)
	}
	return out.Flush()
}

// count does all the work that can fail before anything is printed.
func (cfg cliConfig) count(ctx context.Context, in io.Reader) ([]uint64, error) {
	runner, err := blink.NewRunner(blink.Config{
		Budgets:   cfg.blinks,
		ShareMemo: cfg.shareMemo,
		MemoLimit: cfg.memoLimit,
	})
	if err != nil {
		return nil, err
	}

	line, err := readLine(in)
	if err != nil {
		return nil, err
	}
	values, err := stones.ParseLine(line)
	if err != nil {
		return nil, err
	}

	results, err := runner.Run(ctx, values)
	if err != nil {
		return nil, err
	}

	totals := make([]uint64, len(results))
	for i, res := range results {
		totals[i] = res.Total
	}
	return totals, nil
}

// readLine returns the first line of in. A final line without a newline is
// accepted; a stream that ends before any byte is ErrNoInput.
func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", ErrNoInput
		}
		return line, nil
	default:
		return "", fmt.Errorf("read input: %w", err)
	}
}
