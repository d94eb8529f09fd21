package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jeandeducla/stickpath/internal/config"
	"github.com/jeandeducla/stickpath/internal/stickpath"
)

var (
	// Global flags
	inputPath  string
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "stickpath",
	Short: "Stick-path (Amidakuji) puzzle solver",
	Long: `Reads a "<width> <height>" header followed by <height> diagram lines and
prints, for every top label, the bottom label its lane ends on.

Example input:
  7 7
  A  B  C
  |  |  |
  |--|  |
  |  |--|
  |  |--|
  |  |  |
  1  2  3`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg.Logging, verbose)
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
	Args: cobra.NoArgs,
	RunE: runSolve,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a diagram without solving it",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "diagram file (default stdin)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the zap logger for one run, tagged with a fresh run id
func newLogger(lc config.LoggingConfig, debug bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if debug {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	l, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return l.With(zap.String("run_id", uuid.NewString())), nil
}

// loadPuzzle reads the puzzle from --input, or from the command's stdin
func loadPuzzle(cmd *cobra.Command) (*Puzzle, error) {
	var r io.Reader = cmd.InOrStdin()
	if inputPath != "" && inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	p, err := readPuzzle(r)
	if err != nil {
		return nil, err
	}
	logger.Debug("puzzle read",
		zap.Int("width", p.Width),
		zap.Int("height", p.Height),
		zap.String("input", inputPath))
	return p, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	p, err := loadPuzzle(cmd)
	if err != nil {
		return err
	}

	results, err := p.Solve(cfg.GridLimits())
	if err != nil {
		logRejection(err)
		return err
	}
	logger.Debug("puzzle solved", zap.Int("lanes", len(results)))

	out := bufio.NewWriter(cmd.OutOrStdout())
	for _, line := range results {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return out.Flush()
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := loadPuzzle(cmd)
	if err != nil {
		return err
	}

	g, err := p.Grid(cfg.GridLimits())
	if err != nil {
		logRejection(err)
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d lanes, %dx%d\n", g.Lanes(), g.Width(), g.Height())
	return err
}

// logRejection records why a diagram was refused
func logRejection(err error) {
	fields := []zap.Field{
		zap.Stringer("kind", stickpath.KindOf(err)),
		zap.Error(err),
	}

	var verr *stickpath.ValidationError
	if errors.As(err, &verr) && verr.Row >= 0 {
		fields = append(fields, zap.Int("row", verr.Row))
		if verr.Col >= 0 {
			fields = append(fields, zap.Int("col", verr.Col))
		}
	}
	logger.Error("diagram rejected", fields...)
}
