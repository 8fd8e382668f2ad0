// SPDX-License-Identifier: MIT

// Command ndlite runs the array-library demonstrations from the command line.
//
//	ndlite scores                 # student-score analysis
//	ndlite temperature            # conversion, statistics, timing
//	ndlite env --backend fallback # runtime and backend details
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/ndlite/backend"
	"github.com/katalvlaran/ndlite/config"
	"github.com/katalvlaran/ndlite/demo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	// flags
	configPath string
	backend    string
	seed       int64
	verbose    bool
	timeout    time.Duration

	cfg    config.Config
	logger *zap.Logger
	nb     backend.NumericBackend
}

// newRootCmd wires the command tree around a. A logger already set on a
// is kept; otherwise one is built from the configuration.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "ndlite",
		Short: "ndlite - a small n-dimensional array library and its demos",
		Long: `ndlite runs two walk-throughs of the array library on a selectable
numeric backend: "native" (gonum) or "fallback" (pure Go).

Settings come from built-in defaults, an optional YAML file (--config),
and finally command-line flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVarP(&a.backend, "backend", "b", "", "numeric backend: "+kindList())
	root.PersistentFlags().Int64Var(&a.seed, "seed", backend.DefaultSeed, "random seed")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", time.Minute, "overall time limit")

	root.AddCommand(
		&cobra.Command{
			Use:   "scores",
			Short: "Analyse a random student-score matrix",
			Args:  cobra.NoArgs,
			RunE:  a.runScores,
		},
		&cobra.Command{
			Use:   "temperature",
			Short: "Convert temperatures, summarise scores and time a summation",
			Args:  cobra.NoArgs,
			RunE:  a.runTemperature,
		},
		&cobra.Command{
			Use:   "env",
			Short: "Print the Go runtime, executable and numeric backend",
			Args:  cobra.NoArgs,
			RunE:  a.runEnv,
		},
	)

	return root
}

// setup resolves configuration, then builds the logger and the backend.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.backend != "" {
		cfg.Backend = a.backend
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = a.seed
	}
	if a.verbose {
		cfg.Log.Level = zapcore.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		if a.logger, err = buildLogger(cfg.Log); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	kind, err := cfg.Kind()
	if err != nil {
		return err
	}
	a.nb, err = backend.New(kind, backend.WithSeed(cfg.Seed), backend.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.logger.Debug("configuration resolved",
		zap.String("config", a.configPath),
		zap.String("backend", string(kind)),
		zap.Int64("seed", cfg.Seed))

	return nil
}

func buildLogger(lc config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithTimeout(ctx, a.timeout)
}

func (a *app) runner(cmd *cobra.Command) *demo.Runner {
	return demo.NewRunner(a.nb, cmd.OutOrStdout(), demo.WithLogger(a.logger))
}

func (a *app) runScores(cmd *cobra.Command, args []string) error {
	ctx, cancel := a.context(cmd)
	defer cancel()

	_, err := a.runner(cmd).Scores(ctx, a.cfg.Scores)
	return err
}

func (a *app) runTemperature(cmd *cobra.Command, args []string) error {
	ctx, cancel := a.context(cmd)
	defer cancel()

	_, err := a.runner(cmd).Temperature(ctx, a.cfg.Temperature)
	return err
}

func (a *app) runEnv(cmd *cobra.Command, args []string) error {
	_, err := fmt.Fprint(cmd.OutOrStdout(), a.runner(cmd).Environment())
	return err
}

func kindList() string {
	kinds := backend.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}

	return strings.Join(names, "|")
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
