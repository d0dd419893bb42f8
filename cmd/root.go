package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bent101/wordle-signal/config"
)

// session is what every command runs with: the config and a logger built
// from it.
type session struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func (s *session) open() error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}

	zcfg := zap.NewProductionConfig()
	if s.verbose || cfg.Debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	s.cfg = cfg
	s.logger = logger
	return nil
}

func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "wordle-signal",
		Short: "Narrow and rank Wordle candidates using posted game summaries",
		Long: `wordle-signal keeps the set of words consistent with your guesses and
scores them against the penultimate guess patterns other players posted.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.logger != nil {
				_ = s.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&s.configPath, "config", "wordle.yaml", "path to the YAML config")
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newFilterCmd(s),
		newScoreCmd(s),
		newFingerprintCmd(s),
		newStatsCmd(s),
	)
	return root
}

func Execute(ctx context.Context) error {
	return newRootCmd(&session{}).ExecuteContext(ctx)
}
