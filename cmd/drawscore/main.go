// drawscore scores a player's drawing against a base template image using a
// multimodal AI judge, with a persisted novelty bonus for new art categories.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"drawscore/internal/config"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command. Without arguments it starts an
// interactive play session.
var rootCmd = &cobra.Command{
	Use:   "drawscore",
	Short: "Score a drawing against a base template with an AI judge",
	Long: `drawscore sends a base template image and a player's drawing to a
multimodal AI service, counts the meaningful details the player added, and
combines that with a novelty bonus: the first drawing in an art category
scores 10 bonus points, later drawings in the same category score 1.

Run without arguments to start an interactive play session.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "drawscore.yaml", "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(policyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
