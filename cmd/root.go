package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dakyeoman/25-1-computing/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "locus",
	Short: "Business-site location recommendation engine",
	Long:  "Ranks candidate commercial districts for a prospective business by modeling customer movement as a max-flow network, scoring multi-objective fitness, and filtering on the owner's constraints.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
