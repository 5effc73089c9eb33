package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dakyeoman/25-1-computing/internal/collector"
	"github.com/dakyeoman/25-1-computing/internal/config"
	"github.com/dakyeoman/25-1-computing/internal/flow"
)

var flowSnapshot string

// flowCmd solves and prints the raw flow network for a snapshot,
// without scoring or filtering. Useful for inspecting how capacity
// profiles shape the movement model.
var flowCmd = &cobra.Command{
	Use:   "flow",
	Short: "Solve and print the customer-movement flow network",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		snap, err := collector.LoadSnapshot(flowSnapshot)
		if err != nil {
			return err
		}

		coll := collector.New(snap, cfg.Collector)
		locations, err := coll.Collect(ctx, snap.Names())
		if err != nil {
			return eris.Wrap(err, "collect locations")
		}
		movement, err := coll.Movement(ctx)
		if err != nil {
			return eris.Wrap(err, "load movement data")
		}

		profile, err := config.ProfileByName(cfg.Profile)
		if err != nil {
			return err
		}

		network, err := flow.NewBuilder(profile, coll.Adjacency()).Build(locations, movement)
		if err != nil {
			return eris.Wrap(err, "build network")
		}

		zap.L().Info("network built",
			zap.String("profile", profile.Name),
			zap.Int("nodes", network.NodeCount()),
			zap.Int("edges", network.EdgeCount()),
			zap.Int("total_capacity", network.TotalCapacity()),
		)

		analysis := flow.Analyze(flow.Solve(network), locations)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	},
}

func init() {
	flowCmd.Flags().StringVar(&flowSnapshot, "snapshot", "", "path to the location snapshot YAML (required)")
	_ = flowCmd.MarkFlagRequired("snapshot")
	rootCmd.AddCommand(flowCmd)
}
