package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dakyeoman/25-1-computing/internal/model"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List supported business categories",
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range model.Categories() {
			p := c.Profile()
			fmt.Printf("%-18s ideal competitors %3d, default price %6d won, peak hours %v\n",
				c, p.IdealCompetition, p.DefaultPrice, p.PeakHours)
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
