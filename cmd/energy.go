package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jorundf/cetus/config"
	"github.com/jorundf/cetus/core/imo"
	"github.com/jorundf/cetus/pkg/export"
)

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Estimate energy consumption for the scenario",
	RunE:  runEnergy,
}

func init() {
	rootCmd.AddCommand(energyCmd)
}

func runEnergy(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	res, err := imo.EstimateEnergyConsumption(cfg.Vessel, cfg.Voyage, estimationOptions(cfg)...)
	if err != nil {
		return fmt.Errorf("estimate: %w", err)
	}
	return export.WriteEnergyJSON(os.Stdout, res)
}
