package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jorundf/cetus/config"
	"github.com/jorundf/cetus/core/energysystem"
)

var systemsCmd = &cobra.Command{
	Use:   "systems",
	Short: "Size alternative energy systems for the scenario",
	RunE:  runSystems,
}

func init() {
	rootCmd.AddCommand(systemsCmd)
}

func runSystems(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ref := energysystem.DefaultReferenceValues()

	battery, err := energysystem.SuggestBatterySystem(cfg.Vessel, cfg.Voyage, ref)
	if err != nil {
		return fmt.Errorf("battery system: %w", err)
	}
	hydrogen, err := energysystem.SuggestHydrogenSystem(cfg.Vessel, cfg.Voyage, ref)
	if err != nil {
		return fmt.Errorf("hydrogen system: %w", err)
	}
	combustion, err := energysystem.CombustionSystem(cfg.Vessel, cfg.Voyage)
	if err != nil {
		return fmt.Errorf("combustion system: %w", err)
	}

	out := map[string]energysystem.Result{
		"battery":    battery,
		"hydrogen":   hydrogen,
		"combustion": combustion,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
