package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jorundf/cetus/core/imo"
	"github.com/jorundf/cetus/core/model"
)

var (
	convertMassKg  float64
	convertVolumeL float64
	convertFuel    string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert fuel mass to volume or volume to mass",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().Float64Var(&convertMassKg, "mass-kg", 0, "fuel mass to convert to liters")
	convertCmd.Flags().Float64Var(&convertVolumeL, "volume-l", 0, "fuel volume to convert to kg")
	convertCmd.Flags().StringVar(&convertFuel, "fuel", "", "fuel type (HFO, MDO, MeOH, LNG)")
	_ = convertCmd.MarkFlagRequired("fuel")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	fuel, err := model.ParseFuelType(convertFuel)
	if err != nil {
		return err
	}
	massSet := cmd.Flags().Changed("mass-kg")
	volumeSet := cmd.Flags().Changed("volume-l")
	if massSet == volumeSet {
		return fmt.Errorf("exactly one of --mass-kg or --volume-l is required")
	}
	if massSet {
		liters, err := imo.CalculateFuelVolume(convertMassKg, fuel)
		if err != nil {
			return err
		}
		fmt.Printf("%.3f L\n", liters)
		return nil
	}
	mass, err := imo.CalculateFuelMass(convertVolumeL, fuel)
	if err != nil {
		return err
	}
	fmt.Printf("%.3f kg\n", mass)
	return nil
}
