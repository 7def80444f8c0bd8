package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jorundf/cetus/config"
	"github.com/jorundf/cetus/core/imo"
	"github.com/jorundf/cetus/infra/logger"
	"github.com/jorundf/cetus/infra/metrics"
	"github.com/jorundf/cetus/pkg/export"
)

var estimateCSV bool

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate fuel consumption for the scenario",
	RunE:  runEstimate,
}

func init() {
	estimateCmd.Flags().BoolVar(&estimateCSV, "csv", false, "write CSV instead of JSON")
	rootCmd.AddCommand(estimateCmd)
}

func estimationOptions(cfg *config.Config) []imo.Option {
	var opts []imo.Option
	if !cfg.Options.Boilers() {
		opts = append(opts, imo.WithoutSteamBoilers())
	}
	return opts
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := logger.New("estimate-command")
	runID := uuid.NewString()

	res, err := imo.EstimateFuelConsumption(cfg.Vessel, cfg.Voyage, estimationOptions(cfg)...)
	if err != nil {
		return fmt.Errorf("estimate: %w", err)
	}
	logg.Debugw("estimation complete", map[string]any{
		"run_id":      runID,
		"vessel_type": string(cfg.Vessel.Type),
		"total_kg":    res.TotalKg,
	})

	var sink metrics.Sink = metrics.NopSink{}
	if cfg.Metrics.PrometheusEnabled {
		promSink, err := metrics.NewPromSink(nil)
		if err != nil {
			return fmt.Errorf("prom sink: %w", err)
		}
		sink = promSink
	}
	if err := sink.RecordEstimation(metrics.Estimation{
		VesselType: string(cfg.Vessel.Type),
		FuelKg:     res.TotalKg,
	}); err != nil {
		logg.Errorf("record estimation: %v", err)
	}

	if estimateCSV {
		if err := export.WriteCSV(os.Stdout, res); err != nil {
			return err
		}
	} else if err := export.WriteJSON(os.Stdout, res); err != nil {
		return err
	}

	if cfg.Metrics.PrometheusEnabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go func() {
			if err := metrics.StartPromServer(cfg.Metrics.PrometheusPort); err != nil {
				logg.Errorf("prom server: %v", err)
			}
		}()
		logg.Infof("metrics exposed on :%d, interrupt to exit", cfg.Metrics.PrometheusPort)
		<-ctx.Done()
	}
	return nil
}
