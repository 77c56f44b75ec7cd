package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/correlaid/geomap/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "geomap",
	Short: "Geocode project addresses into map points",
	Long:  "Reads a JSON collection of project addresses, resolves each unique place via Nominatim, and writes a GeoJSON FeatureCollection for map rendering.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
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
