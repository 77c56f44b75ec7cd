package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/rotisserie/eris"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/correlaid/geomap/internal/geojson"
	"github.com/correlaid/geomap/internal/loader"
	"github.com/correlaid/geomap/internal/pipeline"
	"github.com/correlaid/geomap/pkg/geocode"
)

var geocodeCmd = &cobra.Command{
	Use:   "geocode",
	Short: "Resolve project addresses and write locations.geojson",
	Long: `Resolve project addresses and write a GeoJSON FeatureCollection.

Each unique (place, country) pair is looked up once via Nominatim, spaced
by the configured minimum interval to respect the fair-use rate limit.
Records without a place or country are skipped; failed lookups are logged
and excluded from the output.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		input, _ := cmd.Flags().GetString("input")
		if input == "" {
			input = cfg.Input
		}
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = cfg.Output
		}

		log := zap.L().With(zap.String("command", "geocode"))

		records, err := loader.Load(input)
		if err != nil {
			return eris.Wrap(err, "geocode: load records")
		}
		log.Info("loaded records", zap.String("input", input), zap.Int("count", len(records)))

		client := geocode.NewClient(
			geocode.WithBaseURL(cfg.Nominatim.BaseURL),
			geocode.WithUserAgent(cfg.Nominatim.UserAgent),
			geocode.WithHTTPClient(&http.Client{Timeout: cfg.Nominatim.Timeout()}),
			geocode.WithMinInterval(cfg.Nominatim.MinInterval()),
		)

		var bar *progressbar.ProgressBar
		if isatty.IsTerminal(os.Stderr.Fd()) {
			bar = progressbar.NewOptions(len(records),
				progressbar.OptionSetDescription("Geocoding"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}

		p := pipeline.New(client, pipeline.WithProgress(func() {
			if bar != nil {
				_ = bar.Add(1)
			}
		}))

		locations, err := p.Run(ctx, records)
		if err != nil {
			return eris.Wrap(err, "geocode: run pipeline")
		}

		if err := geojson.Write(output, locations); err != nil {
			return eris.Wrap(err, "geocode: write output")
		}

		fmt.Printf("Successfully geocoded %d locations\n", len(locations))
		fmt.Printf("Saved to %s\n", output)
		return nil
	},
}

func init() {
	geocodeCmd.Flags().String("input", "", "path to the project address collection (overrides config)")
	geocodeCmd.Flags().String("output", "", "path of the GeoJSON file to write (overrides config)")
	rootCmd.AddCommand(geocodeCmd)
}
