package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/inspiration/internal/location"
	"github.com/ytget/inspiration/internal/model"
	"github.com/ytget/inspiration/internal/state"
)

func weatherCmd(rt *session) *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Print current weather for the given or detected location",
		RunE: func(cmd *cobra.Command, args []string) error {
			var locator location.Locator
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
				if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
					return fmt.Errorf("coordinates out of range: %g, %g", lat, lon)
				}
				locator = location.Fixed(model.Coordinates{Latitude: lat, Longitude: lon})
			} else {
				locator = newLocator(rt.cfg, nil, rt.client, rt.log)
			}

			svc := newService(rt.cfg, rt.cfg.Keys, state.New(), locator, rt.client, rt.log)
			defer svc.Close()

			coords, err := locator.Locate(cmd.Context())
			if err != nil {
				return fmt.Errorf("resolve location: %w", err)
			}
			summary, err := svc.Weather(cmd.Context(), coords)
			if err != nil {
				return fmt.Errorf("fetch weather: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", labelStyle().Render("location:"), coords)
			fmt.Fprintln(w, weatherStyle().Render(summary.String()))
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	return cmd
}
