package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"weather-finder/internal/application/tui"
	"weather-finder/internal/application/widget"
	"weather-finder/pkg/log"
	"weather-finder/pkg/msg"
)

func newForecastCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "forecast <city>",
		Short: "Print the five day forecast of a city and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(os.Stderr)
			defer log.Sync()

			app, err := newApplication()
			if err != nil {
				return err
			}

			var state widget.SearchState
			state.SetInput(strings.Join(args, " "))
			if !state.Search(cmd.Context(), app.forecastUseCase) {
				return errors.New(msg.GetMessage("forecast.city-required"))
			}

			view := widget.NewView(state)
			if view.Mode == widget.ModeError {
				return errors.New(view.Error)
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderResult(tui.DefaultStyles(), view, width))
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "wrap cards to this many columns (0 keeps one row)")
	return cmd
}
