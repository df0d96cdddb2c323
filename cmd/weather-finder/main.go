package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"weather-finder/configs"
	"weather-finder/internal/application/tui"
	"weather-finder/pkg/log"
	"weather-finder/pkg/msg"
)

var rootCmd = &cobra.Command{
	Use:   "weather-finder",
	Short: "Look up the five day forecast of a city",
	Long:  "weather-finder runs an interactive terminal widget; use `serve` for the web widget or `forecast` for one-shot output.",
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout belongs to the UI
		logFile, err := log.OpenFile(configs.Env.LogFile)
		if err != nil {
			return err
		}
		defer logFile.Close()
		setupLogger(logFile)
		defer log.Sync()

		app, err := newApplication()
		if err != nil {
			return err
		}

		log.Info(msg.GetMessage("app.start"))
		_, err = tea.NewProgram(tui.New(cmd.Context(), app.forecastUseCase), tea.WithContext(cmd.Context())).Run()
		log.Info(msg.GetMessage("app.stopped"))
		return err
	},
}

func main() {
	rootCmd.AddCommand(newServeCmd(), newForecastCmd())
	rootCmd.SilenceUsage = true

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
