package main

import (
	"os"

	"industrial-land-api/internal/config"
	"industrial-land-api/internal/logger"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "importer",
	Short: "Load industrial-land sheets into PostgreSQL",
	Long:  "Reads CSV or XLSX location sheets, validates them against the catalog rules and replaces the contents of the industrial_locations table.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadConfig("configs")
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c

		if _, err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
			return eris.Wrap(err, "init logger")
		}
		return nil
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
