package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a location sheet without touching the database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		records, err := loadSheet(validateFile)
		if err != nil {
			return err
		}

		unplaced := 0
		for _, r := range records {
			if r.Location == nil {
				unplaced++
			}
		}
		log.Info().Int("records", len(records)).Int("unplaced", unplaced).Msg("sheet is valid")
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateFile, "file", "", "path to the CSV or XLSX sheet (required)")
	_ = validateCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(validateCmd)
}
