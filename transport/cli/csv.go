package cli

import (
	"context"

	"infopage/config"
	"infopage/di"
	"infopage/infras/csvfeed"
	"infopage/internal/domains/event/model/dto"

	"github.com/spf13/cobra"
)

// NewCSVCommand imports events from a CSV or XLSX file.
func NewCSVCommand(inject Injector) *cobra.Command {
	var (
		flags Flags
		input string
	)

	cmd := &cobra.Command{
		Use:   "infopage-csv",
		Short: "Import events from a CSV file into the infopage database",
		Long: `Reads rows of location, event, start and end (YYYY-MM-DD HH:MM) and merges
them into the infopage database. Files ending in .xlsx are read from their
first sheet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), &flags, inject, func(_ *config.Config, app *di.App) error {
				var source Source
				if input != "" {
					source = func(context.Context) ([]dto.ImportEvent, error) {
						return csvfeed.Read(input)
					}
				}

				return Maintain(cmd.Context(), cmd.OutOrStdout(), &flags, services(app), source)
			})
		},
	}

	flags.Register(cmd.Flags())
	cmd.Flags().StringVarP(&input, "input", "i", "", "the CSV file to read")

	return cmd
}
