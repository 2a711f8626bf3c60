package cli

import (
	"fmt"

	"infopage/config"
	"infopage/di"
	"infopage/helper"

	"github.com/spf13/cobra"
)

// NewSchemaCommand creates the tables, or recreates them and seeds the
// default settings with --drop.
func NewSchemaCommand(inject Injector) *cobra.Command {
	var (
		flags Flags
		drop  bool
	)

	cmd := &cobra.Command{
		Use:   "infopage-schema",
		Short: "Create the infopage database tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), &flags, inject, func(_ *config.Config, app *di.App) error {
				action := SchemaAction(drop)

				if err := helper.Runner(cmd.Context(), app.Conn, app.Otel, action); err != nil {
					return err //nolint:wrapcheck
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s schema %s\n", okText("OK"), action)

				return nil
			})
		},
	}

	flags.RegisterConfig(cmd.Flags())
	cmd.Flags().BoolVarP(&drop, "drop", "d", false, "drops all tables before recreating them and inserts the default settings")

	return cmd
}

// SchemaAction is the schema runner action for the --drop flag.
func SchemaAction(drop bool) string {
	if drop {
		return helper.ActionReset
	}

	return helper.ActionCreate
}
