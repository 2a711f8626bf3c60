package cli

import (
	"fmt"
	"net"

	"infopage/config"
	"infopage/di"

	"github.com/spf13/cobra"
)

// NewServerCommand serves the slide endpoint and the display page.
func NewServerCommand(inject Injector) *cobra.Command {
	var (
		flags  Flags
		listen string
	)

	cmd := &cobra.Command{
		Use:   "infopage-server",
		Short: "Serve the infopage slides over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var host, port string

			if listen != "" {
				var err error
				if host, port, err = net.SplitHostPort(listen); err != nil {
					return fmt.Errorf("invalid listen address: %w", err)
				}
			}

			loaded := func(cfg *config.Config) *di.App {
				if listen != "" {
					cfg.Server.Host = host
					cfg.Server.Port = port
				}

				return inject(cfg)
			}

			return withApp(cmd.Context(), &flags, loaded, func(_ *config.Config, app *di.App) error {
				return app.Server.Serve(cmd.Context()) //nolint:wrapcheck
			})
		},
	}

	flags.RegisterConfig(cmd.Flags())
	flags.RegisterDatabase(cmd.Flags())
	cmd.Flags().StringVar(&listen, "listen", "", "the address to listen on, host:port (default from INFOPAGE_SERVER_HOST and INFOPAGE_SERVER_PORT)")

	return cmd
}
