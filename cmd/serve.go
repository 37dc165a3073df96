package cmd

import (
	httpserver "github.com/OliveiraNt/kafka-utils/internal/adapters/http"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connect(cmd, opts)
			if err != nil {
				return err
			}
			defer conn.Close()

			if conn.repo != nil {
				if err := conn.repo.Watch(); err != nil {
					return err
				}
			}

			server := httpserver.New(conn.services())
			return server.Run(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	return cmd
}
