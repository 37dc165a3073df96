package cmd

import (
	"github.com/spf13/cobra"
)

func newClusterCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Cluster level information",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "brokers",
		Short: "List the brokers of the cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connect(cmd, opts)
			if err != nil {
				return err
			}
			defer conn.Close()

			cs, _, _ := conn.services()
			brokers, err := cs.ListBrokers(cmd.Context())
			if err != nil {
				return err
			}
			printBrokers(cmd.OutOrStdout(), brokers)
			return nil
		},
	})
	return cmd
}
