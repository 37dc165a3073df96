package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConsumersCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consumers",
		Short: "List and delete consumer groups",
	}
	cmd.AddCommand(newConsumersListCmd(opts))
	cmd.AddCommand(newConsumersDeleteCmd(opts))
	return cmd
}

func newConsumersListCmd(opts *globalOptions) *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List consumer groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connect(cmd, opts)
			if err != nil {
				return err
			}
			defer conn.Close()

			_, _, gs := conn.services()
			groups, err := gs.ListConsumerGroups(cmd.Context(), prefix)
			if err != nil {
				return err
			}
			printGroups(cmd.OutOrStdout(), groups)
			return nil
		},
	}
	cmd.Flags().StringVarP(&prefix, "consumer-group", "c", "", "Only groups whose name starts with this prefix")
	return cmd
}

// newConsumersDeleteCmd deletes immediately; without --consumer-group every group is deleted.
func newConsumersDeleteCmd(opts *globalOptions) *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete consumer groups by name prefix (all groups when no prefix is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connect(cmd, opts)
			if err != nil {
				return err
			}
			defer conn.Close()

			_, _, gs := conn.services()
			results, err := gs.DeleteConsumerGroups(cmd.Context(), prefix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(out, "Unable to delete consumer group %s: %v\n", r.Name, r.Err)
					continue
				}
				fmt.Fprintf(out, "Deleted consumer group %s\n", r.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&prefix, "consumer-group", "c", "", "Only groups whose name starts with this prefix")
	return cmd
}
