package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTopicsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List and delete topics",
	}
	cmd.AddCommand(newTopicsListCmd(opts))
	cmd.AddCommand(newTopicsDeleteCmd(opts))
	return cmd
}

func newTopicsListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List topics with partition, replication and message counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connect(cmd, opts)
			if err != nil {
				return err
			}
			defer conn.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Listing topics")
			_, ts, _ := conn.services()
			topics, err := ts.ListTopics(cmd.Context())
			if err != nil {
				return err
			}
			printTopics(out, topics)
			return nil
		},
	}
}

func newTopicsDeleteCmd(opts *globalOptions) *cobra.Command {
	var (
		prefix string
		run    bool
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete topics by name prefix (dry run unless --run)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connect(cmd, opts)
			if err != nil {
				return err
			}
			defer conn.Close()

			_, ts, _ := conn.services()
			res, err := ts.DeleteTopics(cmd.Context(), prefix, run)
			out := cmd.OutOrStdout()
			if err != nil {
				if res.Candidates == nil {
					return err
				}
				fmt.Fprintf(out, "Deleting topics: %s\n", quoteList(res.Candidates))
				fmt.Fprintf(out, "Failed to delete topics: %v\n", err)
				return err
			}
			if res.DryRun {
				fmt.Fprintf(out, "Dry run: %s\n", quoteList(res.Candidates))
				return nil
			}
			fmt.Fprintf(out, "Deleting topics: %s\n", quoteList(res.Candidates))
			for _, f := range res.Results.Failures() {
				fmt.Fprintf(out, "Unable to delete topic %s: %v\n", f.Name, f.Err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&prefix, "topic-name", "t", "", "Only topics whose name starts with this prefix")
	cmd.Flags().BoolVarP(&run, "run", "r", false, "Actually delete; without it only the candidates are printed")
	return cmd
}
