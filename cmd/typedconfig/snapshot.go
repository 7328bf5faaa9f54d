package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/typedconfig/pkg/typedconfig/snapshot"
)

func newSnapshotCmd(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record and inspect configuration snapshots",
		Long: `Snapshots store every configuration key with its type intact, so a
later "get --snapshot ID" answers exactly as the live configuration did.`,
	}

	cmd.AddCommand(newSnapshotSaveCmd(global))
	cmd.AddCommand(newSnapshotListCmd(global))
	cmd.AddCommand(newSnapshotShowCmd(global))
	cmd.AddCommand(newSnapshotDeleteCmd(global))
	return cmd
}

func newSnapshotSaveCmd(global *globalOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Capture the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(snapshotSaveRequest{Name: name}); err != nil {
				return formatValidationError(err)
			}

			logger := global.logger(cmd)
			src, err := global.openSource(logger)
			if err != nil {
				return err
			}

			manager, closeStore, err := global.openSnapshots(logger)
			if err != nil {
				return err
			}
			defer closeStore()

			snap := snapshot.Capture(name, src)
			if err := manager.Save(cmd.Context(), snap); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), snap.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "default", "Snapshot name")
	return cmd
}

func newSnapshotListCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored snapshots, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, closeStore, err := global.openSnapshots(global.logger(cmd))
			if err != nil {
				return err
			}
			defer closeStore()

			infos, err := manager.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSEQ\tCREATED\tSIZE")
			for _, info := range infos {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\n",
					info.ID, info.Name, info.Sequence, info.Timestamp.Format(time.RFC3339), info.Size)
			}
			return w.Flush()
		},
	}
}

func newSnapshotShowCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print every value of a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd, global, global.logger(cmd), args[0])
			if err != nil {
				return err
			}
			snap := store.(*snapshot.Snapshot)
			return printValue(cmd.OutOrStdout(), snap.Values)
		},
	}
}

func newSnapshotDeleteCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Remove a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(snapshotRequest{ID: args[0]}); err != nil {
				return formatValidationError(err)
			}

			manager, closeStore, err := global.openSnapshots(global.logger(cmd))
			if err != nil {
				return err
			}
			defer closeStore()

			return manager.Delete(cmd.Context(), args[0])
		},
	}
}
