package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newKeysCmd(global *globalOptions) *cobra.Command {
	var snapshotID string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List every configuration key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd, global, global.logger(cmd), snapshotID)
			if err != nil {
				return err
			}
			src, ok := store.(source)
			if !ok {
				return fmt.Errorf("store %T cannot list keys", store)
			}
			for _, key := range src.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotID, "snapshot", "", "List keys of a stored snapshot")
	return cmd
}
