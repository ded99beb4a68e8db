package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func addKV(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "kv",
		Short: "Inspect the raw key-value store.",
	}

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored keys.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			keys, err := app.Store.Keys(cmd.Context())
			if err != nil {
				return err
			}
			sort.Strings(keys)
			for _, k := range keys {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}

	get := &cobra.Command{
		Use:   "get KEY",
		Short: "Print a stored value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			raw, err := app.Store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			var pretty bytes.Buffer
			if json.Indent(&pretty, raw, "", "  ") != nil {
				pretty.Reset()
				pretty.Write(raw)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm KEY",
		Short: "Delete a stored value. The screen reseeds it on next read.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			if !e.confirm(cmd, fmt.Sprintf("Delete %q?", args[0])) {
				return aborted(cmd)
			}
			if err := app.Store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s removed %s\n", green("✔"), args[0])
			return nil
		},
	}

	cmd.AddCommand(list, get, rm)
	topLevel.AddCommand(cmd)
}
