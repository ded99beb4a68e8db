package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noah-isme/syntaxscout-api/internal/models"
)

func addMessages(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:     "messages",
		Aliases: []string{"m", "inbox"},
		Short:   "Read and clean up the inbox.",
	}

	params := models.QueryParameters{}
	list := &cobra.Command{
		Use:     "list",
		Short:   "List messages.",
		Example: "scoutctl messages list --filter unread --sort sender-asc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			page, unread, err := app.Messages.List(cmd.Context(), params)
			if err != nil {
				return err
			}
			printMessages(cmd.OutOrStdout(), page, unread)
			return nil
		},
	}
	addListFlags(list, &params)
	list.Flags().StringVarP(&params.Filter, "filter", "f", "", "all, read or unread")

	toggle := &cobra.Command{
		Use:   "toggle ID",
		Short: "Flip a message between read and unread.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			m, err := app.Messages.ToggleRead(cmd.Context(), id)
			if err != nil {
				return err
			}
			state := "unread"
			if m.Read {
				state = "read"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %q marked %s\n", check(m.Read), m.Subject, state)
			return nil
		},
	}

	del := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a message.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			pending, err := app.Messages.Delete(cmd.Context(), id, false)
			if err != nil {
				return err
			}
			if !e.confirm(cmd, pending.Message) {
				return aborted(cmd)
			}
			result, err := app.Messages.Delete(cmd.Context(), id, true)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	purge := &cobra.Command{
		Use:   "purge-read",
		Short: "Delete every read message.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			prompt := app.Messages.PurgeRead(cmd.Context(), false).Message
			if !e.confirm(cmd, prompt) {
				return aborted(cmd)
			}
			printResult(cmd.OutOrStdout(), app.Messages.PurgeRead(cmd.Context(), true))
			return nil
		},
	}

	cmd.AddCommand(list, toggle, del, purge)
	topLevel.AddCommand(cmd)
}
