package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noah-isme/syntaxscout-api/internal/tui/resetflow"
)

func addResetPassword(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Walk through the password reset flow interactively.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			done, err := resetflow.Run(cmd.Context(), app.NewResetFlow(0))
			if err != nil {
				return err
			}
			if done {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s password updated\n", green("✔"))
			}
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
