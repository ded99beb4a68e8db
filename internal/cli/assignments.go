package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

func addListFlags(cmd *cobra.Command, params *models.QueryParameters) {
	cmd.Flags().StringVarP(&params.Search, "search", "s", "", "filter by text")
	cmd.Flags().StringVar(&params.Sort, "sort", "", "sort key")
	cmd.Flags().IntVarP(&params.Page, "page", "p", 1, "page number")
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid id %q", raw))
	}
	return id, nil
}

func addAssignments(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:     "assignments",
		Aliases: []string{"a"},
		Short:   "List and update assignments.",
	}

	params := models.QueryParameters{}
	list := &cobra.Command{
		Use:   "list",
		Short: "List assignments.",
		Example: `
scoutctl assignments list --sort due-desc
scoutctl assignments list --search react
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			printAssignments(cmd.OutOrStdout(), app.Assignments.List(cmd.Context(), params))
			return nil
		},
	}
	addListFlags(list, &params)

	toggle := &cobra.Command{
		Use:   "toggle ID",
		Short: "Flip an assignment between Pending and Completed.",
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
			a, err := app.Assignments.ToggleComplete(cmd.Context(), id)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now %s\n", check(a.Completed), a.Title, a.Status)
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Mark every assignment as pending.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			prompt := app.Assignments.ResetAll(cmd.Context(), false).Message
			if !e.confirm(cmd, prompt) {
				return aborted(cmd)
			}
			printResult(cmd.OutOrStdout(), app.Assignments.ResetAll(cmd.Context(), true))
			return nil
		},
	}

	cmd.AddCommand(list, toggle, reset)
	topLevel.AddCommand(cmd)
}
