package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

func addGrades(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:     "grades",
		Aliases: []string{"g"},
		Short:   "List and edit grades.",
	}

	params := models.QueryParameters{}
	list := &cobra.Command{
		Use:   "list",
		Short: "List grades with the overall average.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			page, summary := app.Grades.List(cmd.Context(), params)
			printGrades(cmd.OutOrStdout(), page, summary)
			return nil
		},
	}
	addListFlags(list, &params)

	toggle := &cobra.Command{
		Use:   "toggle ID",
		Short: "Flip a course's completed flag.",
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
			g, err := app.Grades.ToggleComplete(cmd.Context(), id)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", check(g.Completed), g.Course)
			return nil
		},
	}

	set := &cobra.Command{
		Use:     "set ID VALUE",
		Short:   "Set a grade; progress moves halfway towards it.",
		Example: "scoutctl grades set 2 90",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			value, err := strconv.Atoi(args[1])
			if err != nil {
				return appErrors.Validation(map[string]string{"grade": "Grade must be a number between 0 and 100."})
			}
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			g, err := app.Grades.UpdateGrade(cmd.Context(), id, models.GradeUpdateRequest{Grade: &value})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s grade %d, progress %d%%\n", g.Course, g.Grade, g.Progress)
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Reset progress and completion on every course.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			prompt := app.Grades.ResetProgress(cmd.Context(), false).Message
			if !e.confirm(cmd, prompt) {
				return aborted(cmd)
			}
			printResult(cmd.OutOrStdout(), app.Grades.ResetProgress(cmd.Context(), true))
			return nil
		},
	}

	cmd.AddCommand(list, toggle, set, reset)
	topLevel.AddCommand(cmd)
}
