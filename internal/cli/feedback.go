package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noah-isme/syntaxscout-api/internal/models"
)

func addFeedback(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:     "feedback",
		Aliases: []string{"fb"},
		Short:   "Browse and add testimonials.",
	}

	params := models.QueryParameters{}
	list := &cobra.Command{
		Use:   "list",
		Short: "List testimonials, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			printFeedback(cmd.OutOrStdout(), app.Feedback.List(cmd.Context(), params))
			return nil
		},
	}
	addListFlags(list, &params)

	var (
		req    models.FeedbackRequest
		rating int
	)
	add := &cobra.Command{
		Use:     "add",
		Short:   "Add a testimonial.",
		Example: `scoutctl feedback add --name "Ada" --email ada@example.com --text "Great course" --rating 5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rating") {
				req.Rating = &rating
			}
			fb, err := app.Feedback.Submit(cmd.Context(), req)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s Thank you for your feedback! (#%d)\n", green("✔"), fb.ID)
			return nil
		},
	}
	add.Flags().StringVar(&req.Name, "name", "", "author name")
	add.Flags().StringVar(&req.Email, "email", "", "author email")
	add.Flags().StringVar(&req.Feedback, "text", "", "testimonial text")
	add.Flags().IntVar(&rating, "rating", 5, "rating from 1 to 5")

	cmd.AddCommand(list, add)
	topLevel.AddCommand(cmd)
}
