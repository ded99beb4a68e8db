package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noah-isme/syntaxscout-api/internal/models"
)

func addCourses(topLevel *cobra.Command, e *env) {
	q := models.CourseQuery{}
	cmd := &cobra.Command{
		Use:     "courses",
		Aliases: []string{"c"},
		Short:   "Search the course catalog.",
		Example: `
scoutctl courses --category Design --sort priceAsc
scoutctl courses --search python --limit 3
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printCourses(out, app.Courses.List(q))
			_, _ = fmt.Fprintln(out, faint("categories: "+strings.Join(app.Courses.Categories(), ", ")))
			return nil
		},
	}
	cmd.Flags().StringVar(&q.Category, "category", "", "category name")
	cmd.Flags().StringVarP(&q.Search, "search", "s", "", "match title or description")
	cmd.Flags().StringVar(&q.Sort, "sort", "", "priceAsc, priceDesc or duration")
	cmd.Flags().IntVarP(&q.Limit, "limit", "n", 0, "maximum number of courses")

	topLevel.AddCommand(cmd)
}
