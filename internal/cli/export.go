package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	"github.com/noah-isme/syntaxscout-api/internal/service"
)

func addExport(topLevel *cobra.Command, e *env) {
	var (
		params models.QueryParameters
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:       "export SCREEN",
		Short:     "Export assignments, grades or messages to CSV or PDF.",
		Example:   "scoutctl export messages --filter unread --format pdf -o inbox.pdf",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(models.ExportAssignments), string(models.ExportGrades), string(models.ExportMessages)},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := service.ParseExportFormat(format)
			if err != nil {
				return err
			}
			app, err := e.container(cmd)
			if err != nil {
				return err
			}
			file, err := app.Export.Export(cmd.Context(), models.ExportScreen(args[0]), f, params)
			if err != nil {
				return err
			}
			path := output
			if path == "" {
				path = file.Filename
			}
			if err := os.WriteFile(path, file.Body, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			abs, _ := filepath.Abs(path)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d rows written to %s\n", green("✔"), file.Rows, abs)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "csv or pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (default <screen>_export.<format>)")
	cmd.Flags().StringVarP(&params.Search, "search", "s", "", "filter by text")
	cmd.Flags().StringVar(&params.Sort, "sort", "", "sort key")
	cmd.Flags().StringVarP(&params.Filter, "filter", "f", "", "message filter")

	topLevel.AddCommand(cmd)
}
