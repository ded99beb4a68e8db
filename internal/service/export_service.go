package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
	"github.com/noah-isme/syntaxscout-api/pkg/export"
)

type assignmentFilterer interface {
	Filtered(ctx context.Context, params models.QueryParameters) []models.Assignment
}

type gradeFilterer interface {
	Filtered(ctx context.Context, params models.QueryParameters) []models.Grade
}

type messageFilterer interface {
	Filtered(ctx context.Context, params models.QueryParameters) ([]models.Message, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
	Rows        int
}

// ExportService renders the filtered, unpaginated view of a screen.
type ExportService struct {
	assignments assignmentFilterer
	grades      gradeFilterer
	messages    messageFilterer
	csv         csvRenderer
	pdf         pdfRenderer
	logger      *zap.Logger
}

// NewExportService constructs an ExportService. Nil renderers use the
// package defaults.
func NewExportService(assignments assignmentFilterer, grades gradeFilterer, messages messageFilterer, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		assignments: assignments,
		grades:      grades,
		messages:    messages,
		csv:         csv,
		pdf:         pdf,
		logger:      logger,
	}
}

// ParseExportFormat accepts csv, pdf or empty (csv).
func ParseExportFormat(raw string) (models.ExportFormat, error) {
	switch f := models.ExportFormat(raw); f {
	case "":
		return models.ExportCSV, nil
	case models.ExportCSV, models.ExportPDF:
		return f, nil
	}
	return "", appErrors.Validation(map[string]string{"format": "format must be csv or pdf"})
}

// Dataset builds the header row and records for screen.
func (s *ExportService) Dataset(ctx context.Context, screen models.ExportScreen, params models.QueryParameters) (export.Dataset, error) {
	switch screen {
	case models.ExportAssignments:
		return assignmentDataset(s.assignments.Filtered(ctx, params)), nil
	case models.ExportGrades:
		return gradeDataset(s.grades.Filtered(ctx, params)), nil
	case models.ExportMessages:
		items, err := s.messages.Filtered(ctx, params)
		if err != nil {
			return export.Dataset{}, err
		}
		return messageDataset(items), nil
	}
	return export.Dataset{}, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown export screen %q", screen))
}

// Export renders screen in format.
func (s *ExportService) Export(ctx context.Context, screen models.ExportScreen, format models.ExportFormat, params models.QueryParameters) (*ExportFile, error) {
	data, err := s.Dataset(ctx, screen, params)
	if err != nil {
		return nil, err
	}

	file := &ExportFile{Filename: fmt.Sprintf("%s_export.%s", screen, format), Rows: len(data.Rows)}
	switch format {
	case models.ExportPDF:
		file.ContentType = "application/pdf"
		file.Body, err = s.pdf.Render(data, exportTitle(screen))
	default:
		file.ContentType = "text/csv"
		file.Body, err = s.csv.Render(data)
	}
	if err != nil {
		s.logger.Error("export render failed", zap.String("screen", string(screen)), zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	s.logger.Sugar().Infow("export generated", "screen", screen, "format", format, "rows", file.Rows)
	return file, nil
}

func exportTitle(screen models.ExportScreen) string {
	switch screen {
	case models.ExportAssignments:
		return "Assignments"
	case models.ExportGrades:
		return "Grades"
	case models.ExportMessages:
		return "Messages"
	}
	return string(screen)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func assignmentDataset(items []models.Assignment) export.Dataset {
	data := export.Dataset{Headers: []string{"Title", "Course", "Due Date", "Status", "Completed", "Last Updated"}}
	for _, a := range items {
		data.Rows = append(data.Rows, map[string]string{
			"Title":        a.Title,
			"Course":       a.Course,
			"Due Date":     a.Due,
			"Status":       string(a.Status),
			"Completed":    yesNo(a.Completed),
			"Last Updated": a.Updated,
		})
	}
	return data
}

func gradeDataset(items []models.Grade) export.Dataset {
	data := export.Dataset{Headers: []string{"Course", "Grade", "Progress", "Completed", "Last Updated"}}
	for _, g := range items {
		data.Rows = append(data.Rows, map[string]string{
			"Course":       g.Course,
			"Grade":        strconv.Itoa(g.Grade),
			"Progress":     strconv.Itoa(g.Progress) + "%",
			"Completed":    yesNo(g.Completed),
			"Last Updated": g.Updated,
		})
	}
	return data
}

func messageDataset(items []models.Message) export.Dataset {
	data := export.Dataset{Headers: []string{"Sender", "Subject", "Body", "Read", "Date"}}
	for _, m := range items {
		data.Rows = append(data.Rows, map[string]string{
			"Sender":  m.Sender,
			"Subject": m.Subject,
			"Body":    m.Body,
			"Read":    yesNo(m.Read),
			"Date":    m.Date,
		})
	}
	return data
}
