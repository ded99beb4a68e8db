package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/syntaxscout-api/internal/models"
	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

func newExportServiceForTest(t *testing.T, assignments []models.Assignment) *ExportService {
	t.Helper()
	cfg := testScreen()
	cfg.PageSize = 1
	return NewExportService(
		NewAssignmentService(seededKV(t, KeyAssignments, assignments), nil, nil, cfg),
		NewGradeService(newFakeKV(), nil, nil, nil, cfg),
		NewMessageService(newFakeKV(), nil, nil, cfg),
		nil, nil, nil,
	)
}

func TestExportCSVQuotesEveryField(t *testing.T) {
	svc := newExportServiceForTest(t, []models.Assignment{{ID: 1, Title: "A,B", Course: "X", Due: "2025-08-01", Status: models.AssignmentPending}})

	file, err := svc.Export(context.Background(), models.ExportAssignments, models.ExportCSV, models.QueryParameters{})
	require.NoError(t, err)
	assert.Equal(t, "assignments_export.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t,
		`"Title","Course","Due Date","Status","Completed","Last Updated"`+"\n"+
			`"A,B","X","2025-08-01","Pending","No",""`,
		string(file.Body))
}

func TestExportUsesFilteredUnpaginatedView(t *testing.T) {
	svc := newExportServiceForTest(t, nil)

	data, err := svc.Dataset(context.Background(), models.ExportMessages, models.QueryParameters{Filter: "unread"})
	require.NoError(t, err)
	assert.Len(t, data.Rows, 3, "page size must not truncate exports")

	grades, err := svc.Dataset(context.Background(), models.ExportGrades, models.QueryParameters{Search: "python"})
	require.NoError(t, err)
	require.Len(t, grades.Rows, 2)
	assert.Equal(t, "100%", grades.Rows[0]["Progress"])
	assert.Equal(t, "Yes", grades.Rows[0]["Completed"])
}

func TestExportPDFAndErrors(t *testing.T) {
	svc := newExportServiceForTest(t, nil)
	ctx := context.Background()

	file, err := svc.Export(ctx, models.ExportGrades, models.ExportPDF, models.QueryParameters{})
	require.NoError(t, err)
	assert.Equal(t, "grades_export.pdf", file.Filename)
	assert.Equal(t, "%PDF", string(file.Body[:4]))

	_, err = svc.Export(ctx, "attendance", models.ExportCSV, models.QueryParameters{})
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	_, err = ParseExportFormat("xlsx")
	require.Error(t, err)
	f, err := ParseExportFormat("")
	require.NoError(t, err)
	assert.Equal(t, models.ExportCSV, f)
}
