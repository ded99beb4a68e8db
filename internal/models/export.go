package models

// ExportFormat is the file type of a screen export.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

// ExportScreen names an exportable dashboard screen.
type ExportScreen string

const (
	ExportAssignments ExportScreen = "assignments"
	ExportGrades      ExportScreen = "grades"
	ExportMessages    ExportScreen = "messages"
)
