package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/syntaxscout-api/internal/models"
)

type assignmentReader interface {
	All(ctx context.Context) []models.Assignment
}

type messageReader interface {
	All(ctx context.Context) []models.Message
}

type enrolmentReader interface {
	Enrolled(ctx context.Context) []models.EnrolledCourse
}

// DashboardService composes the overview tile counts.
type DashboardService struct {
	assignments assignmentReader
	grades      gradeLister
	messages    messageReader
	courses     enrolmentReader
	logger      *zap.Logger
}

// NewDashboardService constructs the overview composer.
func NewDashboardService(assignments assignmentReader, grades gradeLister, messages messageReader, courses enrolmentReader, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		assignments: assignments,
		grades:      grades,
		messages:    messages,
		courses:     courses,
		logger:      logger,
	}
}

// Overview counts pending and completed assignments, unread messages and
// enrolled courses, and averages grades.
func (s *DashboardService) Overview(ctx context.Context) models.DashboardOverview {
	var out models.DashboardOverview
	for _, a := range s.assignments.All(ctx) {
		if a.Completed {
			out.CompletedAssignments++
		} else {
			out.PendingAssignments++
		}
	}
	out.AverageGrade = AverageGrade(s.grades.All(ctx))
	out.UnreadMessages = countUnread(s.messages.All(ctx))
	out.EnrolledCourses = len(s.courses.Enrolled(ctx))
	return out
}
