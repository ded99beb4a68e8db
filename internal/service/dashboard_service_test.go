package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDashboardOverviewFromSeeds(t *testing.T) {
	cfg := testScreen()
	assignments := NewAssignmentService(newFakeKV(), nil, nil, cfg)
	grades := NewGradeService(newFakeKV(), nil, nil, nil, cfg)
	messages := NewMessageService(newFakeKV(), nil, nil, cfg)
	courses := NewCourseService(grades)

	svc := NewDashboardService(assignments, grades, messages, courses, nil)
	ov := svc.Overview(context.Background())

	assert.Equal(t, 4, ov.PendingAssignments)
	assert.Equal(t, 1, ov.CompletedAssignments)
	assert.Equal(t, 79, ov.AverageGrade)
	assert.Equal(t, 3, ov.UnreadMessages)
	assert.Equal(t, 5, ov.EnrolledCourses)
}
