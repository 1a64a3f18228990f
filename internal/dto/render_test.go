package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edumanage-api/internal/models"
)

func TestAssignmentViewKeepsSubmissionAndRendersSafeHTML(t *testing.T) {
	model := models.Assignment{
		ID:             "assign_1",
		Title:          "Quiz",
		Points:         10,
		Submitted:      true,
		SubmissionText: `<em>done</em><script>alert(1)</script>`,
	}

	view := NewAssignmentView(model, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, model.SubmissionText, view.Submission)
	require.Contains(t, view.SubmissionHTML, "<em>done</em>")
	require.NotContains(t, view.SubmissionHTML, "<script>")
}

func TestCourseDetailRendersDescriptionWithoutTouchingModel(t *testing.T) {
	model := models.Course{ID: "course_1", Title: "Generics: List<T>", Description: `<b>Maps</b><img src=x onerror=alert(1)>`}

	detail := NewCourseDetail(model, "")
	require.Equal(t, "Generics: List<T>", detail.Title)
	require.Equal(t, model.Description, detail.Description)
	require.Contains(t, detail.DescriptionHTML, "<b>Maps</b>")
	require.NotContains(t, detail.DescriptionHTML, "onerror")
	require.NotNil(t, detail.Curriculum)
}
