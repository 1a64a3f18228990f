package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAssignmentStatus(t *testing.T) {
	due := NewDate(2024, time.March, 15)
	grade := 14

	cases := []struct {
		name       string
		assignment Assignment
		now        time.Time
		status     AssignmentStatus
		label      string
	}{
		{
			name:       "pending before the due date",
			assignment: Assignment{DueDate: due, Points: 15},
			now:        time.Date(2024, time.March, 14, 23, 0, 0, 0, time.UTC),
			status:     AssignmentNotSubmitted,
			label:      "Due: Mar 15, 2024",
		},
		{
			name:       "overdue once the due day starts",
			assignment: Assignment{DueDate: due, Points: 15},
			now:        time.Date(2024, time.March, 15, 0, 0, 1, 0, time.UTC),
			status:     AssignmentOverdue,
			label:      "Overdue",
		},
		{
			name:       "submitted without grade",
			assignment: Assignment{DueDate: due, Points: 15, Submitted: true},
			now:        time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			status:     AssignmentSubmitted,
			label:      "Submitted",
		},
		{
			name:       "submitted with grade",
			assignment: Assignment{DueDate: due, Points: 15, Submitted: true, Grade: &grade},
			now:        time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			status:     AssignmentSubmitted,
			label:      "Submitted • Grade: 14/15",
		},
		{
			name:       "missing due date never goes overdue",
			assignment: Assignment{Points: 15},
			now:        time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			status:     AssignmentNotSubmitted,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.status, tc.assignment.Status(tc.now))
			if tc.label != "" {
				require.Equal(t, tc.label, tc.assignment.StatusLabel(tc.now))
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	payload, err := json.Marshal(Assignment{ID: "a1", DueDate: NewDate(2024, time.March, 20)})
	require.NoError(t, err)
	require.Contains(t, string(payload), `"dueDate":"2024-03-20"`)

	var decoded Assignment
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a1","dueDate":"2024-03-20T00:00:00.000Z"}`), &decoded))
	require.True(t, decoded.DueDate.Equal(NewDate(2024, time.March, 20).Time))

	require.Error(t, json.Unmarshal([]byte(`{"dueDate":"next week"}`), &decoded))
}

func TestPercentAndProgress(t *testing.T) {
	require.Equal(t, 0, Percent(3, 0))
	require.Equal(t, 33, Percent(1, 3))
	require.Equal(t, 67, Percent(2, 3))

	course := Course{Lessons: []Lesson{{ID: "l1", Completed: true}, {ID: "l2", Assignment: &Assignment{ID: "a"}}, {ID: "l3"}}}
	require.Equal(t, 33, course.Progress())
	require.Equal(t, 1, course.AssignmentCount())
	require.Equal(t, 1, course.LessonIndex("l2"))
	require.Equal(t, -1, course.LessonIndex("missing"))
	require.Equal(t, 0, Course{}.Progress())
}
