package dto

// StudentDashboard aggregates progress across the courses a student is enrolled in.
type StudentDashboard struct {
	Summary            StudentSummary      `json:"summary"`
	Courses            []CourseProgress    `json:"courses"`
	PendingAssignments []PendingAssignment `json:"pending_assignments"`
}

// StudentSummary captures the headline statistics for a student.
type StudentSummary struct {
	EnrolledCourses    int `json:"enrolled_courses"`
	CompletedLessons   int `json:"completed_lessons"`
	TotalLessons       int `json:"total_lessons"`
	PendingAssignments int `json:"pending_assignments"`
	AverageGrade       int `json:"average_grade"`
	OverallProgress    int `json:"overall_progress"`
}

// CourseProgress describes completion of one enrolled course.
type CourseProgress struct {
	CourseID         string `json:"course_id"`
	Title            string `json:"title"`
	InstructorName   string `json:"instructor_name"`
	CompletedLessons int    `json:"completed_lessons"`
	TotalLessons     int    `json:"total_lessons"`
	Progress         int    `json:"progress"`
}

// PendingAssignment is an unsubmitted assignment annotated with its course and lesson.
type PendingAssignment struct {
	AssignmentID string `json:"assignment_id"`
	Title        string `json:"title"`
	CourseID     string `json:"course_id"`
	CourseTitle  string `json:"course_title"`
	LessonID     string `json:"lesson_id"`
	LessonTitle  string `json:"lesson_title"`
	DueDate      string `json:"due_date"`
	Points       int    `json:"points"`
	Status       string `json:"status"`
	StatusLabel  string `json:"status_label"`
}

// EducatorDashboard aggregates statistics over the courses an educator owns.
type EducatorDashboard struct {
	Summary           EducatorSummary      `json:"summary"`
	Courses           []EducatorCourse     `json:"courses"`
	RecentEnrollments []EnrollmentActivity `json:"recent_enrollments"`
}

// EducatorSummary captures the headline statistics for an educator.
type EducatorSummary struct {
	TotalCourses     int `json:"total_courses"`
	TotalStudents    int `json:"total_students"`
	TotalAssignments int `json:"total_assignments"`
}

// EducatorCourse is one owned course with its counters.
type EducatorCourse struct {
	CourseID        string  `json:"course_id"`
	Title           string  `json:"title"`
	Category        string  `json:"category"`
	Students        int     `json:"students"`
	LessonCount     int     `json:"lesson_count"`
	AssignmentCount int     `json:"assignment_count"`
	Rating          float64 `json:"rating"`
}

// EnrollmentActivity reports how many students joined a course.
type EnrollmentActivity struct {
	CourseID    string `json:"course_id"`
	CourseTitle string `json:"course_title"`
	Count       int    `json:"count"`
}

// DashboardResponse wraps whichever dashboard matches the caller's role.
type DashboardResponse struct {
	Role     string             `json:"role"`
	Student  *StudentDashboard  `json:"student,omitempty"`
	Educator *EducatorDashboard `json:"educator,omitempty"`
}
