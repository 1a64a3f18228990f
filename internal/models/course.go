package models

import "time"

// LessonTypeVideo is the only lesson type produced by the seed catalog.
const LessonTypeVideo = "video"

// Resource is a downloadable attachment listed on a lesson.
type Resource struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Lesson is a single step in a course curriculum.
//
// Completed is stored on the course's copy of the lesson and is therefore
// shared by every student enrolled in the course.
type Lesson struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Duration    int         `json:"duration"`
	Completed   bool        `json:"completed"`
	Resources   []Resource  `json:"resources"`
	Assignment  *Assignment `json:"assignment"`
}

// HasAssignment reports whether the lesson carries an assignment.
func (l Lesson) HasAssignment() bool {
	return l.Assignment != nil
}

// Course is a catalog entry with its enrolled students and lessons.
type Course struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	InstructorID   string    `json:"instructorId"`
	InstructorName string    `json:"instructorName"`
	Duration       int       `json:"duration"`
	Students       int       `json:"students"`
	Rating         float64   `json:"rating"`
	Enrolled       []string  `json:"enrolled"`
	Lessons        []Lesson  `json:"lessons"`
	CreatedAt      time.Time `json:"createdAt"`
}

// IsEnrolled reports whether userID appears in the enrolled sequence.
func (c Course) IsEnrolled(userID string) bool {
	for _, id := range c.Enrolled {
		if id == userID {
			return true
		}
	}
	return false
}

// LessonIndex returns the position of lessonID in the curriculum or -1.
func (c Course) LessonIndex(lessonID string) int {
	for i, lesson := range c.Lessons {
		if lesson.ID == lessonID {
			return i
		}
	}
	return -1
}

// CompletedLessons counts lessons whose completed flag is set.
func (c Course) CompletedLessons() int {
	count := 0
	for _, lesson := range c.Lessons {
		if lesson.Completed {
			count++
		}
	}
	return count
}

// AssignmentCount counts lessons that carry an assignment.
func (c Course) AssignmentCount() int {
	count := 0
	for _, lesson := range c.Lessons {
		if lesson.HasAssignment() {
			count++
		}
	}
	return count
}

// Progress returns the rounded completion percentage, 0 for an empty curriculum.
func (c Course) Progress() int {
	return Percent(c.CompletedLessons(), len(c.Lessons))
}
