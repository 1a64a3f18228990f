package service

import (
	"time"

	"github.com/noah-isme/edumanage-api/internal/models"
)

const seedPassword = "password123"

func intPtr(value int) *int {
	return &value
}

// defaultUsers returns the first-run accounts with plaintext secrets.
func defaultUsers(now time.Time) []models.User {
	return []models.User{
		{ID: "user_1", Name: "John Smith", Email: "john@example.com", Password: seedPassword, Role: models.RoleEducator, CreatedAt: now},
		{ID: "user_2", Name: "Sarah Johnson", Email: "sarah@example.com", Password: seedPassword, Role: models.RoleStudent, CreatedAt: now},
	}
}

// defaultCourses returns the first-run catalog.
func defaultCourses(now time.Time) []models.Course {
	return []models.Course{
		{
			ID:             "course_1",
			Title:          "Complete JavaScript Masterclass",
			Category:       "programming",
			Description:    "Learn JavaScript from scratch to advanced concepts. This comprehensive course covers everything from variables and functions to async programming and ES6+ features.",
			InstructorID:   "user_1",
			InstructorName: "John Smith",
			Duration:       40,
			Students:       1250,
			Rating:         4.8,
			Enrolled:       []string{"user_2"},
			Lessons: []models.Lesson{
				{
					ID:          "lesson_1",
					Title:       "Introduction to JavaScript",
					Description: "Learn what JavaScript is and why it is important for web development.",
					Type:        models.LessonTypeVideo,
					Duration:    15,
					Completed:   true,
					Resources: []models.Resource{
						{Name: "Course Slides", Type: "pdf"},
						{Name: "Practice Files", Type: "zip"},
					},
					Assignment: &models.Assignment{
						ID:          "assign_1",
						Title:       "Hello World Program",
						Description: `Write your first JavaScript program that prints "Hello, World!" to the console.`,
						DueDate:     models.NewDate(2024, time.March, 15),
						Points:      10,
						Submitted:   true,
						Grade:       intPtr(10),
					},
				},
				{
					ID:          "lesson_2",
					Title:       "Variables and Data Types",
					Description: "Understand variables, constants, and different data types in JavaScript.",
					Type:        models.LessonTypeVideo,
					Duration:    25,
					Completed:   true,
					Resources:   []models.Resource{{Name: "Cheat Sheet", Type: "pdf"}},
					Assignment: &models.Assignment{
						ID:          "assign_2",
						Title:       "Data Types Practice",
						Description: "Create variables of different data types and log their types.",
						DueDate:     models.NewDate(2024, time.March, 20),
						Points:      15,
						Submitted:   true,
						Grade:       intPtr(14),
					},
				},
				{
					ID:          "lesson_3",
					Title:       "Functions and Scope",
					Description: "Master functions, arrow functions, and understand variable scope.",
					Type:        models.LessonTypeVideo,
					Duration:    30,
					Resources:   []models.Resource{},
				},
			},
			CreatedAt: now,
		},
		{
			ID:             "course_2",
			Title:          "UI/UX Design Fundamentals",
			Category:       "design",
			Description:    "Master the principles of user interface and user experience design. Learn to create beautiful, intuitive designs that users love.",
			InstructorID:   "user_1",
			InstructorName: "John Smith",
			Duration:       35,
			Students:       890,
			Rating:         4.9,
			Enrolled:       []string{},
			Lessons: []models.Lesson{
				{ID: "lesson_4", Title: "Introduction to UI Design", Description: "Learn the basics of user interface design and its importance.", Type: models.LessonTypeVideo, Duration: 20, Resources: []models.Resource{}},
				{ID: "lesson_5", Title: "Color Theory", Description: "Understand color psychology and how to create harmonious color palettes.", Type: models.LessonTypeVideo, Duration: 25, Resources: []models.Resource{}},
			},
			CreatedAt: now,
		},
		{
			ID:             "course_3",
			Title:          "Business Strategy & Management",
			Category:       "business",
			Description:    "Learn essential business strategies and management skills to succeed in today competitive environment.",
			InstructorID:   "user_1",
			InstructorName: "John Smith",
			Duration:       30,
			Students:       650,
			Rating:         4.6,
			Enrolled:       []string{},
			Lessons: []models.Lesson{
				{ID: "lesson_6", Title: "Business Fundamentals", Description: "Learn the core concepts of business management.", Type: models.LessonTypeVideo, Duration: 30, Resources: []models.Resource{}},
			},
			CreatedAt: now,
		},
		{
			ID:             "course_4",
			Title:          "Data Science with Python",
			Category:       "science",
			Description:    "Dive into data science using Python. Learn data analysis, visualization, and machine learning fundamentals.",
			InstructorID:   "user_1",
			InstructorName: "John Smith",
			Duration:       50,
			Students:       1100,
			Rating:         4.7,
			Enrolled:       []string{},
			Lessons: []models.Lesson{
				{ID: "lesson_7", Title: "Python for Data Science", Description: "Introduction to Python libraries for data science.", Type: models.LessonTypeVideo, Duration: 35, Resources: []models.Resource{}},
			},
			CreatedAt: now,
		},
	}
}
