package repository

import (
	"strings"

	"github.com/noah-isme/edumanage-api/internal/models"
)

// CourseCollection is the courses blob loaded into memory with an id index.
// Order is storage order and is preserved on persist.
type CourseCollection struct {
	items []models.Course
	index map[string]int
}

// NewCourseCollection indexes the given courses.
func NewCourseCollection(items []models.Course) *CourseCollection {
	c := &CourseCollection{items: items, index: make(map[string]int, len(items))}
	for i, course := range items {
		if _, exists := c.index[course.ID]; !exists {
			c.index[course.ID] = i
		}
	}
	return c
}

// All returns the courses in storage order.
func (c *CourseCollection) All() []models.Course {
	return c.items
}

// Len returns the number of courses.
func (c *CourseCollection) Len() int {
	return len(c.items)
}

// Get returns a copy of the course header. Lessons and enrolled slices are shared.
func (c *CourseCollection) Get(id string) (models.Course, bool) {
	ptr := c.Find(id)
	if ptr == nil {
		return models.Course{}, false
	}
	return *ptr, true
}

// Find returns a pointer into the collection for in-place mutation.
func (c *CourseCollection) Find(id string) *models.Course {
	i, ok := c.index[id]
	if !ok {
		return nil
	}
	return &c.items[i]
}

// Append adds a course at the end of the collection.
func (c *CourseCollection) Append(course models.Course) {
	c.items = append(c.items, course)
	if _, exists := c.index[course.ID]; !exists {
		c.index[course.ID] = len(c.items) - 1
	}
}

// UserCollection is the users blob loaded into memory with an id index.
type UserCollection struct {
	items []models.User
	index map[string]int
}

// NewUserCollection indexes the given users.
func NewUserCollection(items []models.User) *UserCollection {
	c := &UserCollection{items: items, index: make(map[string]int, len(items))}
	for i, user := range items {
		if _, exists := c.index[user.ID]; !exists {
			c.index[user.ID] = i
		}
	}
	return c
}

// All returns the users in storage order.
func (c *UserCollection) All() []models.User {
	return c.items
}

// Len returns the number of users.
func (c *UserCollection) Len() int {
	return len(c.items)
}

// Get looks a user up by identifier.
func (c *UserCollection) Get(id string) (models.User, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.User{}, false
	}
	return c.items[i], true
}

// FindByEmail returns the first user whose email matches exactly.
func (c *UserCollection) FindByEmail(email string) (models.User, bool) {
	for _, user := range c.items {
		if user.Email == email {
			return user, true
		}
	}
	return models.User{}, false
}

// Find returns the first user accepted by match.
func (c *UserCollection) Find(match func(models.User) bool) (models.User, bool) {
	for _, user := range c.items {
		if match(user) {
			return user, true
		}
	}
	return models.User{}, false
}

// Append adds a user at the end of the collection.
func (c *UserCollection) Append(user models.User) {
	c.items = append(c.items, user)
	if _, exists := c.index[user.ID]; !exists {
		c.index[user.ID] = len(c.items) - 1
	}
}

func normalizePrefix(prefix string) string {
	return strings.TrimSpace(prefix)
}
