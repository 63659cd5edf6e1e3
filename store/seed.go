package store

import (
	"golang.org/x/crypto/bcrypt"

	"learnhub/models"
)

// demo accounts get this password until they change it
const seedPassword = "changeme123"

func defaultSnapshot() *Snapshot {
	return &Snapshot{
		Users:          seedUsers(),
		Courses:        seedCourses(),
		Modules:        []models.Module{},
		Lessons:        []models.Lesson{},
		Quizzes:        []models.Quiz{},
		Questions:      []models.Question{},
		Choices:        []models.Choice{},
		Comments:       []models.Comment{},
		Ratings:        []models.CourseRating{},
		Enrollments:    []models.Enrollment{},
		LessonProgress: []models.LessonProgress{},
	}
}

func seedUsers() []models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		hash = []byte{}
	}

	return []models.User{
		{Base: models.Base{ID: 1}, Username: "alice", Email: "alice@example.com", PasswordHash: string(hash), Role: models.RoleStudent},
		{Base: models.Base{ID: 2}, Username: "bob", Email: "bob@example.com", PasswordHash: string(hash), Role: models.RoleInstructor},
		{Base: models.Base{ID: 3}, Username: "admin", Email: "admin@example.com", PasswordHash: string(hash), Role: models.RoleAdmin},
	}
}

func seedCourses() []models.Course {
	return []models.Course{
		{
			Base:        models.Base{ID: 101},
			Title:       "Introduction to React",
			Description: "Learn the fundamentals of React: components, props, state and basic hooks.",
			Category:    "Web development",
			Level:       models.LevelBasic,
			Duration:    180,
			ImageURL:    "/images/courses/react-intro.png",
			Status:      models.StatusPublished,
			CreatedAt:   "2025-01-01T10:00:00Z",
			UpdatedAt:   "2025-01-05T12:00:00Z",
			Instructor:  2,
		},
		{
			Base:        models.Base{ID: 102},
			Title:       "Spring Boot for REST APIs",
			Description: "Build robust REST APIs with Spring Boot, validation, security and docs.",
			Category:    "Backend",
			Level:       models.LevelIntermediate,
			Duration:    240,
			ImageURL:    "/images/courses/spring-boot-rest.png",
			Status:      models.StatusPublished,
			CreatedAt:   "2025-01-02T09:00:00Z",
			UpdatedAt:   "2025-01-06T16:30:00Z",
			Instructor:  2,
		},
		{
			Base:        models.Base{ID: 103},
			Title:       "End-to-end testing with Cypress",
			Description: "Automate E2E tests for your web applications using Cypress.",
			Category:    "Testing",
			Level:       models.LevelAdvanced,
			Duration:    150,
			ImageURL:    "/images/courses/cypress-e2e.png",
			Status:      models.StatusDraft,
			CreatedAt:   "2025-01-03T11:15:00Z",
			UpdatedAt:   "2025-01-04T14:45:00Z",
			Instructor:  2,
		},
	}
}
