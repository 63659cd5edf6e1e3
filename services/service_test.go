package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"learnhub/models"
	"learnhub/store"
)

// newTestStore gives each test a fresh file-backed store seeded with the
// default catalog (3 courses, 3 users).
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "lp_data.json"))
}

// buildCourseTree creates a course with two modules, four lessons split
// between them, a course-level quiz and a module-level quiz, each quiz
// with one question carrying one choice. Returns the created ids.
type courseTree struct {
	course    models.Course
	modules   []models.Module
	lessons   []models.Lesson
	quizzes   []models.Quiz
	questions []models.Question
	choices   []models.Choice
}

func buildCourseTree(t *testing.T, s *store.Store) courseTree {
	t.Helper()
	is := NewInstructorService(s)

	var tree courseTree
	var err error

	tree.course, err = is.CreateCourse(2, CourseInput{
		Title:       "Go from scratch",
		Description: "Slices, maps, goroutines",
		Category:    "Backend",
		Level:       models.LevelBasic,
		Duration:    300,
		Status:      models.StatusPublished,
	})
	require.NoError(t, err)

	for i, title := range []string{"Basics", "Concurrency"} {
		m, err := is.CreateModule(tree.course.ID, title, i+1)
		require.NoError(t, err)
		tree.modules = append(tree.modules, m)
	}

	lessonRows := []struct {
		module  int
		title   string
		content LessonContent
	}{
		{0, "Hello world", TextContent{Body: "package main"}},
		{0, "Variables", VideoContent{URL: "https://videos.example.com/vars"}},
		{1, "Goroutines", TextContent{Body: "go func() {}"}},
		{1, "Channels", VideoContent{URL: "https://videos.example.com/chans"}},
	}
	for i, row := range lessonRows {
		l, err := is.CreateLesson(tree.modules[row.module].ID, row.title, i+1, row.content)
		require.NoError(t, err)
		tree.lessons = append(tree.lessons, l)
	}

	courseQuiz, err := is.CreateQuiz(CourseOwner(tree.course.ID), "Final quiz", "Everything at once")
	require.NoError(t, err)
	moduleQuiz, err := is.CreateQuiz(ModuleOwner(tree.modules[0].ID), "Basics quiz", "")
	require.NoError(t, err)
	tree.quizzes = []models.Quiz{courseQuiz, moduleQuiz}

	for _, quiz := range tree.quizzes {
		q, err := is.CreateQuestion(quiz.ID, "What does := do?", 1)
		require.NoError(t, err)
		tree.questions = append(tree.questions, q)

		ch, err := is.CreateChoice(q.ID, "Declares and assigns", true)
		require.NoError(t, err)
		tree.choices = append(tree.choices, ch)
	}

	return tree
}
