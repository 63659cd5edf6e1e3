package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/models"
)

func TestEnrollIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	es := NewEnrollmentService(s)

	first, err := es.Enroll(1, 101)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentActive, first.Status)
	assert.Equal(t, 0, first.Progress)

	second, err := es.Enroll(1, 101)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	enrollments, err := es.MyEnrollments(1)
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)
}

func TestEnrollUnknownCourse(t *testing.T) {
	es := NewEnrollmentService(newTestStore(t))

	_, err := es.Enroll(1, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgressFormula(t *testing.T) {
	s := newTestStore(t)
	tree := buildCourseTree(t, s)
	es := NewEnrollmentService(s)

	enrollment, err := es.Enroll(1, tree.course.ID)
	require.NoError(t, err)

	// 4 lessons in the course: one completion is 25%
	_, err = es.MarkLessonCompleted(1, tree.lessons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 25, enrollmentProgress(t, es, 1, enrollment.ID))

	_, err = es.MarkLessonCompleted(1, tree.lessons[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 50, enrollmentProgress(t, es, 1, enrollment.ID))

	// re-completing the same lesson must not double-count
	_, err = es.MarkLessonCompleted(1, tree.lessons[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 50, enrollmentProgress(t, es, 1, enrollment.ID))

	rows, err := es.LessonProgressByCourse(1, tree.course.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestMarkLessonCompletedFailures(t *testing.T) {
	s := newTestStore(t)
	tree := buildCourseTree(t, s)
	es := NewEnrollmentService(s)

	// lesson does not exist
	_, err := es.MarkLessonCompleted(1, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	// no active enrollment for the lesson's course
	_, err = es.MarkLessonCompleted(1, tree.lessons[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkLessonCompletedSetsTimestamp(t *testing.T) {
	s := newTestStore(t)
	tree := buildCourseTree(t, s)
	es := NewEnrollmentService(s)

	_, err := es.Enroll(1, tree.course.ID)
	require.NoError(t, err)

	progress, err := es.MarkLessonCompleted(1, tree.lessons[0].ID)
	require.NoError(t, err)
	assert.True(t, progress.Completed)
	require.NotNil(t, progress.CompletedAt)
	assert.NotEmpty(t, *progress.CompletedAt)
}

func enrollmentProgress(t *testing.T, es *EnrollmentService, userID, enrollmentID int) int {
	t.Helper()
	enrollments, err := es.MyEnrollments(userID)
	require.NoError(t, err)
	for _, e := range enrollments {
		if e.ID == enrollmentID {
			return e.Progress
		}
	}
	t.Fatalf("enrollment %d not found", enrollmentID)
	return 0
}

func TestEnrollmentGate(t *testing.T) {
	s := newTestStore(t)
	tree := buildCourseTree(t, s)
	cs := NewCatalogService(s)
	es := NewEnrollmentService(s)
	alice := Viewer{ID: 1}

	// without an active enrollment the gate fails with its own error,
	// not a generic NotFound
	_, err := cs.ListModules(alice, tree.course.ID)
	assert.ErrorIs(t, err, ErrNotEnrolled)

	_, err = cs.ListLessons(alice, tree.course.ID, 0)
	assert.ErrorIs(t, err, ErrNotEnrolled)

	// unknown course is NotFound, not NotEnrolled
	_, err = cs.ListModules(alice, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = es.Enroll(1, tree.course.ID)
	require.NoError(t, err)

	mods, err := cs.ListModules(alice, tree.course.ID)
	require.NoError(t, err)
	require.Len(t, mods, 2)
	// ordered ascending by the order field
	assert.Equal(t, "Basics", mods[0].Title)
	assert.Equal(t, "Concurrency", mods[1].Title)

	lessons, err := cs.ListLessons(alice, tree.course.ID, tree.modules[0].ID)
	require.NoError(t, err)
	assert.Len(t, lessons, 2)
}

func TestQuizQueries(t *testing.T) {
	s := newTestStore(t)
	tree := buildCourseTree(t, s)
	cs := NewContentService(s)

	// both the course-level and the module-level quiz belong to the course
	quizzes, err := cs.GetQuizzes(tree.course.ID, 0)
	require.NoError(t, err)
	assert.Len(t, quizzes, 2)

	moduleQuizzes, err := cs.GetQuizzes(tree.course.ID, tree.modules[0].ID)
	require.NoError(t, err)
	require.Len(t, moduleQuizzes, 1)
	assert.Equal(t, "Basics quiz", moduleQuizzes[0].Title)

	questions, err := cs.GetQuestions(tree.quizzes[0].ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)

	choices, err := cs.GetChoices(questions[0].ID)
	require.NoError(t, err)
	require.Len(t, choices, 1)
	assert.True(t, choices[0].IsCorrect)
}
