package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingSummary(t *testing.T) {
	s := newTestStore(t)
	fs := NewFeedbackService(s)
	as := NewAuthService(s)

	// no ratings yet: null average, zero count
	summary, err := fs.RatingSummary(101)
	require.NoError(t, err)
	assert.Nil(t, summary.AvgRating)
	assert.Equal(t, 0, summary.RatingsCount)

	raters := []int{1, 2}
	for i, rating := range []int{3, 4} {
		_, err := fs.RateCourse(raters[i], 101, rating)
		require.NoError(t, err)
	}
	u, err := as.Register("carol", "carol@example.com", "pw123456", "")
	require.NoError(t, err)
	_, err = fs.RateCourse(u.ID, 101, 5)
	require.NoError(t, err)

	summary, err = fs.RatingSummary(101)
	require.NoError(t, err)
	require.NotNil(t, summary.AvgRating)
	assert.Equal(t, 4.0, *summary.AvgRating)
	assert.Equal(t, 3, summary.RatingsCount)
}

func TestRateCourseReplacesPreviousRating(t *testing.T) {
	fs := NewFeedbackService(newTestStore(t))

	first, err := fs.RateCourse(1, 101, 2)
	require.NoError(t, err)

	second, err := fs.RateCourse(1, 101, 5)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	summary, err := fs.RatingSummary(101)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.RatingsCount)
	require.NotNil(t, summary.AvgRating)
	assert.Equal(t, 5.0, *summary.AvgRating)
}

func TestRateCourseValidation(t *testing.T) {
	fs := NewFeedbackService(newTestStore(t))

	_, err := fs.RateCourse(1, 101, 0)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = fs.RateCourse(1, 101, 6)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = fs.RateCourse(1, 9999, 4)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCommentNeedsTarget(t *testing.T) {
	fs := NewFeedbackService(newTestStore(t))

	_, err := fs.CreateComment(1, nil, nil, "floating comment")
	assert.ErrorIs(t, err, ErrInvalid)

	courseID := 101
	_, err = fs.CreateComment(1, &courseID, nil, "")
	assert.ErrorIs(t, err, ErrInvalid)

	comment, err := fs.CreateComment(1, &courseID, nil, "Great course")
	require.NoError(t, err)
	assert.NotEmpty(t, comment.CreatedAt)
}

func TestListCommentsFilters(t *testing.T) {
	s := newTestStore(t)
	tree := buildCourseTree(t, s)
	fs := NewFeedbackService(s)

	courseID := tree.course.ID
	lessonID := tree.lessons[0].ID
	otherCourse := 101

	_, err := fs.CreateComment(1, &courseID, nil, "on the course")
	require.NoError(t, err)
	_, err = fs.CreateComment(1, nil, &lessonID, "on a lesson")
	require.NoError(t, err)
	_, err = fs.CreateComment(2, &otherCourse, nil, "elsewhere")
	require.NoError(t, err)

	all, err := fs.ListComments(0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byCourse, err := fs.ListComments(courseID, 0)
	require.NoError(t, err)
	require.Len(t, byCourse, 1)
	assert.Equal(t, "on the course", byCourse[0].Text)

	byLesson, err := fs.ListComments(0, lessonID)
	require.NoError(t, err)
	require.Len(t, byLesson, 1)
	assert.Equal(t, "on a lesson", byLesson[0].Text)
}
