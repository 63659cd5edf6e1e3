package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/models"
)

func TestListCoursesPagination(t *testing.T) {
	s := newTestStore(t)
	is := NewInstructorService(s)
	cs := NewCatalogService(s)

	// 3 seeded courses + 10 = 13, page size 6
	for i := 0; i < 10; i++ {
		_, err := is.CreateCourse(2, CourseInput{
			Title:    fmt.Sprintf("Filler course %02d", i),
			Category: "Backend",
			Level:    models.LevelBasic,
			Duration: 60,
			Status:   models.StatusPublished,
		})
		require.NoError(t, err)
	}

	page1, err := cs.ListCourses(CourseListParams{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 13, page1.Count)
	assert.Len(t, page1.Results, 6)
	assert.Nil(t, page1.Previous)
	require.NotNil(t, page1.Next)
	assert.Equal(t, "2", *page1.Next)

	page3, err := cs.ListCourses(CourseListParams{Page: 3})
	require.NoError(t, err)
	assert.Len(t, page3.Results, 1)
	assert.Nil(t, page3.Next)
	require.NotNil(t, page3.Previous)
	assert.Equal(t, "2", *page3.Previous)

	page4, err := cs.ListCourses(CourseListParams{Page: 4})
	require.NoError(t, err)
	assert.Empty(t, page4.Results)
	assert.Equal(t, 13, page4.Count)
}

func TestListCoursesSearchIsCaseInsensitive(t *testing.T) {
	cs := NewCatalogService(newTestStore(t))

	page, err := cs.ListCourses(CourseListParams{Search: "REACT"})
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Introduction to React", page.Results[0].Title)

	// also matches inside descriptions
	page, err = cs.ListCourses(CourseListParams{Search: "cypress"})
	require.NoError(t, err)
	assert.Len(t, page.Results, 1)
}

func TestListCoursesFilters(t *testing.T) {
	cs := NewCatalogService(newTestStore(t))

	page, err := cs.ListCourses(CourseListParams{Category: "Testing"})
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Testing", page.Results[0].Category)

	page, err = cs.ListCourses(CourseListParams{Level: models.LevelIntermediate})
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, models.LevelIntermediate, page.Results[0].Level)

	page, err = cs.ListCourses(CourseListParams{Category: "Testing", Level: models.LevelBasic})
	require.NoError(t, err)
	assert.Empty(t, page.Results)
	assert.Equal(t, 0, page.Count)
}

func TestListCoursesOrdering(t *testing.T) {
	s := newTestStore(t)
	cs := NewCatalogService(s)

	asc, err := cs.ListCourses(CourseListParams{Ordering: "duration"})
	require.NoError(t, err)
	require.Len(t, asc.Results, 3)
	assert.Equal(t, 150, asc.Results[0].Duration)
	assert.Equal(t, 240, asc.Results[2].Duration)

	desc, err := cs.ListCourses(CourseListParams{Ordering: "-duration"})
	require.NoError(t, err)
	assert.Equal(t, 240, desc.Results[0].Duration)
	assert.Equal(t, 150, desc.Results[2].Duration)

	byTitle, err := cs.ListCourses(CourseListParams{Ordering: "title"})
	require.NoError(t, err)
	assert.Equal(t, "End-to-end testing with Cypress", byTitle.Results[0].Title)

	// every scalar course field orders, image reference included
	byImage, err := cs.ListCourses(CourseListParams{Ordering: "imageUrl"})
	require.NoError(t, err)
	assert.Equal(t, "End-to-end testing with Cypress", byImage.Results[0].Title)

	created, err := NewInstructorService(s).CreateCourse(7, CourseInput{
		Title:    "Kubernetes operators",
		Category: "DevOps",
		Level:    models.LevelAdvanced,
		Duration: 200,
		Status:   models.StatusDraft,
	})
	require.NoError(t, err)

	byInstructor, err := cs.ListCourses(CourseListParams{Ordering: "-instructor"})
	require.NoError(t, err)
	require.Len(t, byInstructor.Results, 4)
	assert.Equal(t, created.ID, byInstructor.Results[0].ID)
}

func TestGetCourse(t *testing.T) {
	cs := NewCatalogService(newTestStore(t))

	course, err := cs.GetCourse(101)
	require.NoError(t, err)
	assert.Equal(t, "Introduction to React", course.Title)

	_, err = cs.GetCourse(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogListLessonsResolvesThroughModules(t *testing.T) {
	s := newTestStore(t)
	tree := buildCourseTree(t, s)
	cs := NewCatalogService(s)
	es := NewEnrollmentService(s)

	_, err := es.Enroll(1, tree.course.ID)
	require.NoError(t, err)
	alice := Viewer{ID: 1}

	lessons, err := cs.ListLessons(alice, tree.course.ID, 0)
	require.NoError(t, err)
	assert.Len(t, lessons, 4)

	scoped, err := cs.ListLessons(alice, tree.course.ID, tree.modules[1].ID)
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	for _, l := range scoped {
		assert.Equal(t, tree.modules[1].ID, l.ModuleID)
	}
}
