package remote

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/models"
	"learnhub/services"
)

var _ services.Provider = (*Client)(nil)

func TestListCoursesDecodesEnvelope(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/courses/courses/", r.URL.Path)
		gotQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"count":    13,
			"next":     "2",
			"previous": nil,
			"results": []models.Course{
				{Base: models.Base{ID: 101}, Title: "Introduction to React"},
			},
		})
	}))
	defer srv.Close()

	page, err := New(srv.URL).ListCourses(services.CourseListParams{
		Page:     1,
		Search:   "react",
		Category: "Web development",
		Level:    "basic",
		Ordering: "-duration",
	})
	require.NoError(t, err)

	assert.Equal(t, 13, page.Count)
	require.NotNil(t, page.Next)
	assert.Equal(t, "2", *page.Next)
	assert.Nil(t, page.Previous)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Introduction to React", page.Results[0].Title)

	// каждый параметр листинга уходит в query string
	assert.Equal(t, "1", gotQuery.Get("page"))
	assert.Equal(t, "react", gotQuery.Get("search"))
	assert.Equal(t, "Web development", gotQuery.Get("category"))
	assert.Equal(t, "basic", gotQuery.Get("level"))
	assert.Equal(t, "-duration", gotQuery.Get("ordering"))
}

func TestGetCourseMapsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/courses/courses/101/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Course{
			Base:  models.Base{ID: 101},
			Title: "Introduction to React",
		})
	}))
	defer srv.Close()

	client := New(srv.URL)

	course, err := client.GetCourse(101)
	require.NoError(t, err)
	assert.Equal(t, "Introduction to React", course.Title)

	_, err = client.GetCourse(9999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGatedReadsForwardTokenAndMapForbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer enrolled-token" {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/courses/student-modules/":
			assert.Equal(t, "101", r.URL.Query().Get("course_id"))
			_ = json.NewEncoder(w).Encode([]models.Module{
				{Base: models.Base{ID: 1}, CourseID: 101, Title: "Basics", Order: 1},
			})
		case "/api/courses/student-lessons/":
			assert.Equal(t, "101", r.URL.Query().Get("course_id"))
			assert.Equal(t, "1", r.URL.Query().Get("module_id"))
			_ = json.NewEncoder(w).Encode([]models.Lesson{
				{Base: models.Base{ID: 5}, ModuleID: 1, Title: "Hello world", Type: models.LessonText},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := New(srv.URL)
	enrolled := services.Viewer{ID: 1, Token: "enrolled-token"}

	mods, err := client.ListModules(enrolled, 101)
	require.NoError(t, err)
	require.Len(t, mods, 1)
	assert.Equal(t, "Basics", mods[0].Title)

	lessons, err := client.ListLessons(enrolled, 101, 1)
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, "Hello world", lessons[0].Title)

	// the upstream 403 comes back as the NotEnrolled sentinel
	stranger := services.Viewer{ID: 2, Token: "other-token"}
	_, err = client.ListModules(stranger, 101)
	assert.ErrorIs(t, err, services.ErrNotEnrolled)

	_, err = client.ListLessons(stranger, 101, 0)
	assert.ErrorIs(t, err, services.ErrNotEnrolled)
}
