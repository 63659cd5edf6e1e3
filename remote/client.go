package remote

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"learnhub/models"
	"learnhub/services"
)

// Client implements services.Provider against the hosted REST API. It is
// the second variant of the catalog contract; the first reads the local
// snapshot store.
type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second),
	}
}

func (c *Client) ListCourses(params services.CourseListParams) (*services.CoursePage, error) {
	query := map[string]string{}
	if params.Page > 0 {
		query["page"] = strconv.Itoa(params.Page)
	}
	if params.Search != "" {
		query["search"] = params.Search
	}
	if params.Category != "" {
		query["category"] = params.Category
	}
	if params.Level != "" {
		query["level"] = params.Level
	}
	if params.Ordering != "" {
		query["ordering"] = params.Ordering
	}

	var page services.CoursePage
	resp, err := c.http.R().
		SetQueryParams(query).
		SetResult(&page).
		Get("/api/courses/courses/")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("list courses: %s", resp.Status())
	}
	return &page, nil
}

func (c *Client) GetCourse(id int) (models.Course, error) {
	var course models.Course
	resp, err := c.http.R().
		SetResult(&course).
		Get(fmt.Sprintf("/api/courses/courses/%d/", id))
	if err != nil {
		return course, err
	}
	if resp.StatusCode() == 404 {
		return course, services.ErrNotFound
	}
	if resp.IsError() {
		return course, fmt.Errorf("get course: %s", resp.Status())
	}
	return course, nil
}

// ListModules is gated upstream: the viewer's bearer token travels with
// the request and a 403 maps back onto the NotEnrolled sentinel.
func (c *Client) ListModules(viewer services.Viewer, courseID int) ([]models.Module, error) {
	var mods []models.Module
	resp, err := c.http.R().
		SetAuthToken(viewer.Token).
		SetQueryParam("course_id", strconv.Itoa(courseID)).
		SetResult(&mods).
		Get("/api/courses/student-modules/")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == 403 {
		return nil, services.ErrNotEnrolled
	}
	if resp.IsError() {
		return nil, fmt.Errorf("list modules: %s", resp.Status())
	}
	return mods, nil
}

func (c *Client) ListLessons(viewer services.Viewer, courseID, moduleID int) ([]models.Lesson, error) {
	req := c.http.R().
		SetAuthToken(viewer.Token).
		SetQueryParam("course_id", strconv.Itoa(courseID))
	if moduleID != 0 {
		req.SetQueryParam("module_id", strconv.Itoa(moduleID))
	}

	var lessons []models.Lesson
	resp, err := req.SetResult(&lessons).Get("/api/courses/student-lessons/")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == 403 {
		return nil, services.ErrNotEnrolled
	}
	if resp.IsError() {
		return nil, fmt.Errorf("list lessons: %s", resp.Status())
	}
	return lessons, nil
}
