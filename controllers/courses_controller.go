package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"learnhub/config"
	"learnhub/middleware"
	"learnhub/services"
	"learnhub/utils"
)

// CoursesController serves the catalog and the learner-side actions:
// enroll, lesson completion, comments and ratings. The catalog reads go
// through the Provider so the remote variant can be swapped in.
type CoursesController struct {
	Catalog    services.Provider
	Enrollment *services.EnrollmentService
	Feedback   *services.FeedbackService
	Cfg        *config.Config
}

func NewCoursesController(catalog services.Provider, enrollment *services.EnrollmentService, feedback *services.FeedbackService, cfg *config.Config) *CoursesController {
	return &CoursesController{Catalog: catalog, Enrollment: enrollment, Feedback: feedback, Cfg: cfg}
}

// ListCourses godoc
// @Summary List courses
// @Description Paginated catalog with search, category/level filters and ordering
// @Tags courses
// @Produce json
// @Success 200 {object} services.CoursePage
// @Router /courses [get]
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	params := services.CourseListParams{
		Page:     c.QueryInt("page", 1),
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Level:    c.Query("level"),
		Ordering: c.Query("ordering"),
	}

	page, err := cc.Catalog.ListCourses(params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	course, err := cc.Catalog.GetCourse(courseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(course)
}

func (cc *CoursesController) Enroll(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	enrollment, err := cc.Enrollment.Enroll(middleware.UserID(c), courseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(enrollment)
}

func (cc *CoursesController) MyEnrollments(c *fiber.Ctx) error {
	enrollments, err := cc.Enrollment.MyEnrollments(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(enrollments)
}

func (cc *CoursesController) MarkLessonCompleted(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("lessonId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	progress, err := cc.Enrollment.MarkLessonCompleted(middleware.UserID(c), lessonID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Lesson completed",
		"progress": progress,
	})
}

func (cc *CoursesController) LessonProgress(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	rows, err := cc.Enrollment.LessonProgressByCourse(middleware.UserID(c), courseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

func (cc *CoursesController) ListComments(c *fiber.Ctx) error {
	comments, err := cc.Feedback.ListComments(c.QueryInt("course"), c.QueryInt("lesson"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

func (cc *CoursesController) CreateComment(c *fiber.Ctx) error {
	var input struct {
		Course *int   `json:"course"`
		Lesson *int   `json:"lesson"`
		Text   string `json:"text"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	comment, err := cc.Feedback.CreateComment(middleware.UserID(c), input.Course, input.Lesson, input.Text)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, comment)
}

func (cc *CoursesController) RateCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input struct {
		Rating int `json:"rating"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	rating, err := cc.Feedback.RateCourse(middleware.UserID(c), courseID, input.Rating)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rating)
}

func (cc *CoursesController) RatingSummary(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	summary, err := cc.Feedback.RatingSummary(courseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
