package routes

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/config"
	"learnhub/controllers"
	"learnhub/middleware"
	"learnhub/services"
	"learnhub/store"
)

// Deps bundles what the routes need. Catalog is an interface on purpose:
// the local snapshot services and the remote API client both satisfy it.
type Deps struct {
	Store   *store.Store
	Catalog services.Provider
	Cfg     *config.Config
}

func SetupRoutes(app *fiber.App, deps Deps) {
	cfg := deps.Cfg
	s := deps.Store

	authService := services.NewAuthService(s)
	enrollmentService := services.NewEnrollmentService(s)
	contentService := services.NewContentService(s)
	feedbackService := services.NewFeedbackService(s)
	instructorService := services.NewInstructorService(s)
	statsService := services.NewStatsService(s)

	catalog := deps.Catalog
	if catalog == nil {
		catalog = services.NewCatalogService(s)
	}

	// Auth routes
	authController := controllers.NewAuthController(authService, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	instructorMiddleware := middleware.InstructorMiddleware()
	adminMiddleware := middleware.AdminMiddleware()

	app.Get("/api/users/me", authMiddleware, authController.Me)

	// Courses routes
	coursesController := controllers.NewCoursesController(catalog, enrollmentService, feedbackService, cfg)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", coursesController.ListCourses)
	courses.Get("/:id", coursesController.GetCourse)
	courses.Post("/:id/enroll", coursesController.Enroll)
	courses.Get("/:id/progress", coursesController.LessonProgress)
	courses.Post("/:id/ratings", coursesController.RateCourse)
	courses.Get("/:id/ratings/summary", coursesController.RatingSummary)

	app.Get("/api/enrollments", authMiddleware, coursesController.MyEnrollments)
	app.Post("/api/lessons/:lessonId/complete", authMiddleware, coursesController.MarkLessonCompleted)
	app.Get("/api/comments", authMiddleware, coursesController.ListComments)
	app.Post("/api/comments", authMiddleware, coursesController.CreateComment)

	// Gated course structure
	contentController := controllers.NewContentController(catalog, contentService, cfg)
	courses.Get("/:id/modules", contentController.GetModules)
	courses.Get("/:id/lessons", contentController.GetLessons)
	app.Get("/api/quizzes", authMiddleware, contentController.GetQuizzes)
	app.Get("/api/quizzes/:id/questions", authMiddleware, contentController.GetQuestions)
	app.Get("/api/questions/:id/choices", authMiddleware, contentController.GetChoices)

	// Instructor routes
	instructorController := controllers.NewInstructorController(instructorService, cfg)
	instructor := app.Group("/api/instructor", authMiddleware, instructorMiddleware)
	instructor.Get("/courses", instructorController.ListCourses)
	instructor.Post("/courses", instructorController.CreateCourse)
	instructor.Put("/courses/:id", instructorController.UpdateCourse)
	instructor.Delete("/courses/:id", instructorController.DeleteCourse)
	instructor.Get("/courses/:id/modules", instructorController.ListModules)
	instructor.Post("/courses/:id/modules", instructorController.CreateModule)
	instructor.Put("/modules/:id", instructorController.UpdateModule)
	instructor.Delete("/modules/:id", instructorController.DeleteModule)
	instructor.Get("/lessons", instructorController.ListLessons)
	instructor.Post("/modules/:id/lessons", instructorController.CreateLesson)
	instructor.Put("/lessons/:id", instructorController.UpdateLesson)
	instructor.Delete("/lessons/:id", instructorController.DeleteLesson)
	instructor.Get("/courses/:id/quizzes", instructorController.ListQuizzes)
	instructor.Post("/quizzes", instructorController.CreateQuiz)
	instructor.Put("/quizzes/:id", instructorController.UpdateQuiz)
	instructor.Delete("/quizzes/:id", instructorController.DeleteQuiz)
	instructor.Get("/quizzes/:id/questions", instructorController.ListQuestions)
	instructor.Post("/quizzes/:id/questions", instructorController.CreateQuestion)
	instructor.Put("/questions/:id", instructorController.UpdateQuestion)
	instructor.Delete("/questions/:id", instructorController.DeleteQuestion)
	instructor.Get("/questions/:id/choices", instructorController.ListChoices)
	instructor.Post("/questions/:id/choices", instructorController.CreateChoice)
	instructor.Put("/choices/:id", instructorController.UpdateChoice)
	instructor.Delete("/choices/:id", instructorController.DeleteChoice)

	// Admin routes
	adminController := controllers.NewAdminController(statsService, cfg)
	app.Get("/api/admin/stats", authMiddleware, adminMiddleware, adminController.GetStats)
}
