package controllers

import (
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"learnhub/config"
	"learnhub/middleware"
	"learnhub/services"
	"learnhub/utils"
)

// InstructorController is the content editor surface: the whole
// course → module → lesson / quiz → question → choice tree.
type InstructorController struct {
	Instructor *services.InstructorService
	Cfg        *config.Config
}

func NewInstructorController(instructor *services.InstructorService, cfg *config.Config) *InstructorController {
	return &InstructorController{Instructor: instructor, Cfg: cfg}
}

// ------- Courses -------

func (ic *InstructorController) ListCourses(c *fiber.Ctx) error {
	courses, err := ic.Instructor.ListCourses()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(courses)
}

func (ic *InstructorController) CreateCourse(c *fiber.Ctx) error {
	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Level       string `json:"level"`
		Duration    int    `json:"duration"`
		Status      string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course, err := ic.Instructor.CreateCourse(middleware.UserID(c), services.CourseInput{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Level:       input.Level,
		Duration:    input.Duration,
		Status:      input.Status,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Course created",
		"course":  course,
	})
}

func (ic *InstructorController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Category    *string `json:"category"`
		Level       *string `json:"level"`
		Duration    *int    `json:"duration"`
		Status      *string `json:"status"`
		ImageURL    *string `json:"imageUrl"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course, err := ic.Instructor.UpdateCourse(courseID, services.CourseUpdate{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Level:       input.Level,
		Duration:    input.Duration,
		Status:      input.Status,
		ImageURL:    input.ImageURL,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Course updated",
		"course":  course,
	})
}

func (ic *InstructorController) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	if err := ic.Instructor.DeleteCourse(courseID); err != nil {
		return respondError(c, err)
	}
	return utils.NoContent(c)
}

// ------- Modules -------

func (ic *InstructorController) ListModules(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	mods, err := ic.Instructor.ListModules(courseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mods)
}

func (ic *InstructorController) CreateModule(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input struct {
		Title string `json:"title"`
		Order int    `json:"order"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	module, err := ic.Instructor.CreateModule(courseID, input.Title, input.Order)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, module)
}

func (ic *InstructorController) UpdateModule(c *fiber.Ctx) error {
	moduleID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid module ID")
	}

	var input struct {
		Title *string `json:"title"`
		Order *int    `json:"order"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	module, err := ic.Instructor.UpdateModule(moduleID, input.Title, input.Order)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(module)
}

func (ic *InstructorController) DeleteModule(c *fiber.Ctx) error {
	moduleID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid module ID")
	}

	if err := ic.Instructor.DeleteModule(moduleID); err != nil {
		return respondError(c, err)
	}
	return utils.NoContent(c)
}

// ------- Lessons -------

func (ic *InstructorController) ListLessons(c *fiber.Ctx) error {
	lessons, err := ic.Instructor.ListLessons(c.QueryInt("course"), c.QueryInt("module"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lessons)
}

// CreateLesson accepts JSON for video/text lessons and multipart form
// data for file lessons (the file name must end in .pdf).
func (ic *InstructorController) CreateLesson(c *fiber.Ctx) error {
	moduleID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid module ID")
	}

	var input struct {
		Title    string `json:"title" form:"title"`
		Type     string `json:"type" form:"type"`
		Order    int    `json:"order" form:"order"`
		Content  string `json:"content" form:"content"`
		VideoURL string `json:"videoUrl" form:"videoUrl"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse request body")
	}

	content, err := ic.lessonContent(c, input.Type, input.Content, input.VideoURL)
	if err != nil {
		return respondError(c, err)
	}

	lesson, err := ic.Instructor.CreateLesson(moduleID, input.Title, input.Order, content)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, lesson)
}

func (ic *InstructorController) UpdateLesson(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	var input struct {
		Title    *string `json:"title" form:"title"`
		Type     string  `json:"type" form:"type"`
		Order    *int    `json:"order" form:"order"`
		Content  string  `json:"content" form:"content"`
		VideoURL string  `json:"videoUrl" form:"videoUrl"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse request body")
	}

	update := services.LessonUpdate{Title: input.Title, Order: input.Order}
	if input.Type != "" {
		content, err := ic.lessonContent(c, input.Type, input.Content, input.VideoURL)
		if err != nil {
			return respondError(c, err)
		}
		update.Content = content
	}

	lesson, err := ic.Instructor.UpdateLesson(lessonID, update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lesson)
}

func (ic *InstructorController) DeleteLesson(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	if err := ic.Instructor.DeleteLesson(lessonID); err != nil {
		return respondError(c, err)
	}
	return utils.NoContent(c)
}

func (ic *InstructorController) lessonContent(c *fiber.Ctx, lessonType, text, videoURL string) (services.LessonContent, error) {
	switch lessonType {
	case "video":
		return services.VideoContent{URL: videoURL}, nil
	case "text":
		return services.TextContent{Body: text}, nil
	case "file":
		file, err := c.FormFile("file")
		if err != nil {
			return nil, services.ErrInvalid
		}
		name := filepath.Base(file.Filename)
		// сохраняем файл рядом с остальными загрузками
		if err := c.SaveFile(file, filepath.Join(ic.Cfg.UploadDir, name)); err != nil {
			return nil, err
		}
		return services.FileContent{Name: name}, nil
	default:
		return nil, services.ErrInvalid
	}
}

// ------- Quizzes -------

func (ic *InstructorController) ListQuizzes(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	quizzes, err := ic.Instructor.ListQuizzes(courseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(quizzes)
}

func (ic *InstructorController) CreateQuiz(c *fiber.Ctx) error {
	var input struct {
		Course      *int   `json:"course"`
		Module      *int   `json:"module"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// quiz belongs to a course or a module, never both
	var owner services.QuizOwner
	switch {
	case input.Course != nil && input.Module == nil:
		owner = services.CourseOwner(*input.Course)
	case input.Module != nil && input.Course == nil:
		owner = services.ModuleOwner(*input.Module)
	default:
		return utils.BadRequest(c, "Quiz needs exactly one of course or module")
	}

	quiz, err := ic.Instructor.CreateQuiz(owner, input.Title, input.Description)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, quiz)
}

func (ic *InstructorController) UpdateQuiz(c *fiber.Ctx) error {
	quizID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid quiz ID")
	}

	var input struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	quiz, err := ic.Instructor.UpdateQuiz(quizID, input.Title, input.Description)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(quiz)
}

func (ic *InstructorController) DeleteQuiz(c *fiber.Ctx) error {
	quizID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid quiz ID")
	}

	if err := ic.Instructor.DeleteQuiz(quizID); err != nil {
		return respondError(c, err)
	}
	return utils.NoContent(c)
}

// ------- Questions -------

func (ic *InstructorController) ListQuestions(c *fiber.Ctx) error {
	quizID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid quiz ID")
	}

	questions, err := ic.Instructor.ListQuestions(quizID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(questions)
}

func (ic *InstructorController) CreateQuestion(c *fiber.Ctx) error {
	quizID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid quiz ID")
	}

	var input struct {
		Text  string `json:"text"`
		Order int    `json:"order"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	question, err := ic.Instructor.CreateQuestion(quizID, input.Text, input.Order)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, question)
}

func (ic *InstructorController) UpdateQuestion(c *fiber.Ctx) error {
	questionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid question ID")
	}

	var input struct {
		Text  *string `json:"text"`
		Order *int    `json:"order"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	question, err := ic.Instructor.UpdateQuestion(questionID, input.Text, input.Order)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(question)
}

func (ic *InstructorController) DeleteQuestion(c *fiber.Ctx) error {
	questionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid question ID")
	}

	if err := ic.Instructor.DeleteQuestion(questionID); err != nil {
		return respondError(c, err)
	}
	return utils.NoContent(c)
}

// ------- Choices -------

func (ic *InstructorController) ListChoices(c *fiber.Ctx) error {
	questionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid question ID")
	}

	choices, err := ic.Instructor.ListChoices(questionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(choices)
}

func (ic *InstructorController) CreateChoice(c *fiber.Ctx) error {
	questionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid question ID")
	}

	var input struct {
		Text      string `json:"text"`
		IsCorrect bool   `json:"isCorrect"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	choice, err := ic.Instructor.CreateChoice(questionID, input.Text, input.IsCorrect)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Created(c, choice)
}

func (ic *InstructorController) UpdateChoice(c *fiber.Ctx) error {
	choiceID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid choice ID")
	}

	var input struct {
		Text      *string `json:"text"`
		IsCorrect *bool   `json:"isCorrect"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	choice, err := ic.Instructor.UpdateChoice(choiceID, input.Text, input.IsCorrect)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(choice)
}

func (ic *InstructorController) DeleteChoice(c *fiber.Ctx) error {
	choiceID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid choice ID")
	}

	if err := ic.Instructor.DeleteChoice(choiceID); err != nil {
		return respondError(c, err)
	}
	return utils.NoContent(c)
}
