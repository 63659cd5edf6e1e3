package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"learnhub/config"
	"learnhub/middleware"
	"learnhub/services"
	"learnhub/utils"
)

// ContentController exposes enrollment-gated course structure to
// learners: modules and lessons require an active enrollment, quizzes
// and their questions/choices are plain parent-id filters. The gated
// reads go through the Provider so the remote variant serves them when
// it is configured.
type ContentController struct {
	Catalog services.Provider
	Content *services.ContentService
	Cfg     *config.Config
}

func NewContentController(catalog services.Provider, content *services.ContentService, cfg *config.Config) *ContentController {
	return &ContentController{Catalog: catalog, Content: content, Cfg: cfg}
}

func viewer(c *fiber.Ctx) services.Viewer {
	return services.Viewer{ID: middleware.UserID(c), Token: middleware.Token(c)}
}

func (cc *ContentController) GetModules(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	mods, err := cc.Catalog.ListModules(viewer(c), courseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mods)
}

func (cc *ContentController) GetLessons(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	lessons, err := cc.Catalog.ListLessons(viewer(c), courseID, c.QueryInt("module"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lessons)
}

func (cc *ContentController) GetQuizzes(c *fiber.Ctx) error {
	quizzes, err := cc.Content.GetQuizzes(c.QueryInt("course"), c.QueryInt("module"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(quizzes)
}

func (cc *ContentController) GetQuestions(c *fiber.Ctx) error {
	quizID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid quiz ID")
	}

	questions, err := cc.Content.GetQuestions(quizID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(questions)
}

func (cc *ContentController) GetChoices(c *fiber.Ctx) error {
	questionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid question ID")
	}

	choices, err := cc.Content.GetChoices(questionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(choices)
}
