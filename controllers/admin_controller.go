package controllers

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/config"
	"learnhub/services"
)

type AdminController struct {
	Stats *services.StatsService
	Cfg   *config.Config
}

func NewAdminController(stats *services.StatsService, cfg *config.Config) *AdminController {
	return &AdminController{Stats: stats, Cfg: cfg}
}

// GetStats godoc
// @Summary Platform statistics
// @Description User counts by role, course/enrollment totals and the global average rating
// @Tags admin
// @Produce json
// @Success 200 {object} services.AdminStats
// @Router /admin/stats [get]
func (ac *AdminController) GetStats(c *fiber.Ctx) error {
	stats, err := ac.Stats.AdminStats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
