package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"learnhub/config"
	"learnhub/models"
	"learnhub/utils"
)

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := utils.ExtractUserFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		c.Locals("userID", userID)
		c.Locals("role", role)
		c.Locals("token", strings.TrimPrefix(c.Get("Authorization"), "Bearer "))
		return c.Next()
	}
}

func RoleMiddleware(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden - insufficient role",
		})
	}
}

func AdminMiddleware() fiber.Handler {
	return RoleMiddleware(models.RoleAdmin)
}

func InstructorMiddleware() fiber.Handler {
	return RoleMiddleware(models.RoleInstructor, models.RoleAdmin)
}

// UserID reads the id stashed by AuthMiddleware.
func UserID(c *fiber.Ctx) int {
	id, _ := c.Locals("userID").(int)
	return id
}

// Token returns the raw bearer token stashed by AuthMiddleware, for
// handlers that forward the caller's credentials upstream.
func Token(c *fiber.Ctx) string {
	token, _ := c.Locals("token").(string)
	return token
}
