package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports server and database health.
func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := "ok"
		dbStatus := "ok"
		if err := webApp.DB.Ping(c.Context()); err != nil {
			status = "degraded"
			dbStatus = err.Error()
		}

		return c.JSON(fiber.Map{
			"status":   status,
			"database": dbStatus,
			"version":  webApp.Version,
			"commit":   webApp.Commit,
		})
	}
}
