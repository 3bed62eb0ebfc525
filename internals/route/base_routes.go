package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	database "rentbook_backend/internals/databases"
	authMw "rentbook_backend/internals/middlewares/auth"
	routeDetails "rentbook_backend/internals/route/details"
)

func BaseRoutes(app *fiber.App, d routeDetails.Deps) {
	app.Get("/", func(c *fiber.Ctx) error {
		if authMw.HasSession(c, d.Auth) {
			return c.Redirect("/dashboard", fiber.StatusFound)
		}
		return c.Redirect("/login", fiber.StatusFound)
	})

	// halaman login dirender frontend; backend cukup memberi petunjuk endpoint
	app.Get("/login", func(c *fiber.Ctx) error {
		if authMw.HasSession(c, d.Auth) {
			return c.Redirect("/dashboard", fiber.StatusFound)
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "请登录",
			"data": fiber.Map{
				"login_endpoint": "/api/auth/login",
				"fields":         []string{"admin_name", "password"},
			},
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK
		if err := database.Ping(ctx, d.DB); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    d.Clock.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    d.Config.AppEnv,
		})
	})
}
