package routes

import (
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"rentbook_backend/internals/middlewares"
	"rentbook_backend/internals/middlewares/logger"
	routeDetails "rentbook_backend/internals/route/details"
)

// NewApp merakit fiber.App lengkap: middleware dasar lalu semua route.
func NewApp(d routeDetails.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          middlewares.ErrorHandler(d.Log),
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	app.Use(middlewares.RecoveryMiddleware(d.Log))
	app.Use(middlewares.RequestContext(d.Log, 5*time.Second))
	app.Use(logger.LoggerMiddleware(d.Config.Timezone))
	app.Use(middlewares.CorsMiddleware(splitOrigins(d.Config.CorsOrigins)))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	SetupRoutes(app, d)
	return app
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
