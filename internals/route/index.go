// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	authMw "rentbook_backend/internals/middlewares/auth"
	"rentbook_backend/internals/middlewares"
	routeDetails "rentbook_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, d routeDetails.Deps) {
	startTime = time.Now()

	apiGate := authMw.AuthJWT(authMw.AuthJWTOpts{Svc: d.Auth, Mode: authMw.ModeAPI, Log: d.Log})
	pageGate := authMw.AuthJWT(authMw.AuthJWTOpts{Svc: d.Auth, Mode: authMw.ModePage, LoginPath: "/login", Log: d.Log})

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, d)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, d, apiGate, pageGate)

	api := app.Group("/api", middlewares.GlobalRateLimiter())

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(api, d, apiGate)

	log.Println("[INFO] Mounting Property routes (old, new)...")
	routeDetails.PropertyRoutes(api, d, apiGate)

	// harus paling akhir: menangkap /api/{floor}/... yang tidak cocok
	routeDetails.UnknownFloorRoutes(api, apiGate)
}
