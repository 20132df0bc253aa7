package routes

import (
	"time"

	"github.com/avillalba/email-blacklist-api/internal/handlers"
	"github.com/avillalba/email-blacklist-api/internal/middleware"
	"github.com/avillalba/email-blacklist-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	auth *services.AuthService,
	authHandler *handlers.AuthHandler,
	blacklistHandler *handlers.BlacklistHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/", healthHandler.Check)

	// Login gets a stricter per-IP rate limit than the rest of the API.
	authGroup := app.Group("/auth")
	authGroup.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	authGroup.Post("/login", authHandler.Login)

	// Mutation and query both sit behind the static bearer token.
	bearer := middleware.BearerProtected(auth)
	app.Post("/blacklists", bearer, blacklistHandler.Add)
	app.Get("/blacklists/:email", bearer, blacklistHandler.Status)
}
