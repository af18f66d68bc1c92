package authRoutes

import (
	controllers "talim/controllers/auth"
	"talim/middleware"
	validators "talim/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the auth-provider sync webhook and profile routes
func SetupAuthRoutes(app *fiber.App) {
	app.Post("/webhook/auth", middleware.WebhookSecretMiddleware, validators.WebhookEvent(), controllers.SyncUser)

	userGroup := app.Group("/user")
	userGroup.Get("/me", middleware.JWTMiddleware, controllers.GetProfile)
}
