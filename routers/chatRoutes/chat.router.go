package chatRoutes

import (
	controllers "talim/controllers/chat"
	"talim/middleware"
	validators "talim/validators/chat"

	"github.com/gofiber/fiber/v2"
)

// SetupChatRoutes sets up the AI tutor proxy route
func SetupChatRoutes(app *fiber.App) {
	app.Post("/chat", middleware.JWTMiddleware, validators.ChatRequest(), controllers.ChatWithTutor)
}
