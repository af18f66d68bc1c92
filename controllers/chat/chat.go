package controllers

import (
	"log"

	"talim/database"
	"talim/middleware"
	"talim/models"
	"talim/utils"

	"github.com/gofiber/fiber/v2"
)

// FallbackReply is returned for any chat failure: missing API key, transport
// error, non-success response or empty choices. The caller never sees an
// error status.
const FallbackReply = "Sorry, the tutor is unavailable right now. Please try again. | عذراً، المساعد غير متاح حالياً. حاول مرة أخرى."

// ChatWithTutor forwards the conversation to the configured chat completions
// endpoint and returns the first choice's content
func ChatWithTutor(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedChat").(*struct {
		Messages []utils.ChatMessage `json:"messages"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reply, err := utils.ChatCompletion(reqData.Messages)
	if err != nil {
		log.Printf("Chat completion failed for user %d: %v", userID, err)
		reply = FallbackReply
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chat reply fetched successfully!", fiber.Map{
		"reply": reply,
	})
}
