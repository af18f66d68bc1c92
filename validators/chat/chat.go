package chatValidator

import (
	"strings"

	"talim/middleware"
	"talim/utils"

	"github.com/gofiber/fiber/v2"
)

func ChatRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Messages []utils.ChatMessage `json:"messages"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Messages) == 0 {
			errors["messages"] = "At least one message is required!"
		}

		for _, message := range reqData.Messages {
			if message.Role != "system" && message.Role != "user" && message.Role != "assistant" {
				errors["messages"] = "Message role must be system, user or assistant!"
				break
			}
			if strings.TrimSpace(message.Content) == "" {
				errors["messages"] = "Message content must not be empty!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChat", reqData)
		return c.Next()
	}
}
