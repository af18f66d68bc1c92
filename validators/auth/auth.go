package authValidator

import (
	"strings"

	"talim/middleware"

	"github.com/gofiber/fiber/v2"
)

func WebhookEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Type string `json:"type"`
			Data struct {
				ID        string `json:"id"`
				Email     string `json:"email"`
				Name      string `json:"name"`
				AvatarURL string `json:"avatar_url"`
			} `json:"data"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.Type {
		case "user.created", "user.updated":
			if strings.TrimSpace(reqData.Data.Email) == "" {
				errors["email"] = "Email is required!"
			}
		case "user.deleted":
			// Only the id matters
		default:
			errors["type"] = "Event type must be user.created, user.updated or user.deleted!"
		}

		if strings.TrimSpace(reqData.Data.ID) == "" {
			errors["id"] = "External user id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWebhook", reqData)
		return c.Next()
	}
}
