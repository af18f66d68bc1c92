package courseValidator

import (
	"strconv"
	"strings"

	"talim/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModuleID         uint   `json:"module_id"`
			Slug             string `json:"slug"`
			TitleEn          string `json:"title_en"`
			TitleAr          string `json:"title_ar"`
			ContentEn        string `json:"content_en"`
			ContentAr        string `json:"content_ar"`
			VideoURL         string `json:"video_url"`
			EstimatedMinutes int    `json:"estimated_minutes"`
			OrderIndex       int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleID == 0 {
			errors["module_id"] = "Module ID is required!"
		}

		if strings.TrimSpace(reqData.TitleEn) == "" {
			errors["title_en"] = "English title is required!"
		}

		if strings.TrimSpace(reqData.TitleAr) == "" {
			errors["title_ar"] = "Arabic title is required!"
		}

		if reqData.EstimatedMinutes < 0 {
			errors["estimated_minutes"] = "Estimated minutes must not be negative!"
		}

		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, err := strconv.Atoi(c.Params("id"))
		if err != nil || lessonID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID!", nil)
		}

		reqData := new(struct {
			TitleEn          string `json:"title_en"`
			TitleAr          string `json:"title_ar"`
			ContentEn        string `json:"content_en"`
			ContentAr        string `json:"content_ar"`
			VideoURL         string `json:"video_url"`
			EstimatedMinutes *int   `json:"estimated_minutes"`
			OrderIndex       *int   `json:"order_index"`
			IsPublished      *bool  `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.EstimatedMinutes != nil && *reqData.EstimatedMinutes < 0 {
			errors["estimated_minutes"] = "Estimated minutes must not be negative!"
		}

		if reqData.OrderIndex != nil && *reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("lessonID", lessonID)
		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// LessonIDParam parses and validates the :id route parameter
func LessonIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, err := strconv.Atoi(c.Params("id"))
		if err != nil || lessonID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID!", nil)
		}

		c.Locals("lessonID", lessonID)
		return c.Next()
	}
}
