package courseValidator

import (
	"strconv"
	"strings"

	"talim/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID      uint   `json:"course_id"`
			TitleEn       string `json:"title_en"`
			TitleAr       string `json:"title_ar"`
			DescriptionEn string `json:"description_en"`
			DescriptionAr string `json:"description_ar"`
			OrderIndex    int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}

		if strings.TrimSpace(reqData.TitleEn) == "" {
			errors["title_en"] = "English title is required!"
		}

		if strings.TrimSpace(reqData.TitleAr) == "" {
			errors["title_ar"] = "Arabic title is required!"
		}

		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, err := strconv.Atoi(c.Params("id"))
		if err != nil || moduleID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module ID!", nil)
		}

		reqData := new(struct {
			TitleEn       string `json:"title_en"`
			TitleAr       string `json:"title_ar"`
			DescriptionEn string `json:"description_en"`
			DescriptionAr string `json:"description_ar"`
			OrderIndex    *int   `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.OrderIndex != nil && *reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// ModuleIDParam parses and validates the :id route parameter
func ModuleIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, err := strconv.Atoi(c.Params("id"))
		if err != nil || moduleID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module ID!", nil)
		}

		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}
