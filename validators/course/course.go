package courseValidator

import (
	"strconv"
	"strings"

	"talim/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseIDParam parses and validates the :id route parameter
func CourseIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("id"))
		if err != nil || courseID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TitleEn       string `json:"title_en"`
			TitleAr       string `json:"title_ar"`
			DescriptionEn string `json:"description_en"`
			DescriptionAr string `json:"description_ar"`
			OrderIndex    int    `json:"order_index"`
			CoverImageURL string `json:"cover_image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate English title
		if strings.TrimSpace(reqData.TitleEn) == "" {
			errors["title_en"] = "English title is required!"
		} else if len(strings.TrimSpace(reqData.TitleEn)) < 3 {
			errors["title_en"] = "English title must be at least 3 characters long!"
		}

		// Validate Arabic title
		if strings.TrimSpace(reqData.TitleAr) == "" {
			errors["title_ar"] = "Arabic title is required!"
		}

		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("id"))
		if err != nil || courseID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		reqData := new(struct {
			TitleEn       string `json:"title_en"`
			TitleAr       string `json:"title_ar"`
			DescriptionEn string `json:"description_en"`
			DescriptionAr string `json:"description_ar"`
			OrderIndex    *int   `json:"order_index"`
			CoverImageURL string `json:"cover_image_url"`
			IsPublished   *bool  `json:"is_published"`
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

		c.Locals("courseID", courseID)
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
