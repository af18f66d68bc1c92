package controllers

import (
	"talim/database"
	"talim/middleware"
	"talim/models"
	courseModels "talim/models/course"
	"talim/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateLesson creates a lesson within a module
func AdminCreateLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	slug := reqData.Slug
	if slug == "" {
		slug = utils.Slugify(reqData.TitleEn)
	}
	var existing courseModels.Lesson
	if err := database.Database.Db.Unscoped().Where("slug = ?", slug).First(&existing).Error; err == nil {
		slug = utils.UniqueSlug(slug)
	}

	lesson := courseModels.Lesson{
		ModuleID:         reqData.ModuleID,
		Slug:             slug,
		TitleEn:          reqData.TitleEn,
		TitleAr:          reqData.TitleAr,
		ContentEn:        reqData.ContentEn,
		ContentAr:        reqData.ContentAr,
		VideoURL:         reqData.VideoURL,
		EstimatedMinutes: reqData.EstimatedMinutes,
		OrderIndex:       reqData.OrderIndex,
		IsPublished:      false,
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// AdminUpdateLesson patches provided fields of an existing lesson
func AdminUpdateLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*struct {
		TitleEn          string `json:"title_en"`
		TitleAr          string `json:"title_ar"`
		ContentEn        string `json:"content_en"`
		ContentAr        string `json:"content_ar"`
		VideoURL         string `json:"video_url"`
		EstimatedMinutes *int   `json:"estimated_minutes"`
		OrderIndex       *int   `json:"order_index"`
		IsPublished      *bool  `json:"is_published"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.TitleEn != "" {
		lesson.TitleEn = reqData.TitleEn
	}
	if reqData.TitleAr != "" {
		lesson.TitleAr = reqData.TitleAr
	}
	if reqData.ContentEn != "" {
		lesson.ContentEn = reqData.ContentEn
	}
	if reqData.ContentAr != "" {
		lesson.ContentAr = reqData.ContentAr
	}
	if reqData.VideoURL != "" {
		lesson.VideoURL = reqData.VideoURL
	}
	if reqData.EstimatedMinutes != nil {
		lesson.EstimatedMinutes = *reqData.EstimatedMinutes
	}
	if reqData.OrderIndex != nil {
		lesson.OrderIndex = *reqData.OrderIndex
	}
	if reqData.IsPublished != nil {
		lesson.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// AdminDeleteLesson deletes a lesson, cascading to its progress records
func AdminDeleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	cascadeDeleteLesson(&lesson)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
