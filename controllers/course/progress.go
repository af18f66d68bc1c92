package controllers

import (
	"time"

	"talim/database"
	"talim/middleware"
	"talim/models"
	courseModels "talim/models/course"

	"github.com/gofiber/fiber/v2"
)

// findLessonBySlug resolves the lesson targeted by a progress mutation
func findLessonBySlug(slug string) (*courseModels.Lesson, error) {
	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ?", slug, false).First(&lesson).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// StartLesson creates a STARTED progress record for the (user, lesson) pair.
// If a record already exists in any status the call is a no-op returning it.
func StartLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lesson, err := findLessonBySlug(c.Params("slug"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	// Check-then-insert inside a transaction; the unique (user, lesson) index
	// backstops concurrent calls.
	tx := database.Database.Db.Begin()

	var record courseModels.LessonProgress
	if err := tx.Where("user_id = ? AND lesson_id = ?", userID, lesson.ID).First(&record).Error; err == nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson already started!", record)
	}

	record = courseModels.LessonProgress{
		UserID:    userID,
		LessonID:  lesson.ID,
		Status:    courseModels.StatusStarted,
		StartedAt: time.Now(),
	}

	if err := tx.Create(&record).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start lesson!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson started successfully!", record)
}

// CompleteLesson marks the (user, lesson) pair COMPLETED. Completing an
// unstarted lesson backfills StartedAt with the completion time; repeating the
// call refreshes CompletedAt (last write wins).
func CompleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lesson, err := findLessonBySlug(c.Params("slug"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	now := time.Now()

	tx := database.Database.Db.Begin()

	var record courseModels.LessonProgress
	if err := tx.Where("user_id = ? AND lesson_id = ?", userID, lesson.ID).First(&record).Error; err == nil {
		// StartedAt untouched
		record.Status = courseModels.StatusCompleted
		record.CompletedAt = &now
		if err := tx.Save(&record).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete lesson!", nil)
		}
		tx.Commit()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson completed successfully!", record)
	}

	record = courseModels.LessonProgress{
		UserID:      userID,
		LessonID:    lesson.ID,
		Status:      courseModels.StatusCompleted,
		StartedAt:   now,
		CompletedAt: &now,
	}

	if err := tx.Create(&record).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete lesson!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson completed successfully!", record)
}

// ResetLesson deletes the (user, lesson) progress record so the pair restarts
// from no record. Destructive: the original StartedAt is lost. No-op when no
// record exists.
func ResetLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lesson, err := findLessonBySlug(c.Params("slug"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var record courseModels.LessonProgress
	if err := database.Database.Db.Where("user_id = ? AND lesson_id = ?", userID, lesson.ID).First(&record).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No progress to reset.", nil)
	}

	if err := database.Database.Db.Delete(&record).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson progress reset successfully!", nil)
}
