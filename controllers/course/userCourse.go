package controllers

import (
	"time"

	"talim/database"
	"talim/middleware"
	"talim/models"
	courseModels "talim/models/course"
	"talim/utils"

	"github.com/gofiber/fiber/v2"
)

// CourseSummary is one entry of the user's course list
type CourseSummary struct {
	CourseID                uint   `json:"course_id"`
	Slug                    string `json:"slug"`
	TitleEn                 string `json:"title_en"`
	TitleAr                 string `json:"title_ar"`
	CoverImageURL           string `json:"cover_image_url"`
	OrderIndex              int    `json:"order_index"`
	TotalLessons            int    `json:"total_lessons"`
	CompletedLessons        int    `json:"completed_lessons"`
	Percentage              int    `json:"percentage"`
	CurrentModuleID         *uint  `json:"current_module_id"`
	CurrentLessonID         *uint  `json:"current_lesson_id"`
	FirstIncompleteModuleID *uint  `json:"first_incomplete_module_id"`
	FirstIncompleteLessonID *uint  `json:"first_incomplete_lesson_id"`
}

// GetUserCourses returns the ordered list of published courses with the
// caller's rollup per course. Courses with zero published lessons are skipped
// entirely.
func GetUserCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("is_deleted = ? AND is_published = ?", false, true).
		Order("order_index asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	summaries := make([]CourseSummary, 0, len(courses))
	for _, course := range courses {
		rollup := rollupCourse(userID, course.ID)
		if rollup.TotalLessons == 0 {
			continue
		}

		summaries = append(summaries, CourseSummary{
			CourseID:                course.ID,
			Slug:                    course.Slug,
			TitleEn:                 course.TitleEn,
			TitleAr:                 course.TitleAr,
			CoverImageURL:           course.CoverImageURL,
			OrderIndex:              course.OrderIndex,
			TotalLessons:            rollup.TotalLessons,
			CompletedLessons:        rollup.CompletedLessons,
			Percentage:              rollup.Percentage,
			CurrentModuleID:         rollup.CurrentModuleID,
			CurrentLessonID:         rollup.CurrentLessonID,
			FirstIncompleteModuleID: rollup.FirstIncompleteModuleID,
			FirstIncompleteLessonID: rollup.FirstIncompleteLessonID,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": summaries,
	})
}

// GetCourseProgress returns the caller's rollup for one course, with full
// per-module and per-lesson detail
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	slug := c.Params("slug")

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ? AND is_published = ?", slug, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	rollup := rollupCourse(userID, course.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course progress fetched successfully!", fiber.Map{
		"course_id":         course.ID,
		"slug":              course.Slug,
		"total_lessons":     rollup.TotalLessons,
		"completed_lessons": rollup.CompletedLessons,
		"percentage":        rollup.Percentage,
		"modules":           rollup.Modules,
	})
}

// OverallCourse is one course entry of the cross-course rollup
type OverallCourse struct {
	CourseID         uint       `json:"course_id"`
	Slug             string     `json:"slug"`
	TitleEn          string     `json:"title_en"`
	TitleAr          string     `json:"title_ar"`
	TotalLessons     int        `json:"total_lessons"`
	CompletedLessons int        `json:"completed_lessons"`
	Percentage       int        `json:"percentage"`
	IsCompleted      bool       `json:"is_completed"`
	CompletedAt      *time.Time `json:"completed_at"`
}

// GetOverallProgress returns lesson totals across all published courses plus
// per-course summaries. CompletedAt is the max completion time among the
// course's lessons and is only populated when the course is fully complete.
func GetOverallProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("is_deleted = ? AND is_published = ?", false, true).
		Order("order_index asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	totalLessons := 0
	completedLessons := 0
	entries := make([]OverallCourse, 0, len(courses))

	for _, course := range courses {
		rollup := rollupCourse(userID, course.ID)
		if rollup.TotalLessons == 0 {
			// Never reported as completed, excluded from the math
			continue
		}

		totalLessons += rollup.TotalLessons
		completedLessons += rollup.CompletedLessons

		entry := OverallCourse{
			CourseID:         course.ID,
			Slug:             course.Slug,
			TitleEn:          course.TitleEn,
			TitleAr:          course.TitleAr,
			TotalLessons:     rollup.TotalLessons,
			CompletedLessons: rollup.CompletedLessons,
			Percentage:       rollup.Percentage,
			IsCompleted:      rollup.CompletedLessons == rollup.TotalLessons,
		}
		if entry.IsCompleted {
			entry.CompletedAt = rollup.MaxCompletedAt
		}
		entries = append(entries, entry)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Overall progress fetched successfully!", fiber.Map{
		"total_lessons":     totalLessons,
		"completed_lessons": completedLessons,
		"percentage":        utils.Percent(completedLessons, totalLessons),
		"courses":           entries,
	})
}
