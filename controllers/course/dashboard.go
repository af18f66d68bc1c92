package controllers

import (
	"sort"
	"strconv"
	"time"

	"talim/config"
	"talim/database"
	"talim/middleware"
	"talim/models"
	courseModels "talim/models/course"
	"talim/utils"

	"github.com/gofiber/fiber/v2"
)

// UserStats is the dashboard summary for one user
type UserStats struct {
	LessonsCompleted         int  `json:"lessons_completed"`
	LessonsStarted           int  `json:"lessons_started"`
	CoursesInProgress        int  `json:"courses_in_progress"`
	CoursesCompleted         int  `json:"courses_completed"`
	CurrentStreak            int  `json:"current_streak"`
	TotalLearningTimeMinutes *int `json:"total_learning_time_minutes"` // null means no data, not zero
}

// GetUserStats computes the dashboard counters for the caller
func GetUserStats(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var records []courseModels.LessonProgress
	database.Database.Db.Where("user_id = ?", userID).Find(&records)

	stats := UserStats{}
	activity := make([]time.Time, 0, len(records))
	learningMinutes := 0

	for _, record := range records {
		// Rows whose lesson was deleted out of band are skipped entirely
		var lesson courseModels.Lesson
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", record.LessonID, false).First(&lesson).Error; err != nil {
			continue
		}

		// Streak days come from start times only
		activity = append(activity, record.StartedAt)

		switch record.Status {
		case courseModels.StatusCompleted:
			stats.LessonsCompleted++
			learningMinutes += lesson.EstimatedMinutes
		case courseModels.StatusStarted:
			stats.LessonsStarted++
		}
	}

	stats.CurrentStreak = utils.CurrentStreak(activity, time.Now())
	if learningMinutes > 0 {
		stats.TotalLearningTimeMinutes = &learningMinutes
	}

	// Classify each published course: fully complete, in progress, or untouched
	var courses []courseModels.Course
	database.Database.Db.Where("is_deleted = ? AND is_published = ?", false, true).Find(&courses)

	for _, course := range courses {
		rollup := rollupCourse(userID, course.ID)
		if rollup.TotalLessons == 0 || rollup.ProgressRecords == 0 {
			continue
		}
		if rollup.CompletedLessons == rollup.TotalLessons {
			stats.CoursesCompleted++
		} else {
			stats.CoursesInProgress++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", stats)
}

// ActivityItem is one row of the recent-activity feed, expanded with the
// titles of the content it refers to
type ActivityItem struct {
	RecordID      uint      `json:"record_id"`
	Status        string    `json:"status"`
	ActivityAt    time.Time `json:"activity_at"`
	LessonID      uint      `json:"lesson_id"`
	LessonSlug    string    `json:"lesson_slug"`
	LessonTitleEn string    `json:"lesson_title_en"`
	LessonTitleAr string    `json:"lesson_title_ar"`
	ModuleTitleEn string    `json:"module_title_en"`
	ModuleTitleAr string    `json:"module_title_ar"`
	CourseSlug    string    `json:"course_slug"`
	CourseTitleEn string    `json:"course_title_en"`
	CourseTitleAr string    `json:"course_title_ar"`
}

// GetRecentActivity returns the caller's most recent progress records ordered
// by completion time when present, else start time. Records whose lesson,
// module or course has since been deleted are dropped.
func GetRecentActivity(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	limit := config.AppConfig.RecentActivityMax
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	var records []courseModels.LessonProgress
	database.Database.Db.Where("user_id = ?", userID).Find(&records)

	sort.Slice(records, func(i, j int) bool {
		a := utils.ActivityTime(records[i].StartedAt, records[i].CompletedAt)
		b := utils.ActivityTime(records[j].StartedAt, records[j].CompletedAt)
		return a.After(b)
	})

	items := make([]ActivityItem, 0, limit)
	for _, record := range records {
		if len(items) >= limit {
			break
		}

		item, ok := expandRecord(record)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recent activity fetched successfully!", fiber.Map{
		"activity": items,
	})
}

// expandRecord joins a progress record with its lesson, module and course.
// Returns false when any referent is gone.
func expandRecord(record courseModels.LessonProgress) (ActivityItem, bool) {
	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", record.LessonID, false).First(&lesson).Error; err != nil {
		return ActivityItem{}, false
	}

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", lesson.ModuleID, false).First(&module).Error; err != nil {
		return ActivityItem{}, false
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", module.CourseID, false).First(&course).Error; err != nil {
		return ActivityItem{}, false
	}

	return ActivityItem{
		RecordID:      record.ID,
		Status:        record.Status,
		ActivityAt:    utils.ActivityTime(record.StartedAt, record.CompletedAt),
		LessonID:      lesson.ID,
		LessonSlug:    lesson.Slug,
		LessonTitleEn: lesson.TitleEn,
		LessonTitleAr: lesson.TitleAr,
		ModuleTitleEn: module.TitleEn,
		ModuleTitleAr: module.TitleAr,
		CourseSlug:    course.Slug,
		CourseTitleEn: course.TitleEn,
		CourseTitleAr: course.TitleAr,
	}, true
}

// GetContinueLearning returns the most recently started lesson still in
// STARTED status, with navigation context, or null data when nothing is in
// progress. Fully completed courses never produce a target.
func GetContinueLearning(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var records []courseModels.LessonProgress
	database.Database.Db.Where("user_id = ? AND status = ?", userID, courseModels.StatusStarted).
		Order("started_at desc").Find(&records)

	for _, record := range records {
		item, ok := expandRecord(record)
		if !ok {
			continue
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Continue learning target fetched successfully!", item)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "No lesson in progress.", nil)
}
