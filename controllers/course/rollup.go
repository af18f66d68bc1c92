package controllers

import (
	"time"

	"talim/database"
	courseModels "talim/models/course"
	"talim/utils"
)

// LessonDetail is a lesson row with the user's progress status attached.
// Status is empty when no progress record exists.
type LessonDetail struct {
	LessonID         uint       `json:"lesson_id"`
	Slug             string     `json:"slug"`
	TitleEn          string     `json:"title_en"`
	TitleAr          string     `json:"title_ar"`
	OrderIndex       int        `json:"order_index"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	VideoURL         string     `json:"video_url"`
	Status           string     `json:"status"`
	StartedAt        *time.Time `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at"`
}

// ModuleDetail is a module row with per-lesson progress and its own rollup
type ModuleDetail struct {
	ModuleID         uint           `json:"module_id"`
	TitleEn          string         `json:"title_en"`
	TitleAr          string         `json:"title_ar"`
	OrderIndex       int            `json:"order_index"`
	TotalLessons     int            `json:"total_lessons"`
	CompletedLessons int            `json:"completed_lessons"`
	Percentage       int            `json:"percentage"`
	Lessons          []LessonDetail `json:"lessons"`
}

// CourseRollup aggregates one user's progress across a whole course.
// Current points at the first lesson in document order whose status is
// exactly STARTED; FirstIncomplete at the first lesson not COMPLETED. The two
// are independent and may differ.
type CourseRollup struct {
	TotalLessons            int
	CompletedLessons        int
	ProgressRecords         int // progress rows of any status over published lessons
	Percentage              int
	CurrentModuleID         *uint
	CurrentLessonID         *uint
	FirstIncompleteModuleID *uint
	FirstIncompleteLessonID *uint
	MaxCompletedAt          *time.Time
	Modules                 []ModuleDetail
}

// rollupCourse walks the course's modules and published lessons in stored
// order and intersects them with the user's progress records. Only published
// lessons count; a course with none yields TotalLessons == 0 and callers
// decide whether to skip it.
func rollupCourse(userID uint, courseID uint) CourseRollup {
	db := database.Database.Db

	var rollup CourseRollup

	var modules []courseModels.Module
	db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&modules)

	for _, module := range modules {
		var lessons []courseModels.Lesson
		db.Where("module_id = ? AND is_deleted = ? AND is_published = ?", module.ID, false, true).
			Order("order_index asc").Find(&lessons)

		detail := ModuleDetail{
			ModuleID:   module.ID,
			TitleEn:    module.TitleEn,
			TitleAr:    module.TitleAr,
			OrderIndex: module.OrderIndex,
			Lessons:    make([]LessonDetail, 0, len(lessons)),
		}

		for _, lesson := range lessons {
			rollup.TotalLessons++
			detail.TotalLessons++

			lessonDetail := LessonDetail{
				LessonID:         lesson.ID,
				Slug:             lesson.Slug,
				TitleEn:          lesson.TitleEn,
				TitleAr:          lesson.TitleAr,
				OrderIndex:       lesson.OrderIndex,
				EstimatedMinutes: lesson.EstimatedMinutes,
				VideoURL:         lesson.VideoURL,
			}

			var record courseModels.LessonProgress
			if err := db.Where("user_id = ? AND lesson_id = ?", userID, lesson.ID).First(&record).Error; err == nil {
				rollup.ProgressRecords++
				lessonDetail.Status = record.Status
				lessonDetail.StartedAt = &record.StartedAt
				lessonDetail.CompletedAt = record.CompletedAt

				if record.Status == courseModels.StatusCompleted {
					rollup.CompletedLessons++
					detail.CompletedLessons++
					if record.CompletedAt != nil &&
						(rollup.MaxCompletedAt == nil || record.CompletedAt.After(*rollup.MaxCompletedAt)) {
						rollup.MaxCompletedAt = record.CompletedAt
					}
				}

				if record.Status == courseModels.StatusStarted && rollup.CurrentLessonID == nil {
					moduleID, lessonID := module.ID, lesson.ID
					rollup.CurrentModuleID = &moduleID
					rollup.CurrentLessonID = &lessonID
				}
			}

			if lessonDetail.Status != courseModels.StatusCompleted && rollup.FirstIncompleteLessonID == nil {
				moduleID, lessonID := module.ID, lesson.ID
				rollup.FirstIncompleteModuleID = &moduleID
				rollup.FirstIncompleteLessonID = &lessonID
			}

			detail.Lessons = append(detail.Lessons, lessonDetail)
		}

		detail.Percentage = utils.Percent(detail.CompletedLessons, detail.TotalLessons)
		rollup.Modules = append(rollup.Modules, detail)
	}

	rollup.Percentage = utils.Percent(rollup.CompletedLessons, rollup.TotalLessons)
	return rollup
}
