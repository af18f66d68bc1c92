package controllers

import (
	"log"

	"talim/database"
	courseModels "talim/models/course"
)

// Cascade deletion runs leaf-to-root: progress rows, then lessons, then the
// module, then the course. Progress rows are removed outright so the
// (user, lesson) pair can be recreated later; content rows are tombstoned via
// is_deleted. The cascade is deliberately not wrapped in one transaction; an
// interrupted run can leave orphans.

func cascadeDeleteLesson(lesson *courseModels.Lesson) {
	db := database.Database.Db

	if err := db.Where("lesson_id = ?", lesson.ID).Delete(&courseModels.LessonProgress{}).Error; err != nil {
		log.Printf("Failed to delete progress records for lesson %d: %v", lesson.ID, err)
	}

	lesson.IsDeleted = true
	if err := db.Save(lesson).Error; err != nil {
		log.Printf("Failed to delete lesson %d: %v", lesson.ID, err)
	}
}

func cascadeDeleteModule(module *courseModels.Module) {
	db := database.Database.Db

	var lessons []courseModels.Lesson
	db.Where("module_id = ? AND is_deleted = ?", module.ID, false).Find(&lessons)

	for i := range lessons {
		cascadeDeleteLesson(&lessons[i])
	}

	module.IsDeleted = true
	if err := db.Save(module).Error; err != nil {
		log.Printf("Failed to delete module %d: %v", module.ID, err)
	}
}

func cascadeDeleteCourse(course *courseModels.Course) {
	db := database.Database.Db

	var modules []courseModels.Module
	db.Where("course_id = ? AND is_deleted = ?", course.ID, false).Find(&modules)

	for i := range modules {
		cascadeDeleteModule(&modules[i])
	}

	course.IsDeleted = true
	if err := db.Save(course).Error; err != nil {
		log.Printf("Failed to delete course %d: %v", course.ID, err)
	}
}
