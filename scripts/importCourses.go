package main

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"talim/config"
	"talim/database"
	courseModels "talim/models/course"
	"talim/utils"
)

// Offline course seeder. Parses every .md file in COURSES_DIR into a
// Course{Modules{Lessons}} tree, then wipes and reinserts all content.
// Idempotent by replacement, not incremental: progress records referencing
// wiped lessons are removed too.
//
// File format (one course per file):
//
//	# English Title | العنوان العربي
//	slug: web-foundations
//	order: 1
//	published: true
//	description_en: ...
//	description_ar: ...
//
//	## Module Title | عنوان الوحدة
//
//	### Lesson Title | عنوان الدرس
//	slug: what-is-html
//	minutes: 10
//	video: https://...
//	published: true
//	en:
//	...body...
//	ar:
//	...body...

type seedLesson struct {
	courseModels.Lesson
}

type seedModule struct {
	courseModels.Module
	Lessons []*seedLesson
}

type seedCourse struct {
	courseModels.Course
	Modules []*seedModule
}

func main() {
	config.LoadConfig()
	database.ConnectDb()

	dir := config.AppConfig.CoursesDir
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatalf("Failed to read courses directory %s: %v", dir, err)
	}

	var courses []*seedCourse
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", path, err)
		}

		course, err := parseCourseFile(string(data))
		if err != nil {
			log.Fatalf("Failed to parse %s: %v", path, err)
		}
		courses = append(courses, course)
		log.Printf("Parsed %s: %d modules", entry.Name(), len(course.Modules))
	}

	if len(courses) == 0 {
		log.Fatal("No course files found, nothing to import.")
	}

	wipeContent()
	insertCourses(courses)

	log.Printf("Import completed: %d courses.", len(courses))
}

// parseCourseFile walks the file line by line. Heading levels open a course,
// module or lesson; key: value lines attach to whichever is open; en:/ar:
// switch the lesson body bucket.
func parseCourseFile(content string) (*seedCourse, error) {
	course := &seedCourse{}

	var module *seedModule
	var lesson *seedLesson
	bodyLang := ""

	flushBody := func(text string) {
		if lesson == nil {
			return
		}
		switch bodyLang {
		case "en":
			lesson.ContentEn += text
		case "ar":
			lesson.ContentAr += text
		}
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "### "):
			if module == nil {
				return nil, errLessonOutsideModule
			}
			titleEn, titleAr := splitBilingual(strings.TrimPrefix(trimmed, "### "))
			lesson = &seedLesson{}
			lesson.TitleEn = titleEn
			lesson.TitleAr = titleAr
			lesson.OrderIndex = len(module.Lessons) + 1
			bodyLang = ""
			module.Lessons = append(module.Lessons, lesson)

		case strings.HasPrefix(trimmed, "## "):
			titleEn, titleAr := splitBilingual(strings.TrimPrefix(trimmed, "## "))
			module = &seedModule{}
			module.TitleEn = titleEn
			module.TitleAr = titleAr
			module.OrderIndex = len(course.Modules) + 1
			lesson = nil
			bodyLang = ""
			course.Modules = append(course.Modules, module)

		case strings.HasPrefix(trimmed, "# "):
			titleEn, titleAr := splitBilingual(strings.TrimPrefix(trimmed, "# "))
			course.TitleEn = titleEn
			course.TitleAr = titleAr

		case trimmed == "en:":
			bodyLang = "en"

		case trimmed == "ar:":
			bodyLang = "ar"

		case bodyLang != "" && lesson != nil:
			flushBody(line + "\n")

		case strings.Contains(trimmed, ":"):
			parts := strings.SplitN(trimmed, ":", 2)
			applyField(course, module, lesson, strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		}
	}

	if course.Slug == "" {
		course.Slug = utils.Slugify(course.TitleEn)
	}
	for _, m := range course.Modules {
		for _, l := range m.Lessons {
			if l.Slug == "" {
				l.Slug = utils.Slugify(l.TitleEn)
			}
		}
	}

	return course, nil
}

var errLessonOutsideModule = &parseError{"lesson heading before any module heading"}

type parseError struct{ msg string }

func (e *parseError) Error() string { return e.msg }

func splitBilingual(title string) (string, string) {
	parts := strings.SplitN(title, "|", 2)
	en := strings.TrimSpace(parts[0])
	ar := ""
	if len(parts) == 2 {
		ar = strings.TrimSpace(parts[1])
	}
	return en, ar
}

func applyField(course *seedCourse, module *seedModule, lesson *seedLesson, key, value string) {
	switch {
	case lesson != nil:
		switch key {
		case "slug":
			lesson.Slug = value
		case "minutes":
			if minutes, err := strconv.Atoi(value); err == nil {
				lesson.EstimatedMinutes = minutes
			}
		case "video":
			lesson.VideoURL = value
		case "published":
			lesson.IsPublished = value == "true"
		}
	case module != nil:
		switch key {
		case "description_en":
			module.DescriptionEn = value
		case "description_ar":
			module.DescriptionAr = value
		}
	default:
		switch key {
		case "slug":
			course.Slug = value
		case "order":
			if order, err := strconv.Atoi(value); err == nil {
				course.OrderIndex = order
			}
		case "published":
			course.IsPublished = value == "true"
		case "cover":
			course.CoverImageURL = value
		case "description_en":
			course.DescriptionEn = value
		case "description_ar":
			course.DescriptionAr = value
		}
	}
}

// wipeContent removes all content rows and their progress records
func wipeContent() {
	db := database.Database.Db

	log.Println("Wiping existing content...")

	if err := db.Unscoped().Where("1 = 1").Delete(&courseModels.LessonProgress{}).Error; err != nil {
		log.Fatalf("Failed to wipe progress records: %v", err)
	}
	if err := db.Unscoped().Where("1 = 1").Delete(&courseModels.Lesson{}).Error; err != nil {
		log.Fatalf("Failed to wipe lessons: %v", err)
	}
	if err := db.Unscoped().Where("1 = 1").Delete(&courseModels.Module{}).Error; err != nil {
		log.Fatalf("Failed to wipe modules: %v", err)
	}
	if err := db.Unscoped().Where("1 = 1").Delete(&courseModels.Course{}).Error; err != nil {
		log.Fatalf("Failed to wipe courses: %v", err)
	}
}

func insertCourses(courses []*seedCourse) {
	db := database.Database.Db

	for i, course := range courses {
		if course.OrderIndex == 0 {
			course.OrderIndex = i + 1
		}
		if err := db.Create(&course.Course).Error; err != nil {
			log.Fatalf("Failed to insert course %s: %v", course.Slug, err)
		}

		for _, module := range course.Modules {
			module.CourseID = course.Course.ID
			if err := db.Create(&module.Module).Error; err != nil {
				log.Fatalf("Failed to insert module %s: %v", module.TitleEn, err)
			}

			for _, lesson := range module.Lessons {
				lesson.ModuleID = module.Module.ID
				if err := db.Create(&lesson.Lesson).Error; err != nil {
					log.Fatalf("Failed to insert lesson %s: %v", lesson.Slug, err)
				}
			}
		}
	}
}
