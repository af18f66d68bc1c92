package controllers

import (
	"testing"

	courseModels "talim/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The end-to-end scenario: module 1 fully complete, lesson 3 started
func completeHalfCourse(t *testing.T, app *fiber.App, token string) {
	t.Helper()
	doRequest(t, app, "POST", "/lesson/lesson-1/complete", token, nil)
	doRequest(t, app, "POST", "/lesson/lesson-2/complete", token, nil)
	doRequest(t, app, "POST", "/lesson/lesson-3/start", token, nil)
}

func TestCourseProgressHalfComplete(t *testing.T) {
	app := setupApp(t)
	_, token := createTestUser(t, "STUDENT")
	seedWebFoundations(t)
	completeHalfCourse(t, app, token)

	code, result := doRequest(t, app, "GET", "/course/web-foundations/progress", token, nil)
	assert.Equal(t, fiber.StatusOK, code)

	data := dataMap(t, result)
	assert.Equal(t, float64(4), data["total_lessons"])
	assert.Equal(t, float64(2), data["completed_lessons"])
	assert.Equal(t, float64(50), data["percentage"])

	modules, ok := data["modules"].([]interface{})
	require.True(t, ok)
	require.Len(t, modules, 2)

	module1 := modules[0].(map[string]interface{})
	assert.Equal(t, float64(100), module1["percentage"])
	module2 := modules[1].(map[string]interface{})
	assert.Equal(t, float64(0), module2["percentage"])
}

func TestUserCoursesPointers(t *testing.T) {
	app := setupApp(t)
	_, token := createTestUser(t, "STUDENT")
	fx := seedWebFoundations(t)
	completeHalfCourse(t, app, token)

	_, result := doRequest(t, app, "GET", "/dashboard/courses", token, nil)
	data := dataMap(t, result)

	courses, ok := data["courses"].([]interface{})
	require.True(t, ok)
	require.Len(t, courses, 1)

	entry := courses[0].(map[string]interface{})
	assert.Equal(t, "web-foundations", entry["slug"])
	assert.Equal(t, float64(50), entry["percentage"])

	// Lesson 3 is both the first incomplete and the currently started lesson
	lesson3 := float64(fx.Lessons[2].ID)
	assert.Equal(t, lesson3, entry["first_incomplete_lesson_id"])
	assert.Equal(t, lesson3, entry["current_lesson_id"])
	assert.Equal(t, float64(fx.Module2.ID), entry["first_incomplete_module_id"])
}

func TestUserCoursesPointersDiverge(t *testing.T) {
	app := setupApp(t)
	_, token := createTestUser(t, "STUDENT")
	fx := seedWebFoundations(t)

	// Lesson 1 untouched, lesson 4 started: first incomplete is lesson 1,
	// current is lesson 4
	doRequest(t, app, "POST", "/lesson/lesson-4/start", token, nil)

	_, result := doRequest(t, app, "GET", "/dashboard/courses", token, nil)
	data := dataMap(t, result)

	courses := data["courses"].([]interface{})
	require.Len(t, courses, 1)

	entry := courses[0].(map[string]interface{})
	assert.Equal(t, float64(fx.Lessons[0].ID), entry["first_incomplete_lesson_id"])
	assert.Equal(t, float64(fx.Lessons[3].ID), entry["current_lesson_id"])
}

func TestCourseWithoutPublishedLessonsSkipped(t *testing.T) {
	app := setupApp(t)
	_, token := createTestUser(t, "STUDENT")
	db := testDB()

	empty := courseModels.Course{Slug: "drafts-only", TitleEn: "Drafts", TitleAr: "مسودات", OrderIndex: 1, IsPublished: true}
	require.NoError(t, db.Create(&empty).Error)

	module := courseModels.Module{CourseID: empty.ID, TitleEn: "Draft Module", OrderIndex: 1}
	require.NoError(t, db.Create(&module).Error)

	draft := courseModels.Lesson{ModuleID: module.ID, Slug: "draft-lesson", TitleEn: "Draft", OrderIndex: 1, IsPublished: false}
	require.NoError(t, db.Create(&draft).Error)

	// Skipped entirely from the course list
	_, result := doRequest(t, app, "GET", "/dashboard/courses", token, nil)
	courses := dataMap(t, result)["courses"].([]interface{})
	assert.Len(t, courses, 0)

	// Direct progress lookup reports zero without raising
	code, result := doRequest(t, app, "GET", "/course/drafts-only/progress", token, nil)
	assert.Equal(t, fiber.StatusOK, code)
	data := dataMap(t, result)
	assert.Equal(t, float64(0), data["total_lessons"])
	assert.Equal(t, float64(0), data["percentage"])

	// Never counted as completed in the overall rollup
	_, result = doRequest(t, app, "GET", "/dashboard/progress", token, nil)
	overall := dataMap(t, result)
	assert.Len(t, overall["courses"].([]interface{}), 0)
}

func TestPercentageRounding(t *testing.T) {
	app := setupApp(t)
	_, token := createTestUser(t, "STUDENT")
	db := testDB()

	course := courseModels.Course{Slug: "thirds", TitleEn: "Thirds", TitleAr: "أثلاث", OrderIndex: 1, IsPublished: true}
	require.NoError(t, db.Create(&course).Error)
	module := courseModels.Module{CourseID: course.ID, TitleEn: "Only", OrderIndex: 1}
	require.NoError(t, db.Create(&module).Error)

	slugs := []string{"third-1", "third-2", "third-3"}
	for i, slug := range slugs {
		lesson := courseModels.Lesson{ModuleID: module.ID, Slug: slug, TitleEn: slug, OrderIndex: i + 1, IsPublished: true}
		require.NoError(t, db.Create(&lesson).Error)
	}

	doRequest(t, app, "POST", "/lesson/third-1/complete", token, nil)

	_, result := doRequest(t, app, "GET", "/course/thirds/progress", token, nil)
	assert.Equal(t, float64(33), dataMap(t, result)["percentage"])

	doRequest(t, app, "POST", "/lesson/third-2/complete", token, nil)

	_, result = doRequest(t, app, "GET", "/course/thirds/progress", token, nil)
	assert.Equal(t, float64(67), dataMap(t, result)["percentage"])
}

func TestOverallProgressCompletion(t *testing.T) {
	app := setupApp(t)
	_, token := createTestUser(t, "STUDENT")
	seedWebFoundations(t)

	for _, slug := range []string{"lesson-1", "lesson-2", "lesson-3", "lesson-4"} {
		doRequest(t, app, "POST", "/lesson/"+slug+"/complete", token, nil)
	}

	_, result := doRequest(t, app, "GET", "/dashboard/progress", token, nil)
	data := dataMap(t, result)
	assert.Equal(t, float64(4), data["total_lessons"])
	assert.Equal(t, float64(4), data["completed_lessons"])
	assert.Equal(t, float64(100), data["percentage"])

	courses := data["courses"].([]interface{})
	require.Len(t, courses, 1)
	entry := courses[0].(map[string]interface{})
	assert.Equal(t, true, entry["is_completed"])
	assert.NotNil(t, entry["completed_at"])
}

func TestOverallProgressPartial(t *testing.T) {
	app := setupApp(t)
	_, token := createTestUser(t, "STUDENT")
	seedWebFoundations(t)
	completeHalfCourse(t, app, token)

	_, result := doRequest(t, app, "GET", "/dashboard/progress", token, nil)
	data := dataMap(t, result)

	courses := data["courses"].([]interface{})
	require.Len(t, courses, 1)
	entry := courses[0].(map[string]interface{})
	assert.Equal(t, false, entry["is_completed"])
	// completedAt only populated when the whole course is complete
	assert.Nil(t, entry["completed_at"])
}

func TestUnpublishedLessonExcludedFromMath(t *testing.T) {
	app := setupApp(t)
	_, token := createTestUser(t, "STUDENT")
	fx := seedWebFoundations(t)
	db := testDB()

	// A draft lesson in module 2 must not change learner-facing counts
	draft := courseModels.Lesson{ModuleID: fx.Module2.ID, Slug: "draft-extra", TitleEn: "Draft", OrderIndex: 3, IsPublished: false}
	require.NoError(t, db.Create(&draft).Error)

	_, result := doRequest(t, app, "GET", "/course/web-foundations/progress", token, nil)
	assert.Equal(t, float64(4), dataMap(t, result)["total_lessons"])
}
