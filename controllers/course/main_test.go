package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"talim/config"
	"talim/database"
	"talim/middleware"
	"talim/models"
	courseModels "talim/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp prepares an in-memory database and a fiber app with the learner
// and admin routes wired the same way the routers do
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Lesson{},
		&courseModels.LessonProgress{},
	))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()

	app.Get("/course/list", middleware.JWTMiddleware, GetAllCourses)
	app.Get("/course/:slug", middleware.JWTMiddleware, GetCourseDetails)
	app.Get("/course/:slug/progress", middleware.JWTMiddleware, GetCourseProgress)

	app.Get("/lesson/:slug", middleware.JWTMiddleware, GetLessonDetails)
	app.Post("/lesson/:slug/start", middleware.JWTMiddleware, StartLesson)
	app.Post("/lesson/:slug/complete", middleware.JWTMiddleware, CompleteLesson)
	app.Post("/lesson/:slug/reset", middleware.JWTMiddleware, ResetLesson)

	app.Get("/dashboard/stats", middleware.JWTMiddleware, GetUserStats)
	app.Get("/dashboard/courses", middleware.JWTMiddleware, GetUserCourses)
	app.Get("/dashboard/activity", middleware.JWTMiddleware, GetRecentActivity)
	app.Get("/dashboard/continue", middleware.JWTMiddleware, GetContinueLearning)
	app.Get("/dashboard/progress", middleware.JWTMiddleware, GetOverallProgress)

	app.Delete("/admin/course/:id", middleware.JWTMiddleware, courseIDParam, AdminDeleteCourse)
	app.Delete("/admin/module/:id", middleware.JWTMiddleware, moduleIDParam, AdminDeleteModule)
	app.Delete("/admin/lesson/:id", middleware.JWTMiddleware, lessonIDParam, AdminDeleteLesson)

	return app
}

// Param shims standing in for the validator middlewares, which live in a
// package that imports this one
func courseIDParam(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}
	c.Locals("courseID", id)
	return c.Next()
}

func moduleIDParam(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module ID!", nil)
	}
	c.Locals("moduleID", id)
	return c.Next()
}

func lessonIDParam(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID!", nil)
	}
	c.Locals("lessonID", id)
	return c.Next()
}

func createTestUser(t *testing.T, role string) (models.User, string) {
	t.Helper()

	user := models.User{
		ClerkID: "user_" + uuid.NewString()[:8],
		Email:   uuid.NewString()[:8] + "@example.com",
		Name:    "Test User",
		Role:    role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	return user, "Bearer " + token
}

// webFixture is the canonical test course: 2 modules, 2 published lessons each
type webFixture struct {
	Course  courseModels.Course
	Module1 courseModels.Module
	Module2 courseModels.Module
	Lessons []courseModels.Lesson // lesson-1..lesson-4 in document order
}

func seedWebFoundations(t *testing.T) webFixture {
	t.Helper()
	db := database.Database.Db

	fx := webFixture{
		Course: courseModels.Course{
			Slug:        "web-foundations",
			TitleEn:     "Web Foundations",
			TitleAr:     "أساسيات الويب",
			OrderIndex:  1,
			IsPublished: true,
		},
	}
	require.NoError(t, db.Create(&fx.Course).Error)

	fx.Module1 = courseModels.Module{CourseID: fx.Course.ID, TitleEn: "HTML", TitleAr: "HTML", OrderIndex: 1}
	fx.Module2 = courseModels.Module{CourseID: fx.Course.ID, TitleEn: "CSS", TitleAr: "CSS", OrderIndex: 2}
	require.NoError(t, db.Create(&fx.Module1).Error)
	require.NoError(t, db.Create(&fx.Module2).Error)

	for i := 1; i <= 4; i++ {
		moduleID := fx.Module1.ID
		order := i
		if i > 2 {
			moduleID = fx.Module2.ID
			order = i - 2
		}
		lesson := courseModels.Lesson{
			ModuleID:         moduleID,
			Slug:             fmt.Sprintf("lesson-%d", i),
			TitleEn:          fmt.Sprintf("Lesson %d", i),
			TitleAr:          fmt.Sprintf("الدرس %d", i),
			EstimatedMinutes: 10,
			OrderIndex:       order,
			IsPublished:      true,
		}
		require.NoError(t, db.Create(&lesson).Error)
		fx.Lessons = append(fx.Lessons, lesson)
	}

	return fx
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	return resp.StatusCode, result
}

func dataMap(t *testing.T, result map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := result["data"].(map[string]interface{})
	require.True(t, ok, "expected data object, got %v", result["data"])
	return data
}

func testDB() *gorm.DB {
	return database.Database.Db
}

func progressCount(t *testing.T, userID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.Database.Db.Model(&courseModels.LessonProgress{}).
		Where("user_id = ?", userID).Count(&count).Error)
	return count
}

func insertProgress(t *testing.T, userID, lessonID uint, status string, startedAt time.Time, completedAt *time.Time) courseModels.LessonProgress {
	t.Helper()
	record := courseModels.LessonProgress{
		UserID:      userID,
		LessonID:    lessonID,
		Status:      status,
		StartedAt:   startedAt,
		CompletedAt: completedAt,
	}
	require.NoError(t, database.Database.Db.Create(&record).Error)
	return record
}
