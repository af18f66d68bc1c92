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
	authValidator "talim/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &courseModels.LessonProgress{}))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/webhook/auth", middleware.WebhookSecretMiddleware, authValidator.WebhookEvent(), SyncUser)
	app.Get("/user/me", middleware.JWTMiddleware, GetProfile)

	return app
}

func postWebhook(t *testing.T, app *fiber.App, secret string, payload map[string]interface{}) (int, map[string]interface{}) {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/webhook/auth", bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("X-Webhook-Secret", secret)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func userEvent(eventType, id, email string) map[string]interface{} {
	return map[string]interface{}{
		"type": eventType,
		"data": map[string]interface{}{
			"id":         id,
			"email":      email,
			"name":       "Layla Hassan",
			"avatar_url": "https://img.example.com/layla.png",
		},
	}
}

func TestWebhookCreatesUser(t *testing.T) {
	app := setupApp(t)
	secret := config.AppConfig.WebhookSecret

	code, _ := postWebhook(t, app, secret, userEvent("user.created", "user_abc123", "layla@example.com"))
	assert.Equal(t, fiber.StatusCreated, code)

	var user models.User
	require.NoError(t, database.Database.Db.Where("clerk_id = ?", "user_abc123").First(&user).Error)
	assert.Equal(t, "layla@example.com", user.Email)
	assert.Equal(t, "STUDENT", user.Role)
}

func TestWebhookUpsertPatchesExisting(t *testing.T) {
	app := setupApp(t)
	secret := config.AppConfig.WebhookSecret

	postWebhook(t, app, secret, userEvent("user.created", "user_abc123", "layla@example.com"))

	// Same external id again: patch, not duplicate
	code, _ := postWebhook(t, app, secret, userEvent("user.updated", "user_abc123", "layla.h@example.com"))
	assert.Equal(t, fiber.StatusOK, code)

	var count int64
	database.Database.Db.Model(&models.User{}).Where("clerk_id = ?", "user_abc123").Count(&count)
	assert.Equal(t, int64(1), count)

	var user models.User
	require.NoError(t, database.Database.Db.Where("clerk_id = ?", "user_abc123").First(&user).Error)
	assert.Equal(t, "layla.h@example.com", user.Email)
}

func TestWebhookDeleteCascadesProgress(t *testing.T) {
	app := setupApp(t)
	secret := config.AppConfig.WebhookSecret

	postWebhook(t, app, secret, userEvent("user.created", "user_abc123", "layla@example.com"))

	var user models.User
	require.NoError(t, database.Database.Db.Where("clerk_id = ?", "user_abc123").First(&user).Error)

	record := courseModels.LessonProgress{UserID: user.ID, LessonID: 42, Status: courseModels.StatusStarted, StartedAt: time.Now()}
	require.NoError(t, database.Database.Db.Create(&record).Error)

	code, _ := postWebhook(t, app, secret, userEvent("user.deleted", "user_abc123", ""))
	assert.Equal(t, fiber.StatusOK, code)

	var count int64
	database.Database.Db.Model(&courseModels.LessonProgress{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// The user record is tombstoned
	err := database.Database.Db.Where("clerk_id = ? AND is_deleted = ?", "user_abc123", false).First(&user).Error
	assert.Error(t, err)
}

func TestWebhookRejectsBadSecret(t *testing.T) {
	app := setupApp(t)

	code, _ := postWebhook(t, app, "wrong-secret", userEvent("user.created", "user_abc123", "layla@example.com"))
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestWebhookRejectsUnknownEvent(t *testing.T) {
	app := setupApp(t)
	secret := config.AppConfig.WebhookSecret

	code, _ := postWebhook(t, app, secret, userEvent("user.exploded", "user_abc123", "layla@example.com"))
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
}

func TestGetProfile(t *testing.T) {
	app := setupApp(t)
	secret := config.AppConfig.WebhookSecret

	postWebhook(t, app, secret, userEvent("user.created", "user_abc123", "layla@example.com"))

	var user models.User
	require.NoError(t, database.Database.Db.Where("clerk_id = ?", "user_abc123").First(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/user/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "layla@example.com", data["email"])
}
