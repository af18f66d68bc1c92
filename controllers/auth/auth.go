package controllers

import (
	"log"

	"talim/database"
	"talim/middleware"
	"talim/models"
	courseModels "talim/models/course"

	"github.com/gofiber/fiber/v2"
)

// SyncUser handles the auth provider's webhook: create-if-absent or patch on
// user.created/user.updated, delete with progress cascade on user.deleted.
// Upserts are keyed by the provider's external id.
func SyncUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedWebhook").(*struct {
		Type string `json:"type"`
		Data struct {
			ID        string `json:"id"`
			Email     string `json:"email"`
			Name      string `json:"name"`
			AvatarURL string `json:"avatar_url"`
		} `json:"data"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	switch reqData.Type {
	case "user.created", "user.updated":
		var user models.User
		if err := db.Where("clerk_id = ?", reqData.Data.ID).First(&user).Error; err == nil {
			// Patch mutable profile fields only
			user.Email = reqData.Data.Email
			user.Name = reqData.Data.Name
			user.AvatarURL = reqData.Data.AvatarURL
			user.IsDeleted = false
			if err := db.Save(&user).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", user)
		}

		user = models.User{
			ClerkID:   reqData.Data.ID,
			Email:     reqData.Data.Email,
			Name:      reqData.Data.Name,
			AvatarURL: reqData.Data.AvatarURL,
			Role:      "STUDENT",
		}
		if err := db.Create(&user).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", user)

	case "user.deleted":
		var user models.User
		if err := db.Where("clerk_id = ? AND is_deleted = ?", reqData.Data.ID, false).First(&user).Error; err != nil {
			// Already gone; nothing to do
			return middleware.JsonResponse(c, fiber.StatusOK, true, "User not found, nothing to delete.", nil)
		}

		if err := db.Where("user_id = ?", user.ID).Delete(&courseModels.LessonProgress{}).Error; err != nil {
			log.Printf("Failed to delete progress records for user %d: %v", user.ID, err)
		}

		user.IsDeleted = true
		if err := db.Save(&user).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unsupported event type!", nil)
}

// GetProfile returns the authenticated user's profile
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}
