package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ClerkID   string `json:"clerk_id" gorm:"uniqueIndex;not null"` // external auth provider id
	Email     string `json:"email" gorm:"not null"`
	Name      string `json:"name" gorm:"default:''"`
	AvatarURL string `json:"avatar_url" gorm:"default:''"`
	Role      string `json:"role" gorm:"default:'STUDENT'"` // STUDENT, ADMIN
	IsDeleted bool   `gorm:"default:false"`
}
