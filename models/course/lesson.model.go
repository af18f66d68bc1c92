package course

import "gorm.io/gorm"

// Lesson represents a single lesson within a module
type Lesson struct {
	gorm.Model
	ModuleID         uint   `json:"module_id" gorm:"index;not null"`
	Slug             string `json:"slug" gorm:"uniqueIndex;not null"` // Global, used for direct navigation
	TitleEn          string `json:"title_en"`
	TitleAr          string `json:"title_ar"`
	ContentEn        string `json:"content_en" gorm:"type:text"`
	ContentAr        string `json:"content_ar" gorm:"type:text"`
	VideoURL         string `json:"video_url"`
	EstimatedMinutes int    `json:"estimated_minutes" gorm:"default:0"` // 0 means not set
	OrderIndex       int    `json:"order_index" gorm:"default:0"`       // Lesson order in module
	IsPublished      bool   `json:"is_published" gorm:"default:false"`
	IsDeleted        bool   `gorm:"default:false"`
}
