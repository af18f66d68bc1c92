package course

import "gorm.io/gorm"

// Course represents a learning course with bilingual content
type Course struct {
	gorm.Model
	Slug          string `json:"slug" gorm:"uniqueIndex;not null"`
	TitleEn       string `json:"title_en"`
	TitleAr       string `json:"title_ar"`
	DescriptionEn string `json:"description_en" gorm:"type:text"`
	DescriptionAr string `json:"description_ar" gorm:"type:text"`
	OrderIndex    int    `json:"order_index" gorm:"default:0"` // Catalog display order
	CoverImageURL string `json:"cover_image_url"`
	IsPublished   bool   `json:"is_published" gorm:"default:false"`
	IsDeleted     bool   `gorm:"default:false"`
}
