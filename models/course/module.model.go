package course

import "gorm.io/gorm"

// Module represents a section/module within a course
type Module struct {
	gorm.Model
	CourseID      uint   `json:"course_id" gorm:"index;not null"`
	TitleEn       string `json:"title_en"`
	TitleAr       string `json:"title_ar"`
	DescriptionEn string `json:"description_en" gorm:"type:text"`
	DescriptionAr string `json:"description_ar" gorm:"type:text"`
	OrderIndex    int    `json:"order_index" gorm:"default:0"` // Module order in course
	IsDeleted     bool   `gorm:"default:false"`
}
