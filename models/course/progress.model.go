package course

import "time"

// Progress status values
const (
	StatusStarted   = "STARTED"
	StatusCompleted = "COMPLETED"
)

// LessonProgress tracks a user's progress on a single lesson.
// No soft delete here: reset and cascades remove the row outright, so the
// unique (user, lesson) index never blocks a restart.
type LessonProgress struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	LessonID    uint       `json:"lesson_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	Status      string     `json:"status" gorm:"default:'STARTED'"` // STARTED, COMPLETED
	StartedAt   time.Time  `json:"started_at"`                      // Set once, never overwritten
	CompletedAt *time.Time `json:"completed_at"`                    // Refreshed on repeat completion
}
