package courseRoutes

import (
	controllers "talim/controllers/course"
	"talim/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all learner-facing course, lesson and dashboard routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog and course details (published content only)
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/:slug", middleware.JWTMiddleware, controllers.GetCourseDetails)
	courseGroup.Get("/:slug/progress", middleware.JWTMiddleware, controllers.GetCourseProgress)

	// Lesson content and the progress state machine
	lessonGroup := app.Group("/lesson")
	lessonGroup.Get("/:slug", middleware.JWTMiddleware, controllers.GetLessonDetails)
	lessonGroup.Post("/:slug/start", middleware.JWTMiddleware, controllers.StartLesson)
	lessonGroup.Post("/:slug/complete", middleware.JWTMiddleware, controllers.CompleteLesson)
	lessonGroup.Post("/:slug/reset", middleware.JWTMiddleware, controllers.ResetLesson)

	// Dashboard aggregation views
	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Get("/stats", middleware.JWTMiddleware, controllers.GetUserStats)
	dashboardGroup.Get("/courses", middleware.JWTMiddleware, controllers.GetUserCourses)
	dashboardGroup.Get("/activity", middleware.JWTMiddleware, controllers.GetRecentActivity)
	dashboardGroup.Get("/continue", middleware.JWTMiddleware, controllers.GetContinueLearning)
	dashboardGroup.Get("/progress", middleware.JWTMiddleware, controllers.GetOverallProgress)
}
