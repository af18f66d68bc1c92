package courseRoutes

import (
	controllers "talim/controllers/course"
	"talim/middleware"
	validators "talim/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up admin content-management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Get("/course/list", middleware.JWTMiddleware, controllers.AdminGetAllCourses)
	adminGroup.Get("/course/:id", middleware.JWTMiddleware, validators.CourseIDParam(), controllers.AdminGetCourseDetails)
	adminGroup.Post("/course", middleware.JWTMiddleware, validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Put("/course/:id", middleware.JWTMiddleware, validators.UpdateCourse(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/course/:id", middleware.JWTMiddleware, validators.CourseIDParam(), controllers.AdminDeleteCourse)

	adminGroup.Post("/module", middleware.JWTMiddleware, validators.CreateModule(), controllers.AdminCreateModule)
	adminGroup.Put("/module/:id", middleware.JWTMiddleware, validators.UpdateModule(), controllers.AdminUpdateModule)
	adminGroup.Delete("/module/:id", middleware.JWTMiddleware, validators.ModuleIDParam(), controllers.AdminDeleteModule)

	adminGroup.Post("/lesson", middleware.JWTMiddleware, validators.CreateLesson(), controllers.AdminCreateLesson)
	adminGroup.Put("/lesson/:id", middleware.JWTMiddleware, validators.UpdateLesson(), controllers.AdminUpdateLesson)
	adminGroup.Delete("/lesson/:id", middleware.JWTMiddleware, validators.LessonIDParam(), controllers.AdminDeleteLesson)
}
