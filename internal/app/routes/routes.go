package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rosnMagar/RateMyClass/internal/app/controllers"
	"github.com/rosnMagar/RateMyClass/internal/app/models"
	"github.com/rosnMagar/RateMyClass/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	schoolController *controllers.SchoolController,
	courseController *controllers.CourseController,
	ratingController *controllers.RatingController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	schools := router.Group("/schools")
	{
		schools.GET("", schoolController.GetAllSchools)
		schools.GET("/:id/courses", schoolController.GetSchoolCourses)
	}

	courses := router.Group("/courses")
	{
		courses.GET("", courseController.SearchCourses)
		courses.GET("/:id", courseController.GetCourse)
		courses.GET("/:id/detail", courseController.GetCourseDetail)
	}

	// Ratings are open to anonymous users
	router.POST("/ratings", ratingController.CreateRating)

	auth := router.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Admin routes ---
	// Course creation requires a valid token with the admin role; the
	// client-side gate is cosmetic, this is the real check.
	adminCourses := router.Group("/courses")
	adminCourses.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		adminCourses.POST("", courseController.CreateCourse)
	}
}
