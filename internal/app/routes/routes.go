package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartschool/backend/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	galleryController *controllers.GalleryController,
	heroSlideController *controllers.HeroSlideController,
	facultyController *controllers.FacultyController,
	courseController *controllers.CourseController,
	admissionController *controllers.AdmissionController,
	contactController *controllers.ContactController,
	noticeController *controllers.NoticeController,
	eventController *controllers.EventController,
	reviewController *controllers.ReviewController,
) {
	// Home banner, kept for uptime probes pointed at the root path
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "School Backend Running Successfully")
	})

	api := router.Group("/api")

	api.POST("/login", authController.Login)

	gallery := api.Group("/gallery")
	{
		gallery.GET("", galleryController.List)
		gallery.POST("", galleryController.Create)
		gallery.DELETE("/:id", galleryController.Delete)
	}

	heroSlides := api.Group("/hero-slides")
	{
		heroSlides.GET("", heroSlideController.List)
		heroSlides.POST("", heroSlideController.Create)
		heroSlides.PUT("/:id", heroSlideController.Update)
		heroSlides.DELETE("/:id", heroSlideController.Delete)
	}

	faculty := api.Group("/faculty")
	{
		faculty.GET("", facultyController.List)
		faculty.POST("", facultyController.Create)
		faculty.PUT("/:id", facultyController.Update)
		faculty.DELETE("/:id", facultyController.Delete)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", courseController.List)
		courses.POST("", courseController.Create)
		courses.PUT("/:id", courseController.Update)
		courses.DELETE("/:id", courseController.Delete)
	}

	admissions := api.Group("/admissions")
	{
		admissions.GET("", admissionController.List)
		admissions.POST("", admissionController.Create)
		admissions.PUT("/:id/status", admissionController.SetStatus)
		admissions.DELETE("/:id", admissionController.Delete)
	}

	contacts := api.Group("/contacts")
	{
		contacts.GET("", contactController.List)
		contacts.POST("", contactController.Create)
		contacts.PUT("/:id/status", contactController.SetStatus)
		contacts.DELETE("/:id", contactController.Delete)
	}

	notices := api.Group("/notices")
	{
		notices.GET("", noticeController.List)
		notices.GET("/all", noticeController.ListAll)
		notices.POST("", noticeController.Create)
		notices.PUT("/:id", noticeController.Update)
		notices.DELETE("/:id", noticeController.Delete)
	}

	events := api.Group("/events")
	{
		events.GET("", eventController.List)
		events.POST("", eventController.Create)
		events.DELETE("/:id", eventController.Delete)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", reviewController.List)
		reviews.GET("/all", reviewController.ListAll)
		reviews.POST("", reviewController.Create)
		reviews.PUT("/:id/approve", reviewController.Approve)
		reviews.DELETE("/:id", reviewController.Delete)
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
