package router

import (
	"github.com/gin-gonic/gin"

	"fhsis/internal/domain"
	"fhsis/internal/handler"
	"fhsis/internal/middleware"
	"fhsis/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	corsOrigins []string,
	authH *handler.AuthHandler,
	statusH *handler.ReportStatusHandler,
	reportH *handler.ReportHandler,
	exportH *handler.ExportHandler,
	lookupH *handler.LookupHandler,
	apptH *handler.AppointmentHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	api := r.Group("/api")

	// Public routes: login, citizen booking and the reference tables the
	// public booking form needs.
	api.POST("/login", authH.Login)
	api.POST("/refresh", authH.Refresh)
	api.GET("/appointment-categories", apptH.Categories)
	api.POST("/appointments", apptH.Book)
	api.GET("/barangays", lookupH.Barangays)

	// Protected routes - require valid JWT
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.POST("/logout", authH.Logout)

	// Reference tables the report forms bind to
	protected.GET("/age-categories", lookupH.AgeCategories)
	protected.GET("/fp-methods", lookupH.FPMethods)
	protected.GET("/services", lookupH.Services)
	protected.GET("/diseases", lookupH.Diseases)
	protected.GET("/indicators", lookupH.Indicators)

	// Submission workflow
	protected.POST("/statuses/open", statusH.Open)
	protected.POST("/statuses/submit/report", statusH.Submit)

	// Consolidated report reads
	protected.POST("/family-planning-reports", reportH.FamilyPlanningFlat)
	protected.POST("/family-planning-reports/filtered", reportH.FamilyPlanningFiltered)
	protected.POST("/wra-reports", reportH.WRAFlat)
	protected.POST("/wra-reports/filtered", reportH.WRAFiltered)
	protected.POST("/service-data-reports", reportH.ServiceData)
	protected.POST("/morbidity-reports/filtered", reportH.MorbidityFiltered)

	// Form exports
	protected.GET("/reports/m1/export", exportH.ExportM1)
	protected.GET("/reports/m2/export", exportH.ExportM2)

	// Appointment management
	protected.GET("/appointments", apptH.List)
	protected.PATCH("/appointments/:id/status", middleware.RequireRole(domain.RoleAdmin), apptH.UpdateStatus)

	// Admin review and period administration
	admin := protected.Group("")
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/submissions", statusH.Overview)
	admin.PATCH("/statuses/:id/approval", statusH.SetApproval)
	admin.POST("/submission-templates", statusH.CreateTemplate)

	return r
}
