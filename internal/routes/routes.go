package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/ericmelomp/PetFacil/internal/audit"
	"github.com/ericmelomp/PetFacil/internal/config"
	"github.com/ericmelomp/PetFacil/internal/handlers"
	infraRepo "github.com/ericmelomp/PetFacil/internal/infra/repository"
	"github.com/ericmelomp/PetFacil/internal/middleware"
	"github.com/ericmelomp/PetFacil/internal/timezone"
	ucBilling "github.com/ericmelomp/PetFacil/internal/usecase/billing"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.ShopTimezone)

	billingRepo := infraRepo.NewBillingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BILLING
	// ======================================================
	generateReportUC := ucBilling.NewGenerateReport(billingRepo, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(db, auditDispatcher, loc)
	billingHandler := handlers.NewBillingHandler(generateReportUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// OBSERVABILITY
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/billing", authHandler.BillingLogin)

		// ------------------------------
		// SERVICES
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.PUT("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Delete)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

		// ------------------------------
		// BILLING (protegido)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.BillingAuthMiddleware(cfg))
		{
			secured.GET("/billing", billingHandler.GetReport)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
