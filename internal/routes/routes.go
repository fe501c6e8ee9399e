package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/semprecheioapp/semprecheio-api/internal/audit"
	"github.com/semprecheioapp/semprecheio-api/internal/backup"
	"github.com/semprecheioapp/semprecheio-api/internal/billing"
	"github.com/semprecheioapp/semprecheio-api/internal/config"
	"github.com/semprecheioapp/semprecheio-api/internal/handlers"
	"github.com/semprecheioapp/semprecheio-api/internal/middleware"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

func RegisterRoutes(r *gin.Engine, store storage.Storage, cfg *config.Config, log *zap.Logger) {

	// ------------------------------
	// Global middleware
	// ------------------------------
	r.Use(middleware.CORSMiddleware())

	// ------------------------------
	// Shared services
	// ------------------------------
	auditDispatcher := audit.NewDispatcher(audit.New(store), log)

	var uploader backup.Uploader
	if s3u := backup.NewS3Uploader(cfg); s3u != nil {
		uploader = s3u
	}
	backupService := backup.NewService(store, uploader, log)

	checkout, err := billing.NewCheckout(store, cfg)
	if err != nil {
		log.Fatal("billing setup failed", zap.Error(err))
	}

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(store, cfg)
	clientHandler := handlers.NewClientHandler(store, auditDispatcher)
	professionalHandler := handlers.NewProfessionalHandler(store, auditDispatcher)
	specialtyHandler := handlers.NewSpecialtyHandler(store)
	serviceHandler := handlers.NewServiceHandler(store)
	appointmentHandler := handlers.NewAppointmentHandler(store, auditDispatcher)
	customerHandler := handlers.NewCustomerHandler(store)
	connectionHandler := handlers.NewConnectionHandler(store, cfg)
	availabilityHandler := handlers.NewAvailabilityHandler(store)
	billingHandler := handlers.NewBillingHandler(store, checkout)
	backupHandler := handlers.NewBackupHandler(backupService)
	mediaHandler := handlers.NewMediaHandler(store, uploader)
	auditLogsHandler := handlers.NewAuditLogsHandler(store)
	portalHandler := handlers.NewPortalHandler(store)

	api := r.Group("/api")
	{
		// ------------------------------
		// Auth
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/user", authHandler.GetUser)
		api.POST("/auth/logout", authHandler.Logout)
		api.POST("/auth/client/login", authHandler.ClientLogin)

		// ------------------------------
		// Admin API (session cookie)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.SessionAuth(store))
		{
			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.POST("/clients", clientHandler.Create)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)
			secured.POST("/clients/:id/logo", mediaHandler.UploadLogo)

			secured.GET("/professionals", professionalHandler.List)
			secured.GET("/professionals/:id", professionalHandler.Get)
			secured.POST("/professionals", professionalHandler.Create)
			secured.PUT("/professionals/:id", professionalHandler.Update)
			secured.DELETE("/professionals/:id", professionalHandler.Delete)

			secured.GET("/specialties", specialtyHandler.List)
			secured.GET("/specialties/:id", specialtyHandler.Get)
			secured.POST("/specialties", specialtyHandler.Create)
			secured.PUT("/specialties/:id", specialtyHandler.Update)
			secured.DELETE("/specialties/:id", specialtyHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.POST("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/customers", customerHandler.List)
			secured.GET("/customers/:id", customerHandler.Get)
			secured.POST("/customers", customerHandler.Create)
			secured.PUT("/customers/:id", customerHandler.Update)
			secured.DELETE("/customers/:id", customerHandler.Delete)

			secured.GET("/connections", connectionHandler.List)
			secured.GET("/connections/client-by-instance", connectionHandler.ClientByInstance)
			secured.GET("/connections/:id", connectionHandler.Get)
			secured.GET("/connections/:id/validate", connectionHandler.Validate)
			secured.POST("/connections", connectionHandler.Create)
			secured.PUT("/connections/:id", connectionHandler.Update)
			secured.DELETE("/connections/:id", connectionHandler.Delete)

			secured.GET("/availability", availabilityHandler.List)
			secured.GET("/availability/:id", availabilityHandler.Get)
			secured.POST("/availability", availabilityHandler.Create)
			secured.PUT("/availability/:id", availabilityHandler.Update)
			secured.DELETE("/availability/:id", availabilityHandler.Delete)
			secured.POST("/availability/monthly", availabilityHandler.UpdateMonthly)
			secured.POST("/availability/generate-next-month", availabilityHandler.GenerateNextMonth)

			secured.GET("/plans", billingHandler.ListPlans)
			secured.GET("/plans/:id", billingHandler.GetPlan)
			secured.POST("/plans", billingHandler.CreatePlan)
			secured.GET("/subscriptions", billingHandler.ListSubscriptions)
			secured.GET("/subscriptions/:id", billingHandler.GetSubscription)
			secured.POST("/subscriptions", billingHandler.CreateSubscription)
			secured.GET("/invoices", billingHandler.ListInvoices)
			secured.GET("/payments", billingHandler.ListPayments)
			secured.POST("/billing/checkout", billingHandler.Checkout)

			secured.POST("/backups", backupHandler.Run)
			secured.GET("/backups", backupHandler.History)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}

		// ------------------------------
		// Tenant portal (bearer token)
		// ------------------------------
		portal := api.Group("/portal")
		portal.Use(middleware.ClientAuth(cfg))
		{
			portal.GET("/me", portalHandler.Me)
			portal.GET("/appointments", portalHandler.Appointments)
			portal.GET("/professionals", portalHandler.Professionals)
		}
	}
}
