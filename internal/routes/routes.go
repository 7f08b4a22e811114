// Package routes wires repositories, services, and handlers onto the fiber
// app.
package routes

import (
	"finlytics/internal/config"
	"finlytics/internal/handlers"
	"finlytics/internal/middleware"
	"finlytics/internal/repositories"
	"finlytics/internal/services/pipeline"
	"finlytics/internal/services/report"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes, grouped by concern:
// open reporting/analytics reads and a JWT-guarded ETL surface.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	reportRepo := repositories.NewReportRepository(db)
	reportService := report.NewService(reportRepo, repositories.CacheService)

	pipelineService := pipeline.NewService(repositories.NewBatchSink(db))

	etlHandler := handlers.NewETLHandler(pipelineService, repositories.InitReportingSchema, reportService)
	reportHandler := handlers.NewReportHandler(reportService)
	analyticsHandler := handlers.NewAnalyticsHandler(reportService)
	healthHandler := handlers.NewHealthHandler(db, repositories.CacheService)

	authMiddleware := middleware.NewAuthMiddleware(config.GetEnv("JWT_SECRET", "finlytics"))

	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Financial Payments Analytics & Risk Monitoring API",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"analytics": "/api/analytics/*",
				"reports":   "/api/reports/*",
				"etl":       "/api/etl/*",
			},
		})
	})
	api.Get("/health", healthHandler.Check)

	etl := api.Group("/etl", authMiddleware.Handler)
	etl.Post("/initialize", etlHandler.Initialize)
	etl.Post("/run", etlHandler.Run)

	reports := api.Group("/reports")
	reports.Get("/daily-summary", reportHandler.DailySummary)
	reports.Get("/failed-payments", reportHandler.FailedPayments)
	reports.Get("/sla-breaches", reportHandler.SLABreaches)
	reports.Get("/high-risk-transactions", reportHandler.HighRiskTransactions)

	analytics := api.Group("/analytics")
	analytics.Get("/payment-analytics", analyticsHandler.PaymentAnalytics)
	analytics.Get("/merchant-performance", analyticsHandler.MerchantPerformance)
	analytics.Get("/customer-insights", analyticsHandler.CustomerInsights)
}
