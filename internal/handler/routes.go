package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"apartment-be-svc/internal/service"
	"apartment-be-svc/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	billingService service.BillingService,
	reminderService service.ReminderService,
	dashboardService service.DashboardService,
	logger *logger.Logger,
) {
	// Initialize handlers
	bulkBillingHandler := NewBulkBillingHandler(billingService, logger)
	reminderHandler := NewReminderHandler(reminderService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Billing routes
		billings := v1.Group("/billings")
		{
			billings.POST("/bulk-collect", bulkBillingHandler.BulkCollect)
			billings.POST("/rollback", bulkBillingHandler.Rollback)
			billings.POST("/confirm-payment", bulkBillingHandler.ConfirmPayment)
		}

		// Reminder routes
		reminders := v1.Group("/reminders")
		{
			reminders.GET("/eligible", reminderHandler.GetEligible)
			reminders.POST("/send", reminderHandler.SendReminders)
			reminders.GET("/users/:user_id", reminderHandler.GetEligibleForUser)
			reminders.POST("/users/:user_id/send", reminderHandler.SendReminderToUser)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/statistics", dashboardHandler.GetDashboardStatistics)
			dashboard.GET("/billings", dashboardHandler.GetBillingList)
		}
	}
}

// HealthCheck godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Apartment Billing Service",
	})
}
