package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"apartment-be-svc/internal/models/response"
	"apartment-be-svc/internal/service"
	"apartment-be-svc/pkg/logger"
	"apartment-be-svc/pkg/utils"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboardStatistics handles GET /api/v1/dashboard/statistics
// @Summary Get dashboard statistics
// @Description Count billings by status and sum the outstanding unpaid amount.
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.DashboardStatisticsResponse} "Successfully retrieved dashboard statistics"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/statistics [get]
func (h *DashboardHandler) GetDashboardStatistics(c *gin.Context) {
	statistics, err := h.dashboardService.GetDashboardStatistics(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Failed to get dashboard statistics", err)
		return
	}

	utils.SuccessResponse(c, "Dashboard statistics retrieved successfully", statistics)
}

// GetBillingList handles GET /api/v1/dashboard/billings
// @Summary Get billing list
// @Description List billings newest first with optional status and user filters.
// @Tags dashboard
// @Produce json
// @Param status query string false "Filter by status" Enums(unpaid, paid, deleted)
// @Param user_id query int false "Filter by user ID"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} utils.PaginatedResponse{data=[]response.BillingListItem} "Billing list retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Bad request - invalid parameter"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/billings [get]
func (h *DashboardHandler) GetBillingList(c *gin.Context) {
	filter := response.BillingListFilter{Status: c.Query("status")}

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := strconv.ParseUint(userIDStr, 10, 32)
		if err != nil {
			h.logger.WithError(err).WithField("user_id", userIDStr).Error("Invalid user_id parameter format")
			utils.BadRequestResponse(c, "Invalid user_id parameter format", err)
			return
		}
		filter.UserID = uint(userID)
	}

	page := 1
	perPage := 10
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if pp := c.Query("per_page"); pp != "" {
		if v, err := strconv.Atoi(pp); err == nil && v > 0 {
			perPage = v
		}
	}
	if perPage > 100 {
		perPage = 10
	}

	billings, total, err := h.dashboardService.GetBillingList(c.Request.Context(), filter, page, perPage)
	if err != nil {
		respondError(c, h.logger, "Failed to get billing list", err)
		return
	}

	utils.PaginatedSuccessResponse(c, "Billing list retrieved successfully", billings, page, perPage, total)
}
