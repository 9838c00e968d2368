package handler

import (
	"github.com/gin-gonic/gin"

	"apartment-be-svc/internal/models/request"
	"apartment-be-svc/internal/service"
	"apartment-be-svc/pkg/logger"
	"apartment-be-svc/pkg/utils"
)

// BulkBillingHandler handles bulk billing-related HTTP requests
type BulkBillingHandler struct {
	billingService service.BillingService
	logger         *logger.Logger
}

// NewBulkBillingHandler creates a new BulkBillingHandler instance
func NewBulkBillingHandler(billingService service.BillingService, logger *logger.Logger) *BulkBillingHandler {
	return &BulkBillingHandler{
		billingService: billingService,
		logger:         logger,
	}
}

// BulkCollect creates one unpaid billing for every resident with an apartment
// @Summary Bulk collect a charge
// @Description Bill every apartment-assigned resident once. type=rent uses the configured rent price; type=other requires name and price, tax is an optional percentage. All billings are created or none are.
// @Tags billings
// @Accept json
// @Produce json
// @Param request body request.BulkCollectRequest true "Charge to collect"
// @Success 200 {object} utils.APIResponse{data=service.BulkCollectResult} "Bulk collection result"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/bulk-collect [post]
func (h *BulkBillingHandler) BulkCollect(c *gin.Context) {
	var req request.BulkCollectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	result, err := h.billingService.Collect(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "Failed to collect billings", err)
		return
	}

	utils.SuccessResponse(c, "Billings collected successfully", result)
}

// Rollback deletes the most recent billing of every resident
// @Summary Roll back the latest bulk collection
// @Description Delete each resident's most recently created billing, at most one per resident.
// @Tags billings
// @Produce json
// @Success 200 {object} utils.APIResponse{data=service.RollbackResult} "Rollback result"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/rollback [post]
func (h *BulkBillingHandler) Rollback(c *gin.Context) {
	result, err := h.billingService.Rollback(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Failed to roll back billings", err)
		return
	}

	utils.SuccessResponse(c, "Billings rolled back successfully", result)
}

// ConfirmPayment marks billings as paid by ID
// @Summary Confirm payment
// @Description Mark the given unpaid billings as paid. Paid billings no longer receive reminders.
// @Tags billings
// @Accept json
// @Produce json
// @Param request body request.ConfirmPaymentRequest true "Billing IDs"
// @Success 200 {object} utils.APIResponse{data=service.ConfirmPaymentResult} "Payment confirmed"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/confirm-payment [post]
func (h *BulkBillingHandler) ConfirmPayment(c *gin.Context) {
	var req request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	result, err := h.billingService.ConfirmPayment(c.Request.Context(), req.BillingIDs)
	if err != nil {
		respondError(c, h.logger, "Failed to confirm payment", err)
		return
	}

	utils.SuccessResponse(c, "Payment confirmed successfully", result)
}
