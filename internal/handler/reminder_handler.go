package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"apartment-be-svc/internal/models"
	"apartment-be-svc/internal/models/request"
	"apartment-be-svc/internal/service"
	"apartment-be-svc/pkg/logger"
	"apartment-be-svc/pkg/utils"
)

// ReminderHandler handles reminder-related HTTP requests
type ReminderHandler struct {
	reminderService service.ReminderService
	logger          *logger.Logger
}

// NewReminderHandler creates a new ReminderHandler instance
func NewReminderHandler(reminderService service.ReminderService, logger *logger.Logger) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		logger:          logger,
	}
}

// GetEligible lists residents with unpaid billings in a reminder bucket
// @Summary List reminder-eligible residents
// @Description Group unpaid billings per resident. 3days and 7days match the due date exactly; overdue matches anything due before today.
// @Tags reminders
// @Produce json
// @Param reminderType query string true "Reminder type" Enums(3days, 7days, overdue)
// @Success 200 {object} utils.APIResponse{data=[]models.ReminderBatch} "Eligible residents"
// @Failure 400 {object} utils.APIResponse "Invalid reminder type"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/reminders/eligible [get]
func (h *ReminderHandler) GetEligible(c *gin.Context) {
	reminderType := models.ReminderType(c.Query("reminderType"))

	batches, err := h.reminderService.FindEligible(c.Request.Context(), reminderType)
	if err != nil {
		respondError(c, h.logger, "Failed to find eligible reminders", err)
		return
	}

	utils.SuccessResponse(c, "Eligible reminders retrieved successfully", batches)
}

// SendReminders emails every eligible resident
// @Summary Send reminders
// @Description Send one reminder email per eligible resident. A failed email is reported in the outcomes and does not stop the run.
// @Tags reminders
// @Accept json
// @Produce json
// @Param request body request.ReminderRequest true "Reminder type"
// @Success 200 {object} utils.APIResponse{data=service.ReminderRunResult} "Reminder run result"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/reminders/send [post]
func (h *ReminderHandler) SendReminders(c *gin.Context) {
	var req request.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	result, err := h.reminderService.SendReminders(c.Request.Context(), models.ReminderType(req.ReminderType))
	if err != nil {
		respondError(c, h.logger, "Failed to send reminders", err)
		return
	}

	utils.SuccessResponse(c, "Reminders processed", result)
}

// GetEligibleForUser lists one resident's billings in a reminder bucket
// @Summary List a resident's reminder-eligible billings
// @Tags reminders
// @Produce json
// @Param user_id path int true "User ID"
// @Param reminderType query string true "Reminder type" Enums(3days, 7days, overdue)
// @Success 200 {object} utils.APIResponse{data=[]models.BillingSummary} "Eligible billings, or success=false when there are none"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/reminders/users/{user_id} [get]
func (h *ReminderHandler) GetEligibleForUser(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	bills, err := h.reminderService.FindEligibleForUser(c.Request.Context(), userID, models.ReminderType(c.Query("reminderType")))
	if err != nil {
		respondError(c, h.logger, "Failed to find eligible billings", err)
		return
	}

	utils.SuccessResponse(c, "Eligible billings retrieved successfully", bills)
}

// SendReminderToUser emails one resident
// @Summary Send a reminder to one resident
// @Tags reminders
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param request body request.ReminderRequest true "Reminder type"
// @Success 200 {object} utils.APIResponse{data=service.ReminderOutcome} "Reminder sent, or success=false when nothing is due"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/reminders/users/{user_id}/send [post]
func (h *ReminderHandler) SendReminderToUser(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	var req request.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	outcome, err := h.reminderService.SendReminderToUser(c.Request.Context(), userID, models.ReminderType(req.ReminderType))
	if err != nil {
		respondError(c, h.logger, "Failed to send reminder", err)
		return
	}

	utils.SuccessResponse(c, "Reminder sent successfully", outcome)
}

func (h *ReminderHandler) parseUserID(c *gin.Context) (uint, bool) {
	idStr := c.Param("user_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", idStr).Error("Invalid user ID format")
		utils.BadRequestResponse(c, "Invalid user ID format", err)
		return 0, false
	}
	return uint(id), true
}
