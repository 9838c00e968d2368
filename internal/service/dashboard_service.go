package service

import (
	"context"
	"time"

	"apartment-be-svc/internal/models"
	"apartment-be-svc/internal/models/response"
	"apartment-be-svc/internal/repository"
	"apartment-be-svc/pkg/logger"
	"apartment-be-svc/pkg/utils"
)

// DashboardService interface defines dashboard service methods
type DashboardService interface {
	GetDashboardStatistics(ctx context.Context) (*response.DashboardStatisticsResponse, error)
	GetBillingList(ctx context.Context, filter response.BillingListFilter, page, limit int) ([]*response.BillingListItem, int64, error)
}

// dashboardService implements DashboardService interface
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	validator     *utils.Validator
	location      *time.Location
	now           func() time.Time
	logger        *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo repository.DashboardRepository, validator *utils.Validator, location *time.Location, now func() time.Time, logger *logger.Logger) DashboardService {
	if location == nil {
		location = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		validator:     validator,
		location:      location,
		now:           now,
		logger:        logger,
	}
}

// GetDashboardStatistics gets billing counts and the outstanding amount as of today
func (s *dashboardService) GetDashboardStatistics(ctx context.Context) (*response.DashboardStatisticsResponse, error) {
	today := utils.DateOnly(s.now(), s.location)

	statistics, err := s.dashboardRepo.GetDashboardStatistics(ctx, today)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get dashboard statistics")
		return nil, &StoreError{Op: "dashboard statistics", Err: err}
	}

	s.logger.WithFields(map[string]interface{}{
		"total":   statistics.Total,
		"unpaid":  statistics.Unpaid,
		"overdue": statistics.Overdue,
	}).Info("Dashboard statistics retrieved successfully")

	return statistics, nil
}

// GetBillingList gets billing list with optional status and user filters and pagination
func (s *dashboardService) GetBillingList(ctx context.Context, filter response.BillingListFilter, page, limit int) ([]*response.BillingListItem, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	if filter.Status != "" {
		r := s.validator.CheckOneOf("status", filter.Status,
			models.BillingStatusUnpaid, models.BillingStatusPaid, models.BillingStatusDeleted)
		if !r.Valid {
			s.logger.WithField("status", filter.Status).Error("Invalid status parameter")
			return nil, 0, newValidationError(s.validator, utils.Failures(r))
		}
	}

	billings, total, err := s.dashboardRepo.GetBillingList(ctx, filter, page, limit)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"status":  filter.Status,
			"user_id": filter.UserID,
			"page":    page,
			"limit":   limit,
		}).Error("Failed to get billing list")
		return nil, 0, &StoreError{Op: "billing list", Err: err}
	}

	s.logger.WithFields(map[string]interface{}{
		"page":  page,
		"limit": limit,
		"total": total,
		"count": len(billings),
	}).Info("Billing list retrieved successfully")

	return billings, total, nil
}
