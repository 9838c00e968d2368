package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"apartment-be-svc/internal/models"
	"apartment-be-svc/internal/models/response"
)

// DashboardRepository defines the interface for dashboard data operations
type DashboardRepository interface {
	GetDashboardStatistics(ctx context.Context, today time.Time) (*response.DashboardStatisticsResponse, error)
	GetBillingList(ctx context.Context, filter response.BillingListFilter, page, limit int) ([]*response.BillingListItem, int64, error)
}

// dashboardRepository implements DashboardRepository
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new instance of DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetDashboardStatistics counts billings by status and sums what is still unpaid
func (r *dashboardRepository) GetDashboardStatistics(ctx context.Context, today time.Time) (*response.DashboardStatisticsResponse, error) {
	var counts struct {
		Total   int64
		Unpaid  int64
		Paid    int64
		Overdue int64
	}

	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN billing_status = ? THEN 1 ELSE 0 END), 0) AS unpaid,
			COALESCE(SUM(CASE WHEN billing_status = ? THEN 1 ELSE 0 END), 0) AS paid,
			COALESCE(SUM(CASE WHEN billing_status = ? AND due_date < ? THEN 1 ELSE 0 END), 0) AS overdue
		FROM billings
	`

	err := r.db.WithContext(ctx).Raw(query,
		models.BillingStatusUnpaid,
		models.BillingStatusPaid,
		models.BillingStatusUnpaid, today,
	).Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	var items []models.BillingItem
	err = r.db.WithContext(ctx).
		Joins("JOIN billings ON billings.id = billing_items.billing_id").
		Where("billings.billing_status = ?", models.BillingStatusUnpaid).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	unpaid := models.Billing{Items: items}

	return &response.DashboardStatisticsResponse{
		Total:             counts.Total,
		Unpaid:            counts.Unpaid,
		Paid:              counts.Paid,
		Overdue:           counts.Overdue,
		OutstandingAmount: unpaid.Total(),
	}, nil
}

// GetBillingList retrieves billings newest first with optional status and user filters and pagination
func (r *dashboardRepository) GetBillingList(ctx context.Context, filter response.BillingListFilter, page, limit int) ([]*response.BillingListItem, int64, error) {
	var total int64

	base := r.db.WithContext(ctx).Table("billings b").Joins("JOIN users u ON u.id = b.user_id")
	if filter.Status != "" {
		base = base.Where("b.billing_status = ?", filter.Status)
	}
	if filter.UserID != 0 {
		base = base.Where("b.user_id = ?", filter.UserID)
	}

	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	billings := make([]*response.BillingListItem, 0)
	offset := (page - 1) * limit
	err := base.Session(&gorm.Session{}).
		Select("b.id, b.document_id, b.user_id, u.full_name, b.due_date, b.billing_status, b.created_at").
		Order("b.created_at DESC, b.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&billings).Error
	if err != nil {
		return nil, 0, err
	}
	if len(billings) == 0 {
		return billings, total, nil
	}

	ids := make([]uint, 0, len(billings))
	for _, b := range billings {
		ids = append(ids, b.ID)
	}

	var items []models.BillingItem
	if err := r.db.WithContext(ctx).Where("billing_id IN ?", ids).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	totals := make(map[uint]models.Billing, len(billings))
	for _, item := range items {
		b := totals[item.BillingID]
		b.Items = append(b.Items, item)
		totals[item.BillingID] = b
	}
	for _, b := range billings {
		t := totals[b.ID]
		b.Total = t.Total()
	}

	return billings, total, nil
}
