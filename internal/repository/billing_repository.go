package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"apartment-be-svc/internal/models"
)

// EligibleBilling is an unpaid billing joined to the identity of its resident
type EligibleBilling struct {
	BillingID     uint                 `gorm:"column:billing_id"`
	DocumentID    string               `gorm:"column:document_id"`
	UserID        uint                 `gorm:"column:user_id"`
	DueDate       time.Time            `gorm:"column:due_date"`
	BillingStatus string               `gorm:"column:billing_status"`
	FullName      string               `gorm:"column:full_name"`
	Email         string               `gorm:"column:email"`
	Items         []models.BillingItem `gorm:"-"`
}

// Total sums price plus tax over the billing's items
func (e *EligibleBilling) Total() decimal.Decimal {
	b := models.Billing{Items: e.Items}
	return b.Total()
}

// BillingRepository defines the interface for billing data operations
type BillingRepository interface {
	// RunBatch runs fn inside one transaction; fn receives a repository bound to it
	RunBatch(ctx context.Context, fn func(repo BillingRepository) error) error
	LockResidentsWithApartment(ctx context.Context) ([]*models.User, error)
	UpsertService(ctx context.Context, name string, price, tax decimal.Decimal) (*models.Service, error)
	CreateBillings(ctx context.Context, billings []*models.Billing) error
	GetLatestBillingPerUser(ctx context.Context) ([]*models.Billing, error)
	DeleteBillings(ctx context.Context, ids []uint) (int64, error)
	GetBillingsByIDs(ctx context.Context, ids []uint) ([]*models.Billing, error)
	MarkBillingsPaid(ctx context.Context, ids []uint, paidAt time.Time) (int64, error)
	FindUnpaidDueOn(ctx context.Context, dueDate time.Time, userID *uint) ([]*EligibleBilling, error)
	FindUnpaidDueBefore(ctx context.Context, before time.Time, userID *uint) ([]*EligibleBilling, error)
}

// billingRepository implements BillingRepository
type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository creates a new instance of BillingRepository
func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &billingRepository{
		db: db,
	}
}

// RunBatch commits when fn returns nil and rolls back otherwise
func (r *billingRepository) RunBatch(ctx context.Context, fn func(repo BillingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&billingRepository{db: tx})
	})
}

// LockResidentsWithApartment returns every user with an apartment assignment, row-locked for the transaction
func (r *billingRepository) LockResidentsWithApartment(ctx context.Context) ([]*models.User, error) {
	var users []*models.User

	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("apartment_id IS NOT NULL").
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}

// UpsertService finds a catalogue service by name and aligns its price and tax, creating it when missing
func (r *billingRepository) UpsertService(ctx context.Context, name string, price, tax decimal.Decimal) (*models.Service, error) {
	var svc models.Service

	err := r.db.WithContext(ctx).Where("name = ?", name).First(&svc).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		svc = models.Service{
			DocumentID: uuid.New().String(),
			Name:       name,
			Price:      price,
			Tax:        tax,
		}
		if err := r.db.WithContext(ctx).Create(&svc).Error; err != nil {
			return nil, err
		}
		return &svc, nil
	case err != nil:
		return nil, err
	}

	if !svc.Price.Equal(price) || !svc.Tax.Equal(tax) {
		err := r.db.WithContext(ctx).Model(&svc).Updates(map[string]interface{}{
			"price": price,
			"tax":   tax,
		}).Error
		if err != nil {
			return nil, err
		}
		svc.Price = price
		svc.Tax = tax
	}

	return &svc, nil
}

// CreateBillings inserts billings together with their items
func (r *billingRepository) CreateBillings(ctx context.Context, billings []*models.Billing) error {
	if len(billings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(billings, 100).Error
}

// GetLatestBillingPerUser returns, per user, the billing created last (ties broken by the higher id),
// row-locked for the transaction so a concurrent rollback cannot pick the same rows
func (r *billingRepository) GetLatestBillingPerUser(ctx context.Context) ([]*models.Billing, error) {
	var billings []*models.Billing

	latest := r.db.Table("billings AS b2").
		Select("b2.id").
		Where("b2.user_id = billings.user_id").
		Order("b2.created_at DESC, b2.id DESC").
		Limit(1)

	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("billings.id = (?)", latest).
		Order("billings.user_id").
		Find(&billings).Error
	if err != nil {
		return nil, err
	}

	return billings, nil
}

// DeleteBillings removes billings and their items, returning the number of billings deleted
func (r *billingRepository) DeleteBillings(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	if err := r.db.WithContext(ctx).Where("billing_id IN ?", ids).Delete(&models.BillingItem{}).Error; err != nil {
		return 0, err
	}

	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Billing{})
	if res.Error != nil {
		return 0, res.Error
	}

	return res.RowsAffected, nil
}

// GetBillingsByIDs loads billings with their items
func (r *billingRepository) GetBillingsByIDs(ctx context.Context, ids []uint) ([]*models.Billing, error) {
	var billings []*models.Billing
	if len(ids) == 0 {
		return billings, nil
	}

	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("id IN ?", ids).
		Order("id").
		Find(&billings).Error
	if err != nil {
		return nil, err
	}

	return billings, nil
}

// MarkBillingsPaid flips unpaid billings among ids to paid
func (r *billingRepository) MarkBillingsPaid(ctx context.Context, ids []uint, paidAt time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Model(&models.Billing{}).
		Where("id IN ? AND billing_status = ?", ids, models.BillingStatusUnpaid).
		Updates(map[string]interface{}{
			"billing_status": models.BillingStatusPaid,
			"paid_at":        paidAt,
		})
	if res.Error != nil {
		return 0, res.Error
	}

	return res.RowsAffected, nil
}

// FindUnpaidDueOn returns unpaid billings due exactly on dueDate, optionally for one user
func (r *billingRepository) FindUnpaidDueOn(ctx context.Context, dueDate time.Time, userID *uint) ([]*EligibleBilling, error) {
	return r.findUnpaid(ctx, "b.due_date = ?", dueDate, userID)
}

// FindUnpaidDueBefore returns unpaid billings due strictly before the given date, optionally for one user
func (r *billingRepository) FindUnpaidDueBefore(ctx context.Context, before time.Time, userID *uint) ([]*EligibleBilling, error) {
	return r.findUnpaid(ctx, "b.due_date < ?", before, userID)
}

func (r *billingRepository) findUnpaid(ctx context.Context, dueCond string, date time.Time, userID *uint) ([]*EligibleBilling, error) {
	query := `
		SELECT
			b.id AS billing_id,
			b.document_id,
			b.user_id,
			b.due_date,
			b.billing_status,
			u.full_name,
			u.email
		FROM billings b
		INNER JOIN users u ON u.id = b.user_id
		WHERE b.billing_status = ?
		AND ` + dueCond

	args := []interface{}{models.BillingStatusUnpaid, date}
	if userID != nil {
		query += " AND b.user_id = ?"
		args = append(args, *userID)
	}
	query += " ORDER BY b.due_date ASC, b.id ASC"

	var rows []*EligibleBilling
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.BillingID)
	}

	var items []models.BillingItem
	if err := r.db.WithContext(ctx).Where("billing_id IN ?", ids).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}

	byBilling := make(map[uint][]models.BillingItem, len(rows))
	for _, item := range items {
		byBilling[item.BillingID] = append(byBilling[item.BillingID], item)
	}
	for _, row := range rows {
		row.Items = byBilling[row.BillingID]
	}

	return rows, nil
}
