package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"apartment-be-svc/internal/models"
	"apartment-be-svc/internal/models/request"
	"apartment-be-svc/internal/repository"
	"apartment-be-svc/pkg/logger"
	"apartment-be-svc/pkg/utils"
)

var (
	zeroPercent    = decimal.Zero
	hundredPercent = decimal.NewFromInt(100)
)

// BillingService defines the interface for billing lifecycle operations
type BillingService interface {
	Collect(ctx context.Context, req request.BulkCollectRequest) (*BulkCollectResult, error)
	Rollback(ctx context.Context) (*RollbackResult, error)
	ConfirmPayment(ctx context.Context, billingIDs []uint) (*ConfirmPaymentResult, error)
}

// BillingSettings holds the rent charge and due-date policy of bulk collection
type BillingSettings struct {
	RentPrice decimal.Decimal
	RentTax   decimal.Decimal
	DueDays   int
	Location  *time.Location
	Now       func() time.Time
}

// BulkCollectResult represents the response for a bulk collection run
type BulkCollectResult struct {
	FeeType        request.FeeType `json:"fee_type" example:"rent"`
	ChargeName     string          `json:"charge_name" example:"rent"`
	UnitPrice      decimal.Decimal `json:"unit_price" swaggertype:"string" example:"1500000"`
	Tax            decimal.Decimal `json:"tax" swaggertype:"string" example:"0"`
	DueDate        string          `json:"due_date" example:"2026-10-29"`
	TotalResidents int             `json:"total_residents" example:"7"`
	CreatedCount   int             `json:"created_count" example:"7"`
	BillingIDs     []uint          `json:"billing_ids"`
}

// RollbackResult represents the response for a rollback run
type RollbackResult struct {
	DeletedCount int    `json:"deleted_count" example:"7"`
	BillingIDs   []uint `json:"billing_ids"`
}

// ConfirmPaymentResult represents the response for a mark-paid request
type ConfirmPaymentResult struct {
	Requested   int `json:"requested" example:"2"`
	PaidCount   int `json:"paid_count" example:"2"`
	AlreadyPaid int `json:"already_paid" example:"0"`
}

type charge struct {
	name  string
	price decimal.Decimal
	tax   decimal.Decimal
}

// billingService implements BillingService
type billingService struct {
	billingRepo repository.BillingRepository
	settings    BillingSettings
	validator   *utils.Validator
	logger      *logger.Logger
}

// NewBillingService creates a new instance of BillingService
func NewBillingService(billingRepo repository.BillingRepository, settings BillingSettings, validator *utils.Validator, logger *logger.Logger) BillingService {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.Now == nil {
		settings.Now = time.Now
	}
	return &billingService{
		billingRepo: billingRepo,
		settings:    settings,
		validator:   validator,
		logger:      logger,
	}
}

// Collect creates one unpaid billing per apartment-assigned resident, all or nothing
func (s *billingService) Collect(ctx context.Context, req request.BulkCollectRequest) (*BulkCollectResult, error) {
	c, err := s.resolveCharge(req)
	if err != nil {
		s.logger.WithError(err).WithField("fee_type", req.Type).Warn("Rejected bulk collection request")
		return nil, err
	}

	now := s.settings.Now().UTC()
	dueDate := utils.DateOnly(now, s.settings.Location).AddDate(0, 0, s.settings.DueDays)

	result := &BulkCollectResult{
		FeeType:    req.Type,
		ChargeName: c.name,
		UnitPrice:  c.price,
		Tax:        c.tax,
		DueDate:    dueDate.Format(utils.DateLayout),
		BillingIDs: []uint{},
	}

	err = s.billingRepo.RunBatch(ctx, func(tx repository.BillingRepository) error {
		residents, err := tx.LockResidentsWithApartment(ctx)
		if err != nil {
			return &StoreError{Op: "lock residents", Err: err}
		}
		result.TotalResidents = len(residents)
		if len(residents) == 0 {
			return nil
		}

		svc, err := tx.UpsertService(ctx, c.name, c.price, c.tax)
		if err != nil {
			return &StoreError{Op: "upsert service", Err: err}
		}

		billings := make([]*models.Billing, 0, len(residents))
		for _, resident := range residents {
			billings = append(billings, &models.Billing{
				DocumentID:    uuid.New().String(),
				UserID:        resident.ID,
				DueDate:       dueDate,
				BillingStatus: models.BillingStatusUnpaid,
				CreatedAt:     now,
				UpdatedAt:     now,
				Items: []models.BillingItem{{
					ServiceID: svc.ID,
					Name:      svc.Name,
					Price:     svc.Price,
					Tax:       svc.Tax,
				}},
			})
		}

		if err := tx.CreateBillings(ctx, billings); err != nil {
			return &StoreError{Op: "create billings", Err: err}
		}

		for _, b := range billings {
			result.BillingIDs = append(result.BillingIDs, b.ID)
		}
		result.CreatedCount = len(billings)
		return nil
	})
	if err != nil {
		s.logger.WithError(err).WithField("fee_type", req.Type).Error("Bulk collection rolled back")
		return nil, asStoreError("bulk collect", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"fee_type":        result.FeeType,
		"charge_name":     result.ChargeName,
		"total_residents": result.TotalResidents,
		"created_count":   result.CreatedCount,
		"due_date":        result.DueDate,
	}).Info("Bulk collection completed")

	return result, nil
}

// Rollback deletes each resident's most recently created billing, at most one per resident
func (s *billingService) Rollback(ctx context.Context) (*RollbackResult, error) {
	result := &RollbackResult{BillingIDs: []uint{}}

	err := s.billingRepo.RunBatch(ctx, func(tx repository.BillingRepository) error {
		latest, err := tx.GetLatestBillingPerUser(ctx)
		if err != nil {
			return &StoreError{Op: "find latest billings", Err: err}
		}
		if len(latest) == 0 {
			return nil
		}

		ids := make([]uint, 0, len(latest))
		for _, b := range latest {
			ids = append(ids, b.ID)
		}

		deleted, err := tx.DeleteBillings(ctx, ids)
		if err != nil {
			return &StoreError{Op: "delete billings", Err: err}
		}
		if deleted != int64(len(ids)) {
			return &StoreError{Op: "delete billings", Err: ErrRollbackConflict}
		}

		result.BillingIDs = ids
		result.DeletedCount = int(deleted)
		return nil
	})
	if err != nil {
		s.logger.WithError(err).Error("Rollback failed")
		return nil, asStoreError("rollback", err)
	}

	s.logger.WithField("deleted_count", result.DeletedCount).Info("Rollback completed")

	return result, nil
}

// ConfirmPayment marks the given unpaid billings as paid
func (s *billingService) ConfirmPayment(ctx context.Context, billingIDs []uint) (*ConfirmPaymentResult, error) {
	ids, err := s.validateIDs(billingIDs)
	if err != nil {
		return nil, err
	}

	result := &ConfirmPaymentResult{Requested: len(ids)}
	now := s.settings.Now().UTC()

	err = s.billingRepo.RunBatch(ctx, func(tx repository.BillingRepository) error {
		existing, err := tx.GetBillingsByIDs(ctx, ids)
		if err != nil {
			return &StoreError{Op: "get billings", Err: err}
		}
		if len(existing) != len(ids) {
			return &NotFoundError{
				Resource: "billing",
				Message:  "one or more billings were not found",
			}
		}

		paid, err := tx.MarkBillingsPaid(ctx, ids, now)
		if err != nil {
			return &StoreError{Op: "mark billings paid", Err: err}
		}

		result.PaidCount = int(paid)
		result.AlreadyPaid = len(ids) - int(paid)
		return nil
	})
	if err != nil {
		s.logger.WithError(err).WithField("billing_ids", ids).Error("Failed to confirm payment")
		return nil, asStoreError("confirm payment", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"billing_ids": ids,
		"paid_count":  result.PaidCount,
	}).Info("Payment confirmed")

	return result, nil
}

// resolveCharge validates the tagged request and returns the charge to bill
func (s *billingService) resolveCharge(req request.BulkCollectRequest) (charge, error) {
	v := s.validator
	feeType := v.CheckOneOf("type", string(req.Type), string(request.FeeTypeRent), string(request.FeeTypeOther))
	if !feeType.Valid {
		return charge{}, s.validationError(utils.Failures(feeType))
	}

	if req.Type == request.FeeTypeRent {
		return charge{
			name:  models.ServiceNameRent,
			price: s.settings.RentPrice,
			tax:   s.settings.RentTax,
		}, nil
	}

	results := []utils.Result{
		v.CheckString("name", req.Name, 1, 255),
		v.CheckNotEqual("name", req.Name, models.ServiceNameRent),
		v.CheckRequired("price", req.Price != nil),
	}
	if req.Price != nil {
		results = append(results, v.CheckDecimal("price", *req.Price, &zeroPercent, &models.MaxPrice, models.MoneyPlaces))
	}
	tax := decimal.Zero
	if req.Tax != nil {
		tax = *req.Tax
		results = append(results, v.CheckDecimal("tax", tax, &zeroPercent, &hundredPercent, models.MoneyPlaces))
	}
	if fails := utils.Failures(results...); fails != nil {
		return charge{}, s.validationError(fails)
	}

	return charge{
		name:  strings.TrimSpace(req.Name),
		price: *req.Price,
		tax:   tax,
	}, nil
}

func (s *billingService) validateIDs(ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, s.validationError(utils.Failures(s.validator.CheckRequired("billing_ids", false)))
	}

	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if r := s.validator.CheckID("billing_ids", id); !r.Valid {
			return nil, s.validationError(utils.Failures(r))
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique, nil
}

func (s *billingService) validationError(fields map[string]string) *ValidationError {
	return newValidationError(s.validator, fields)
}

func newValidationError(v *utils.Validator, fields map[string]string) *ValidationError {
	msg := "validation failed"
	if v.Locale() == "id" {
		msg = "validasi gagal"
	}
	return &ValidationError{Message: msg, Fields: fields}
}
