package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"apartment-be-svc/internal/models"
	"apartment-be-svc/internal/repository"
	"apartment-be-svc/pkg/logger"
	"apartment-be-svc/pkg/utils"
)

// Outcome statuses of one resident within a reminder run
const (
	ReminderStatusSent   = "sent"
	ReminderStatusFailed = "failed"
)

// ReminderService defines the interface for reminder classification and dispatch
type ReminderService interface {
	FindEligible(ctx context.Context, reminderType models.ReminderType) ([]models.ReminderBatch, error)
	FindEligibleForUser(ctx context.Context, userID uint, reminderType models.ReminderType) ([]models.BillingSummary, error)
	SendReminders(ctx context.Context, reminderType models.ReminderType) (*ReminderRunResult, error)
	SendReminderToUser(ctx context.Context, userID uint, reminderType models.ReminderType) (*ReminderOutcome, error)
}

// ReminderOutcome records what happened to one resident's reminder
type ReminderOutcome struct {
	UserID     uint   `json:"user_id" example:"7"`
	Email      string `json:"email" example:"resident@example.com"`
	FullName   string `json:"full_name" example:"Budi Santoso"`
	BillingIDs []uint `json:"billing_ids"`
	Status     string `json:"status" example:"sent"`
	Error      string `json:"error,omitempty"`
}

// ReminderRunResult represents the response for a reminder run over all residents
type ReminderRunResult struct {
	ReminderType   models.ReminderType `json:"reminder_type" swaggertype:"string" example:"3days"`
	TotalResidents int                 `json:"total_residents" example:"3"`
	SentCount      int                 `json:"sent_count" example:"2"`
	FailedCount    int                 `json:"failed_count" example:"1"`
	Outcomes       []ReminderOutcome   `json:"outcomes"`
}

// reminderService implements ReminderService
type reminderService struct {
	billingRepo repository.BillingRepository
	userRepo    repository.UserRepository
	dispatcher  ReminderDispatcher
	validator   *utils.Validator
	location    *time.Location
	now         func() time.Time
	logger      *logger.Logger
}

// NewReminderService creates a new instance of ReminderService
func NewReminderService(
	billingRepo repository.BillingRepository,
	userRepo repository.UserRepository,
	dispatcher ReminderDispatcher,
	validator *utils.Validator,
	location *time.Location,
	now func() time.Time,
	logger *logger.Logger,
) ReminderService {
	if location == nil {
		location = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &reminderService{
		billingRepo: billingRepo,
		userRepo:    userRepo,
		dispatcher:  dispatcher,
		validator:   validator,
		location:    location,
		now:         now,
		logger:      logger,
	}
}

// FindEligible groups every resident's qualifying unpaid billings into one batch per resident
func (s *reminderService) FindEligible(ctx context.Context, reminderType models.ReminderType) ([]models.ReminderBatch, error) {
	if err := s.validateType(reminderType); err != nil {
		return nil, err
	}

	today := s.today()
	rows, err := s.query(ctx, reminderType, today, nil)
	if err != nil {
		s.logger.WithError(err).WithField("reminder_type", reminderType).Error("Failed to classify reminders")
		return nil, err
	}

	batches := make([]models.ReminderBatch, 0)
	index := make(map[uint]int)
	for _, row := range rows {
		i, ok := index[row.UserID]
		if !ok {
			i = len(batches)
			index[row.UserID] = i
			batches = append(batches, models.ReminderBatch{
				UserID:   row.UserID,
				Email:    row.Email,
				FullName: row.FullName,
				Billings: []models.BillingSummary{},
			})
		}
		batches[i].Billings = append(batches[i].Billings, summarize(row, today))
	}

	s.logger.WithFields(map[string]interface{}{
		"reminder_type": reminderType,
		"residents":     len(batches),
		"billings":      len(rows),
	}).Debug("Reminder classification completed")

	return batches, nil
}

// FindEligibleForUser returns one resident's qualifying unpaid billings; an empty result is a NotFoundError
func (s *reminderService) FindEligibleForUser(ctx context.Context, userID uint, reminderType models.ReminderType) ([]models.BillingSummary, error) {
	if err := s.validateUser(userID, reminderType); err != nil {
		return nil, err
	}

	today := s.today()
	rows, err := s.query(ctx, reminderType, today, &userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to classify reminders for user")
		return nil, err
	}
	if len(rows) == 0 {
		return nil, newNoEligibleBillingsError()
	}

	summaries := make([]models.BillingSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, summarize(row, today))
	}

	return summaries, nil
}

// SendReminders dispatches one email per eligible resident and folds every outcome into the result
func (s *reminderService) SendReminders(ctx context.Context, reminderType models.ReminderType) (*ReminderRunResult, error) {
	batches, err := s.FindEligible(ctx, reminderType)
	if err != nil {
		return nil, err
	}

	result := &ReminderRunResult{
		ReminderType:   reminderType,
		TotalResidents: len(batches),
		Outcomes:       make([]ReminderOutcome, 0, len(batches)),
	}

	for _, batch := range batches {
		outcome := ReminderOutcome{
			UserID:     batch.UserID,
			Email:      batch.Email,
			FullName:   batch.FullName,
			BillingIDs: billingIDs(batch.Billings),
			Status:     ReminderStatusSent,
		}

		to := Recipient{UserID: batch.UserID, Email: batch.Email, FullName: batch.FullName}
		if err := s.dispatcher.Send(ctx, to, batch.Billings); err != nil {
			outcome.Status = ReminderStatusFailed
			outcome.Error = err.Error()
			result.FailedCount++
		} else {
			result.SentCount++
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	s.logger.WithFields(map[string]interface{}{
		"reminder_type": reminderType,
		"residents":     result.TotalResidents,
		"sent":          result.SentCount,
		"failed":        result.FailedCount,
	}).Info("Reminder run completed")

	return result, nil
}

// SendReminderToUser looks the resident up, classifies their billings and sends one reminder
func (s *reminderService) SendReminderToUser(ctx context.Context, userID uint, reminderType models.ReminderType) (*ReminderOutcome, error) {
	if err := s.validateUser(userID, reminderType); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "user", Message: "user not found", Err: err}
		}
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to get user")
		return nil, &StoreError{Op: "get user", Err: err}
	}

	bills, err := s.FindEligibleForUser(ctx, userID, reminderType)
	if err != nil {
		return nil, err
	}

	to := Recipient{UserID: user.ID, Email: user.Email, FullName: user.FullName}
	if err := s.dispatcher.Send(ctx, to, bills); err != nil {
		return nil, err
	}

	return &ReminderOutcome{
		UserID:     user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		BillingIDs: billingIDs(bills),
		Status:     ReminderStatusSent,
	}, nil
}

func (s *reminderService) query(ctx context.Context, reminderType models.ReminderType, today time.Time, userID *uint) ([]*repository.EligibleBilling, error) {
	var (
		rows []*repository.EligibleBilling
		err  error
	)
	if days, ok := reminderType.DaysAhead(); ok {
		rows, err = s.billingRepo.FindUnpaidDueOn(ctx, today.AddDate(0, 0, days), userID)
	} else {
		rows, err = s.billingRepo.FindUnpaidDueBefore(ctx, today, userID)
	}
	if err != nil {
		return nil, &StoreError{Op: "find unpaid billings", Err: err}
	}
	return rows, nil
}

func (s *reminderService) today() time.Time {
	return utils.DateOnly(s.now(), s.location)
}

func (s *reminderService) validateType(reminderType models.ReminderType) error {
	r := s.validator.CheckOneOf("reminderType", string(reminderType), models.ReminderTypes()...)
	if !r.Valid {
		return newValidationError(s.validator, utils.Failures(r))
	}
	return nil
}

func (s *reminderService) validateUser(userID uint, reminderType models.ReminderType) error {
	results := []utils.Result{
		s.validator.CheckID("user_id", userID),
		s.validator.CheckOneOf("reminderType", string(reminderType), models.ReminderTypes()...),
	}
	if fails := utils.Failures(results...); fails != nil {
		return newValidationError(s.validator, fails)
	}
	return nil
}

func summarize(row *repository.EligibleBilling, today time.Time) models.BillingSummary {
	days := utils.DaysBetween(today, row.DueDate)
	return models.BillingSummary{
		ID:           row.BillingID,
		DocumentID:   row.DocumentID,
		Total:        row.Total(),
		DueDate:      utils.DateOnly(row.DueDate, nil),
		DaysUntilDue: days,
		IsOverdue:    days < 0,
		Status:       row.BillingStatus,
	}
}

func billingIDs(bills []models.BillingSummary) []uint {
	ids := make([]uint, 0, len(bills))
	for _, b := range bills {
		ids = append(ids, b.ID)
	}
	return ids
}
