package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"apartment-be-svc/internal/database/dbtest"
	"apartment-be-svc/internal/models"
	"apartment-be-svc/internal/repository"
	"apartment-be-svc/pkg/logger"
	"apartment-be-svc/pkg/mailer"
	"apartment-be-svc/pkg/utils"
)

// fixedNow is 09:30 on dbtest.Today
func fixedNow() time.Time {
	return dbtest.Today.Add(9*time.Hour + 30*time.Minute)
}

type recordingSender struct {
	mu      sync.Mutex
	sent    []mailer.Message
	failFor map[string]error
}

func (s *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err, ok := s.failFor[msg.To]; ok {
		return err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) messages() []mailer.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mailer.Message(nil), s.sent...)
}

// failingRepo fails the chosen batch operation and delegates everything else
type failingRepo struct {
	repository.BillingRepository
	failCreate  bool
	failFind    bool
	shortDelete bool
}

var errStoreDown = errors.New("connection reset by peer")

func (r *failingRepo) RunBatch(ctx context.Context, fn func(repo repository.BillingRepository) error) error {
	return r.BillingRepository.RunBatch(ctx, func(tx repository.BillingRepository) error {
		return fn(&failingRepo{BillingRepository: tx, failCreate: r.failCreate, failFind: r.failFind, shortDelete: r.shortDelete})
	})
}

func (r *failingRepo) CreateBillings(ctx context.Context, billings []*models.Billing) error {
	if r.failCreate {
		return errStoreDown
	}
	return r.BillingRepository.CreateBillings(ctx, billings)
}

// DeleteBillings with shortDelete removes only the first id, as if the others were deleted concurrently
func (r *failingRepo) DeleteBillings(ctx context.Context, ids []uint) (int64, error) {
	if r.shortDelete && len(ids) > 1 {
		ids = ids[:1]
	}
	return r.BillingRepository.DeleteBillings(ctx, ids)
}

func (r *failingRepo) FindUnpaidDueBefore(ctx context.Context, before time.Time, userID *uint) ([]*repository.EligibleBilling, error) {
	if r.failFind {
		return nil, errStoreDown
	}
	return r.BillingRepository.FindUnpaidDueBefore(ctx, before, userID)
}

type fixture struct {
	db         *gorm.DB
	repo       repository.BillingRepository
	billing    BillingService
	reminders  ReminderService
	sender     *recordingSender
	dispatcher ReminderDispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := dbtest.Open(t)
	repo := repository.NewBillingRepository(db)
	return newFixtureWithRepo(t, db, repo)
}

func newFixtureWithRepo(t *testing.T, db *gorm.DB, repo repository.BillingRepository) *fixture {
	t.Helper()

	log := logger.NewNopLogger()
	v := utils.NewValidator("en")
	sender := &recordingSender{failFor: map[string]error{}}
	dispatcher := NewReminderDispatcher(sender, ReminderDispatcherConfig{
		Locale:         "en",
		CurrencySymbol: "Rp",
		BaseURL:        "https://tower.example.com",
	}, log)

	billing := NewBillingService(repo, BillingSettings{
		RentPrice: decimal.NewFromInt(1500000),
		RentTax:   decimal.Zero,
		DueDays:   10,
		Location:  time.UTC,
		Now:       fixedNow,
	}, v, log)

	reminders := NewReminderService(repo, repository.NewUserRepository(db), dispatcher, v, time.UTC, fixedNow, log)

	return &fixture{
		db:         db,
		repo:       repo,
		billing:    billing,
		reminders:  reminders,
		sender:     sender,
		dispatcher: dispatcher,
	}
}

func decimalPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func decimalStrPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
