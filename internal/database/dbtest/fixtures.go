package dbtest

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"apartment-be-svc/internal/models"
)

// Today is the fixed calendar day fixtures and clocks are built around
var Today = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

// SeedResident inserts a user, optionally assigned to a fresh apartment
func SeedResident(t testing.TB, db *gorm.DB, name string, withApartment bool) *models.User {
	t.Helper()

	user := &models.User{
		DocumentID: uuid.New().String(),
		FullName:   name,
		Email:      fmt.Sprintf("%s@example.com", name),
	}
	if withApartment {
		apt := &models.Apartment{DocumentID: uuid.New().String(), Name: "A-" + name, Floor: 3}
		if err := db.Create(apt).Error; err != nil {
			t.Fatalf("seed apartment: %v", err)
		}
		user.ApartmentID = &apt.ID
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed resident: %v", err)
	}
	return user
}

// SeedBilling inserts a billing with one rent item of the given price
func SeedBilling(t testing.TB, db *gorm.DB, userID uint, due, created time.Time, status string, price int64) *models.Billing {
	t.Helper()
	return SeedBillingItems(t, db, userID, due, created, status, models.BillingItem{
		ServiceID: 1,
		Name:      models.ServiceNameRent,
		Price:     decimal.NewFromInt(price),
		Tax:       decimal.Zero,
	})
}

// SeedBillingItems inserts a billing carrying the given items
func SeedBillingItems(t testing.TB, db *gorm.DB, userID uint, due, created time.Time, status string, items ...models.BillingItem) *models.Billing {
	t.Helper()

	b := &models.Billing{
		DocumentID:    uuid.New().String(),
		UserID:        userID,
		DueDate:       due,
		BillingStatus: status,
		CreatedAt:     created,
		UpdatedAt:     created,
		Items:         items,
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed billing: %v", err)
	}
	return b
}

// CountBillings returns the number of stored billings
func CountBillings(t testing.TB, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&models.Billing{}).Count(&n).Error; err != nil {
		t.Fatalf("count billings: %v", err)
	}
	return n
}
