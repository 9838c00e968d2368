package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReminderType selects which due-date bucket a reminder run targets
type ReminderType string

const (
	ReminderType3Days   ReminderType = "3days"
	ReminderType7Days   ReminderType = "7days"
	ReminderTypeOverdue ReminderType = "overdue"
)

// ReminderTypes lists every accepted reminder type
func ReminderTypes() []string {
	return []string{string(ReminderType3Days), string(ReminderType7Days), string(ReminderTypeOverdue)}
}

// Valid reports whether t is one of the closed set of reminder types
func (t ReminderType) Valid() bool {
	switch t {
	case ReminderType3Days, ReminderType7Days, ReminderTypeOverdue:
		return true
	}
	return false
}

// DaysAhead returns the exact offset from today for date-bucket types; ok is false for overdue
func (t ReminderType) DaysAhead() (days int, ok bool) {
	switch t {
	case ReminderType3Days:
		return 3, true
	case ReminderType7Days:
		return 7, true
	}
	return 0, false
}

// BillingSummary is the reminder view of one unpaid billing
type BillingSummary struct {
	ID           uint            `json:"id" example:"42"`
	DocumentID   string          `json:"document_id" example:"6f1c0f5e-8f43-4b7a-9a58-2d3cf6f1c0aa"`
	Total        decimal.Decimal `json:"total" swaggertype:"string" example:"1500000"`
	DueDate      time.Time       `json:"due_date"`
	DaysUntilDue int             `json:"days_until_due" example:"3"`
	IsOverdue    bool            `json:"is_overdue" example:"false"`
	Status       string          `json:"status" example:"unpaid"`
}

// ReminderBatch groups one resident's eligible billings into a single reminder. Never persisted.
type ReminderBatch struct {
	UserID   uint             `json:"user_id" example:"7"`
	Email    string           `json:"email" example:"resident@example.com"`
	FullName string           `json:"full_name" example:"Budi Santoso"`
	Billings []BillingSummary `json:"billings"`
}

// Total sums the totals of every billing in the batch
func (b ReminderBatch) Total() decimal.Decimal {
	total := decimal.Zero
	for _, s := range b.Billings {
		total = total.Add(s.Total)
	}
	return total
}
