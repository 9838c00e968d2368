package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Billing statuses stored in billings.billing_status
const (
	BillingStatusUnpaid  = "unpaid"
	BillingStatusPaid    = "paid"
	BillingStatusDeleted = "deleted"
)

// Billing represents the billings table. Its total is always derived from Items.
type Billing struct {
	ID            uint          `json:"id" gorm:"primarykey"`
	DocumentID    string        `json:"document_id" gorm:"column:document_id;size:36;uniqueIndex"`
	UserID        uint          `json:"user_id" gorm:"column:user_id;not null;index"`
	DueDate       time.Time     `json:"due_date" gorm:"column:due_date;type:date;not null;index"`
	BillingStatus string        `json:"billing_status" gorm:"column:billing_status;size:16;not null;default:unpaid;index"`
	PaidAt        *time.Time    `json:"paid_at" gorm:"column:paid_at"`
	CreatedAt     time.Time     `json:"created_at" gorm:"column:created_at;index"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"column:updated_at"`
	Items         []BillingItem `json:"items,omitempty" gorm:"foreignKey:BillingID;constraint:OnDelete:CASCADE"`
}

// TableName sets the insert table name for Billing
func (Billing) TableName() string {
	return "billings"
}

// Total sums price plus tax over every attached item
func (b *Billing) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.Items {
		total = total.Add(item.Amount())
	}
	return total
}
