package request

import "github.com/shopspring/decimal"

// FeeType selects which charge a bulk collection bills
type FeeType string

const (
	FeeTypeRent  FeeType = "rent"
	FeeTypeOther FeeType = "other"
)

// BulkCollectRequest is {type:"rent"} or {type:"other", name, price, tax}.
// Name, price and tax are ignored for rent, which is priced from configuration.
type BulkCollectRequest struct {
	Type  FeeType          `json:"type" example:"other"`
	Name  string           `json:"name,omitempty" example:"cleaning"`
	Price *decimal.Decimal `json:"price,omitempty" swaggertype:"string" example:"50000"`
	Tax   *decimal.Decimal `json:"tax,omitempty" swaggertype:"string" example:"11"`
}

// ConfirmPaymentRequest marks billings as paid
type ConfirmPaymentRequest struct {
	BillingIDs []uint `json:"billing_ids" example:"6,2"`
}

// ReminderRequest carries the reminder bucket to run
type ReminderRequest struct {
	ReminderType string `json:"reminderType" example:"3days"`
}
