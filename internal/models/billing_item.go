package models

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// BillingItem represents the billing_items table: one service charge attached to a billing.
// Name, price and tax are copied from the service when the billing is created.
type BillingItem struct {
	ID        uint            `json:"id" gorm:"primarykey"`
	BillingID uint            `json:"billing_id" gorm:"column:billing_id;not null;index"`
	ServiceID uint            `json:"service_id" gorm:"column:service_id;not null;index"`
	Name      string          `json:"name" gorm:"column:name;size:255;not null"`
	Price     decimal.Decimal `json:"price" gorm:"column:price;type:decimal(15,2);not null"`
	Tax       decimal.Decimal `json:"tax" gorm:"column:tax;type:decimal(5,2);not null;default:0"`
}

// TableName sets the insert table name for BillingItem
func (BillingItem) TableName() string {
	return "billing_items"
}

// Amount is price plus price*tax/100
func (i BillingItem) Amount() decimal.Decimal {
	return i.Price.Add(i.Price.Mul(i.Tax).Div(hundred))
}
