package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceNameRent is the catalogue name of the monthly rent charge
const ServiceNameRent = "rent"

// MoneyPlaces is the scale of the decimal(15,2) price and decimal(5,2) tax columns
const MoneyPlaces = 2

// MaxPrice is the largest value a decimal(15,2) price column holds
var MaxPrice = decimal.RequireFromString("9999999999999.99")

// Service represents the services table (the charge catalogue)
type Service struct {
	ID          uint            `json:"id" gorm:"primarykey"`
	DocumentID  string          `json:"document_id" gorm:"column:document_id;size:36;uniqueIndex"`
	Name        string          `json:"name" gorm:"column:name;size:255;not null;uniqueIndex"`
	Price       decimal.Decimal `json:"price" gorm:"column:price;type:decimal(15,2);not null"`
	Tax         decimal.Decimal `json:"tax" gorm:"column:tax;type:decimal(5,2);not null;default:0"`
	Description string          `json:"description" gorm:"column:description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName sets the insert table name for Service
func (Service) TableName() string {
	return "services"
}
