package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStatisticsResponse represents the current billing totals
type DashboardStatisticsResponse struct {
	Total             int64           `json:"total" example:"20"`
	Unpaid            int64           `json:"unpaid" example:"5"`
	Paid              int64           `json:"paid" example:"15"`
	Overdue           int64           `json:"overdue" example:"2"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount" swaggertype:"string" example:"7500000"`
}

// BillingListItem represents a single billing in the dashboard list
type BillingListItem struct {
	ID            uint            `json:"id" example:"42"`
	DocumentID    string          `json:"document_id" example:"6f1c0f5e-8f43-4b7a-9a58-2d3cf6f1c0aa"`
	UserID        uint            `json:"user_id" example:"7"`
	FullName      string          `json:"full_name" example:"Budi Santoso"`
	DueDate       time.Time       `json:"due_date"`
	BillingStatus string          `json:"billing_status" example:"unpaid"`
	Total         decimal.Decimal `json:"total" swaggertype:"string" example:"1500000"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BillingListFilter narrows the dashboard list; zero values mean no filter
type BillingListFilter struct {
	Status string
	UserID uint
}
