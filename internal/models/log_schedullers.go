package models

import (
	"time"
)

// Scheduler run statuses written to log_schedullers
const (
	SchedulerStatusStart   = "START"
	SchedulerStatusSuccess = "SUCCESS"
	SchedulerStatusFailed  = "FAILED"
)

// LogSchedullers represents the log_schedullers table, one row per scheduler run transition
type LogSchedullers struct {
	ID               uint      `json:"id" gorm:"primarykey"`
	DocumentID       string    `json:"document_id" gorm:"column:document_id;size:36;index"`
	SchedullerCode   string    `json:"scheduller_code" gorm:"column:scheduller_code;size:64"`
	Message          string    `json:"message" gorm:"column:message"`
	StatusScheduller string    `json:"status_scheduller" gorm:"column:status_scheduller;size:16"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName sets the insert table name for LogSchedullers
func (LogSchedullers) TableName() string {
	return "log_schedullers"
}
