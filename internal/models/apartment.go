package models

import "time"

// Apartment represents the apartments table
type Apartment struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	DocumentID string    `json:"document_id" gorm:"column:document_id;size:36"`
	Name       string    `json:"name" gorm:"column:name;size:64"`
	Floor      int       `json:"floor" gorm:"column:floor"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Apartment
func (Apartment) TableName() string {
	return "apartments"
}
