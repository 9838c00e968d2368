package models

import (
	"time"
)

// User represents the users table. Residents without an apartment are never billed.
type User struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	DocumentID  string     `json:"document_id" gorm:"column:document_id;size:36"`
	FullName    string     `json:"full_name" gorm:"column:full_name;size:255"`
	Email       string     `json:"email" gorm:"column:email;size:255;index"`
	ApartmentID *uint      `json:"apartment_id" gorm:"column:apartment_id;index"`
	Apartment   *Apartment `json:"apartment,omitempty" gorm:"foreignKey:ApartmentID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName sets the insert table name for User
func (User) TableName() string {
	return "users"
}
