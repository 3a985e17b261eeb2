package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a single row of the customer dataset. Rows are immutable once loaded.
type Customer struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Email       string    `json:"email" gorm:"not null"`
	CreatedDate time.Time `json:"created_date" gorm:"column:created_date;not null"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;not null"`
	CountryCode string    `json:"country_code" gorm:"column:country_code;size:2"`
}

// TableName specifies the table name for the database dataset source
func (Customer) TableName() string {
	return "customers"
}
