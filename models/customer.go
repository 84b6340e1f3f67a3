package models

import (
	"time"
)

type Customer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CreatedByID uint   `gorm:"index;not null" json:"-"`
	Name        string `gorm:"not null" json:"name"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `gorm:"not null" json:"address"`

	Jobs []Job `gorm:"foreignKey:CustomerID" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
