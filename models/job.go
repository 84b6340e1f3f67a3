package models

import (
	"time"
)

// Job is a unit of service work. CustomerName and Address are only set for
// manual entries; when CustomerID links an existing customer the display
// name and address come from that row instead.
type Job struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	CreatedByID   uint    `gorm:"index;not null" json:"-"`
	Service       string  `gorm:"default:'Window Cleaning'" json:"service"`
	JobDate       string  `gorm:"not null" json:"jobDate"`
	Price         float64 `gorm:"type:decimal(10,2)" json:"price"`
	Notes         string  `json:"notes"`
	CustomerName  string  `json:"customerName"`
	Address       string  `json:"address"`
	Paid          bool    `gorm:"default:false" json:"paid"`
	InvoiceNumber string  `json:"invoiceNumber,omitempty"`

	CustomerID *uint     `gorm:"index" json:"customerId,omitempty"`
	Customer   *Customer `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
