package models

import "time"

// Merchant statuses
const (
	MerchantStatusActive    = "ACTIVE"
	MerchantStatusInactive  = "INACTIVE"
	MerchantStatusSuspended = "SUSPENDED"
)

// Merchant is a synthetic payee. CommissionRate is a percentage in
// [1.5, 5.0], fixed at creation and applied to every settlement.
type Merchant struct {
	MerchantID     string    `gorm:"primarykey;size:50" json:"merchant_id"`
	MerchantName   string    `gorm:"size:255;not null" json:"merchant_name"`
	BusinessType   string    `gorm:"size:100" json:"business_type"`
	Country        string    `gorm:"size:100" json:"country"`
	CommissionRate float64   `gorm:"not null;default:2.5" json:"commission_rate"`
	Status         string    `gorm:"size:20;not null" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
