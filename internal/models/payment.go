package models

import "time"

// Payment statuses
const (
	PaymentStatusSuccess  = "SUCCESS"
	PaymentStatusFailed   = "FAILED"
	PaymentStatusPending  = "PENDING"
	PaymentStatusRefunded = "REFUNDED"
)

// Payment is a single synthetic transaction between one customer and one
// merchant. FailureReason is set iff PaymentStatus is FAILED; RiskScore is
// clamped to [0, 100].
type Payment struct {
	PaymentID             string    `gorm:"primarykey;size:50" json:"payment_id"`
	CustomerID            string    `gorm:"size:50;index;not null" json:"customer_id"`
	MerchantID            string    `gorm:"size:50;index;not null" json:"merchant_id"`
	Amount                float64   `gorm:"not null" json:"amount"`
	Currency              string    `gorm:"size:3;default:'USD'" json:"currency"`
	PaymentMethod         string    `gorm:"size:50" json:"payment_method"`
	PaymentStatus         string    `gorm:"size:20;index;not null" json:"payment_status"`
	TransactionDate       time.Time `gorm:"index;not null" json:"transaction_date"`
	ProcessingTimeSeconds int       `json:"processing_time_seconds"`
	FailureReason         *string   `json:"failure_reason"`
	RiskScore             float64   `json:"risk_score"`
	IsSuspicious          bool      `gorm:"default:false" json:"is_suspicious"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
