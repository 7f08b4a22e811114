package models

import "time"

// Settlement statuses
const (
	SettlementStatusCompleted = "COMPLETED"
	SettlementStatusPending   = "PENDING"
	SettlementStatusFailed    = "FAILED"
)

// Settlement is a batched payout covering all SUCCESS payments of one
// merchant for one calendar day. NetAmount = TotalAmount - CommissionAmount
// to the cent; SLABreach is true when the actual settlement date falls after
// the contractual expected date (grouping day + 2 days).
type Settlement struct {
	SettlementID           string    `gorm:"primarykey;size:50" json:"settlement_id"`
	MerchantID             string    `gorm:"size:50;index;not null" json:"merchant_id"`
	SettlementDate         time.Time `gorm:"index;not null" json:"settlement_date"`
	TotalAmount            float64   `gorm:"not null" json:"total_amount"`
	CommissionAmount       float64   `gorm:"not null" json:"commission_amount"`
	NetAmount              float64   `gorm:"not null" json:"net_amount"`
	PaymentCount           int       `gorm:"not null" json:"payment_count"`
	Status                 string    `gorm:"size:20;not null" json:"status"`
	SLABreach              bool      `gorm:"column:sla_breach;default:false" json:"sla_breach"`
	ExpectedSettlementDate time.Time `json:"expected_settlement_date"`
	CreatedAt              time.Time `json:"created_at"`
}
