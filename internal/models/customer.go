package models

import "time"

// Customer risk tiers derived from credit score.
const (
	RiskCategoryLow    = "LOW"
	RiskCategoryMedium = "MEDIUM"
	RiskCategoryHigh   = "HIGH"
)

// Customer is a synthetic account holder. Records are created once by the
// data pipeline and never mutated afterwards.
type Customer struct {
	CustomerID       string    `gorm:"primarykey;size:50" json:"customer_id"`
	CustomerName     string    `gorm:"size:255;not null" json:"customer_name"`
	Email            string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone            string    `gorm:"size:20" json:"phone"`
	Country          string    `gorm:"size:100" json:"country"`
	RegistrationDate time.Time `json:"registration_date"`
	CreditScore      int       `gorm:"not null" json:"credit_score"`
	RiskCategory     string    `gorm:"size:20;not null" json:"risk_category"`
	CreatedAt        time.Time `json:"created_at"`
}
