package generator

import (
	"fmt"
	"math"
	"time"

	"finlytics/internal/models"
)

var paymentStatuses = []string{
	models.PaymentStatusSuccess,
	models.PaymentStatusFailed,
	models.PaymentStatusPending,
	models.PaymentStatusRefunded,
}

// Riskier customers fail and refund more often.
var statusByRiskCategory = map[string]*Weighted{
	models.RiskCategoryHigh:   MustWeighted(paymentStatuses, []float64{0.65, 0.25, 0.08, 0.02}),
	models.RiskCategoryMedium: MustWeighted(paymentStatuses, []float64{0.85, 0.10, 0.04, 0.01}),
	models.RiskCategoryLow:    MustWeighted(paymentStatuses, []float64{0.95, 0.03, 0.015, 0.005}),
}

// GeneratePayments produces t payment records, each sampling one customer
// and one merchant uniformly with replacement. Generating from an empty
// population is a configuration error and aborts before any record is
// produced.
func (s *Service) GeneratePayments(customers []models.Customer, merchants []models.Merchant, t int) ([]models.Payment, error) {
	if t <= 0 {
		return []models.Payment{}, nil
	}
	if len(customers) == 0 {
		return nil, fmt.Errorf("transaction generator: %w", ErrNoCustomers)
	}
	if len(merchants) == 0 {
		return nil, fmt.Errorf("transaction generator: %w", ErrNoMerchants)
	}

	windowStart := time.Now().AddDate(0, 0, -TransactionWindowDays)
	payments := make([]models.Payment, 0, t)

	for i := 0; i < t; i++ {
		customer := customers[s.rng.Intn(len(customers))]
		merchant := merchants[s.rng.Intn(len(merchants))]

		status := statusByRiskCategory[customer.RiskCategory].Pick(s.rng)
		amount := s.drawAmount()
		risk := riskScore(s.rng.Float64()*100, amount, customer.RiskCategory)

		var failureReason *string
		if status == models.PaymentStatusFailed {
			reason := s.pickString(FailureReasons)
			failureReason = &reason
		}

		payments = append(payments, models.Payment{
			PaymentID:             fmt.Sprintf("PAY%06d", i+1),
			CustomerID:            customer.CustomerID,
			MerchantID:            merchant.MerchantID,
			Amount:                amount,
			Currency:              DefaultCurrency,
			PaymentMethod:         s.pickString(PaymentMethods),
			PaymentStatus:         status,
			TransactionDate:       s.drawTransactionDate(windowStart),
			ProcessingTimeSeconds: 1 + s.rng.Intn(30),
			FailureReason:         failureReason,
			RiskScore:             risk,
			IsSuspicious:          isSuspicious(risk, amount),
		})
	}
	return payments, nil
}

// drawAmount samples from a mixture: a 5% outlier tail of large
// transactions, otherwise the regular range.
func (s *Service) drawAmount() float64 {
	if s.rng.Float64() < outlierProbability {
		return round2(s.uniform(outlierAmountMin, outlierAmountMax))
	}
	return round2(s.uniform(regularAmountMin, regularAmountMax))
}

// drawTransactionDate spreads timestamps over the trailing window with day,
// hour, and minute independently randomized. Timestamps are not monotonic
// across generated records.
func (s *Service) drawTransactionDate(windowStart time.Time) time.Time {
	return windowStart.
		AddDate(0, 0, s.rng.Intn(TransactionWindowDays+1)).
		Add(time.Duration(s.rng.Intn(24))*time.Hour + time.Duration(s.rng.Intn(60))*time.Minute)
}

// riskScore additively adjusts a uniform base in [0, 100], clamping to 100
// after each addition. The clamp placement matches the scoring model; do
// not reorder additions relative to it.
func riskScore(base, amount float64, riskCategory string) float64 {
	score := base
	if amount > outlierAmountMin {
		score = math.Min(100, score+30)
	}
	if riskCategory == models.RiskCategoryHigh {
		score = math.Min(100, score+20)
	}
	return round2(score)
}

// isSuspicious flags a payment on either a high risk score or a high raw
// amount. A logical OR, not a blend.
func isSuspicious(risk, amount float64) bool {
	return risk > suspiciousRiskThreshold || amount > suspiciousAmountThreshold
}
