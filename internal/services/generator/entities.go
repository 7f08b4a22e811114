package generator

import (
	"fmt"
	"time"

	"finlytics/internal/models"
)

var merchantStatuses = MustWeighted(
	[]string{models.MerchantStatusActive, models.MerchantStatusInactive, models.MerchantStatusSuspended},
	[]float64{0.85, 0.10, 0.05},
)

const registrationWindow = 2 * 365 * 24 * time.Hour

// RiskCategoryForScore maps a credit score onto the three risk tiers.
// Buckets are contiguous and non-overlapping: [720, 850] LOW,
// [600, 719] MEDIUM, [300, 599] HIGH.
func RiskCategoryForScore(score int) string {
	switch {
	case score >= 720:
		return models.RiskCategoryLow
	case score >= 600:
		return models.RiskCategoryMedium
	default:
		return models.RiskCategoryHigh
	}
}

// GenerateCustomers produces n customer records. n <= 0 yields an empty
// population, which downstream stages must tolerate.
func (s *Service) GenerateCustomers(n int) []models.Customer {
	customers := make([]models.Customer, 0, max(n, 0))
	now := time.Now()

	for i := 0; i < n; i++ {
		score := creditScoreMin + s.rng.Intn(creditScoreMax-creditScoreMin+1)
		registeredAgo := time.Duration(s.rng.Int63n(int64(registrationWindow)))

		customers = append(customers, models.Customer{
			CustomerID:       fmt.Sprintf("CUST%05d", i+1),
			CustomerName:     s.faker.Name(),
			Email:            s.faker.Email(),
			Phone:            s.faker.Phone(),
			Country:          s.pickString(Countries),
			RegistrationDate: now.Add(-registeredAgo),
			CreditScore:      score,
			RiskCategory:     RiskCategoryForScore(score),
		})
	}
	return customers
}

// GenerateMerchants produces m merchant records, independent of the
// customer population.
func (s *Service) GenerateMerchants(m int) []models.Merchant {
	merchants := make([]models.Merchant, 0, max(m, 0))

	for i := 0; i < m; i++ {
		merchants = append(merchants, models.Merchant{
			MerchantID:     fmt.Sprintf("MERCH%04d", i+1),
			MerchantName:   s.faker.Company(),
			BusinessType:   s.pickString(BusinessTypes),
			Country:        s.pickString(Countries),
			CommissionRate: round2(s.uniform(commissionRateMin, commissionRateMax)),
			Status:         merchantStatuses.Pick(s.rng),
		})
	}
	return merchants
}
