package generator

import (
	"testing"
	"time"

	"finlytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePayments_EmptyPopulations(t *testing.T) {
	svc := NewSeeded(1)
	customers := svc.GenerateCustomers(5)
	merchants := svc.GenerateMerchants(2)

	t.Run("no customers", func(t *testing.T) {
		_, err := svc.GeneratePayments(nil, merchants, 10)
		assert.ErrorIs(t, err, ErrNoCustomers)
	})

	t.Run("no merchants", func(t *testing.T) {
		_, err := svc.GeneratePayments(customers, nil, 10)
		assert.ErrorIs(t, err, ErrNoMerchants)
	})

	t.Run("zero payments requested", func(t *testing.T) {
		payments, err := svc.GeneratePayments(nil, nil, 0)
		assert.NoError(t, err)
		assert.Empty(t, payments)
	})
}

func TestGeneratePayments_Invariants(t *testing.T) {
	svc := NewSeeded(42)
	customers := svc.GenerateCustomers(20)
	merchants := svc.GenerateMerchants(5)

	payments, err := svc.GeneratePayments(customers, merchants, 2000)
	require.NoError(t, err)
	require.Len(t, payments, 2000)

	customerIDs := make(map[string]bool)
	for _, c := range customers {
		customerIDs[c.CustomerID] = true
	}
	merchantIDs := make(map[string]bool)
	for _, m := range merchants {
		merchantIDs[m.MerchantID] = true
	}

	windowStart := time.Now().AddDate(0, 0, -TransactionWindowDays).Add(-time.Minute)
	windowEnd := time.Now().AddDate(0, 0, 1).Add(time.Hour)

	for _, p := range payments {
		assert.True(t, customerIDs[p.CustomerID], "unknown customer %s", p.CustomerID)
		assert.True(t, merchantIDs[p.MerchantID], "unknown merchant %s", p.MerchantID)

		assert.Greater(t, p.Amount, 0.0)
		assert.Equal(t, round2(p.Amount), p.Amount)
		inRegular := p.Amount >= regularAmountMin && p.Amount <= regularAmountMax
		inOutlier := p.Amount >= outlierAmountMin && p.Amount <= outlierAmountMax
		assert.True(t, inRegular || inOutlier, "amount %.2f outside both ranges", p.Amount)

		assert.GreaterOrEqual(t, p.RiskScore, 0.0)
		assert.LessOrEqual(t, p.RiskScore, 100.0)
		assert.Equal(t, p.RiskScore > 75 || p.Amount > 10000, p.IsSuspicious)

		if p.PaymentStatus == models.PaymentStatusFailed {
			require.NotNil(t, p.FailureReason)
			assert.Contains(t, FailureReasons, *p.FailureReason)
		} else {
			assert.Nil(t, p.FailureReason)
		}

		assert.GreaterOrEqual(t, p.ProcessingTimeSeconds, 1)
		assert.LessOrEqual(t, p.ProcessingTimeSeconds, 30)

		assert.Equal(t, DefaultCurrency, p.Currency)
		assert.Contains(t, PaymentMethods, p.PaymentMethod)

		assert.True(t, p.TransactionDate.After(windowStart), "timestamp %v before window", p.TransactionDate)
		assert.True(t, p.TransactionDate.Before(windowEnd), "timestamp %v after window", p.TransactionDate)
	}

	assert.Equal(t, "PAY000001", payments[0].PaymentID)
	assert.Equal(t, "PAY002000", payments[1999].PaymentID)
}

func TestRiskScore(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		amount   float64
		category string
		want     float64
	}{
		{"no adjustments", 50, 100, models.RiskCategoryLow, 50},
		{"large amount adds 30", 50, 6000, models.RiskCategoryLow, 80},
		{"high risk adds 20", 50, 100, models.RiskCategoryHigh, 70},
		{"both adjustments", 40, 6000, models.RiskCategoryHigh, 90},
		{"clamped after amount bump", 90, 6000, models.RiskCategoryLow, 100},
		{"clamped after both bumps", 90, 6000, models.RiskCategoryHigh, 100},
		{"boundary amount not bumped", 50, 5000, models.RiskCategoryLow, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, riskScore(tt.base, tt.amount, tt.category))
		})
	}
}

func TestIsSuspicious(t *testing.T) {
	assert.False(t, isSuspicious(75, 10000))
	assert.True(t, isSuspicious(75.01, 100))
	assert.True(t, isSuspicious(10, 10000.01))
	// High risk score alone is enough even below the amount threshold.
	assert.True(t, isSuspicious(80, 6000))
}

func TestGeneratePayments_OutlierFraction(t *testing.T) {
	svc := NewSeeded(2024)
	customers := svc.GenerateCustomers(100)
	merchants := svc.GenerateMerchants(10)

	const n = 100000
	payments, err := svc.GeneratePayments(customers, merchants, n)
	require.NoError(t, err)

	outliers := 0
	for _, p := range payments {
		if p.Amount >= outlierAmountMin {
			outliers++
		}
	}

	// Binomial sd for p=0.05, n=100000 is ~0.0007; 0.005 is several sigma.
	assert.InDelta(t, 0.05, float64(outliers)/float64(n), 0.005)
}

func TestGeneratePayments_StatusBiasByRisk(t *testing.T) {
	svc := NewSeeded(11)

	// Single-customer populations pin the risk category per run.
	lowCustomer := []models.Customer{{CustomerID: "CUST00001", CreditScore: 800, RiskCategory: models.RiskCategoryLow}}
	highCustomer := []models.Customer{{CustomerID: "CUST00002", CreditScore: 400, RiskCategory: models.RiskCategoryHigh}}
	merchants := svc.GenerateMerchants(3)

	failureRate := func(customers []models.Customer) float64 {
		payments, err := svc.GeneratePayments(customers, merchants, 20000)
		require.NoError(t, err)
		failed := 0
		for _, p := range payments {
			if p.PaymentStatus == models.PaymentStatusFailed {
				failed++
			}
		}
		return float64(failed) / float64(len(payments))
	}

	assert.InDelta(t, 0.03, failureRate(lowCustomer), 0.01)
	assert.InDelta(t, 0.25, failureRate(highCustomer), 0.02)
}
