package settlement

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"finlytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMerchants() []models.Merchant {
	return []models.Merchant{
		{MerchantID: "MERCH0001", CommissionRate: 2.5},
		{MerchantID: "MERCH0002", CommissionRate: 4.0},
	}
}

func payment(id, merchantID, status string, amount float64, ts time.Time) models.Payment {
	return models.Payment{
		PaymentID:       id,
		CustomerID:      "CUST00001",
		MerchantID:      merchantID,
		Amount:          amount,
		PaymentStatus:   status,
		TransactionDate: ts,
	}
}

func TestAggregate_GroupsByMerchantAndDay(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	day1 := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	day1Later := time.Date(2026, 8, 1, 22, 5, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 3, 0, 0, 0, time.UTC)

	payments := []models.Payment{
		payment("PAY000001", "MERCH0001", models.PaymentStatusSuccess, 100.50, day1),
		payment("PAY000002", "MERCH0001", models.PaymentStatusSuccess, 49.50, day1Later),
		payment("PAY000003", "MERCH0001", models.PaymentStatusSuccess, 10.00, day2),
		payment("PAY000004", "MERCH0002", models.PaymentStatusSuccess, 200.00, day1),
		payment("PAY000005", "MERCH0001", models.PaymentStatusFailed, 999.99, day1),
		payment("PAY000006", "MERCH0002", models.PaymentStatusPending, 50.00, day1),
		payment("PAY000007", "MERCH0002", models.PaymentStatusRefunded, 75.00, day2),
	}

	settlements, err := svc.Aggregate(payments, testMerchants())
	require.NoError(t, err)
	require.Len(t, settlements, 3)

	byKey := make(map[string]models.Settlement)
	for _, s := range settlements {
		byKey[s.MerchantID+"/"+s.ExpectedSettlementDate.AddDate(0, 0, -2).Format("2006-01-02")] = s
	}

	s1 := byKey["MERCH0001/2026-08-01"]
	assert.Equal(t, 150.00, s1.TotalAmount)
	assert.Equal(t, 2, s1.PaymentCount)
	assert.Equal(t, 3.75, s1.CommissionAmount) // 150 * 2.5%
	assert.Equal(t, 146.25, s1.NetAmount)

	s2 := byKey["MERCH0001/2026-08-02"]
	assert.Equal(t, 10.00, s2.TotalAmount)
	assert.Equal(t, 1, s2.PaymentCount)
	assert.Equal(t, 0.25, s2.CommissionAmount)
	assert.Equal(t, 9.75, s2.NetAmount)

	s3 := byKey["MERCH0002/2026-08-01"]
	assert.Equal(t, 200.00, s3.TotalAmount)
	assert.Equal(t, 8.00, s3.CommissionAmount) // 200 * 4%
	assert.Equal(t, 192.00, s3.NetAmount)
}

func TestAggregate_OnlySuccessPaymentsSettle(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	ts := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)

	payments := []models.Payment{
		payment("PAY000001", "MERCH0001", models.PaymentStatusFailed, 100, ts),
		payment("PAY000002", "MERCH0001", models.PaymentStatusPending, 100, ts),
		payment("PAY000003", "MERCH0001", models.PaymentStatusRefunded, 100, ts),
	}

	settlements, err := svc.Aggregate(payments, testMerchants())
	require.NoError(t, err)
	assert.Empty(t, settlements)
}

func TestAggregate_UnknownMerchantIsFatal(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	ts := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)

	payments := []models.Payment{
		payment("PAY000001", "MERCH9999", models.PaymentStatusSuccess, 100, ts),
	}

	settlements, err := svc.Aggregate(payments, testMerchants())
	assert.ErrorIs(t, err, ErrUnknownMerchant)
	assert.Contains(t, err.Error(), "PAY000001")
	assert.Contains(t, err.Error(), "MERCH9999")
	assert.Nil(t, settlements)
}

func TestAggregate_SettlementTiming(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(3)))
	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	// One settlement group per day so every group draws its own offset.
	var payments []models.Payment
	for i := 0; i < 1000; i++ {
		ts := base.AddDate(0, 0, i).Add(14 * time.Hour)
		payments = append(payments, payment(fmt.Sprintf("PAY%06d", i+1), "MERCH0001", models.PaymentStatusSuccess, 50, ts))
	}

	settlements, err := svc.Aggregate(payments, testMerchants())
	require.NoError(t, err)
	require.Len(t, settlements, 1000)

	breaches := 0
	for _, s := range settlements {
		day := s.ExpectedSettlementDate.AddDate(0, 0, -2)
		offset := int(s.SettlementDate.Sub(day).Hours() / 24)
		assert.GreaterOrEqual(t, offset, 1)
		assert.LessOrEqual(t, offset, 5)
		assert.Equal(t, s.SettlementDate.After(s.ExpectedSettlementDate), s.SLABreach)
		assert.Equal(t, offset > 2, s.SLABreach)
		if s.SLABreach {
			breaches++
		}
	}

	// Offsets 3, 4, 5 of a uniform 1-5 draw breach: expect ~60%.
	assert.InDelta(t, 0.60, float64(breaches)/float64(len(settlements)), 0.05)
}

func TestAggregate_StatusAndIDs(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(5)))
	base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	var payments []models.Payment
	for i := 0; i < 200; i++ {
		ts := base.AddDate(0, 0, i)
		payments = append(payments, payment(fmt.Sprintf("PAY%06d", i+1), "MERCH0002", models.PaymentStatusSuccess, 10, ts))
	}

	settlements, err := svc.Aggregate(payments, testMerchants())
	require.NoError(t, err)

	statuses := []string{
		models.SettlementStatusCompleted,
		models.SettlementStatusPending,
		models.SettlementStatusFailed,
	}
	for i, s := range settlements {
		assert.Equal(t, fmt.Sprintf("SETTLE%05d", i+1), s.SettlementID)
		assert.Contains(t, statuses, s.Status)
	}
}

func TestAggregate_EmptyInputs(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))

	settlements, err := svc.Aggregate(nil, testMerchants())
	require.NoError(t, err)
	assert.Empty(t, settlements)

	settlements, err = svc.Aggregate(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, settlements)
}
