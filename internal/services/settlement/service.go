// Package settlement turns the payment batch into per-merchant, per-day
// payout records, net of commission, with a simulated settlement-timing SLA.
package settlement

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"finlytics/internal/models"
	"finlytics/internal/services/generator"
)

// Settlements are contractually due two days after the transaction day; the
// simulated processing delay is a uniform 1-5 days.
const (
	slaDays      = 2
	minDelayDays = 1
	maxDelayDays = 5
)

var settlementStatuses = generator.MustWeighted(
	[]string{models.SettlementStatusCompleted, models.SettlementStatusPending, models.SettlementStatusFailed},
	[]float64{0.90, 0.08, 0.02},
)

// Service aggregates SUCCESS payments into settlements. Like the generator
// it draws from an injected random source and is single-threaded.
type Service struct {
	rng *rand.Rand
}

func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		panic("rng is required")
	}
	return &Service{rng: rng}
}

type groupKey struct {
	merchantID string
	day        time.Time
}

type accumulator struct {
	total float64
	count int
}

// Aggregate produces one settlement per distinct (merchant, calendar day)
// pair that has at least one SUCCESS payment. PENDING, FAILED, and REFUNDED
// payments contribute nothing. Output order follows first appearance of each
// key in the payment batch, which keeps a seeded run reproducible.
func (s *Service) Aggregate(payments []models.Payment, merchants []models.Merchant) ([]models.Settlement, error) {
	rates := make(map[string]float64, len(merchants))
	for _, m := range merchants {
		rates[m.MerchantID] = m.CommissionRate
	}

	groups := make(map[groupKey]*accumulator)
	var order []groupKey

	for _, p := range payments {
		if p.PaymentStatus != models.PaymentStatusSuccess {
			continue
		}
		if _, ok := rates[p.MerchantID]; !ok {
			return nil, fmt.Errorf("settlement aggregator: payment %s: %w (%s)", p.PaymentID, ErrUnknownMerchant, p.MerchantID)
		}

		key := groupKey{merchantID: p.MerchantID, day: dayOf(p.TransactionDate)}
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{}
			groups[key] = acc
			order = append(order, key)
		}
		acc.total += p.Amount
		acc.count++
	}

	settlements := make([]models.Settlement, 0, len(order))
	for i, key := range order {
		acc := groups[key]
		total := round2(acc.total)
		commission := round2(total * rates[key.merchantID] / 100)

		expected := key.day.AddDate(0, 0, slaDays)
		actual := key.day.AddDate(0, 0, minDelayDays+s.rng.Intn(maxDelayDays-minDelayDays+1))

		settlements = append(settlements, models.Settlement{
			SettlementID:           fmt.Sprintf("SETTLE%05d", i+1),
			MerchantID:             key.merchantID,
			SettlementDate:         actual,
			TotalAmount:            total,
			CommissionAmount:       commission,
			NetAmount:              round2(total - commission),
			PaymentCount:           acc.count,
			Status:                 settlementStatuses.Pick(s.rng),
			SLABreach:              actual.After(expected),
			ExpectedSettlementDate: expected,
		})
	}
	return settlements, nil
}

// dayOf discards the time of day, keeping the calendar date in the
// timestamp's location.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
