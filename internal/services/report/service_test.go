package report

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"finlytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	dailyCalls int
	slaCalls   int
}

func (s *stubStore) DailySummary(context.Context, time.Time) (*models.DailyTransactionSummary, error) {
	s.dailyCalls++
	return &models.DailyTransactionSummary{TotalTransactions: 42}, nil
}

func (s *stubStore) FailedPayments(context.Context, time.Time, time.Time) ([]models.FailedPayment, error) {
	return nil, nil
}

func (s *stubStore) SLABreaches(context.Context) ([]models.SLABreachReport, error) {
	s.slaCalls++
	return []models.SLABreachReport{{SettlementID: "SETTLE00001", DaysDelayed: 3}}, nil
}

func (s *stubStore) HighRiskTransactions(context.Context, float64) ([]models.HighRiskTransaction, error) {
	return nil, nil
}

func (s *stubStore) PaymentAnalytics(context.Context, int) ([]models.PaymentAnalytics, error) {
	return nil, nil
}

func (s *stubStore) MerchantPerformance(context.Context) ([]models.MerchantPerformance, error) {
	return nil, nil
}

func (s *stubStore) CustomerInsights(context.Context, int) ([]models.CustomerInsight, error) {
	return nil, nil
}

// mapCache is a JSON round-tripping cache double.
type mapCache struct {
	entries map[string][]byte
}

func newMapCache() *mapCache { return &mapCache{entries: make(map[string][]byte)} }

func (c *mapCache) Get(_ context.Context, key string, dest interface{}) error {
	data, ok := c.entries[key]
	if !ok {
		return errors.New("cache miss")
	}
	return json.Unmarshal(data, dest)
}

func (c *mapCache) Set(_ context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *mapCache) DeleteMany(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

func TestService_CacheAside(t *testing.T) {
	store := &stubStore{}
	cache := newMapCache()
	svc := NewService(store, cache)
	ctx := context.Background()

	rows, err := svc.SLABreaches(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, store.slaCalls)

	// Second read is served from cache.
	rows, err = svc.SLABreaches(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "SETTLE00001", rows[0].SettlementID)
	assert.Equal(t, 1, store.slaCalls)

	// Invalidation forces the store again.
	svc.InvalidateAll(ctx)
	_, err = svc.SLABreaches(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, store.slaCalls)
}

func TestService_NilCacheGoesToStore(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		summary, err := svc.DailySummary(ctx, time.Now())
		require.NoError(t, err)
		assert.EqualValues(t, 42, summary.TotalTransactions)
	}
	assert.Equal(t, 3, store.dailyCalls)
}
