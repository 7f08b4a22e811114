// Package report serves the read-side analytics queries, with a
// cache-aside layer over redis. All data it reads was produced by the
// pipeline; this package never writes.
package report

import (
	"context"
	"fmt"
	"log"
	"time"

	"finlytics/internal/models"
)

// Store is implemented by repositories.ReportRepository.
type Store interface {
	DailySummary(ctx context.Context, date time.Time) (*models.DailyTransactionSummary, error)
	FailedPayments(ctx context.Context, start, end time.Time) ([]models.FailedPayment, error)
	SLABreaches(ctx context.Context) ([]models.SLABreachReport, error)
	HighRiskTransactions(ctx context.Context, threshold float64) ([]models.HighRiskTransaction, error)
	PaymentAnalytics(ctx context.Context, limit int) ([]models.PaymentAnalytics, error)
	MerchantPerformance(ctx context.Context) ([]models.MerchantPerformance, error)
	CustomerInsights(ctx context.Context, limit int) ([]models.CustomerInsight, error)
}

// Cache is implemented by cache.Service. A nil Cache disables caching.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	DeleteMany(ctx context.Context, pattern string) error
}

const cacheKeyPrefix = "report:"

type Service struct {
	store Store
	cache Cache
}

func NewService(store Store, cache Cache) *Service {
	if store == nil {
		panic("store is required")
	}
	return &Service{store: store, cache: cache}
}

func (s *Service) DailySummary(ctx context.Context, date time.Time) (*models.DailyTransactionSummary, error) {
	key := cacheKeyPrefix + "daily:" + date.Format("2006-01-02")
	var cached models.DailyTransactionSummary
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}
	row, err := s.store.DailySummary(ctx, date)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, row)
	return row, nil
}

func (s *Service) FailedPayments(ctx context.Context, start, end time.Time) ([]models.FailedPayment, error) {
	key := fmt.Sprintf("%sfailed:%s:%s", cacheKeyPrefix, start.Format("2006-01-02"), end.Format("2006-01-02"))
	var cached []models.FailedPayment
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}
	rows, err := s.store.FailedPayments(ctx, start, end)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, rows)
	return rows, nil
}

func (s *Service) SLABreaches(ctx context.Context) ([]models.SLABreachReport, error) {
	key := cacheKeyPrefix + "sla-breaches"
	var cached []models.SLABreachReport
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}
	rows, err := s.store.SLABreaches(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, rows)
	return rows, nil
}

func (s *Service) HighRiskTransactions(ctx context.Context, threshold float64) ([]models.HighRiskTransaction, error) {
	key := fmt.Sprintf("%shigh-risk:%.2f", cacheKeyPrefix, threshold)
	var cached []models.HighRiskTransaction
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}
	rows, err := s.store.HighRiskTransactions(ctx, threshold)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, rows)
	return rows, nil
}

func (s *Service) PaymentAnalytics(ctx context.Context, limit int) ([]models.PaymentAnalytics, error) {
	return s.store.PaymentAnalytics(ctx, limit)
}

func (s *Service) MerchantPerformance(ctx context.Context) ([]models.MerchantPerformance, error) {
	return s.store.MerchantPerformance(ctx)
}

func (s *Service) CustomerInsights(ctx context.Context, limit int) ([]models.CustomerInsight, error) {
	return s.store.CustomerInsights(ctx, limit)
}

// InvalidateAll drops every cached report. Called after an ETL run so
// reports never serve pre-run data.
func (s *Service) InvalidateAll(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteMany(ctx, cacheKeyPrefix+"*"); err != nil {
		log.Printf("report cache invalidation failed: %v", err)
	}
}

func (s *Service) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	return s.cache.Get(ctx, key, dest) == nil
}

func (s *Service) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		// A cold cache is fine; the store stays authoritative.
		log.Printf("failed to cache report %s: %v", key, err)
	}
}
