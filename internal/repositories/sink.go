package repositories

import (
	"context"

	"finlytics/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const loadBatchSize = 500

// BatchSink loads generated batches with insert-or-skip semantics: each
// record is keyed by its natural id and rows whose id already exists are
// left untouched. Re-loading an already-loaded batch is a no-op.
type BatchSink struct {
	db *gorm.DB
}

func NewBatchSink(db *gorm.DB) *BatchSink {
	if db == nil {
		panic("db is required")
	}
	return &BatchSink{db: db}
}

func (s *BatchSink) LoadCustomers(ctx context.Context, batch []models.Customer) error {
	if len(batch) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(batch, loadBatchSize).Error
}

func (s *BatchSink) LoadMerchants(ctx context.Context, batch []models.Merchant) error {
	if len(batch) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(batch, loadBatchSize).Error
}

func (s *BatchSink) LoadPayments(ctx context.Context, batch []models.Payment) error {
	if len(batch) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(batch, loadBatchSize).Error
}

func (s *BatchSink) LoadSettlements(ctx context.Context, batch []models.Settlement) error {
	if len(batch) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(batch, loadBatchSize).Error
}
