// Package pipeline sequences the generation stages and loads the resulting
// dataset through a persistence sink.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"finlytics/internal/models"
	"finlytics/internal/services/generator"
	"finlytics/internal/services/settlement"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Sink is the persistence boundary the pipeline loads into. Each Load call
// is a batched idempotent upsert: records are keyed by their natural id,
// already-present ids are skipped silently, and a conflict is never an
// error.
type Sink interface {
	LoadCustomers(ctx context.Context, batch []models.Customer) error
	LoadMerchants(ctx context.Context, batch []models.Merchant) error
	LoadPayments(ctx context.Context, batch []models.Payment) error
	LoadSettlements(ctx context.Context, batch []models.Settlement) error
}

// Config sizes one pipeline run. A zero Seed means seed from the clock.
type Config struct {
	CustomerCount    int
	MerchantCount    int
	TransactionCount int
	Seed             int64
}

// Result reports what one run produced and loaded.
type Result struct {
	RunID       string `json:"run_id"`
	Customers   int    `json:"customers"`
	Merchants   int    `json:"merchants"`
	Payments    int    `json:"payments"`
	Settlements int    `json:"settlements"`
}

// Dataset is one coherent generated batch, before loading.
type Dataset struct {
	Customers   []models.Customer
	Merchants   []models.Merchant
	Payments    []models.Payment
	Settlements []models.Settlement
}

type Service struct {
	sink Sink
}

func NewService(sink Sink) *Service {
	if sink == nil {
		panic("sink is required")
	}
	return &Service{sink: sink}
}

// Generate executes the three stages strictly in order: entities, then
// payments sampled from the complete entity populations, then settlements
// over the full payment batch. All stages share one random source, so a
// fixed non-zero seed reproduces the whole dataset.
func Generate(cfg Config) (*Dataset, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	gen := generator.NewService(rng, gofakeit.New(uint64(seed)))
	agg := settlement.NewService(rng)

	log.Printf("pipeline: generating %d customers, %d merchants, %d payments (seed=%d)",
		cfg.CustomerCount, cfg.MerchantCount, cfg.TransactionCount, seed)

	customers := gen.GenerateCustomers(cfg.CustomerCount)
	merchants := gen.GenerateMerchants(cfg.MerchantCount)

	payments, err := gen.GeneratePayments(customers, merchants, cfg.TransactionCount)
	if err != nil {
		return nil, fmt.Errorf("payment stage: %w", err)
	}

	settlements, err := agg.Aggregate(payments, merchants)
	if err != nil {
		return nil, fmt.Errorf("settlement stage: %w", err)
	}

	return &Dataset{
		Customers:   customers,
		Merchants:   merchants,
		Payments:    payments,
		Settlements: settlements,
	}, nil
}

// Run generates one dataset and loads it through the sink. Nothing is
// loaded until every stage has succeeded, so a configuration error never
// leaves partial data behind.
func (s *Service) Run(ctx context.Context, cfg Config) (*Result, error) {
	ds, err := Generate(cfg)
	if err != nil {
		return nil, err
	}

	if err := s.sink.LoadCustomers(ctx, ds.Customers); err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	if err := s.sink.LoadMerchants(ctx, ds.Merchants); err != nil {
		return nil, fmt.Errorf("load merchants: %w", err)
	}
	if err := s.sink.LoadPayments(ctx, ds.Payments); err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	if err := s.sink.LoadSettlements(ctx, ds.Settlements); err != nil {
		return nil, fmt.Errorf("load settlements: %w", err)
	}

	log.Printf("pipeline: loaded %d customers, %d merchants, %d payments, %d settlements",
		len(ds.Customers), len(ds.Merchants), len(ds.Payments), len(ds.Settlements))

	return &Result{
		RunID:       uuid.NewString(),
		Customers:   len(ds.Customers),
		Merchants:   len(ds.Merchants),
		Payments:    len(ds.Payments),
		Settlements: len(ds.Settlements),
	}, nil
}
