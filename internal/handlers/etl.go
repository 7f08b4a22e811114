package handlers

import (
	"context"

	"finlytics/internal/services/pipeline"
	"finlytics/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// Default run sizes, overridable per request via query params.
const (
	defaultCustomerCount    = 500
	defaultMerchantCount    = 50
	defaultTransactionCount = 5000
)

// PipelineRunner is implemented by pipeline.Service.
type PipelineRunner interface {
	Run(ctx context.Context, cfg pipeline.Config) (*pipeline.Result, error)
}

// CacheInvalidator drops cached reports after a run. May be nil.
type CacheInvalidator interface {
	InvalidateAll(ctx context.Context)
}

type ETLHandler struct {
	pipeline    PipelineRunner
	initSchema  func() error
	invalidator CacheInvalidator
}

func NewETLHandler(runner PipelineRunner, initSchema func() error, invalidator CacheInvalidator) *ETLHandler {
	return &ETLHandler{
		pipeline:    runner,
		initSchema:  initSchema,
		invalidator: invalidator,
	}
}

// Initialize creates the reporting functions and views.
func (h *ETLHandler) Initialize(c *fiber.Ctx) error {
	if err := h.initSchema(); err != nil {
		return response.ServerError(c, err.Error())
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Database initialized successfully",
	})
}

// Run generates a dataset and loads it. Counts and seed come from query
// params; omitted params fall back to the defaults of the original demo
// dataset.
func (h *ETLHandler) Run(c *fiber.Ctx) error {
	cfg := pipeline.Config{
		CustomerCount:    c.QueryInt("customers", defaultCustomerCount),
		MerchantCount:    c.QueryInt("merchants", defaultMerchantCount),
		TransactionCount: c.QueryInt("transactions", defaultTransactionCount),
		Seed:             int64(c.QueryInt("seed", 0)),
	}
	if cfg.CustomerCount < 0 || cfg.MerchantCount < 0 || cfg.TransactionCount < 0 {
		return response.BadRequest(c, "counts must be non-negative")
	}

	result, err := h.pipeline.Run(c.Context(), cfg)
	if err != nil {
		return response.ServerError(c, err.Error())
	}

	if h.invalidator != nil {
		h.invalidator.InvalidateAll(c.Context())
	}

	return c.JSON(fiber.Map{
		"status":         "success",
		"message":        "ETL pipeline completed successfully",
		"run_id":         result.RunID,
		"records_loaded": result,
	})
}
