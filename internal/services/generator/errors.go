package generator

import "errors"

var (
	ErrNoCustomers = errors.New("customer population is empty")
	ErrNoMerchants = errors.New("merchant population is empty")

	ErrNoOutcomes      = errors.New("weighted sampler requires at least one outcome")
	ErrWeightMismatch  = errors.New("outcomes and weights must have equal length")
	ErrInvalidWeight   = errors.New("weights must be non-negative")
	ErrZeroTotalWeight = errors.New("weights must not sum to zero")
)
