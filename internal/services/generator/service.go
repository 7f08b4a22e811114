// Package generator synthesizes the customer, merchant, and payment
// populations the analytics backend is demoed against. All randomness flows
// through an injected *rand.Rand so a fixed seed yields a reproducible
// dataset.
package generator

import (
	"math"
	"math/rand"

	"github.com/brianvoe/gofakeit/v7"
)

// Service generates entity and payment populations. It is not safe for
// concurrent use; the pipeline runs its stages sequentially over a single
// instance.
type Service struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// NewService builds a generator around an explicit random source and faker.
func NewService(rng *rand.Rand, faker *gofakeit.Faker) *Service {
	if rng == nil {
		panic("rng is required")
	}
	if faker == nil {
		panic("faker is required")
	}
	return &Service{rng: rng, faker: faker}
}

// NewSeeded builds a generator whose random source and faker both derive
// from the given seed.
func NewSeeded(seed int64) *Service {
	return NewService(rand.New(rand.NewSource(seed)), gofakeit.New(uint64(seed)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// uniform draws from [min, max).
func (s *Service) uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

func (s *Service) pickString(values []string) string {
	return values[s.rng.Intn(len(values))]
}
