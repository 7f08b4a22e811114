package generator

import "math/rand"

// Weighted is a categorical sampler over a fixed set of outcomes. The same
// primitive backs payment status, merchant status, and settlement status
// selection.
type Weighted struct {
	outcomes []string
	cum      []float64
	total    float64
}

// NewWeighted validates the distribution at construction so call sites can
// treat Pick as infallible.
func NewWeighted(outcomes []string, weights []float64) (*Weighted, error) {
	if len(outcomes) == 0 {
		return nil, ErrNoOutcomes
	}
	if len(outcomes) != len(weights) {
		return nil, ErrWeightMismatch
	}

	w := &Weighted{
		outcomes: outcomes,
		cum:      make([]float64, len(weights)),
	}
	for i, weight := range weights {
		if weight < 0 {
			return nil, ErrInvalidWeight
		}
		w.total += weight
		w.cum[i] = w.total
	}
	if w.total == 0 {
		return nil, ErrZeroTotalWeight
	}
	return w, nil
}

// MustWeighted panics on invalid distributions. For package-level tables
// whose weights are compile-time constants.
func MustWeighted(outcomes []string, weights []float64) *Weighted {
	w, err := NewWeighted(outcomes, weights)
	if err != nil {
		panic(err)
	}
	return w
}

// Pick draws one outcome using the supplied random source.
func (w *Weighted) Pick(rng *rand.Rand) string {
	x := rng.Float64() * w.total
	for i, c := range w.cum {
		if x < c {
			return w.outcomes[i]
		}
	}
	return w.outcomes[len(w.outcomes)-1]
}
