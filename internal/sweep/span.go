package sweep

import (
	"errors"
	"iter"
)

// Span errors.
var (
	// ErrTooFewSamples indicates a span with fewer than two samples.
	ErrTooFewSamples = errors.New("sweep: span needs at least 2 samples")

	// ErrEmptySpan indicates Max <= Min.
	ErrEmptySpan = errors.New("sweep: span max must exceed min")
)

// Span describes N evenly spaced samples from Min to Max, both ends
// inclusive. It is a value, so every iteration restarts from Min.
type Span struct {
	Min float64
	Max float64
	N   int
}

func (s Span) Validate() error {
	if s.N < 2 {
		return ErrTooFewSamples
	}
	if s.Max <= s.Min {
		return ErrEmptySpan
	}
	return nil
}

// Step returns the spacing between adjacent samples.
func (s Span) Step() float64 {
	return (s.Max - s.Min) / float64(s.N-1)
}

// At returns the i-th sample. The last index yields Max exactly, not
// the accumulated Min + (N-1)*step.
func (s Span) At(i int) float64 {
	if i == s.N-1 {
		return s.Max
	}
	return s.Min + float64(i)*s.Step()
}

// All yields the samples in increasing order.
func (s Span) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := 0; i < s.N; i++ {
			if !yield(s.At(i)) {
				return
			}
		}
	}
}

// Values materializes the span into a slice.
func (s Span) Values() []float64 {
	out := make([]float64, 0, s.N)
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}
