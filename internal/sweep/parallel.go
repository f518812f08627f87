package sweep

import (
	"sync"

	"github.com/san-kum/springlab/internal/material"
)

// MultiTemperature runs one time sweep per temperature. The sweeps
// share no state, so each runs on its own goroutine; series come back
// in the order of temps.
func MultiTemperature(m *material.Model, temps []float64, span Span) ([]Series, error) {
	if err := span.Validate(); err != nil {
		return nil, err
	}

	results := make([]Series, len(temps))
	errs := make([]error, len(temps))

	var wg sync.WaitGroup
	for i, T := range temps {
		wg.Add(1)
		go func(idx int, temp float64) {
			defer wg.Done()
			results[idx], errs[idx] = Time(m, temp, span)
		}(i, T)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
