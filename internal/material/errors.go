package material

import (
	"errors"
	"fmt"
)

// Validation errors for parameter construction.
var (
	// ErrNonPositiveModulus indicates E0 <= 0.
	ErrNonPositiveModulus = errors.New("material: reference modulus E0 must be positive")

	// ErrNonPositiveArea indicates A0 <= 0.
	ErrNonPositiveArea = errors.New("material: reference area A0 must be positive")

	// ErrNonPositiveLength indicates L0 <= 0.
	ErrNonPositiveLength = errors.New("material: reference length L0 must be positive")

	// ErrNegativeDecay indicates lambda < 0.
	ErrNegativeDecay = errors.New("material: decay rate lambda must be non-negative")

	// ErrNegativeTime indicates an elapsed time below zero.
	ErrNegativeTime = errors.New("material: elapsed time must be non-negative")
)

// DomainError reports a temperature outside the model's valid domain,
// where the thermal expansion factor 1 + alpha·(T−T0) is non-positive
// and the implied physical length vanishes or turns negative.
type DomainError struct {
	Temperature float64
	Factor      float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("material: temperature %.4g C outside valid domain (expansion factor %.4g <= 0)", e.Temperature, e.Factor)
}
