package material

import "math"

// Reference parameter set: a structural steel coil spring.
const (
	DefaultE0     = 200e9 // Pa
	DefaultA0     = 1e-4  // m^2
	DefaultL0     = 0.5   // m
	DefaultT0     = 20.0  // C
	DefaultAlpha  = 12e-6 // 1/C
	DefaultBeta   = 5e-4  // 1/C
	DefaultGamma  = 1e-4  // 1/C^2, sub-zero stiffening
	DefaultLambda = 1e-3  // 1/s
)

// Parameters holds the material constants. E0, A0 and L0 are the
// modulus, cross-section area and length at the reference temperature
// T0. Gamma only contributes below 0 C; Lambda is the exponential
// degradation rate of the modulus over time.
type Parameters struct {
	E0     float64
	A0     float64
	L0     float64
	T0     float64
	Alpha  float64
	Beta   float64
	Gamma  float64
	Lambda float64
}

// DefaultParameters returns the reference steel parameter set.
func DefaultParameters() Parameters {
	return Parameters{
		E0:     DefaultE0,
		A0:     DefaultA0,
		L0:     DefaultL0,
		T0:     DefaultT0,
		Alpha:  DefaultAlpha,
		Beta:   DefaultBeta,
		Gamma:  DefaultGamma,
		Lambda: DefaultLambda,
	}
}

func (p Parameters) Validate() error {
	if p.E0 <= 0 {
		return ErrNonPositiveModulus
	}
	if p.A0 <= 0 {
		return ErrNonPositiveArea
	}
	if p.L0 <= 0 {
		return ErrNonPositiveLength
	}
	if p.Lambda < 0 {
		return ErrNegativeDecay
	}
	return nil
}

// Result exposes the intermediate quantities behind a spring constant
// evaluation.
type Result struct {
	E float64 // Young's modulus, Pa
	L float64 // length, m
	A float64 // cross-section area, m^2
	K float64 // spring constant, N/m
}

// Model evaluates the spring constant for one parameter set. The
// parameters are copied at construction and never mutated.
type Model struct {
	p Parameters
}

func New(p Parameters) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Model{p: p}, nil
}

func (m *Model) Params() Parameters { return m.p }

// YoungsModulus returns E(T). Above freezing the modulus softens
// linearly with temperature; below 0 C a quadratic stiffening factor
// 1 + gamma·T² takes over, growing without bound as T decreases.
func (m *Model) YoungsModulus(T float64) float64 {
	e := m.p.E0 * (1 - m.p.Beta*(T-m.p.T0))
	if T < 0 {
		e *= 1 + m.p.Gamma*T*T
	}
	return e
}

// Length returns L(T) under linear thermal expansion. Assumes T is
// inside the valid domain; see MinTemperature.
func (m *Model) Length(T float64) float64 {
	return m.p.L0 * (1 + m.p.Alpha*(T-m.p.T0))
}

// Area returns A(T). The factor 2 is the first-order biaxial
// expansion: (1+alpha·dT)² ≈ 1+2·alpha·dT. The linear form is the
// model, not an implementation shortcut.
func (m *Model) Area(T float64) float64 {
	return m.p.A0 * (1 + 2*m.p.Alpha*(T-m.p.T0))
}

// SpringConstant returns k(T) = E·A/L at elapsed time zero. Assumes T
// is inside the valid domain.
func (m *Model) SpringConstant(T float64) float64 {
	return m.YoungsModulus(T) * m.Area(T) / m.Length(T)
}

// SpringConstantAt returns k(T, t) with the modulus degraded by
// exp(−lambda·t). At t = 0 it equals SpringConstant(T) exactly.
func (m *Model) SpringConstantAt(T, t float64) float64 {
	e := m.YoungsModulus(T) * math.Exp(-m.p.Lambda*t)
	return e * m.Area(T) / m.Length(T)
}

// Evaluate computes k(T, t) with its intermediates, rejecting inputs
// outside the model domain instead of propagating non-physical values.
func (m *Model) Evaluate(T, t float64) (Result, error) {
	if t < 0 {
		return Result{}, ErrNegativeTime
	}
	factor := 1 + m.p.Alpha*(T-m.p.T0)
	if factor <= 0 {
		return Result{}, &DomainError{Temperature: T, Factor: factor}
	}
	r := Result{
		E: m.YoungsModulus(T) * math.Exp(-m.p.Lambda*t),
		L: m.p.L0 * factor,
		A: m.Area(T),
	}
	r.K = r.E * r.A / r.L
	return r, nil
}

// MinTemperature returns the infimum of the valid domain: the
// temperature where the expansion factor reaches zero. For alpha <= 0
// there is no lower bound and -Inf is returned.
func (m *Model) MinTemperature() float64 {
	if m.p.Alpha <= 0 {
		return math.Inf(-1)
	}
	return m.p.T0 - 1/m.p.Alpha
}
