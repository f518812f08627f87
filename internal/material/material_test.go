package material

import (
	"errors"
	"math"
	"testing"
)

func newDefault(t *testing.T) *Model {
	t.Helper()
	m, err := New(DefaultParameters())
	if err != nil {
		t.Fatalf("default parameters rejected: %v", err)
	}
	return m
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Parameters)
		want   error
	}{
		{"zero modulus", func(p *Parameters) { p.E0 = 0 }, ErrNonPositiveModulus},
		{"negative area", func(p *Parameters) { p.A0 = -1e-4 }, ErrNonPositiveArea},
		{"zero length", func(p *Parameters) { p.L0 = 0 }, ErrNonPositiveLength},
		{"negative decay", func(p *Parameters) { p.Lambda = -1e-3 }, ErrNegativeDecay},
	}

	for _, tt := range tests {
		p := DefaultParameters()
		tt.mutate(&p)
		if _, err := New(p); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}

	if _, err := New(DefaultParameters()); err != nil {
		t.Errorf("valid parameters rejected: %v", err)
	}
}

func TestModulusAtReferenceTemperature(t *testing.T) {
	m := newDefault(t)

	// The linear term vanishes at T0, so E(T0) == E0 with no tolerance.
	if e := m.YoungsModulus(DefaultT0); e != DefaultE0 {
		t.Errorf("expected E0 %g at T0, got %g", DefaultE0, e)
	}
}

func TestSpringConstantAtReference(t *testing.T) {
	m := newDefault(t)

	r, err := m.Evaluate(20, 0)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	if r.E != 200e9 {
		t.Errorf("expected E 200e9, got %g", r.E)
	}
	if r.L != 0.5 {
		t.Errorf("expected L 0.5, got %g", r.L)
	}
	if r.A != 1e-4 {
		t.Errorf("expected A 1e-4, got %g", r.A)
	}
	if r.K != 4e7 {
		t.Errorf("expected k 4e7, got %g", r.K)
	}
}

func TestSpringConstantSubZero(t *testing.T) {
	m := newDefault(t)

	r, err := m.Evaluate(-10, 0)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	// E = 200e9 * 1.015 * 1.01, L = 0.49982, A = 9.9928e-5.
	wantE := 200e9 * 1.015 * 1.01
	if math.Abs(r.E-wantE)/wantE > 1e-12 {
		t.Errorf("expected E %g, got %g", wantE, r.E)
	}

	wantK := 4.098e7
	if math.Abs(r.K-wantK)/wantK > 1e-3 {
		t.Errorf("expected k near %g, got %g", wantK, r.K)
	}
}

func TestTimeZeroEquivalence(t *testing.T) {
	m := newDefault(t)

	for _, T := range []float64{-80, -10, 0, 20, 150} {
		if got, want := m.SpringConstantAt(T, 0), m.SpringConstant(T); got != want {
			t.Errorf("T=%g: k(T,0)=%g differs from k(T)=%g", T, got, want)
		}
	}
}

func TestDecayIsStrictlyMonotonic(t *testing.T) {
	m := newDefault(t)

	prev := math.Inf(1)
	for _, tt := range []float64{0, 1, 10, 50, 100, 1000} {
		k := m.SpringConstantAt(20, tt)
		if k >= prev {
			t.Errorf("t=%g: k=%g not strictly below previous %g", tt, k, prev)
		}
		prev = k
	}
}

func TestDecayFactor(t *testing.T) {
	m := newDefault(t)

	k0 := m.SpringConstantAt(0, 0)
	k100 := m.SpringConstantAt(0, 100)

	want := k0 * math.Exp(-0.1)
	if math.Abs(k100-want)/want > 1e-12 {
		t.Errorf("expected k(t=100) = k(t=0)*exp(-0.1) = %g, got %g", want, k100)
	}
}

func TestSubZeroStiffening(t *testing.T) {
	m := newDefault(t)
	p := m.Params()

	// Below 0 C the modulus must exceed the linear extrapolation, by a
	// margin that grows with |T|.
	prevRatio := 1.0
	for _, T := range []float64{-1, -10, -40, -80} {
		linear := p.E0 * (1 - p.Beta*(T-p.T0))
		ratio := m.YoungsModulus(T) / linear
		if ratio <= prevRatio {
			t.Errorf("T=%g: stiffening ratio %g did not grow past %g", T, ratio, prevRatio)
		}
		prevRatio = ratio
	}
}

func TestEvaluateDomainError(t *testing.T) {
	m := newDefault(t)

	tooCold := m.MinTemperature() - 1
	_, err := m.Evaluate(tooCold, 0)

	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError below %g C, got %v", m.MinTemperature(), err)
	}
	if de.Factor > 0 {
		t.Errorf("domain error with positive expansion factor %g", de.Factor)
	}
}

func TestEvaluateNegativeTime(t *testing.T) {
	m := newDefault(t)

	if _, err := m.Evaluate(20, -1); !errors.Is(err, ErrNegativeTime) {
		t.Errorf("expected ErrNegativeTime, got %v", err)
	}
}

func TestMinTemperature(t *testing.T) {
	m := newDefault(t)

	want := DefaultT0 - 1/DefaultAlpha
	if got := m.MinTemperature(); got != want {
		t.Errorf("expected min temperature %g, got %g", want, got)
	}

	p := DefaultParameters()
	p.Alpha = 0
	m2, err := New(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(m2.MinTemperature(), -1) {
		t.Error("expected -Inf min temperature for alpha = 0")
	}
}
