package sweep

import (
	"errors"
	"testing"

	"github.com/san-kum/springlab/internal/material"
)

func defaultModel(t *testing.T) *material.Model {
	t.Helper()
	m, err := material.New(material.DefaultParameters())
	if err != nil {
		t.Fatalf("default parameters rejected: %v", err)
	}
	return m
}

func TestSpanValidate(t *testing.T) {
	if err := (Span{Min: 0, Max: 1, N: 1}).Validate(); !errors.Is(err, ErrTooFewSamples) {
		t.Errorf("expected ErrTooFewSamples, got %v", err)
	}
	if err := (Span{Min: 1, Max: 1, N: 10}).Validate(); !errors.Is(err, ErrEmptySpan) {
		t.Errorf("expected ErrEmptySpan, got %v", err)
	}
	if err := (Span{Min: -80, Max: 150, N: 200}).Validate(); err != nil {
		t.Errorf("valid span rejected: %v", err)
	}
}

func TestSpanEndpoints(t *testing.T) {
	s := Span{Min: -80, Max: 150, N: 200}
	vals := s.Values()

	if len(vals) != 200 {
		t.Fatalf("expected 200 values, got %d", len(vals))
	}
	if vals[0] != -80 {
		t.Errorf("expected first value -80, got %g", vals[0])
	}
	if vals[len(vals)-1] != 150 {
		t.Errorf("expected last value exactly 150, got %g", vals[len(vals)-1])
	}
	for i := 1; i < len(vals); i++ {
		if vals[i] <= vals[i-1] {
			t.Fatalf("values not strictly increasing at index %d: %g <= %g", i, vals[i], vals[i-1])
		}
	}
}

func TestSpanRestartable(t *testing.T) {
	s := Span{Min: 0, Max: 10, N: 5}

	first := s.Values()
	second := s.Values()

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("second iteration diverged at index %d: %g vs %g", i, first[i], second[i])
		}
	}
}

func TestTemperatureSweepShape(t *testing.T) {
	m := defaultModel(t)

	s, err := Temperature(m, Span{Min: -80, Max: 150, N: 200})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(s.Points) != 200 {
		t.Fatalf("expected 200 points, got %d", len(s.Points))
	}
	if s.Points[0].X != -80 {
		t.Errorf("expected first T -80, got %g", s.Points[0].X)
	}
	if s.Points[199].X != 150 {
		t.Errorf("expected last T 150, got %g", s.Points[199].X)
	}
	for i := 1; i < len(s.Points); i++ {
		if s.Points[i].X <= s.Points[i-1].X {
			t.Fatalf("temperatures not strictly increasing at index %d", i)
		}
	}
	for _, p := range s.Points {
		if p.Y <= 0 {
			t.Errorf("non-positive spring constant %g at T=%g", p.Y, p.X)
		}
	}
}

func TestTimeSweepMatchesModel(t *testing.T) {
	m := defaultModel(t)
	span := Span{Min: 0, Max: 100, N: 100}

	s, err := Time(m, 20, span)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	for i, p := range s.Points {
		want := m.SpringConstantAt(20, p.X)
		if p.Y != want {
			t.Fatalf("point %d: expected k %g, got %g", i, want, p.Y)
		}
	}
}

func TestMultiTemperatureMatchesSerial(t *testing.T) {
	m := defaultModel(t)
	span := Span{Min: 0, Max: 100, N: 100}
	temps := []float64{-80, -40, -10, 0, 20, 50, 100, 150}

	series, err := MultiTemperature(m, temps, span)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(series) != len(temps) {
		t.Fatalf("expected %d series, got %d", len(temps), len(series))
	}

	for i, T := range temps {
		want, err := Time(m, T, span)
		if err != nil {
			t.Fatalf("serial sweep at T=%g failed: %v", T, err)
		}
		if series[i].Label != want.Label {
			t.Errorf("series %d: expected label %q, got %q", i, want.Label, series[i].Label)
		}
		for j := range want.Points {
			if series[i].Points[j] != want.Points[j] {
				t.Fatalf("series %d point %d differs from serial result", i, j)
			}
		}
	}
}

func TestSweepDomainError(t *testing.T) {
	m := defaultModel(t)

	tooCold := m.MinTemperature() - 10
	_, err := Temperature(m, Span{Min: tooCold, Max: 150, N: 10})

	var de *material.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %v", err)
	}
}
