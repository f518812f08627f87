package sweep

import (
	"fmt"

	"github.com/san-kum/springlab/internal/material"
)

// Point is one (x, y) sample of a sweep.
type Point struct {
	X float64
	Y float64
}

// Series is an ordered run of points under one label, consumable by
// any charting sink.
type Series struct {
	Label  string
	Points []Point
}

func (s Series) Xs() []float64 {
	xs := make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.X
	}
	return xs
}

func (s Series) Ys() []float64 {
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		ys[i] = p.Y
	}
	return ys
}

// Temperature sweeps the spring constant over a temperature span at
// elapsed time zero.
func Temperature(m *material.Model, span Span) (Series, error) {
	if err := span.Validate(); err != nil {
		return Series{}, err
	}

	s := Series{
		Label:  "k vs T",
		Points: make([]Point, 0, span.N),
	}
	for T := range span.All() {
		r, err := m.Evaluate(T, 0)
		if err != nil {
			return Series{}, fmt.Errorf("temperature sweep at T=%g: %w", T, err)
		}
		s.Points = append(s.Points, Point{X: T, Y: r.K})
	}
	return s, nil
}

// Time sweeps the spring constant over elapsed time at a fixed
// temperature.
func Time(m *material.Model, T float64, span Span) (Series, error) {
	if err := span.Validate(); err != nil {
		return Series{}, err
	}

	s := Series{
		Label:  fmt.Sprintf("T=%g C", T),
		Points: make([]Point, 0, span.N),
	}
	for t := range span.All() {
		r, err := m.Evaluate(T, t)
		if err != nil {
			return Series{}, fmt.Errorf("time sweep at T=%g, t=%g: %w", T, t, err)
		}
		s.Points = append(s.Points, Point{X: t, Y: r.K})
	}
	return s, nil
}
