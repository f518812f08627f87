package store

import (
	"encoding/json"
	"io"

	"github.com/san-kum/springlab/internal/material"
	"github.com/san-kum/springlab/internal/sweep"
)

type ExportSeries struct {
	Label string    `json:"label"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
}

type ExportData struct {
	Kind    string         `json:"kind"`
	Samples int            `json:"samples"`
	E0      float64        `json:"e0"`
	A0      float64        `json:"a0"`
	L0      float64        `json:"l0"`
	T0      float64        `json:"t0"`
	Alpha   float64        `json:"alpha"`
	Beta    float64        `json:"beta"`
	Gamma   float64        `json:"gamma"`
	Lambda  float64        `json:"lambda"`
	Series  []ExportSeries `json:"series"`
}

// ExportJSON writes the sweep output as indented JSON.
func ExportJSON(w io.Writer, kind string, p material.Parameters, series []sweep.Series) error {
	data := ExportData{
		Kind:   kind,
		E0:     p.E0,
		A0:     p.A0,
		L0:     p.L0,
		T0:     p.T0,
		Alpha:  p.Alpha,
		Beta:   p.Beta,
		Gamma:  p.Gamma,
		Lambda: p.Lambda,
		Series: make([]ExportSeries, len(series)),
	}
	if len(series) > 0 {
		data.Samples = len(series[0].Points)
	}

	for i, sr := range series {
		data.Series[i] = ExportSeries{
			Label: sr.Label,
			X:     sr.Xs(),
			Y:     sr.Ys(),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes the shared-grid CSV form of the series.
func ExportCSV(w io.Writer, series []sweep.Series) error {
	return writeCSV(w, series)
}
