package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/springlab/internal/material"
	"github.com/san-kum/springlab/internal/sweep"
)

// Store persists sweep runs under a base directory, one subdirectory
// per run holding metadata.json and series.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	Samples   int       `json:"samples"`
	Labels    []string  `json:"labels"`
	E0        float64   `json:"e0"`
	A0        float64   `json:"a0"`
	L0        float64   `json:"l0"`
	T0        float64   `json:"t0"`
	Alpha     float64   `json:"alpha"`
	Beta      float64   `json:"beta"`
	Gamma     float64   `json:"gamma"`
	Lambda    float64   `json:"lambda"`
}

// Save writes one run. All series must share their X grid; the CSV has
// an x column followed by one k column per series.
func (s *Store) Save(kind string, p material.Parameters, series []sweep.Series) (string, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("store: no series to save")
	}

	runID := fmt.Sprintf("%s_%d", kind, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	labels := make([]string, len(series))
	for i, sr := range series {
		labels[i] = sr.Label
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      kind,
		Timestamp: time.Now(),
		Samples:   len(series[0].Points),
		Labels:    labels,
		E0:        p.E0,
		A0:        p.A0,
		L0:        p.L0,
		T0:        p.T0,
		Alpha:     p.Alpha,
		Beta:      p.Beta,
		Gamma:     p.Gamma,
		Lambda:    p.Lambda,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "series.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeCSV(csvFile, series); err != nil {
		return "", err
	}

	return runID, nil
}

func writeCSV(out io.Writer, series []sweep.Series) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	header := []string{"x"}
	for _, sr := range series {
		header = append(header, sr.Label)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	if len(series) == 0 {
		return nil
	}

	for i, pt := range series[0].Points {
		row := []string{strconv.FormatFloat(pt.X, 'g', -1, 64)}
		for _, sr := range series {
			row = append(row, strconv.FormatFloat(sr.Points[i].Y, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSeries reads the per-series points back from series.csv.
func (s *Store) LoadSeries(runID string) ([]sweep.Series, error) {
	csvPath := filepath.Join(s.baseDir, runID, "series.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []sweep.Series{}, nil
	}

	header := records[0]
	series := make([]sweep.Series, len(header)-1)
	for i := range series {
		series[i].Label = header[i+1]
		series[i].Points = make([]sweep.Point, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		if len(record) != len(header) {
			continue
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		for j := 1; j < len(record); j++ {
			y, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			series[j-1].Points = append(series[j-1].Points, sweep.Point{X: x, Y: y})
		}
	}

	return series, nil
}
