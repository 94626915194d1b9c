package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/thermochem/internal/analysis"
)

type ExportData struct {
	Species string               `json:"species"`
	Source  string               `json:"source,omitempty"`
	Points  int                  `json:"points"`
	T       []float64            `json:"T"`
	Columns map[string][]float64 `json:"columns"`
	Summary map[string]float64   `json:"summary,omitempty"`
}

func newExportData(meta *RunMetadata, sw analysis.Sweep) ExportData {
	col := func(get func(analysis.SweepPoint) float64) []float64 { return sw.Column(get) }
	data := ExportData{
		Species: sw.Species,
		Points:  len(sw.Points),
		T:       col(func(p analysis.SweepPoint) float64 { return p.T }),
		Columns: map[string][]float64{
			"cp":     col(func(p analysis.SweepPoint) float64 { return p.Cp }),
			"cv":     col(func(p analysis.SweepPoint) float64 { return p.Cv }),
			"h":      col(func(p analysis.SweepPoint) float64 { return p.H }),
			"e":      col(func(p analysis.SweepPoint) float64 { return p.E }),
			"s":      col(func(p analysis.SweepPoint) float64 { return p.S }),
			"cv_tr":  col(func(p analysis.SweepPoint) float64 { return p.CvTr }),
			"cv_vib": col(func(p analysis.SweepPoint) float64 { return p.CvVib }),
			"cv_el":  col(func(p analysis.SweepPoint) float64 { return p.CvEl }),
		},
	}
	if meta != nil {
		data.Source = meta.Source
		data.Summary = meta.Summary
	}
	return data
}

// ExportJSON writes a saved run as column-oriented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	sw, err := s.LoadTable(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newExportData(meta, sw))
}

// ExportCSV copies the run table to w.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	f, err := os.Open(s.tablePath(runID))
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}
