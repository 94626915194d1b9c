package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/thermochem/internal/analysis"
)

var ErrEmptySweep = errors.New("storage: sweep has no points")

var tableHeader = []string{"T", "interval", "cp", "cv", "h", "e", "s", "cv_tr", "cv_vib", "cv_el"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes a saved sweep. Source names the CEA dataset, empty
// for the embedded one.
type RunMetadata struct {
	ID        string             `json:"id"`
	Species   string             `json:"species"`
	Timestamp time.Time          `json:"timestamp"`
	TMin      float64            `json:"t_min"`
	TMax      float64            `json:"t_max"`
	Points    int                `json:"points"`
	Source    string             `json:"source,omitempty"`
	Summary   map[string]float64 `json:"summary"`
}

func runPrefix(species string) string {
	return strings.NewReplacer("+", "_plus", "-", "_minus", "/", "_").Replace(species)
}

// Save writes metadata.json and table.csv under a new run directory.
func (s *Store) Save(sw analysis.Sweep, source string) (string, error) {
	if len(sw.Points) == 0 {
		return "", ErrEmptySweep
	}

	now := time.Now()
	runID := fmt.Sprintf("%s_%d", runPrefix(sw.Species), now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Species:   sw.Species,
		Timestamp: now,
		TMin:      sw.Points[0].T,
		TMax:      sw.Points[len(sw.Points)-1].T,
		Points:    len(sw.Points),
		Source:    source,
		Summary:   summarize(sw),
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeTable(s.tablePath(runID), sw); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) tablePath(runID string) string {
	return filepath.Join(s.baseDir, runID, "table.csv")
}

func summarize(sw analysis.Sweep) map[string]float64 {
	cp := analysis.ColumnRange(sw.Column(func(p analysis.SweepPoint) float64 { return p.Cp }))
	vib := analysis.ColumnRange(sw.Column(func(p analysis.SweepPoint) float64 { return p.CvVib }))
	return map[string]float64{
		"cp_min":     cp.Min,
		"cp_max":     cp.Max,
		"cv_vib_max": vib.Max,
	}
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(path string, sw analysis.Sweep) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(tableHeader); err != nil {
		return err
	}

	format := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, p := range sw.Points {
		row := []string{
			format(p.T),
			strconv.Itoa(p.Interval),
			format(p.Cp),
			format(p.Cv),
			format(p.H),
			format(p.E),
			format(p.S),
			format(p.CvTr),
			format(p.CvVib),
			format(p.CvEl),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// List returns saved runs, oldest first. Directories without readable
// metadata are skipped.
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTable reads the sweep table of a run back into memory.
func (s *Store) LoadTable(runID string) (analysis.Sweep, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return analysis.Sweep{}, err
	}

	file, err := os.Open(s.tablePath(runID))
	if err != nil {
		return analysis.Sweep{}, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(tableHeader)

	records, err := r.ReadAll()
	if err != nil {
		return analysis.Sweep{}, fmt.Errorf("read %s table: %w", runID, err)
	}

	sw := analysis.Sweep{Species: meta.Species}
	if len(records) < 2 {
		return sw, nil
	}

	sw.Points = make([]analysis.SweepPoint, 0, len(records)-1)
	for i, record := range records[1:] {
		p, err := parseRow(record)
		if err != nil {
			return analysis.Sweep{}, fmt.Errorf("%s table row %d: %w", runID, i+1, err)
		}
		sw.Points = append(sw.Points, p)
	}

	return sw, nil
}

func parseRow(record []string) (analysis.SweepPoint, error) {
	var vals [9]float64
	cols := [...]int{0, 2, 3, 4, 5, 6, 7, 8, 9}
	for k, col := range cols {
		v, err := strconv.ParseFloat(record[col], 64)
		if err != nil {
			return analysis.SweepPoint{}, err
		}
		vals[k] = v
	}
	interval, err := strconv.Atoi(record[1])
	if err != nil {
		return analysis.SweepPoint{}, err
	}

	return analysis.SweepPoint{
		T:        vals[0],
		Interval: interval,
		Cp:       vals[1],
		Cv:       vals[2],
		H:        vals[3],
		E:        vals[4],
		S:        vals[5],
		CvTr:     vals[6],
		CvVib:    vals[7],
		CvEl:     vals[8],
	}, nil
}
