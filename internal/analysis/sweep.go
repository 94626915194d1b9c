package analysis

import (
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/thermochem/internal/micro"
	"github.com/san-kum/thermochem/internal/thermo"
)

// Evaluator is the float64 CEA model used by the sweep tools.
type Evaluator = thermo.CEAEvaluator[float64]

// Model pairs the macroscopic evaluator with its micro decomposition.
type Model struct {
	Eval  *Evaluator
	Micro *micro.IdealGas[float64, *Evaluator]
}

func NewModel(eval *Evaluator) *Model {
	return &Model{
		Eval:  eval,
		Micro: micro.NewIdealGas[float64](eval, eval.Mixture()),
	}
}

// SweepPoint holds the dimensional properties of one species at T.
// Specific heats are J/kg-K, H and E are J/kg, S is J/kg-K.
type SweepPoint struct {
	T        float64
	Interval int
	Cp       float64
	Cv       float64
	H        float64
	E        float64
	S        float64
	CvTr     float64
	CvVib    float64
	CvEl     float64
}

type Sweep struct {
	Species string
	Points  []SweepPoint
}

// TemperatureGrid returns n evenly spaced temperatures in [tMin, tMax].
func TemperatureGrid(tMin, tMax float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	return floats.Span(make([]float64, n), tMin, tMax)
}

// SweepSpecies evaluates species s at every temperature.
func (m *Model) SweepSpecies(s int, temps []float64) Sweep {
	sw := Sweep{
		Species: m.Eval.Mixture().Species(s).Name,
		Points:  make([]SweepPoint, len(temps)),
	}
	cvTr := m.Micro.CvTr(s)
	fit := m.Eval.Table().CurveFit(s)

	for i, T := range temps {
		c := thermo.NewTempCache(T)
		sw.Points[i] = SweepPoint{
			T:        T,
			Interval: fit.IntervalFor(T),
			Cp:       m.Eval.Cp(&c, s),
			Cv:       m.Eval.Cv(&c, s),
			H:        m.Eval.H(&c, s),
			E:        m.Eval.E(&c, s),
			S:        m.Eval.S(&c, s),
			CvTr:     cvTr,
			CvVib:    m.Micro.CvVib(s, T),
			CvEl:     m.Micro.CvEl(s, T),
		}
	}
	return sw
}

// SweepAll runs SweepSpecies for each index concurrently. Results keep the
// order of species.
func (m *Model) SweepAll(species []int, temps []float64) []Sweep {
	results := make([]Sweep, len(species))
	var wg sync.WaitGroup

	for i, s := range species {
		wg.Add(1)
		go func(idx, s int) {
			defer wg.Done()
			results[idx] = m.SweepSpecies(s, temps)
		}(i, s)
	}

	wg.Wait()
	return results
}

// MixturePoint holds mass-weighted mixture properties at T.
type MixturePoint struct {
	T     float64
	Cp    float64
	Cv    float64
	H     float64
	E     float64
	CvTr  float64
	CvVib float64
}

// SweepMixture evaluates the mixture with fixed mass fractions y.
func (m *Model) SweepMixture(y []float64, temps []float64) []MixturePoint {
	out := make([]MixturePoint, len(temps))
	cvTr := m.Micro.CvTrMix(y)
	for i, T := range temps {
		c := thermo.NewTempCache(T)
		out[i] = MixturePoint{
			T:     T,
			Cp:    m.Eval.CpMix(&c, y),
			Cv:    m.Eval.CvMix(&c, y),
			H:     m.Eval.HMix(&c, y),
			E:     m.Eval.EMix(&c, y),
			CvTr:  cvTr,
			CvVib: m.Micro.CvVibMix(T, y),
		}
	}
	return out
}

// Column extracts one property from a sweep.
func (sw Sweep) Column(get func(SweepPoint) float64) []float64 {
	out := make([]float64, len(sw.Points))
	for i, p := range sw.Points {
		out[i] = get(p)
	}
	return out
}

// Range is the minimum and maximum of a column.
type Range struct {
	Min, Max float64
}

func ColumnRange(values []float64) Range {
	if len(values) == 0 {
		return Range{}
	}
	return Range{Min: floats.Min(values), Max: floats.Max(values)}
}
