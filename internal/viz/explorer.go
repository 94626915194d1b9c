package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/thermochem/internal/analysis"
	"github.com/san-kum/thermochem/internal/thermo"
)

const (
	minTemperature = 200.0
	maxTemperature = 20000.0
	minStep        = 1.0
	maxStep        = 1000.0
	sparkPoints    = 80
)

// Explorer is a Bubble Tea model for browsing species properties.
type Explorer struct {
	model   *analysis.Model
	names   []string
	cursor  int
	T       float64
	step    float64
	theme   int
	width   int
	history map[int][]float64
}

func NewExplorer(m *analysis.Model, T float64) Explorer {
	return Explorer{
		model:   m,
		names:   m.Eval.Mixture().Names(),
		T:       clampT(T),
		step:    100,
		width:   80,
		history: make(map[int][]float64),
	}
}

func clampT(T float64) float64 {
	return min(max(T, minTemperature), maxTemperature)
}

// Species is the name of the selected species.
func (e Explorer) Species() string { return e.names[e.cursor] }

func (e Explorer) Step() float64 { return e.step }

func (e Explorer) Init() tea.Cmd { return nil }

func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return e.handleKey(msg)
	case tea.WindowSizeMsg:
		e.width = msg.Width
	}
	return e, nil
}

func (e Explorer) handleKey(msg tea.KeyMsg) (Explorer, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return e, tea.Quit
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < len(e.names)-1 {
			e.cursor++
		}
	case "left", "h":
		e.T = clampT(e.T - e.step)
	case "right", "l":
		e.T = clampT(e.T + e.step)
	case "+", "=":
		e.step = min(e.step*10, maxStep)
	case "-", "_":
		e.step = max(e.step/10, minStep)
	case "t":
		e.theme = (e.theme + 1) % len(Themes)
	}
	return e, nil
}

// cpHistory returns Cp of species s over the full fit range, computed once
// per species.
func (e Explorer) cpHistory(s int) []float64 {
	if h, ok := e.history[s]; ok {
		return h
	}
	sw := e.model.SweepSpecies(s, analysis.TemperatureGrid(minTemperature, maxTemperature, sparkPoints))
	h := sw.Column(func(p analysis.SweepPoint) float64 { return p.Cp })
	e.history[s] = h
	return h
}

func (e Explorer) View() string {
	st := newStyles(Themes[e.theme])
	s := e.cursor
	eval := e.model.Eval
	c := thermo.NewTempCache(e.T)

	var b strings.Builder
	b.WriteString("\n  " + st.title.Render("THERMOCHEM") + "  " + st.subtle.Render("CEA curve-fit explorer") + "\n\n")

	var list strings.Builder
	for i, name := range e.names {
		if i == e.cursor {
			list.WriteString(st.key.Render("▸ ") + st.selected.Render(fmt.Sprintf("%-6s", name)) + "\n")
		} else {
			list.WriteString(st.subtle.Render(fmt.Sprintf("  %-6s", name)) + "\n")
		}
	}

	row := func(label, unit string, v float64) string {
		return st.label.Render(fmt.Sprintf("%-8s", label)) + st.value.Render(fmt.Sprintf("%14.6g", v)) + " " + st.subtle.Render(unit) + "\n"
	}

	var props strings.Builder
	props.WriteString(st.title.Render(e.Species()) + st.subtle.Render(fmt.Sprintf("  interval %d", eval.Table().IntervalFor(s, e.T))) + "\n\n")
	props.WriteString(row("T", "K", e.T))
	props.WriteString(row("cp", "J/kg-K", eval.Cp(&c, s)))
	props.WriteString(row("cv", "J/kg-K", eval.Cv(&c, s)))
	props.WriteString(row("h", "J/kg", eval.H(&c, s)))
	props.WriteString(row("s", "J/kg-K", eval.S(&c, s)))
	props.WriteString("\n")
	props.WriteString(row("cv_tr", "J/kg-K", e.model.Micro.CvTr(s)))
	props.WriteString(row("cv_vib", "J/kg-K", e.model.Micro.CvVib(s, e.T)))
	props.WriteString(row("cv_el", "J/kg-K", e.model.Micro.CvEl(s, e.T)))
	props.WriteString("\n" + st.label.Render("cp ") + st.value.Render(Sparkline(e.cpHistory(s), 40)) + "\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, st.panel.Render(list.String()), st.panel.Render(props.String())))
	b.WriteString("\n  " + st.separator(60) + "\n")
	b.WriteString(fmt.Sprintf("  %s %s  %s %s  %s %s  %s %s  %s %s\n",
		st.key.Render("j/k"), st.subtle.Render("species"),
		st.key.Render("h/l"), st.subtle.Render(fmt.Sprintf("T ±%g", e.step)),
		st.key.Render("+/-"), st.subtle.Render("step"),
		st.key.Render("t"), st.subtle.Render(Themes[e.theme].Name),
		st.key.Render("q"), st.subtle.Render("quit")))
	return b.String()
}

// RunExplorer starts the explorer in the alternate screen.
func RunExplorer(m *analysis.Model, T float64) error {
	_, err := tea.NewProgram(NewExplorer(m, T), tea.WithAltScreen()).Run()
	return err
}
