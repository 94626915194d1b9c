package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/thermochem/internal/config"
	"github.com/san-kum/thermochem/internal/storage"
)

func setup(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()
	dataDir = t.TempDir()
	thermoFile, speciesFile, configFile, preset = "", "", "", ""
	plotProp, threshold, outFile = "cp", 1e-3, ""
	t.Cleanup(func() {
		configFile, preset = "", ""
	})

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestEvalCmd(t *testing.T) {
	cmd, out := setup(t)

	if err := runEval(cmd, []string{"N2", "Ar"}); err != nil {
		t.Fatalf("runEval failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{"T = 1000 K", "N2", "Ar", "CP[J/kg-K]"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestEvalUnknownSpecies(t *testing.T) {
	cmd, _ := setup(t)

	if err := runEval(cmd, []string{"Unobtainium"}); err == nil {
		t.Error("expected error for unknown species")
	}
}

func TestMicroCmd(t *testing.T) {
	cmd, out := setup(t)

	if err := runMicro(cmd, []string{"Ar"}); err != nil {
		t.Fatalf("runMicro failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	row := strings.Fields(lines[len(lines)-1])
	if len(row) != 8 || row[0] != "Ar" {
		t.Fatalf("unexpected row %v", row)
	}
	if row[5] != "0" {
		t.Errorf("expected zero vibrational cv for Ar, got %s", row[5])
	}
}

func TestMixtureCmdPreset(t *testing.T) {
	cmd, out := setup(t)
	preset = "air5"

	if err := runMixture(cmd, nil); err != nil {
		t.Fatalf("runMixture failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{"gamma", "cp_molar", "cv_vib", "N2", "O2"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestUnknownPreset(t *testing.T) {
	cmd, _ := setup(t)
	preset = "jupiter"

	if _, err := resolveConfig(cmd); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestSweepListExport(t *testing.T) {
	cmd, out := setup(t)

	cfg := config.DefaultConfig()
	cfg.Species = []string{"N2", "O2"}
	cfg.MassFractions = map[string]float64{"N2": 0.77, "O2": 0.23}
	cfg.Sweep = config.SweepConfig{TMin: 300, TMax: 3000, Points: 10}
	configFile = filepath.Join(t.TempDir(), "sweep.yaml")
	if err := config.Save(configFile, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	if err := runSweep(cmd, nil); err != nil {
		t.Fatalf("runSweep failed: %v", err)
	}
	if got := strings.Count(out.String(), "saved: "); got != 2 {
		t.Fatalf("expected 2 saved runs, got %d", got)
	}

	runs, err := storage.New(dataDir).List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}

	out.Reset()
	if err := listRuns(cmd, nil); err != nil {
		t.Fatalf("listRuns failed: %v", err)
	}
	if !strings.Contains(out.String(), runs[0].ID) {
		t.Errorf("list output missing %s", runs[0].ID)
	}

	out.Reset()
	if err := exportJSON(cmd, []string{runs[0].ID}); err != nil {
		t.Fatalf("exportJSON failed: %v", err)
	}
	var data storage.ExportData
	if err := json.Unmarshal(out.Bytes(), &data); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if data.Points != 10 || data.T[0] != 300 {
		t.Errorf("unexpected export: %d points starting at %v", data.Points, data.T[0])
	}

	out.Reset()
	if err := exportCSV(cmd, []string{runs[1].ID}); err != nil {
		t.Fatalf("exportCSV failed: %v", err)
	}
	if got := strings.Count(out.String(), "\n"); got != 11 {
		t.Errorf("expected header plus 10 rows, got %d lines", got)
	}

	out.Reset()
	if err := plotRun(cmd, []string{runs[0].ID}); err != nil {
		t.Fatalf("plotRun failed: %v", err)
	}
	if !strings.Contains(out.String(), "CP, T from 300 to 3000 K") {
		t.Errorf("plot caption missing:\n%s", out.String())
	}

	out.Reset()
	if err := exportSVG(cmd, []string{runs[0].ID}); err != nil {
		t.Fatalf("exportSVG failed: %v", err)
	}
	if !strings.Contains(out.String(), "<svg") {
		t.Error("expected svg output")
	}

	outFile = filepath.Join(t.TempDir(), "cp.svg")
	defer func() { outFile = "" }()
	if err := exportSVG(cmd, []string{runs[0].ID}); err != nil {
		t.Fatalf("exportSVG to file failed: %v", err)
	}
	if _, err := os.Stat(outFile); err != nil {
		t.Errorf("svg file not written: %v", err)
	}

	plotProp = "viscosity"
	if err := plotRun(cmd, []string{runs[0].ID}); err == nil {
		t.Error("expected error for unknown property")
	}
}

func TestListRunsEmpty(t *testing.T) {
	cmd, out := setup(t)

	if err := listRuns(cmd, nil); err != nil {
		t.Fatalf("listRuns failed: %v", err)
	}
	if !strings.Contains(out.String(), "no runs found") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestContinuityCmd(t *testing.T) {
	cmd, out := setup(t)

	if err := runContinuity(cmd, []string{"N2", "O2"}); err != nil {
		t.Fatalf("runContinuity failed: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "worst: ") {
		t.Errorf("missing summary:\n%s", text)
	}
	if strings.Contains(text, "*") {
		t.Errorf("no boundary should be flagged:\n%s", text)
	}
}

func TestSpeciesAndPresetsCmd(t *testing.T) {
	cmd, out := setup(t)

	if err := listSpecies(cmd, nil); err != nil {
		t.Fatalf("listSpecies failed: %v", err)
	}
	for _, want := range []string{"N2", "CO2", "e"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("species output missing %q", want)
		}
	}

	out.Reset()
	if err := listPresets(cmd, nil); err != nil {
		t.Fatalf("listPresets failed: %v", err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out.String(), name) {
			t.Errorf("presets output missing %q", name)
		}
	}
}
