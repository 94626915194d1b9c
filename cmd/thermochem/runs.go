package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/thermochem/internal/analysis"
	"github.com/san-kum/thermochem/internal/export"
	"github.com/san-kum/thermochem/internal/storage"
)

var plotColumns = map[string]func(analysis.SweepPoint) float64{
	"cp":     func(p analysis.SweepPoint) float64 { return p.Cp },
	"cv":     func(p analysis.SweepPoint) float64 { return p.Cv },
	"h":      func(p analysis.SweepPoint) float64 { return p.H },
	"e":      func(p analysis.SweepPoint) float64 { return p.E },
	"s":      func(p analysis.SweepPoint) float64 { return p.S },
	"cv_vib": func(p analysis.SweepPoint) float64 { return p.CvVib },
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	names := speciesArgs(cfg, args)
	m, err := buildModel(cfg, names)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	temps := analysis.TemperatureGrid(cfg.Sweep.TMin, cfg.Sweep.TMax, cfg.Sweep.Points)
	indices := make([]int, len(names))
	for i := range indices {
		indices[i] = i
	}

	for _, sw := range m.SweepAll(indices, temps) {
		runID, err := st.Save(sw, cfg.ThermoData)
		if err != nil {
			return fmt.Errorf("save %s sweep: %w", sw.Species, err)
		}
		logger.Info("sweep saved",
			zap.String("run", runID),
			zap.String("species", sw.Species),
			zap.Int("points", len(sw.Points)))
		fmt.Fprintf(cmd.OutOrStdout(), "saved: %s\n", runID)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs found")
		return nil
	}

	w := newTabWriter(cmd)
	fmt.Fprintln(w, "ID\tSPECIES\tTIME\tT_MIN\tT_MAX\tPOINTS\tCP_MAX")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%g\t%d\t%.6g\n",
			run.ID,
			run.Species,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.TMin,
			run.TMax,
			run.Points,
			run.Summary["cp_max"],
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	get, ok := plotColumns[plotProp]
	if !ok {
		return fmt.Errorf("unknown property: %s", plotProp)
	}

	st := storage.New(dataDir)
	sw, err := st.LoadTable(args[0])
	if err != nil {
		return err
	}
	if len(sw.Points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	first, last := sw.Points[0].T, sw.Points[len(sw.Points)-1].T
	graph := asciigraph.Plot(sw.Column(get),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s %s, T from %g to %g K", sw.Species, strings.ToUpper(plotProp), first, last)),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportCSV(cmd.OutOrStdout(), args[0])
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(cmd.OutOrStdout(), args[0])
}

func exportSVG(cmd *cobra.Command, args []string) error {
	get, ok := plotColumns[plotProp]
	if !ok {
		return fmt.Errorf("unknown property: %s", plotProp)
	}

	sw, err := storage.New(dataDir).LoadTable(args[0])
	if err != nil {
		return err
	}
	svg := export.SweepToSVG(sw, plotProp, get, 800, 500, "#00ffff")
	if svg == "" {
		return fmt.Errorf("not enough data to plot")
	}

	if outFile == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), svg)
		return err
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	logger.Info("svg written", zap.String("run", args[0]), zap.String("path", outFile))
	return nil
}
