package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/thermochem/internal/analysis"
	"github.com/san-kum/thermochem/internal/chem"
	"github.com/san-kum/thermochem/internal/config"
	"github.com/san-kum/thermochem/internal/thermo"
	"github.com/san-kum/thermochem/internal/viz"
)

func newTabWriter(cmd *cobra.Command) *tabwriter.Writer {
	return tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
}

func listSpecies(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	names, err := datasetNames(cfg)
	if err != nil {
		return fmt.Errorf("scan thermo data: %w", err)
	}
	cat, err := loadCatalog(cfg.SpeciesData)
	if err != nil {
		return fmt.Errorf("load species catalog: %w", err)
	}

	w := newTabWriter(cmd)
	fmt.Fprintln(w, "NAME\tM[g/mol]\tR[J/kg-K]\tNTR\tCHARGE")
	for _, name := range names {
		sp, ok := cat.Lookup(name)
		if !ok {
			fmt.Fprintf(w, "%s\t-\t-\t-\t-\n", name)
			continue
		}
		fmt.Fprintf(w, "%s\t%.5f\t%.3f\t%.1f\t%+d\n",
			sp.Name, sp.MolarMass*1e3, sp.GasConstant(), sp.NTrDOFs, sp.Charge)
	}
	return w.Flush()
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	m, err := buildModel(cfg, speciesArgs(cfg, args))
	if err != nil {
		return err
	}

	eval := m.Eval
	c := thermo.NewTempCache(cfg.Temperature)

	fmt.Fprintf(cmd.OutOrStdout(), "T = %g K\n\n", cfg.Temperature)
	w := newTabWriter(cmd)
	fmt.Fprintln(w, "SPECIES\tINTERVAL\tCP/R\tCP[J/kg-K]\tCV[J/kg-K]\tH[J/kg]\tS[J/kg-K]")
	for s := 0; s < eval.Mixture().NSpecies(); s++ {
		fmt.Fprintf(w, "%s\t%d\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\n",
			eval.Mixture().Species(s).Name,
			eval.Table().IntervalFor(s, cfg.Temperature),
			eval.CpOverR(&c, s),
			eval.Cp(&c, s),
			eval.Cv(&c, s),
			eval.H(&c, s),
			eval.S(&c, s),
		)
	}
	return w.Flush()
}

func runMicro(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	m, err := buildModel(cfg, speciesArgs(cfg, args))
	if err != nil {
		return err
	}

	T := cfg.Temperature
	c := thermo.NewTempCache(T)
	g := m.Micro

	fmt.Fprintf(cmd.OutOrStdout(), "T = %g K, cv in J/kg-K\n\n", T)
	w := newTabWriter(cmd)
	fmt.Fprintln(w, "SPECIES\tNTR\tCV_TRANS\tCV_ROT\tCV_TR\tCV_VIB\tCV_EL\tCV")
	for s := 0; s < g.Mixture().NSpecies(); s++ {
		fmt.Fprintf(w, "%s\t%.1f\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\n",
			g.Mixture().Species(s).Name,
			g.Mixture().NTrDOFs(s),
			g.CvTrans(s),
			g.CvRot(s),
			g.CvTr(s),
			g.CvVib(s, T),
			g.CvEl(s, T),
			m.Eval.Cv(&c, s),
		)
	}
	return w.Flush()
}

func runMixture(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	y, err := cfg.Fractions()
	if err != nil {
		return err
	}
	m, err := buildModel(cfg, cfg.Species)
	if err != nil {
		return err
	}

	mix := m.Eval.Mixture()
	x, err := chem.MassToMoleFractions(mix, y)
	if err != nil {
		return err
	}
	rMix, err := chem.MixtureR(mix, y)
	if err != nil {
		return err
	}
	mMix, err := chem.MixtureMolarMass(mix, y)
	if err != nil {
		return err
	}

	T := cfg.Temperature
	c := thermo.NewTempCache(T)
	cp := m.Eval.CpMix(&c, y)
	cv := m.Eval.CvMix(&c, y)

	w := newTabWriter(cmd)
	fmt.Fprintf(w, "T\t%g\tK\n", T)
	fmt.Fprintf(w, "R\t%.6g\tJ/kg-K\n", rMix)
	fmt.Fprintf(w, "M\t%.6g\tg/mol\n", mMix*1e3)
	fmt.Fprintf(w, "cp\t%.6g\tJ/kg-K\n", cp)
	fmt.Fprintf(w, "cv\t%.6g\tJ/kg-K\n", cv)
	fmt.Fprintf(w, "gamma\t%.6g\t\n", cp/cv)
	fmt.Fprintf(w, "h\t%.6g\tJ/kg\n", m.Eval.HMix(&c, y))
	fmt.Fprintf(w, "e\t%.6g\tJ/kg\n", m.Eval.EMix(&c, y))
	fmt.Fprintf(w, "cp_molar\t%.6g\tJ/mol-K\n", m.Eval.CpMolarMix(&c, x))
	fmt.Fprintf(w, "cv_tr\t%.6g\tJ/kg-K\n", m.Micro.CvTrMix(y))
	fmt.Fprintf(w, "cv_vib\t%.6g\tJ/kg-K\n", m.Micro.CvVibMix(T, y))
	fmt.Fprintf(w, "cv_el\t%.6g\tJ/kg-K\n", m.Micro.CvElMix(T, y))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "SPECIES\tY\tX")
	for s := range y {
		fmt.Fprintf(w, "%s\t%.6f\t%.6f\n", mix.Species(s).Name, y[s], x[s])
	}
	return w.Flush()
}

func runContinuity(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names, err = catalogedDatasetNames(cfg)
		if err != nil {
			return err
		}
	}
	m, err := buildModel(cfg, names)
	if err != nil {
		return err
	}

	jumps := analysis.ContinuityAll(m.Eval)
	w := newTabWriter(cmd)
	fmt.Fprintln(w, "SPECIES\tBOUNDARY[K]\tCP/R\tH/RT\tS/R\t")
	for _, j := range jumps {
		flag := ""
		if j.Worst() > threshold {
			flag = "*"
			logger.Warn("curve fit discontinuity",
				zap.String("species", j.Species),
				zap.Float64("boundary", j.Boundary),
				zap.Float64("jump", j.Worst()))
		}
		fmt.Fprintf(w, "%s\t%g\t%.2e\t%.2e\t%.2e\t%s\n", j.Species, j.Boundary, j.CpRel, j.HRel, j.SRel, flag)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if worst, ok := analysis.MaxJump(jumps); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "\nworst: %s at %g K (%.2e)\n", worst.Species, worst.Boundary, worst.Worst())
	}
	return nil
}

// catalogedDatasetNames lists dataset species that the catalog can describe.
func catalogedDatasetNames(cfg *config.Config) ([]string, error) {
	all, err := datasetNames(cfg)
	if err != nil {
		return nil, fmt.Errorf("scan thermo data: %w", err)
	}
	cat, err := loadCatalog(cfg.SpeciesData)
	if err != nil {
		return nil, fmt.Errorf("load species catalog: %w", err)
	}

	names := make([]string, 0, len(all))
	for _, name := range all {
		if _, ok := cat.Lookup(name); !ok {
			logger.Debug("species missing from catalog", zap.String("species", name))
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	m, err := buildModel(cfg, speciesArgs(cfg, args))
	if err != nil {
		return err
	}
	return viz.RunExplorer(m, cfg.Temperature)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := newTabWriter(cmd)
	fmt.Fprintln(w, "PRESET\tSPECIES")
	for _, name := range config.ListPresets() {
		fmt.Fprintf(w, "%s\t%s\n", name, strings.Join(config.Presets[name].Species, " "))
	}
	return w.Flush()
}
