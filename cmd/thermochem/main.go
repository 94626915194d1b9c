package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/san-kum/thermochem/internal/analysis"
	"github.com/san-kum/thermochem/internal/chem"
	"github.com/san-kum/thermochem/internal/config"
	"github.com/san-kum/thermochem/internal/parsing"
	"github.com/san-kum/thermochem/internal/thermo"
)

var (
	dataDir     string
	thermoFile  string
	speciesFile string
	configFile  string
	preset      string
	verbose     bool

	temperature float64
	tMin        float64
	tMax        float64
	points      int
	plotProp    string
	outFile     string
	threshold   float64

	logger = zap.NewNop()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "thermochem",
		Short: "CEA curve-fit thermodynamics and cv decomposition",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: runExplore,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".thermochem", "sweep data directory")
	pf.StringVar(&thermoFile, "thermo", "", "CEA thermo data file (default embedded)")
	pf.StringVar(&speciesFile, "species-data", "", "species catalog yaml (default embedded)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use mixture preset")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().Float64Var(&temperature, "T", config.DefaultTemperature, "temperature [K]")

	speciesCmd := &cobra.Command{
		Use:   "species",
		Short: "list species in the thermo dataset",
		Args:  cobra.NoArgs,
		RunE:  listSpecies,
	}

	evalCmd := &cobra.Command{
		Use:   "eval [species...]",
		Short: "evaluate cp, cv, h and s at one temperature",
		RunE:  runEval,
	}
	evalCmd.Flags().Float64Var(&temperature, "T", config.DefaultTemperature, "temperature [K]")

	microCmd := &cobra.Command{
		Use:   "micro [species...]",
		Short: "split cv into translational-rotational, vibrational and electronic parts",
		RunE:  runMicro,
	}
	microCmd.Flags().Float64Var(&temperature, "T", config.DefaultTemperature, "temperature [K]")

	mixtureCmd := &cobra.Command{
		Use:   "mixture",
		Short: "evaluate the configured mixture",
		Args:  cobra.NoArgs,
		RunE:  runMixture,
	}
	mixtureCmd.Flags().Float64Var(&temperature, "T", config.DefaultTemperature, "temperature [K]")

	sweepCmd := &cobra.Command{
		Use:   "sweep [species...]",
		Short: "evaluate species over a temperature grid and save the runs",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&tMin, "tmin", config.DefaultTMin, "lowest temperature [K]")
	sweepCmd.Flags().Float64Var(&tMax, "tmax", config.DefaultTMax, "highest temperature [K]")
	sweepCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "number of temperatures")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sweeps",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotProp, "prop", "cp", "property to plot (cp, cv, h, e, s, cv_vib)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export sweep table to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export sweep to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a sweep property as an SVG plot",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&plotProp, "prop", "cp", "property to plot (cp, cv, h, e, s, cv_vib)")
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	continuityCmd := &cobra.Command{
		Use:   "continuity [species...]",
		Short: "report curve-fit jumps at interval boundaries",
		RunE:  runContinuity,
	}
	continuityCmd.Flags().Float64Var(&threshold, "threshold", 1e-3, "relative jump to flag")

	exploreCmd := &cobra.Command{
		Use:   "explore [species...]",
		Short: "interactive property explorer",
		RunE:  runExplore,
	}
	exploreCmd.Flags().Float64Var(&temperature, "T", config.DefaultTemperature, "initial temperature [K]")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list mixture presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(speciesCmd, evalCmd, microCmd, mixtureCmd, sweepCmd, listCmd, plotCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, continuityCmd, exploreCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig applies, in order: defaults, preset, config file, then flags
// the user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("T") {
		cfg.Temperature = temperature
	}
	if flags.Changed("tmin") {
		cfg.Sweep.TMin = tMin
	}
	if flags.Changed("tmax") {
		cfg.Sweep.TMax = tMax
	}
	if flags.Changed("points") {
		cfg.Sweep.Points = points
	}
	if thermoFile != "" {
		cfg.ThermoData = thermoFile
	}
	if speciesFile != "" {
		cfg.SpeciesData = speciesFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadCatalog(path string) (*chem.Catalog, error) {
	if path == "" {
		return chem.DefaultCatalog(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return chem.LoadCatalog(f)
}

// datasetNames lists the species recorded in the configured thermo data.
func datasetNames(cfg *config.Config) ([]string, error) {
	if cfg.ThermoData == "" {
		return parsing.ScanSpeciesNames(parsing.DefaultCEAData())
	}
	f, err := os.Open(cfg.ThermoData)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parsing.ScanSpeciesNames(f)
}

func buildModel(cfg *config.Config, names []string) (*analysis.Model, error) {
	cat, err := loadCatalog(cfg.SpeciesData)
	if err != nil {
		return nil, fmt.Errorf("load species catalog: %w", err)
	}

	mix, err := chem.NewMixture(names, cat)
	if err != nil {
		return nil, fmt.Errorf("build mixture: %w", err)
	}

	table := thermo.NewCurveFitTable[float64](mix)
	opt := parsing.WithLogger(logger)
	if cfg.ThermoData == "" {
		err = parsing.ReadCEADefault(table, opt)
	} else {
		err = parsing.ReadCEAFile(cfg.ThermoData, table, opt)
	}
	if err != nil {
		return nil, fmt.Errorf("read thermo data: %w", err)
	}

	eval, err := thermo.NewCEAEvaluator(table)
	if err != nil {
		return nil, fmt.Errorf("build evaluator: %w", err)
	}

	logger.Debug("model ready", zap.Strings("species", names), zap.String("thermo", cfg.ThermoData))
	return analysis.NewModel(eval), nil
}

// speciesArgs returns args, or the configured species when none are given.
func speciesArgs(cfg *config.Config, args []string) []string {
	if len(args) > 0 {
		return args
	}
	return cfg.Species
}
