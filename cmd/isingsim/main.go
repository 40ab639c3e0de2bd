package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/isingsim/internal/analysis"
	"github.com/san-kum/isingsim/internal/config"
	"github.com/san-kum/isingsim/internal/experiment"
	"github.com/san-kum/isingsim/internal/export"
	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/metrics"
	"github.com/san-kum/isingsim/internal/sim"
	"github.com/san-kum/isingsim/internal/storage"
	"github.com/san-kum/isingsim/internal/viz"
)

var (
	dataDir string
	verbose bool
	logger  = zap.NewNop()

	size        int
	dim         int
	radius      int
	temperature float64
	coupling    float64
	field       float64
	steps       int
	captureRate int
	burnIn      int
	hamiltonian string
	seed        int64
	noSnapshots bool
	configFile  string
	preset      string

	replicas   int
	saveConfig string

	tMin   float64
	tMax   float64
	points int

	frame  int
	plane  int
	blocks bool
	frames bool
	scale  float64
	output string
	series string

	benchSweeps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "isingsim",
		Short:         "ising model monte carlo lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".isingsim", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run a metropolis simulation (grid or shell)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().IntVar(&replicas, "replicas", 1, "independent replicas with seeds seed, seed+1, ...")
	runCmd.Flags().StringVar(&saveConfig, "save-config", "", "write the resolved config to this path")

	scanCmd := &cobra.Command{
		Use:   "scan [model]",
		Short: "sweep temperature and report thermodynamic summaries",
		Args:  cobra.MaximumNArgs(1),
		RunE:  scanTemperature,
	}
	addConfigFlags(scanCmd)
	scanCmd.Flags().Float64Var(&tMin, "tmin", 1.5, "lowest temperature")
	scanCmd.Flags().Float64Var(&tMax, "tmax", 3.5, "highest temperature")
	scanCmd.Flags().IntVar(&points, "points", 11, "number of temperatures")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run summary and a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().IntVar(&frame, "frame", -1, "snapshot index (negative counts from the end)")
	showCmd.Flags().IntVar(&plane, "plane", -1, "slab along the first axis for 3D runs (default N/2)")
	showCmd.Flags().BoolVar(&blocks, "blocks", false, "one character per cell instead of braille")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot energy and magnetization traces",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().BoolVar(&frames, "frames", false, "include snapshots")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export observables to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a snapshot or an observable trace to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&frame, "frame", -1, "snapshot index (negative counts from the end)")
	exportSVGCmd.Flags().IntVar(&plane, "plane", -1, "slab along the first axis for 3D runs (default N/2)")
	exportSVGCmd.Flags().Float64Var(&scale, "scale", 4, "pixels per cell")
	exportSVGCmd.Flags().StringVar(&series, "series", "", "plot a trace instead: energy or magnetization")
	exportSVGCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark sweep throughput",
		RunE:  benchSweepRate,
	}
	benchCmd.Flags().IntVar(&benchSweeps, "sweeps", 50, "sweeps per case")

	rootCmd.AddCommand(runCmd, scanCmd, listCmd, showCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func setupLogger() error {
	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	logger = l
	return nil
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&size, "size", "n", config.DefaultSize, "lattice length per axis")
	cmd.Flags().IntVar(&dim, "dim", config.DefaultDim, "grid dimension (2 or 3)")
	cmd.Flags().IntVar(&radius, "radius", config.DefaultRadius, "shell radius")
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", config.DefaultTemperature, "temperature")
	cmd.Flags().Float64Var(&coupling, "coupling", config.DefaultCoupling, "coupling J")
	cmd.Flags().Float64Var(&field, "field", 0, "external field h")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "sweeps")
	cmd.Flags().IntVar(&captureRate, "capture-rate", config.DefaultCaptureRate, "capture every k-th sweep")
	cmd.Flags().IntVar(&burnIn, "burn-in", 0, "sweeps excluded from summaries")
	cmd.Flags().StringVar(&hamiltonian, "hamiltonian", "", "energy model (default per model)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().BoolVar(&noSnapshots, "no-snapshots", false, "record observables only")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers defaults, preset, config file and changed flags, in
// that order.
func resolveConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Model = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Model, preset)
		if p == nil {
			return config.Config{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Model))
		}
		cfg = p
	}
	// A seed from the config file, zero included, wins over the default.
	if cfg.Seed == 0 {
		cfg.Seed = seed
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, *cfg)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if len(args) > 0 {
			loaded.Model = args[0]
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("dim") {
		cfg.Dim = dim
	}
	if flags.Changed("radius") {
		cfg.Radius = radius
	}
	if cfg.Model == config.ModelShell && cfg.Radius == 0 {
		cfg.Radius = radius
	}
	if flags.Changed("temperature") {
		cfg.Temperature = temperature
	}
	if flags.Changed("coupling") {
		cfg.Coupling = coupling
	}
	if flags.Changed("field") {
		cfg.Field = field
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("capture-rate") {
		cfg.CaptureRate = captureRate
	}
	if flags.Changed("burn-in") {
		cfg.BurnIn = burnIn
	}
	if flags.Changed("hamiltonian") {
		cfg.Hamiltonian = hamiltonian
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if noSnapshots {
		cfg.Snapshots = false
	}

	return *cfg, cfg.Validate()
}

// progressObserver logs every k-th sweep at debug level.
func progressObserver(total int) sim.Observer {
	every := total / 10
	if every < 1 {
		every = 1
	}
	return sim.ObserverFunc(func(step int, l ising.Configuration) {
		if (step+1)%every != 0 {
			return
		}
		logger.Debug("sweep",
			zap.Int("step", step),
			zap.Int("total", total),
			zap.Float64("magnetization", metrics.MeanMagnetization(l)))
	})
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	if saveConfig != "" {
		if err := config.Save(saveConfig, &cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if replicas > 1 {
		return runEnsemble(ctx, st, cfg)
	}

	exp := experiment.New(cfg, logger)
	if err := exp.Setup(); err != nil {
		return err
	}
	exp.GetSimulator().AddObserver(progressObserver(cfg.Steps))

	fmt.Println(viz.Subtle.Render(fmt.Sprintf("running %s (%s), %d sweeps...", cfg.Model, cfg.HamiltonianName(), cfg.Steps)))
	start := time.Now()

	result, runErr := exp.Run(ctx)
	if result == nil {
		return runErr
	}
	elapsed := time.Since(start)

	// partial runs are kept as well; their state records why they stopped
	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}

	printSummary(cfg, runID, result, elapsed)
	return runErr
}

func runEnsemble(ctx context.Context, st *storage.Store, cfg config.Config) error {
	exp := experiment.New(cfg, logger)

	fmt.Println(viz.Subtle.Render(fmt.Sprintf("running %d replicas of %s, %d sweeps each...", replicas, cfg.Model, cfg.Steps)))
	start := time.Now()

	results, runErr := exp.Ensemble(ctx, replicas)
	elapsed := time.Since(start)

	ids, err := st.SaveReplicas(cfg, results)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSEED\tSTATE\t<E>\t<|m|>\tC\tCHI\tACCEPT")

	mean := make(map[string]float64)
	saved := 0
	for i, result := range results {
		if result == nil {
			continue
		}
		saved++
		for name, v := range result.Metrics {
			mean[name] += v
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.2f%%\n",
			ids[i], cfg.Seed+int64(i), result.State,
			result.Metrics["mean_energy"],
			result.Metrics["mean_abs_magnetization"],
			result.Metrics["specific_heat"],
			result.Metrics["susceptibility"],
			100*result.AcceptanceRate())
	}
	if saved == 0 {
		return runErr
	}
	for name := range mean {
		mean[name] /= float64(saved)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		viz.Title.Render(fmt.Sprintf("ensemble mean over %d replicas", saved)),
		viz.Subtle.Render(fmt.Sprintf("completed in %v", elapsed.Round(time.Millisecond))),
		"",
		viz.MetricTable(mean),
	)))
	if runErr != nil {
		logger.Warn("ensemble stopped early, partial replicas saved",
			zap.Int("saved", saved), zap.Int("replicas", replicas), zap.Error(runErr))
	}
	return runErr
}

func printSummary(cfg config.Config, runID string, result *sim.Result, elapsed time.Duration) {
	sites := 0
	if result.Lattice != nil {
		sites = result.Lattice.Len()
	}
	done := 0.0
	if cfg.Steps > 0 {
		done = float64(result.SweepsDone) / float64(cfg.Steps)
	}
	energies := make([]float64, len(result.Observables))
	for i, o := range result.Observables {
		energies[i] = o.Energy
	}
	info := fmt.Sprintf("run id   %s\nstate    %s\nsweeps   %s %d / %d\nenergy   %s\nsites    %d\naccepted %.2f%%\nelapsed  %v",
		runID,
		viz.Status(result.State.String()),
		viz.ProgressBar(done, 20), result.SweepsDone, cfg.Steps,
		viz.SparklineChart(energies, 40),
		sites,
		100*result.AcceptanceRate(),
		elapsed.Round(time.Millisecond))

	fmt.Println(viz.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		viz.Title.Render(fmt.Sprintf("%s / %s  T=%g J=%g h=%g", cfg.Model, cfg.HamiltonianName(), cfg.Temperature, cfg.Coupling, cfg.Field)),
		"",
		info,
		"",
		viz.MetricTable(result.Metrics),
	)))
}

func scanTemperature(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	temps, err := analysis.Temperatures(tMin, tMax, points)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Println(viz.Subtle.Render(fmt.Sprintf("scanning %s over %d temperatures in [%g, %g]...", cfg.Model, len(temps), tMin, tMax)))
	start := time.Now()

	results, err := analysis.TemperatureScan(ctx, cfg, temps, logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T\t<E>\t<|m|>\tC\tCHI\tACCEPT\tTAU_E\tTAU_M")
	heat := make([]float64, len(results))
	mag := make([]float64, len(results))
	for i, p := range results {
		heat[i] = p.SpecificHeat
		mag[i] = p.MeanAbsMagnetization
		fmt.Fprintf(w, "%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.2f%%\t%.2f\t%.2f\n",
			p.Temperature, p.MeanEnergy, p.MeanAbsMagnetization, p.SpecificHeat, p.Susceptibility,
			100*p.AcceptanceRate, p.EnergyAutocorrTime, p.MagnetizationAutocorrTime)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	if len(results) > 1 {
		fmt.Println(asciigraph.Plot(heat, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("specific heat vs temperature")))
		fmt.Println()
		fmt.Println(asciigraph.Plot(mag, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("<|m|> vs temperature")))
		fmt.Println()
	}

	if peak, ok := analysis.PeakSpecificHeat(results); ok {
		fmt.Printf("specific heat peaks at T=%.4f\n", peak.Temperature)
	}
	fmt.Printf("completed in %v\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tHAMILTONIAN\tTIME\tSIZE\tT\tSWEEPS\tSTATE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d^%d\t%.4g\t%d\t%s\n",
			run.ID,
			run.Model,
			run.Hamiltonian,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Size, run.Dim,
			run.Temperature,
			run.SweepsDone,
			run.State,
		)
	}

	return w.Flush()
}

// pickFrame resolves a possibly negative snapshot index.
func pickFrame(records []storage.SnapshotRecord, i int) (storage.SnapshotRecord, error) {
	if len(records) == 0 {
		return storage.SnapshotRecord{}, errors.New("run has no snapshots")
	}
	if i < 0 {
		i += len(records)
	}
	if i < 0 || i >= len(records) {
		return storage.SnapshotRecord{}, fmt.Errorf("frame out of range (run has %d snapshots)", len(records))
	}
	return records[i], nil
}

func pickPlane(rec storage.SnapshotRecord) (int, [][]int8, error) {
	p := plane
	if p < 0 {
		p = rec.Size / 2
	}
	rows := rec.Plane(p)
	if rows == nil {
		return p, nil, fmt.Errorf("plane %d out of range", p)
	}
	return p, rows, nil
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	obs, err := st.LoadObservables(runID)
	if err != nil {
		return err
	}

	energies, mags := analysis.Series(obs, meta.BurnIn)
	summary := map[string]float64{}
	for k, v := range meta.Metrics {
		summary[k] = v
	}
	if len(energies) > 1 {
		summary["tau_energy"] = analysis.IntegratedAutocorrTime(energies, analysis.DefaultWindow)
		summary["tau_magnetization"] = analysis.IntegratedAutocorrTime(mags, analysis.DefaultWindow)
	}
	if period, ok := analysis.DominantPeriod(energies); ok {
		summary["energy_period_sweeps"] = period * float64(meta.CaptureRate)
	}

	info := fmt.Sprintf("model    %s (%s, %v)\nlattice  %d^%d, %d sites\nT J h    %g %g %g\nseed     %d\nsweeps   %d / %d, capture every %d\nstate    %s\naccepted %.2f%%\nenergy   %s",
		meta.Model, meta.Hamiltonian, meta.HamiltonianParams,
		meta.Size, meta.Dim, meta.Sites,
		meta.Temperature, meta.Coupling, meta.Field,
		meta.Seed,
		meta.SweepsDone, meta.Steps, meta.CaptureRate,
		viz.Status(meta.State),
		100*meta.AcceptanceRate,
		viz.SparklineChart(energies, 40))

	fmt.Println(viz.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		viz.Title.Render(meta.ID),
		"",
		info,
		"",
		viz.MetricTable(summary),
	)))

	records, err := st.LoadSnapshots(runID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println(viz.Subtle.Render("no snapshots stored"))
		return nil
	}
	rec, err := pickFrame(records, frame)
	if err != nil {
		return err
	}
	slab, rows, err := pickPlane(rec)
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("snapshot at step %d", rec.Step)
	if rec.Dim == 3 {
		caption += fmt.Sprintf(", slab %d", slab)
	}
	fmt.Println(viz.Subtle.Render(caption))
	if blocks {
		fmt.Print(viz.SpinBlocks(rows))
	} else {
		fmt.Print(viz.SpinCanvas(rows).String())
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	obs, err := st.LoadObservables(runID)
	if err != nil {
		return err
	}

	if len(obs) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s, T=%g\n", meta.Model, meta.Temperature)
	fmt.Printf("samples: %d\n\n", len(obs))

	energy := make([]float64, len(obs))
	mag := make([]float64, len(obs))
	for i, o := range obs {
		energy[i] = o.Energy
		mag[i] = o.Magnetization
	}

	for _, p := range []struct {
		data    []float64
		caption string
	}{
		{energy, "total energy vs capture"},
		{mag, "mean magnetization vs capture"},
	} {
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).Export(os.Stdout, args[0], frames)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	obs, err := storage.New(dataDir).LoadObservables(args[0])
	if err != nil {
		return err
	}
	if len(obs) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.WriteObservablesCSV(os.Stdout, obs)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	var svg string
	switch series {
	case "energy", "magnetization":
		obs, err := st.LoadObservables(runID)
		if err != nil {
			return err
		}
		values := make([]float64, len(obs))
		for i, o := range obs {
			if series == "energy" {
				values[i] = o.Energy
			} else {
				values[i] = o.Magnetization
			}
		}
		svg = export.SeriesSVG(values, 800, 300, "#00ff88")
	case "":
		records, err := st.LoadSnapshots(runID)
		if err != nil {
			return err
		}
		rec, err := pickFrame(records, frame)
		if err != nil {
			return err
		}
		_, rows, err := pickPlane(rec)
		if err != nil {
			return err
		}
		svg = export.LatticeSVG(rows, scale)
	default:
		return fmt.Errorf("unknown series: %s (energy or magnetization)", series)
	}

	if svg == "" {
		return fmt.Errorf("nothing to export")
	}
	if output == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(output, []byte(svg), 0644)
}

func listPresets(cmd *cobra.Command, args []string) error {
	models := []string{config.ModelGrid, config.ModelShell}
	if len(args) > 0 {
		models = args[:1]
	}
	for _, model := range models {
		presets := config.ListPresets(model)
		if len(presets) == 0 {
			fmt.Printf("no presets for model: %s\n", model)
			continue
		}
		fmt.Printf("presets for %s:\n", model)
		for _, name := range presets {
			p := config.GetPreset(model, name)
			fmt.Printf("  %-12s N=%d dim=%d T=%g h=%g steps=%d\n", name, p.Size, p.Dim, p.Temperature, p.Field, p.Steps)
		}
	}
	return nil
}

func benchSweepRate(cmd *cobra.Command, args []string) error {
	cases := []config.Config{
		{Model: config.ModelGrid, Size: 16, Dim: 2},
		{Model: config.ModelGrid, Size: 64, Dim: 2},
		{Model: config.ModelGrid, Size: 256, Dim: 2},
		{Model: config.ModelGrid, Size: 24, Dim: 3},
		{Model: config.ModelShell, Size: 40, Dim: 3, Radius: 10},
		{Model: config.ModelShell, Size: 200, Dim: 3, Radius: 20},
	}

	fmt.Printf("benchmarking %d sweeps per case\n\n", benchSweeps)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tLATTICE\tSITES\tTIME\tSWEEPS/SEC\tFLIPS/SEC\tACCEPT")

	for _, c := range cases {
		c.Temperature = 2.269
		c.Coupling = config.DefaultCoupling
		c.Steps = benchSweeps
		c.CaptureRate = benchSweeps + 1
		c.Seed = 42

		exp := experiment.New(c, logger)
		if err := exp.Setup(); err != nil {
			return err
		}

		start := time.Now()
		result, err := exp.Run(cmd.Context())
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%s\t%d^%d\t%d\t%v\t%.0f\t%.3g\t%.2f%%\n",
			c.Model, c.Size, result.Lattice.Dim(), result.Lattice.Len(),
			elapsed.Round(time.Microsecond),
			float64(result.SweepsDone)/elapsed.Seconds(),
			float64(result.Attempts)/elapsed.Seconds(),
			100*result.AcceptanceRate())
	}

	return w.Flush()
}
