package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/springlab/internal/config"
	"github.com/san-kum/springlab/internal/export"
	"github.com/san-kum/springlab/internal/material"
	"github.com/san-kum/springlab/internal/store"
	"github.com/san-kum/springlab/internal/sweep"
	"github.com/san-kum/springlab/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	// Material constants
	e0     float64
	a0     float64
	l0     float64
	t0     float64
	alpha  float64
	beta   float64
	gamma  float64
	lambda float64
	// Sweep settings
	tMin     float64
	tMax     float64
	samples  int
	duration float64
	temps    []float64
	// Output
	saveRun  bool
	csvPath  string
	jsonPath string
	svgPath  string
	// Live view
	watchTemp float64
	frameRate int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "springlab",
		Short: "thermo-mechanical spring constant lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".springlab", "data directory")

	tempCmd := &cobra.Command{
		Use:   "temp",
		Short: "sweep spring constant over temperature",
		RunE:  runTempSweep,
	}
	tempCmd.Flags().Float64Var(&tMin, "tmin", config.DefaultTMin, "sweep start temperature (C)")
	tempCmd.Flags().Float64Var(&tMax, "tmax", config.DefaultTMax, "sweep end temperature (C)")
	tempCmd.Flags().IntVar(&samples, "samples", config.DefaultTempSamples, "number of samples")
	addCommonFlags(tempCmd)

	decayCmd := &cobra.Command{
		Use:   "decay",
		Short: "sweep spring constant over time at several temperatures",
		RunE:  runDecaySweep,
	}
	decayCmd.Flags().Float64Var(&duration, "duration", config.DefaultDuration, "sweep duration (s)")
	decayCmd.Flags().IntVar(&samples, "samples", config.DefaultTimeSamples, "samples per temperature")
	decayCmd.Flags().Float64SliceVar(&temps, "temps", nil, "temperatures (C), defaults to the reference set")
	addCommonFlags(decayCmd)

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "tabulate E, L, A and k over temperature",
		RunE:  runTable,
	}
	tableCmd.Flags().Float64Var(&tMin, "tmin", config.DefaultTMin, "table start temperature (C)")
	tableCmd.Flags().Float64Var(&tMax, "tmax", config.DefaultTMax, "table end temperature (C)")
	tableCmd.Flags().IntVar(&samples, "samples", 12, "number of rows")
	addMaterialFlags(tableCmd)

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "live decay view",
		RunE:  runWatch,
	}
	watchCmd.Flags().Float64Var(&watchTemp, "temp", material.DefaultT0, "temperature (C)")
	watchCmd.Flags().Float64Var(&duration, "duration", config.DefaultDuration, "decay duration (s)")
	watchCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	addMaterialFlags(watchCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "replot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list material presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(tempCmd, decayCmd, tableCmd, watchCmd, listCmd, showCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addMaterialFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&e0, "e0", material.DefaultE0, "reference Young's modulus (Pa)")
	cmd.Flags().Float64Var(&a0, "a0", material.DefaultA0, "reference cross-section area (m^2)")
	cmd.Flags().Float64Var(&l0, "l0", material.DefaultL0, "reference length (m)")
	cmd.Flags().Float64Var(&t0, "t0", material.DefaultT0, "reference temperature (C)")
	cmd.Flags().Float64Var(&alpha, "alpha", material.DefaultAlpha, "thermal expansion coefficient (1/C)")
	cmd.Flags().Float64Var(&beta, "beta", material.DefaultBeta, "modulus softening coefficient (1/C)")
	cmd.Flags().Float64Var(&gamma, "gamma", material.DefaultGamma, "sub-zero stiffening coefficient (1/C^2)")
	cmd.Flags().Float64Var(&lambda, "lambda", material.DefaultLambda, "decay rate (1/s)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
}

func addCommonFlags(cmd *cobra.Command) {
	addMaterialFlags(cmd)
	cmd.Flags().BoolVar(&saveRun, "save", false, "save run to the data directory")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write series to a CSV file")
	cmd.Flags().StringVar(&jsonPath, "json", "", "write series to a JSON file")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write series to an SVG chart")
}

// resolveConfig applies preset, then config file, then explicit flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flagOverrides := []struct {
		name  string
		value float64
		dst   *float64
	}{
		{"e0", e0, &cfg.Material.E0},
		{"a0", a0, &cfg.Material.A0},
		{"l0", l0, &cfg.Material.L0},
		{"t0", t0, &cfg.Material.T0},
		{"alpha", alpha, &cfg.Material.Alpha},
		{"beta", beta, &cfg.Material.Beta},
		{"gamma", gamma, &cfg.Material.Gamma},
		{"lambda", lambda, &cfg.Material.Lambda},
	}
	for _, o := range flagOverrides {
		if cmd.Flags().Changed(o.name) {
			*o.dst = o.value
		}
	}

	if cmd.Flags().Changed("tmin") {
		cfg.TempSweep.Min = tMin
	}
	if cmd.Flags().Changed("tmax") {
		cfg.TempSweep.Max = tMax
	}
	if cmd.Flags().Changed("duration") {
		cfg.TimeSweep.Duration = duration
	}
	if cmd.Flags().Changed("samples") {
		cfg.TempSweep.Samples = samples
		cfg.TimeSweep.Samples = samples
	}
	if cmd.Flags().Changed("temps") {
		cfg.TimeSweep.Temperatures = temps
	}

	return cfg, nil
}

func runTempSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m, err := material.New(cfg.Parameters())
	if err != nil {
		return err
	}

	span := sweep.Span{Min: cfg.TempSweep.Min, Max: cfg.TempSweep.Max, N: cfg.TempSweep.Samples}
	series, err := sweep.Temperature(m, span)
	if err != nil {
		return err
	}

	fmt.Println(viz.HeaderStyle.Render("spring constant vs temperature"))
	printStat("samples", fmt.Sprintf("%d", len(series.Points)))
	printStat("range", fmt.Sprintf("[%g, %g] C", span.Min, span.Max))
	printStat("k at ends", fmt.Sprintf("%.4g .. %.4g N/m", series.Points[0].Y, series.Points[len(series.Points)-1].Y))
	fmt.Println()

	caption := fmt.Sprintf("k (N/m) over %g..%g C", span.Min, span.Max)
	fmt.Println(viz.Plot(series, caption))

	return finishRun(cmd, "temp", m.Params(), []sweep.Series{series})
}

func runDecaySweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m, err := material.New(cfg.Parameters())
	if err != nil {
		return err
	}

	span := sweep.Span{Min: 0, Max: cfg.TimeSweep.Duration, N: cfg.TimeSweep.Samples}
	series, err := sweep.MultiTemperature(m, cfg.TimeSweep.Temperatures, span)
	if err != nil {
		return err
	}

	fmt.Println(viz.HeaderStyle.Render("spring constant decay"))
	printStat("temperatures", fmt.Sprintf("%v C", cfg.TimeSweep.Temperatures))
	printStat("duration", fmt.Sprintf("%g s", cfg.TimeSweep.Duration))
	printStat("samples", fmt.Sprintf("%d per series", span.N))
	fmt.Println()

	caption := fmt.Sprintf("k (N/m) over 0..%g s", cfg.TimeSweep.Duration)
	fmt.Println(viz.PlotMany(series, caption))

	return finishRun(cmd, "decay", m.Params(), series)
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m, err := material.New(cfg.Parameters())
	if err != nil {
		return err
	}

	span := sweep.Span{Min: cfg.TempSweep.Min, Max: cfg.TempSweep.Max, N: cfg.TempSweep.Samples}
	if cmd.Flags().Changed("samples") || span.N > 24 {
		span.N = samples
	}
	if err := span.Validate(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T (C)\tE (Pa)\tL (m)\tA (m^2)\tk (N/m)")

	for T := range span.All() {
		r, err := m.Evaluate(T, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%.1f\t%.5g\t%.6f\t%.6g\t%.5g\n", T, r.E, r.L, r.A, r.K)
	}

	return w.Flush()
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m, err := material.New(cfg.Parameters())
	if err != nil {
		return err
	}

	return viz.RunWatch(m, watchTemp, duration, frameRate)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTIME\tSAMPLES\tSERIES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
			len(run.Labels),
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Println(viz.HeaderStyle.Render(meta.ID))
	printStat("kind", meta.Kind)
	printStat("saved", meta.Timestamp.Format("2006-01-02 15:04:05"))
	printStat("samples", fmt.Sprintf("%d", meta.Samples))
	fmt.Println()

	if len(series) == 1 {
		fmt.Println(viz.Plot(series[0], series[0].Label))
	} else {
		fmt.Println(viz.PlotMany(series, meta.Kind))
	}
	return nil
}

func printStat(label, value string) {
	fmt.Println(viz.LabelStyle.Render(label) + viz.ValueStyle.Render(value))
}

func finishRun(cmd *cobra.Command, kind string, p material.Parameters, series []sweep.Series) error {
	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		if err := store.ExportCSV(f, series); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvPath)
	}

	if jsonPath != "" {
		f, err := os.Create(jsonPath)
		if err != nil {
			return err
		}
		if err := store.ExportJSON(f, kind, p, series); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonPath)
	}

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.SeriesToSVG(series, 800, 500)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}

	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(kind, p, series)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	return nil
}
