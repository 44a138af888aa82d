package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/skipstone/internal/analysis"
	"github.com/san-kum/skipstone/internal/config"
	"github.com/san-kum/skipstone/internal/dynamo"
	"github.com/san-kum/skipstone/internal/export"
	"github.com/san-kum/skipstone/internal/integrators"
	"github.com/san-kum/skipstone/internal/metrics"
	"github.com/san-kum/skipstone/internal/phase"
	"github.com/san-kum/skipstone/internal/physics"
	"github.com/san-kum/skipstone/internal/sim"
	"github.com/san-kum/skipstone/internal/storage"
	"github.com/san-kum/skipstone/internal/sweep"
	"github.com/san-kum/skipstone/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string

	dt         float64
	duration   float64
	seed       int64
	integrator string

	shape     string
	stoneW    float64
	stoneH    float64
	thickness float64
	density   float64

	height float64
	speed  float64
	angle  float64
	pitch  float64
	spin   float64

	// Phase plot axes.
	xAxis int
	yAxis int

	// Sweep grids, comma-separated values.
	sweepSpeeds string
	sweepAngles string
	sweepPitch  string

	svgOut string
	theme  string
)

var stateNames = []string{"x", "y", "vx", "vy", "theta", "omega"}

func main() {
	rootCmd := &cobra.Command{
		Use:   "skipstone",
		Short: "stone skipping simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".skipstone", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a throw and store the result",
		RunE:  runThrow,
	}
	addThrowFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a throw with live visualization",
		RunE:  runLive,
	}
	addThrowFlags(liveCmd)
	liveCmd.Flags().StringVar(&theme, "theme", "ocean", "color theme")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 1, "state index for x-axis")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", 3, "state index for y-axis")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a stored run to stdout as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write a stored run to stdout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a stored trajectory as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (default stdout)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "grid sweep over release parameters",
		RunE:  runSweep,
	}
	addThrowFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepSpeeds, "speeds", "", "comma-separated speeds (m/s)")
	sweepCmd.Flags().StringVar(&sweepAngles, "angles", "", "comma-separated entry angles (deg)")
	sweepCmd.Flags().StringVar(&sweepPitch, "pitches", "", "comma-separated pitch angles (rad)")

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "compare integrators on the same throw",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	addThrowFlags(compareCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available throw presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			for _, p := range names {
				fmt.Println(p)
			}
			return nil
		},
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "skip cadence analysis of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, phaseCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, sweepCmd, compareCmd,
		presetsCmd, analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addThrowFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "throw preset")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator")
	cmd.Flags().StringVar(&shape, "shape", "", "stone shape (ellipse, disc, rect)")
	cmd.Flags().Float64Var(&stoneW, "width", 0, "stone width (m)")
	cmd.Flags().Float64Var(&stoneH, "stone-height", 0, "stone height (m)")
	cmd.Flags().Float64Var(&thickness, "thickness", 0, "stone thickness (m)")
	cmd.Flags().Float64Var(&density, "density", 0, "stone density (kg/m^3)")
	cmd.Flags().Float64Var(&height, "height", 0, "release height (m)")
	cmd.Flags().Float64Var(&speed, "speed", 0, "release speed (m/s)")
	cmd.Flags().Float64Var(&angle, "angle", 0, "release angle (deg, negative is downward)")
	cmd.Flags().Float64Var(&pitch, "pitch", 0, "body pitch (rad)")
	cmd.Flags().Float64Var(&spin, "spin", 0, "spin rate (rad/s)")
}

// buildConfig resolves precedence: defaults, then preset, then config file,
// then explicitly set flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("shape") {
		cfg.Stone.Shape = shape
	}
	if flags.Changed("width") {
		cfg.Stone.Width = stoneW
	}
	if flags.Changed("stone-height") {
		cfg.Stone.Height = stoneH
	}
	if flags.Changed("thickness") {
		cfg.Stone.Thickness = thickness
	}
	if flags.Changed("density") {
		cfg.Stone.Density = density
	}
	if flags.Changed("height") {
		cfg.Throw.Height = height
	}
	if flags.Changed("speed") {
		cfg.Throw.Speed = speed
	}
	if flags.Changed("angle") {
		cfg.Throw.Angle = angle
	}
	if flags.Changed("pitch") {
		cfg.Throw.Pitch = pitch
	}
	if flags.Changed("spin") {
		cfg.Throw.Spin = spin
	}

	return cfg, nil
}

func buildIntegrator(name string) (dynamo.Integrator, error) {
	switch name {
	case "rk4":
		return integrators.NewRK4(), nil
	case "euler":
		return integrators.NewEuler(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

func buildModel(cfg *config.Config) (*physics.StoneSkip, error) {
	props, err := cfg.BuildStone()
	if err != nil {
		return nil, err
	}
	return physics.NewStoneSkip(props, cfg.BuildEnvironment()), nil
}

func runThrow(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	model, err := buildModel(cfg)
	if err != nil {
		return err
	}
	integ, err := buildIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := sim.New(model, integ)
	runner.AddMetric(metrics.NewEnergyDrift(model))
	runner.AddMetric(metrics.NewPeakHeight())
	runner.AddMetric(metrics.NewMaxDepth(model.Environment().WaterLevel))
	runner.AddMetric(metrics.NewDistance())

	runCfg := sim.DefaultConfig()
	runCfg.Dt = cfg.Dt
	runCfg.Duration = cfg.Duration
	runCfg.Seed = cfg.Seed
	runCfg.StopOnSink = cfg.StopOnSink
	if cfg.SettleTime > 0 {
		runCfg.SettleTime = cfg.SettleTime
	}

	fmt.Printf("throwing %s at %.1f m/s, %.0f deg...\n",
		model.Properties().Name, cfg.Throw.Speed, cfg.Throw.Angle)
	start := time.Now()

	result, err := runner.Run(context.Background(), cfg.InitState(), runCfg)
	if err != nil {
		if result == nil {
			return err
		}
		// A halted run still produced a trajectory worth saving.
		fmt.Printf("run halted: %v\n", err)
	}
	elapsed := time.Since(start)

	runID, err := st.Save(model.Properties().Name, cfg.Dt, cfg.Duration, cfg.Seed, cfg.Integrator, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("bounces: %d\n", result.Bounces)
	fmt.Printf("final phase: %s\n", result.FinalPhase)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	model, err := buildModel(cfg)
	if err != nil {
		return err
	}
	integ, err := buildIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("theme") {
		viz.SetTheme(theme)
	}

	m := viz.NewModel(model, integ, cfg.InitState(), cfg.Dt)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
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
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTONE\tTIME\tDURATION\tDT\tINTEG\tBOUNCES\tFINAL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\t%d\t%s\n",
			run.ID,
			run.Stone,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
			run.Bounces,
			run.FinalPhase,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("stone: %s\n", meta.Stone)
	fmt.Printf("bounces: %d, final phase: %s\n", meta.Bounces, meta.FinalPhase)
	fmt.Printf("samples: %d\n\n", len(states))

	numVars := len(states[0])
	if numVars > len(stateNames) {
		numVars = len(stateNames)
	}

	for varIdx := 0; varIdx < numVars; varIdx++ {
		data := make([]float64, len(states))
		for i := range states {
			if varIdx < len(states[i]) {
				data[i] = states[i][varIdx]
			}
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(stateNames[varIdx]+" vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}
	if len(states[0]) <= xAxis || len(states[0]) <= yAxis {
		return fmt.Errorf("state dimension too small for selected axes")
	}

	fmt.Printf("phase space plot: %s\n", meta.ID)
	fmt.Printf("x-axis: %s, y-axis: %s\n\n", axisName(xAxis), axisName(yAxis))

	xData := make([]float64, len(states))
	yData := make([]float64, len(states))
	for i := range states {
		xData[i] = states[i][xAxis]
		yData[i] = states[i][yAxis]
	}

	xMin, xMax := bounds(xData)
	yMin, yMax := bounds(yData)
	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	const plotW, plotH = 70, 20
	canvas := make([][]rune, plotH)
	for i := range canvas {
		canvas[i] = make([]rune, plotW)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i := range xData {
		px := int(float64(plotW-1) * (xData[i] - xMin) / xRange)
		py := plotH - 1 - int(float64(plotH-1)*(yData[i]-yMin)/yRange)
		if px < 0 || px >= plotW || py < 0 || py >= plotH {
			continue
		}
		switch {
		case i < len(xData)/3:
			canvas[py][px] = '.'
		case i < 2*len(xData)/3:
			canvas[py][px] = 'o'
		default:
			canvas[py][px] = '●'
		}
	}

	fmt.Printf("  %8.2f ┌%s┐\n", yMax, strings.Repeat("─", plotW))
	for i := range canvas {
		if i == plotH/2 {
			fmt.Printf("  %8.2f │", (yMax+yMin)/2)
		} else {
			fmt.Print("           │")
		}
		fmt.Print(string(canvas[i]))
		fmt.Println("│")
	}
	fmt.Printf("  %8.2f └%s┘\n", yMin, strings.Repeat("─", plotW))
	fmt.Printf("           %.2f%s%.2f\n", xMin, strings.Repeat(" ", plotW-16), xMax)
	fmt.Println("\nLegend: . = early, o = middle, ● = late")

	return nil
}

func axisName(idx int) string {
	if idx >= 0 && idx < len(stateNames) {
		return stateNames[idx]
	}
	return fmt.Sprintf("x%d", idx)
}

func bounds(data []float64) (float64, float64) {
	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) < 4 {
		return fmt.Errorf("not enough data to analyze")
	}

	heights := make([]float64, len(states))
	for i := range states {
		if len(states[i]) > 1 {
			heights[i] = states[i][1]
		}
	}

	sampleRate := 1.0 / meta.Dt

	fmt.Printf("skip cadence analysis: %s\n", meta.ID)
	fmt.Printf("bounces: %d\n\n", meta.Bounces)

	centered := make([]float64, len(heights))
	mean := 0.0
	for _, h := range heights {
		mean += h
	}
	mean /= float64(len(heights))
	for i, h := range heights {
		centered[i] = h - mean
	}

	ps := analysis.PowerSpectrum(analysis.PadPow2(centered))
	plotData := ps[:len(ps)/4]
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (height)"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq := analysis.SkipCadence(heights, sampleRate)
	fmt.Printf("dominant cadence: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("hop interval: %.3f s\n", 1.0/freq)
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range states[0] {
		header = append(header, axisName(i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func loadResult(st *storage.Store, runID string) (*storage.RunMetadata, *sim.Result, error) {
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return nil, nil, err
	}

	result := &sim.Result{
		States:     make([]dynamo.State, len(states)),
		Times:      times,
		Metrics:    meta.Metrics,
		Bounces:    meta.Bounces,
		FinalPhase: parsePhase(meta.FinalPhase),
	}
	for i, s := range states {
		result.States[i] = s
	}
	return meta, result, nil
}

func parsePhase(s string) phase.Phase {
	switch s {
	case "bouncing":
		return phase.Bouncing
	case "sinking":
		return phase.Sinking
	default:
		return phase.Flying
	}
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, result, err := loadResult(st, args[0])
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, meta.Stone, meta.Integrator, meta.Dt, meta.Duration, result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	_, result, err := loadResult(st, args[0])
	if err != nil {
		return err
	}

	svg := export.TrajectorySVG(result, 0, 1000, 400)
	if svg == "" {
		return fmt.Errorf("not enough data to render")
	}

	if svgOut == "" {
		fmt.Print(svg)
		return nil
	}
	return os.WriteFile(svgOut, []byte(svg), 0644)
}

func parseFloats(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", p, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	var axes []sweep.Axis
	for _, spec := range []struct {
		name string
		raw  string
	}{
		{"speed", sweepSpeeds},
		{"angle", sweepAngles},
		{"pitch", sweepPitch},
	} {
		vals, err := parseFloats(spec.raw)
		if err != nil {
			return err
		}
		if len(vals) > 0 {
			axes = append(axes, sweep.Axis{Name: spec.name, Values: vals})
		}
	}
	if len(axes) == 0 {
		return fmt.Errorf("no sweep axes given (use --speeds, --angles or --pitches)")
	}

	s := sweep.New(cfg, axes)

	fmt.Println("sweeping...")
	start := time.Now()
	outcomes, err := s.Run(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("%d runs in %v\n\n", len(outcomes), time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SPEED\tANGLE\tPITCH\tBOUNCES\tDISTANCE\tFINAL")
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "%s\t%s\t%s\terror: %v\n",
				sweepCell(o, "speed", cfg.Throw.Speed),
				sweepCell(o, "angle", cfg.Throw.Angle),
				sweepCell(o, "pitch", cfg.Throw.Pitch),
				o.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2fm\t%s\n",
			sweepCell(o, "speed", cfg.Throw.Speed),
			sweepCell(o, "angle", cfg.Throw.Angle),
			sweepCell(o, "pitch", cfg.Throw.Pitch),
			o.Bounces,
			o.Distance,
			o.FinalPhase,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if best, ok := sweep.Best(outcomes); ok {
		fmt.Printf("\nbest: %d bounces, %.2fm", best.Bounces, best.Distance)
		for name, v := range best.Params {
			fmt.Printf(", %s=%.2f", name, v)
		}
		fmt.Println()
	}

	return nil
}

func sweepCell(o sweep.Outcome, name string, base float64) string {
	if v, ok := o.Params[name]; ok {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.2f", base)
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("comparing integrators (dt=%.4f, duration=%.1fs)\n\n", cfg.Dt, cfg.Duration)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tBOUNCES\tDISTANCE\tENERGY_DRIFT\tFINAL\tTIME")

	for _, name := range args {
		integ, err := buildIntegrator(name)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		// A fresh model per integrator so the phase machines are independent.
		model, err := buildModel(cfg)
		if err != nil {
			return err
		}

		runner := sim.New(model, integ)
		distance := metrics.NewDistance()
		runner.AddMetric(distance)

		runCfg := sim.DefaultConfig()
		runCfg.Dt = cfg.Dt
		runCfg.Duration = cfg.Duration
		runCfg.StopOnSink = cfg.StopOnSink
		if cfg.SettleTime > 0 {
			runCfg.SettleTime = cfg.SettleTime
		}

		start := time.Now()
		result, err := runner.Run(context.Background(), cfg.InitState(), runCfg)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		fmt.Fprintf(w, "%s\t%d\t%.2fm\t%.2e\t%s\t%v\n",
			name,
			result.Bounces,
			result.Metrics[distance.Name()],
			result.EnergyDrift,
			result.FinalPhase,
			elapsed,
		)
	}

	return w.Flush()
}
