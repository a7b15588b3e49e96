package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/orrerylab/orrery/internal/appearance"
	"github.com/orrerylab/orrery/internal/builder"
	"github.com/orrerylab/orrery/internal/catalog"
	"github.com/orrerylab/orrery/internal/export"
	"github.com/orrerylab/orrery/internal/scene"
	"github.com/orrerylab/orrery/internal/timeline"
	"github.com/orrerylab/orrery/internal/viz"
)

var (
	catalogFile  string
	textureDir   string
	framesPerDay int
	framesPerYr  int
	floorFrames  int
	startFrame   int
	continueErr  bool
	verbose      bool
)

// newRootCmd builds the command tree. Subcommand flags like --out are
// registered per command and read back through cmd.Flags(), because
// several commands carry the same flag name with different defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "orrery",
		Short: "procedural solar-system animation rig generator",
	}

	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "catalog file (yaml); builtin preset if empty")
	rootCmd.PersistentFlags().StringVar(&textureDir, "textures", "", "texture directory")
	rootCmd.PersistentFlags().IntVar(&framesPerDay, "frames-per-day", 0, "override frames per 24h day")
	rootCmd.PersistentFlags().IntVar(&framesPerYr, "frames-per-year", 0, "override frames per orbital year")
	rootCmd.PersistentFlags().IntVar(&floorFrames, "floor", 0, "override minimum cycle length in frames")
	rootCmd.PersistentFlags().IntVar(&startFrame, "start", 0, "override timeline start frame")
	rootCmd.PersistentFlags().BoolVar(&continueErr, "continue-on-error", false, "skip invalid bodies instead of aborting")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "rebuild the system and export it",
		RunE:  runBuild,
	}
	buildCmd.Flags().String("out", "orrery-out", "output directory")
	buildCmd.Flags().Int("step", 10, "ephemeris sampling step in frames")

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "list catalog bodies",
		RunE:  listCatalog,
	}

	timelineCmd := &cobra.Command{
		Use:   "timeline",
		Short: "show per-body frame counts",
		RunE:  showTimeline,
	}

	previewCmd := &cobra.Command{
		Use:   "preview [body]",
		Short: "ascii chart of one body's orbit",
		Args:  cobra.ExactArgs(1),
		RunE:  previewBody,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal playback",
		RunE:  runLive,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export per-frame body positions to CSV",
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().String("out", "", "output file (stdout if empty)")
	exportCSVCmd.Flags().Int("step", 1, "sampling step in frames")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "export a top-down orbit map to SVG",
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().String("out", "", "output file (stdout if empty)")
	exportSVGCmd.Flags().Int("width", 1000, "image width")
	exportSVGCmd.Flags().Int("height", 1000, "image height")

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write the builtin catalog as a starting point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := catalog.Save(args[0], catalog.DefaultSolarSystem(), timeline.DefaultScale()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(buildCmd, catalogCmd, timelineCmd, previewCmd, liveCmd, exportCSVCmd, exportSVGCmd, initCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadCatalog reads the catalog file or falls back to the builtin
// preset, then applies any scale overrides from the CLI.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, timeline.Scale, error) {
	cat := catalog.DefaultSolarSystem()
	scale := timeline.DefaultScale()
	if catalogFile != "" {
		var err error
		cat, scale, err = catalog.Load(catalogFile)
		if err != nil {
			return nil, scale, fmt.Errorf("failed to load catalog: %w", err)
		}
	}
	if cmd.Flags().Changed("frames-per-day") {
		scale.FramesPerDay = framesPerDay
	}
	if cmd.Flags().Changed("frames-per-year") {
		scale.FramesPerYear = framesPerYr
	}
	if cmd.Flags().Changed("floor") {
		scale.FloorFrames = floorFrames
	}
	if cmd.Flags().Changed("start") {
		scale.StartFrame = startFrame
	}
	return cat, scale, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// rebuild runs one full generation pass against a fresh in-memory
// graph and returns the graph alongside the result.
func rebuild(cmd *cobra.Command) (*scene.Graph, *builder.Result, timeline.Scale, error) {
	cat, scale, err := loadCatalog(cmd)
	if err != nil {
		return nil, nil, scale, err
	}
	g := scene.NewGraph()
	b := builder.New(g, scale, newLogger())
	b.Appearance = appearance.Palette{TextureDir: textureDir}
	if continueErr {
		b.Policy = builder.ContinueOnError
	}
	res, err := b.Rebuild(cat)
	if err != nil {
		return nil, nil, scale, err
	}
	return g, res, scale, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out")
	step, _ := cmd.Flags().GetInt("step")

	start := time.Now()
	g, res, scale, err := rebuild(cmd)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outDir, "scene.json"), func(f *os.File) error {
		return export.WriteJSON(f, export.SceneDescription(g, res, scale))
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outDir, "ephemeris.csv"), func(f *os.File) error {
		return export.WriteEphemeris(f, res, step)
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outDir, "orbits.svg"), func(f *os.File) error {
		return export.WriteOrbitMap(f, res, 1000, 1000)
	}); err != nil {
		return err
	}

	fmt.Printf("built %d bodies in %v\n", len(res.Rigs), time.Since(start).Round(time.Millisecond))
	fmt.Printf("timeline: frames %d..%d\n", res.StartFrame, res.EndFrame)
	for _, s := range res.Skipped {
		fmt.Printf("skipped %s: %v\n", s.Name, s.Err)
	}
	fmt.Printf("output: %s\n", outDir)
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}

func listCatalog(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	if err := cat.Validate(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRADIUS\tSEMI-MAJOR\tECC\tPERIOD(Y)\tROT(H)\tPRIMARY")
	for _, b := range cat.Bodies() {
		a, e := "-", "-"
		if b.Elements != nil {
			a = fmt.Sprintf("%.2f", b.Elements.SemiMajor)
			e = fmt.Sprintf("%.4f", b.Elements.Eccentricity)
		}
		primary := b.Primary
		if primary == "" && !b.IsStar() {
			primary = "(star)"
		}
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\t%.4f\t%.2f\t%s\n",
			b.Name, b.Radius, a, e, b.PeriodYears, b.RotationHours, primary)
	}
	return w.Flush()
}

func showTimeline(cmd *cobra.Command, args []string) error {
	cat, scale, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tORBIT FRAMES\tSPIN FRAMES\tSPIN DIR")
	for _, b := range cat.Bodies() {
		orbitFrames := "-"
		if b.Elements != nil {
			orbitFrames = fmt.Sprintf("%d", scale.FramesForYears(b.PeriodYears))
		}
		dir := "prograde"
		if timeline.Direction(b.RotationHours) < 0 {
			dir = "retrograde"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			b.Name, orbitFrames, scale.FramesForHours(b.RotationHours), dir)
	}
	return w.Flush()
}

func previewBody(cmd *cobra.Command, args []string) error {
	_, res, _, err := rebuild(cmd)
	if err != nil {
		return err
	}
	chart, err := viz.DistancePlot(res, args[0], 70, 12)
	if err != nil {
		return err
	}
	fmt.Println(chart)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	_, res, scale, err := rebuild(cmd)
	if err != nil {
		return err
	}
	return viz.Run(res, scale)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	step, _ := cmd.Flags().GetInt("step")

	_, res, _, err := rebuild(cmd)
	if err != nil {
		return err
	}
	if out == "" {
		return export.WriteEphemeris(os.Stdout, res, step)
	}
	return writeFile(out, func(f *os.File) error {
		return export.WriteEphemeris(f, res, step)
	})
}

func exportSVG(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	_, res, _, err := rebuild(cmd)
	if err != nil {
		return err
	}
	if out == "" {
		return export.WriteOrbitMap(os.Stdout, res, width, height)
	}
	return writeFile(out, func(f *os.File) error {
		return export.WriteOrbitMap(f, res, width, height)
	})
}
