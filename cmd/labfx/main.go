package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"github.com/joho/godotenv"
	"github.com/san-kum/labfx/internal/config"
	"github.com/san-kum/labfx/internal/export"
	"github.com/san-kum/labfx/internal/flourish"
	"github.com/san-kum/labfx/internal/logger"
	"github.com/san-kum/labfx/internal/metrics"
	"github.com/san-kum/labfx/internal/microscope"
	"github.com/san-kum/labfx/internal/random"
	"github.com/san-kum/labfx/internal/scene"
	"github.com/san-kum/labfx/internal/signal"
	"github.com/san-kum/labfx/internal/storage"
	"github.com/san-kum/labfx/internal/timeline"
	"github.com/san-kum/labfx/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	logLevel   string
	configFile string
	preset     string
	seed       int64
	format     string
	store      bool
	outFile    string
	theme      string
	svgWidth   int
	svgHeight  int
	particles  int
	cycle      float64
)

// loadEnv reads LABFX_* defaults from LABFX_ENV_FILE, or .env in the
// working directory. A missing file is not an error.
func loadEnv() error {
	envfile := os.Getenv("LABFX_ENV_FILE")
	if envfile == "" {
		envfile = ".env"
	}
	if err := godotenv.Load(envfile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", envfile, err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// main registers the labfx commands and runs the root command, exiting 1
// on error.
func main() {
	envErr := loadEnv()

	rootCmd := &cobra.Command{
		Use:          "labfx",
		Short:        "decorative lab scene generator",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetDefault(logger.NewText(logLevel, os.Stderr))
			if envErr != nil {
				logger.Warn("env file ignored", "error", envErr)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", envOr("LABFX_DATA", ".labfx"), "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", envOr("LABFX_LOG_LEVEL", "warn"), "log level (debug, info, warn, error)")

	addSceneFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&configFile, "config", envOr("LABFX_CONFIG", ""), "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
		cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
		cmd.Flags().IntVar(&particles, "particles", flourish.DefaultParticles, "particle count")
		cmd.Flags().Float64Var(&cycle, "cycle", config.DefaultSignalCycle, "signal travel time in seconds")
		cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "terminal theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	}

	renderCmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "render a scene",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderScene,
	}
	addSceneFlags(renderCmd)
	renderCmd.Flags().StringVar(&format, "format", "html", "output format (css, html, svg, json)")
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "", "write output to file instead of stdout")
	renderCmd.Flags().BoolVar(&store, "store", false, "save every format to the data directory")
	renderCmd.Flags().IntVar(&svgWidth, "width", 400, "svg width")
	renderCmd.Flags().IntVar(&svgHeight, "height", 400, "svg height")

	linksCmd := &cobra.Command{
		Use:   "links",
		Short: "print organelle signal links",
		Args:  cobra.NoArgs,
		RunE:  printLinks,
	}
	addSceneFlags(linksCmd)

	previewCmd := &cobra.Command{
		Use:   "preview [scene]",
		Short: "play a scene in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  previewScene,
	}
	addSceneFlags(previewCmd)

	microscopeCmd := &cobra.Command{
		Use:   "microscope",
		Short: "interactive virtual microscope",
		Args:  cobra.NoArgs,
		RunE:  runMicroscope,
	}
	addSceneFlags(microscopeCmd)

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list scenes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			r := flourish.NewRegistry()
			for _, name := range r.ListScenes() {
				fmt.Printf("  %-12s %s\n", name, r.Describe(name))
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scene]",
		Short: "list available presets for a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				color.Yellow("no presets for scene: %s", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	timelinesCmd := &cobra.Command{
		Use:   "timelines",
		Short: "print the keyframe stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			css, err := export.Stylesheet(timeline.Names())
			if err != nil {
				return err
			}
			fmt.Print(css)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored renders",
		Args:  cobra.NoArgs,
		RunE:  listRenders,
	}

	rootCmd.AddCommand(renderCmd, linksCmd, previewCmd, microscopeCmd, scenesCmd, presetsCmd, timelinesCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file and explicitly set flags, in
// that order. An empty sceneName keeps whatever scene the config names.
func resolveConfig(cmd *cobra.Command, sceneName string) (*config.Config, error) {
	layers := config.Layers{
		Scene:        sceneName,
		Preset:       preset,
		File:         configFile,
		FallbackSeed: seed,
	}
	if cmd.Flags().Changed("seed") {
		layers.Overrides.Seed = &seed
	}
	if cmd.Flags().Changed("particles") {
		layers.Overrides.Particles = &particles
	}
	if cmd.Flags().Changed("cycle") {
		layers.Overrides.SignalCycle = &cycle
	}
	if cmd.Flags().Changed("theme") {
		layers.Overrides.Theme = &theme
	}
	return config.Resolve(layers)
}

// applyScope shows the microscope slide through the configured controls.
// Other scenes pass through unchanged.
func applyScope(cfg *config.Config, s scene.Scene) scene.Scene {
	if s.Name != "microscope" {
		return s
	}
	return newScope(cfg).Apply(s, time.Now())
}

func newScope(cfg *config.Config) *microscope.Microscope {
	scope := microscope.New(cfg.Microscope.Magnification, cfg.Microscope.Focus)
	if cfg.Microscope.Stained {
		scope.ToggleStain()
	}
	return scope
}

func sceneArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func buildScene(cmd *cobra.Command, sceneName string) (*config.Config, scene.Scene, error) {
	cfg, err := resolveConfig(cmd, sceneName)
	if err != nil {
		return nil, scene.Scene{}, err
	}

	registry := flourish.NewRegistry()
	s, err := registry.Build(cfg.Scene, random.New(cfg.Seed), cfg.Options())
	if err != nil {
		return nil, scene.Scene{}, fmt.Errorf("%w (available: %v)", err, registry.ListScenes())
	}
	logger.Info("scene built", "scene", s.Name, "seed", cfg.Seed, "elements", len(s.Elements))
	return cfg, s, nil
}

func renderFormat(s scene.Scene, f string) ([]byte, error) {
	switch f {
	case "css":
		css, err := export.Stylesheet(s.Timelines())
		return []byte(css), err
	case "html":
		doc, err := export.Document(s)
		return []byte(doc), err
	case "svg":
		return []byte(export.SVG(s, svgWidth, svgHeight)), nil
	case "json":
		var sb strings.Builder
		err := export.JSON(&sb, s)
		return []byte(sb.String()), err
	default:
		return nil, fmt.Errorf("unknown format: %s (available: css, html, svg, json)", f)
	}
}

func renderScene(cmd *cobra.Command, args []string) error {
	cfg, s, err := buildScene(cmd, sceneArg(args))
	if err != nil {
		return err
	}
	s = applyScope(cfg, s)

	if !store {
		out, err := renderFormat(s, format)
		if err != nil {
			return err
		}
		if outFile != "" {
			if err := os.WriteFile(outFile, out, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}
			logger.Info("render written", "path", outFile, "format", format)
			return nil
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	artifacts := make(map[string][]byte)
	for _, f := range []string{"css", "html", "svg", "json"} {
		out, err := renderFormat(s, f)
		if err != nil {
			return err
		}
		artifacts["scene."+f] = out
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	renderID, err := st.Save(s, cfg.Seed, artifacts)
	if err != nil {
		return err
	}
	logger.Info("render stored", "id", renderID, "dir", dataDir)

	color.Green("render id: %s", renderID)
	fmt.Printf("elements: %d\n", len(s.Elements))
	fmt.Printf("timelines: %s\n", strings.Join(s.Timelines(), ", "))
	return nil
}

func printLinks(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "organelles")
	if err != nil {
		return err
	}

	orgs := cfg.Organelles
	if orgs == nil {
		orgs = flourish.DefaultOrganelles()
	}
	links := signal.LinksWithCycle(orgs, random.New(cfg.Seed), cfg.Options().SignalCycle)
	if len(links) == 0 {
		color.Yellow("no links: need at least two organelles")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFROM\tTO\tLENGTH\tANGLE\tDELAY")
	lengths := make([]float64, 0, len(links))
	for _, l := range links {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f%%\t%.1f°\t%.2fs\n",
			l.ID, l.From, l.To, l.Line.Length, l.Line.AngleDegrees, l.Marker.Delay.Seconds())
		lengths = append(lengths, l.Line.Length)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	for _, r := range metrics.Collect(links, metrics.Default()...) {
		fmt.Printf("  %-14s %.3f\n", r.Name, r.Value)
	}

	if len(lengths) > 1 {
		graph := asciigraph.Plot(lengths,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("link length (% of container) by pair"),
		)
		fmt.Println()
		fmt.Println(graph)
	}
	return nil
}

func previewScene(cmd *cobra.Command, args []string) error {
	cfg, s, err := buildScene(cmd, sceneArg(args))
	if err != nil {
		return err
	}
	s = applyScope(cfg, s)
	return viz.RunPreview(s, viz.GetTheme(cfg.Theme))
}

func runMicroscope(cmd *cobra.Command, args []string) error {
	cfg, s, err := buildScene(cmd, "microscope")
	if err != nil {
		return err
	}
	return viz.RunMicroscope(newScope(cfg), s, viz.GetTheme(cfg.Theme))
}

func listRenders(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	renders, err := st.List()
	if err != nil {
		return err
	}
	if len(renders) == 0 {
		color.Yellow("no renders found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tSEED\tTIMESTAMP\tARTIFACTS")
	for _, r := range renders {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			r.ID, r.Scene, r.Seed, r.Timestamp.Format("2006-01-02 15:04:05"), strings.Join(r.Artifacts, ","))
	}
	return w.Flush()
}
