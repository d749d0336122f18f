package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rootlab/internal/config"
	"github.com/san-kum/rootlab/internal/demo"
	"github.com/san-kum/rootlab/internal/export"
	"github.com/san-kum/rootlab/internal/viz"
)

var (
	configFile string
	preset     string
	headless   bool
	exportDir  string
	theme      string
	samples    int
	margin     float64
	summary    bool
)

// main registers the rootlab commands and exits with status 1 when a
// command fails, including on invalid input.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "rootlab",
		Short:        "root finding demo for f(x) = x³ - x - 2",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runDemo,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&preset, "preset", "", "use preset plot layout")
	flags.BoolVar(&headless, "headless", false, "print charts inline instead of opening the viewer")
	flags.StringVar(&exportDir, "export", "", "also write PNG and SVG charts to this directory")
	flags.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	flags.IntVar(&samples, "samples", config.DefaultSamples, "points sampled per chart")
	flags.Float64Var(&margin, "margin", config.DefaultMargin, "padding around the plotted inputs and root")
	rootCmd.Flags().BoolVar(&summary, "summary", true, "print a summary table at the end")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list plot layout presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %dx%d, %d samples, theme %s\n", name, p.Width, p.Height, p.Samples, p.Theme)
			}
		},
	}

	rootCmd.AddCommand(configCmd, themesCmd, presetsCmd)
	return rootCmd
}

// loadConfig layers defaults, preset, config file and flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
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
	if flags.Changed("theme") {
		cfg.Plot.Theme = theme
	}
	if flags.Changed("samples") {
		cfg.Plot.Samples = samples
	}
	if flags.Changed("margin") {
		cfg.Plot.Margin = margin
	}
	if flags.Changed("headless") {
		cfg.Plot.Headless = headless
	}
	if flags.Changed("export") {
		cfg.Plot.Export = exportDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	runner := demo.NewRunner(out, newViewer(cfg, in, out), cfg)

	if cfg.Plot.Export != "" {
		exp := export.New(cfg.Plot.Export, cfg.Plot.ExportWidth, cfg.Plot.ExportHeight)
		if err := exp.Init(); err != nil {
			return err
		}
		runner.Exporter = exp
	}

	outcomes, err := runner.Session(in)
	if err != nil {
		return err
	}

	if summary {
		fmt.Fprintln(out)
		return demo.Summary(out, outcomes)
	}
	return nil
}

// newViewer opens the blocking full-screen viewer only when both ends are
// terminals; otherwise charts are printed inline.
func newViewer(cfg *config.Config, in io.Reader, out io.Writer) viz.Viewer {
	if cfg.Plot.Headless || !isTerminal(in) || !isTerminal(out) {
		return viz.NewInlineViewer(out, cfg.Plot.Width-12, cfg.Plot.Height-6)
	}
	return viz.NewTermViewer(viz.GetTheme(cfg.Plot.Theme), in, out)
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(f.Fd())
}
