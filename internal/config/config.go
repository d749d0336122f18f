package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rootlab/internal/optimize"
)

const (
	DefaultSamples    = 400
	DefaultMargin     = 0.5
	DefaultWidth      = 100
	DefaultHeight     = 24
	DefaultTheme      = "minimal"
	DefaultOverviewLo = 0.0
	DefaultOverviewHi = 3.0
	DefaultPNGWidth   = 8.0
	DefaultPNGHeight  = 5.0
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Plot     PlotConfig     `yaml:"plot"`
	Overview OverviewConfig `yaml:"overview"`
	Solvers  SolverConfig   `yaml:"solvers"`
}

type PlotConfig struct {
	Samples  int     `yaml:"samples"`
	Margin   float64 `yaml:"margin"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Theme    string  `yaml:"theme"`
	Headless bool    `yaml:"headless"`
	Export   string  `yaml:"export_dir"`
	// PNG size in inches
	ExportWidth  float64 `yaml:"export_width"`
	ExportHeight float64 `yaml:"export_height"`
}

type OverviewConfig struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

type SolverConfig struct {
	Bisect BisectConfig `yaml:"bisect"`
	Newton NewtonConfig `yaml:"newton"`
	Solve  SolveConfig  `yaml:"solve"`
}

type BisectConfig struct {
	XTol    float64 `yaml:"xtol"`
	RTol    float64 `yaml:"rtol"`
	MaxIter int     `yaml:"maxiter"`
}

type NewtonConfig struct {
	Tol     float64 `yaml:"tol"`
	RTol    float64 `yaml:"rtol"`
	MaxIter int     `yaml:"maxiter"`
}

type SolveConfig struct {
	Tol     float64 `yaml:"tol"`
	MaxIter int     `yaml:"maxiter"`
}

func DefaultConfig() *Config {
	return &Config{
		Plot: PlotConfig{
			Samples:      DefaultSamples,
			Margin:       DefaultMargin,
			Width:        DefaultWidth,
			Height:       DefaultHeight,
			Theme:        DefaultTheme,
			ExportWidth:  DefaultPNGWidth,
			ExportHeight: DefaultPNGHeight,
		},
		Overview: OverviewConfig{
			Lo: DefaultOverviewLo,
			Hi: DefaultOverviewHi,
		},
		Solvers: SolverConfig{
			Bisect: BisectConfig{
				XTol:    optimize.DefaultBisectXTol,
				RTol:    optimize.DefaultBisectRTol,
				MaxIter: optimize.DefaultBisectMaxIter,
			},
			Newton: NewtonConfig{
				Tol:     optimize.DefaultNewtonTol,
				MaxIter: optimize.DefaultNewtonMaxIter,
			},
			Solve: SolveConfig{
				Tol:     optimize.DefaultSolveTol,
				MaxIter: optimize.DefaultSolveMaxIter,
			},
		},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Plot.Samples < 2:
		return fmt.Errorf("%w: plot.samples must be at least 2", ErrInvalidConfig)
	case c.Plot.Margin < 0:
		return fmt.Errorf("%w: plot.margin must not be negative", ErrInvalidConfig)
	case c.Plot.Width < 20 || c.Plot.Height < 8:
		return fmt.Errorf("%w: plot size %dx%d too small", ErrInvalidConfig, c.Plot.Width, c.Plot.Height)
	case c.Overview.Lo == c.Overview.Hi:
		return fmt.Errorf("%w: overview interval is empty", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) BisectSettings() *optimize.BisectSettings {
	b := c.Solvers.Bisect
	return &optimize.BisectSettings{XTol: b.XTol, RTol: b.RTol, MaxIter: b.MaxIter}
}

// NewtonSettings returns the tolerances only; the caller picks the method
// by adding Fprime or X1.
func (c *Config) NewtonSettings() optimize.NewtonSettings {
	n := c.Solvers.Newton
	return optimize.NewtonSettings{Tol: n.Tol, RTol: n.RTol, MaxIter: n.MaxIter}
}

func (c *Config) SolveSettings() *optimize.SolveSettings {
	s := c.Solvers.Solve
	return &optimize.SolveSettings{Tol: s.Tol, MaxIter: s.MaxIter}
}
