package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/physics"
	"github.com/san-kum/isingsim/internal/sim"
)

const (
	ModelGrid  = "grid"
	ModelShell = "shell"
)

const (
	DefaultSize        = 100
	DefaultDim         = 2
	DefaultRadius      = 20
	DefaultTemperature = 2.5
	DefaultCoupling    = 1.0
	DefaultSteps       = 100
	DefaultCaptureRate = 2
)

type Config struct {
	Model       string  `yaml:"model"`
	Hamiltonian string  `yaml:"hamiltonian,omitempty"`
	Size        int     `yaml:"size"`
	Dim         int     `yaml:"dim"`
	Radius      int     `yaml:"radius,omitempty"`
	Temperature float64 `yaml:"temperature"`
	Coupling    float64 `yaml:"coupling"`
	Field       float64 `yaml:"field"`
	Steps       int     `yaml:"steps"`
	CaptureRate int     `yaml:"capture_rate"`
	BurnIn      int     `yaml:"burn_in"`
	Seed        int64   `yaml:"seed"`
	Snapshots   bool    `yaml:"snapshots"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:       ModelGrid,
		Size:        DefaultSize,
		Dim:         DefaultDim,
		Temperature: DefaultTemperature,
		Coupling:    DefaultCoupling,
		Steps:       DefaultSteps,
		CaptureRate: DefaultCaptureRate,
		Snapshots:   true,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, *DefaultConfig())
}

// LoadOver reads path on top of base; keys absent from the file keep the
// base value.
func LoadOver(path string, base Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// HamiltonianName resolves the energy model, defaulting per model: the grid
// uses the nearest-neighbor form, the shell its unit-coupling form.
//
// The recorded energy always uses Coupling and Field, whichever model drives
// the flips; see IgnoredByDynamics.
func (c *Config) HamiltonianName() string {
	if c.Hamiltonian != "" {
		return c.Hamiltonian
	}
	if c.Model == ModelShell {
		return physics.NameUnitCoupling
	}
	return physics.NameNearestNeighbor
}

// IgnoredByDynamics names the parameters that enter the recorded energy but
// not the flip cost of the resolved model: the unit-coupling model fixes J at
// 1 and has no field term.
func (c *Config) IgnoredByDynamics() []string {
	if c.HamiltonianName() != physics.NameUnitCoupling {
		return nil
	}
	var ignored []string
	if c.Coupling != 1 {
		ignored = append(ignored, "coupling")
	}
	if c.Field != 0 {
		ignored = append(ignored, "field")
	}
	return ignored
}

// Models lists the model names Mask understands.
func Models() []string { return []string{ModelGrid, ModelShell} }

// Mask builds the boundary strategy for the configured model. It is the only
// place model names map to masks.
func (c *Config) Mask() (ising.Mask, error) {
	switch c.Model {
	case ModelGrid:
		return ising.FullGrid{D: c.Dim}, nil
	case ModelShell:
		return ising.Shell{Radius: c.Radius}, nil
	default:
		return nil, ising.InvalidParameter("model", c.Model, fmt.Sprintf("unknown model (available: %v)", Models()))
	}
}

func (c *Config) Params() sim.Params {
	return sim.Params{
		Temperature: c.Temperature,
		Coupling:    c.Coupling,
		Field:       c.Field,
		Steps:       c.Steps,
		CaptureRate: c.CaptureRate,
	}
}

// Validate checks every field without building a lattice.
func (c *Config) Validate() error {
	mask, err := c.Mask()
	if err != nil {
		return err
	}
	if c.Size <= 0 {
		return ising.InvalidParameter("size", c.Size, "must be positive")
	}
	if err := mask.Validate(c.Size); err != nil {
		return err
	}
	if _, err := physics.New(c.HamiltonianName(), c.Coupling, c.Field); err != nil {
		return err
	}
	if c.BurnIn < 0 {
		return ising.InvalidParameter("burn_in", c.BurnIn, "must not be negative")
	}
	return c.Params().Validate()
}
