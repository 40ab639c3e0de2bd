package experiment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/san-kum/isingsim/internal/config"
	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/sim"
)

type Experiment struct {
	cfg       config.Config
	registry  *Registry
	logger    *zap.Logger
	simulator *sim.Simulator
	lattice   *ising.Lattice
}

func New(cfg config.Config, logger *zap.Logger) *Experiment {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Experiment{
		cfg:      cfg,
		registry: NewRegistry(),
		logger:   logger,
	}
}

// Setup validates the configuration, then builds the lattice from the
// configured seed and a simulator with the default metrics.
func (e *Experiment) Setup() error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	e.warnIgnored()

	mask, err := e.cfg.Mask()
	if err != nil {
		return err
	}
	ham, err := e.registry.GetHamiltonian(e.cfg.HamiltonianName(), e.cfg.Coupling, e.cfg.Field)
	if err != nil {
		return err
	}

	e.lattice, err = ising.New(e.cfg.Size, mask, ising.NewSource(e.cfg.Seed))
	if err != nil {
		return err
	}

	opts := []sim.Option{sim.WithLogger(e.logger)}
	if !e.cfg.Snapshots {
		opts = append(opts, sim.WithoutSnapshots())
	}
	e.simulator = sim.New(ham, opts...)
	for _, m := range e.registry.DefaultMetrics(&e.cfg, e.lattice.Len()) {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, e.lattice, e.cfg.Params())
}

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}

func (e *Experiment) Lattice() *ising.Lattice { return e.lattice }
func (e *Experiment) Config() config.Config   { return e.cfg }

// Ensemble runs replicas of the configured experiment with seeds cfg.Seed,
// cfg.Seed+1, ...
func (e *Experiment) Ensemble(ctx context.Context, replicas int) ([]*sim.Result, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	e.warnIgnored()
	mask, err := e.cfg.Mask()
	if err != nil {
		return nil, err
	}

	ham, err := e.registry.GetHamiltonian(e.cfg.HamiltonianName(), e.cfg.Coupling, e.cfg.Field)
	if err != nil {
		return nil, err
	}

	newLattice := func(seed int64) (*ising.Lattice, error) {
		return ising.New(e.cfg.Size, mask, ising.NewSource(seed))
	}
	newSim := func(l *ising.Lattice) *sim.Simulator {
		s := sim.New(ham, sim.WithLogger(e.logger), sim.WithoutSnapshots())
		for _, m := range e.registry.DefaultMetrics(&e.cfg, l.Len()) {
			s.AddMetric(m)
		}
		return s
	}

	return sim.NewEnsemble(newSim, newLattice, replicas, e.cfg.Seed).Run(ctx, e.cfg.Params())
}

func (e *Experiment) warnIgnored() {
	if ignored := e.cfg.IgnoredByDynamics(); len(ignored) > 0 {
		e.logger.Warn("parameters enter the recorded energy but not the flip cost",
			zap.String("hamiltonian", e.cfg.HamiltonianName()),
			zap.Strings("params", ignored))
	}
}
