package experiment

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/san-kum/isingsim/internal/config"
	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/physics"
	"github.com/san-kum/isingsim/internal/sim"
)

func smallGrid() config.Config {
	cfg := config.DefaultConfig()
	cfg.Size = 8
	cfg.Steps = 10
	cfg.CaptureRate = 2
	cfg.Seed = 42
	return *cfg
}

func TestExperimentRun(t *testing.T) {
	exp := New(smallGrid(), nil)
	if err := exp.Setup(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(result.Observables) != 5 || len(result.Snapshots) != 5 {
		t.Errorf("expected 5 captures, got %d/%d", len(result.Observables), len(result.Snapshots))
	}
	for _, name := range []string{"mean_energy", "mean_abs_magnetization", "specific_heat", "susceptibility"} {
		if _, ok := result.Metrics[name]; !ok {
			t.Errorf("metric %s missing", name)
		}
	}
	if exp.GetSimulator().Hamiltonian().Name() != physics.NameNearestNeighbor {
		t.Errorf("unexpected hamiltonian %s", exp.GetSimulator().Hamiltonian().Name())
	}
}

func TestExperimentShell(t *testing.T) {
	cfg := smallGrid()
	cfg.Model = config.ModelShell
	cfg.Size = 12
	cfg.Radius = 4
	cfg.Snapshots = false

	exp := New(cfg, nil)
	if err := exp.Setup(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if exp.GetSimulator().Hamiltonian().Name() != physics.NameUnitCoupling {
		t.Errorf("shell should default to unit coupling, got %s", exp.GetSimulator().Hamiltonian().Name())
	}
	if exp.Lattice().Dim() != 3 {
		t.Errorf("expected 3D lattice, got %dD", exp.Lattice().Dim())
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Snapshots) != 0 {
		t.Errorf("snapshots disabled, got %d", len(result.Snapshots))
	}
}

func TestExperimentNotSetup(t *testing.T) {
	if _, err := New(smallGrid(), nil).Run(context.Background()); err == nil {
		t.Error("expected error when running without setup")
	}
}

func TestExperimentInvalid(t *testing.T) {
	cfg := smallGrid()
	cfg.Temperature = 0

	err := New(cfg, nil).Setup()
	if !errors.Is(err, ising.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestExperimentEnsemble(t *testing.T) {
	exp := New(smallGrid(), nil)
	results, err := exp.Ensemble(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.State != sim.Completed {
			t.Errorf("replica %d state %v", i, r.State)
		}
		if len(r.Snapshots) != 0 {
			t.Errorf("replica %d kept snapshots", i)
		}
	}

	single := New(smallGrid(), nil)
	if err := single.Setup(); err != nil {
		t.Fatal(err)
	}
	res, err := single.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Metrics["mean_energy"] != results[0].Metrics["mean_energy"] {
		t.Errorf("replica 0 should match the seeded run: %v vs %v", results[0].Metrics["mean_energy"], res.Metrics["mean_energy"])
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	models := r.ListModels()
	if len(models) != 2 || models[0] != config.ModelGrid || models[1] != config.ModelShell {
		t.Errorf("unexpected models %v", models)
	}

	if _, err := r.GetHamiltonian("xy", 1, 0); !errors.Is(err, ising.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}

	for _, name := range physics.Names() {
		if _, err := r.GetHamiltonian(name, 1, 0); err != nil {
			t.Errorf("hamiltonian %s: %v", name, err)
		}
	}
}

func TestSetupWarnsOnIgnoredParams(t *testing.T) {
	cfg := smallGrid()
	cfg.Model = config.ModelShell
	cfg.Radius = 3
	cfg.Field = 0.5

	core, logs := observer.New(zap.WarnLevel)
	exp := New(cfg, zap.New(core))
	if err := exp.Setup(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	entries := logs.FilterField(zap.Strings("params", []string{"field"})).All()
	if len(entries) != 1 {
		t.Fatalf("expected one warning for field, got %d", logs.Len())
	}

	core, logs = observer.New(zap.WarnLevel)
	if err := New(smallGrid(), zap.New(core)).Setup(); err != nil {
		t.Fatal(err)
	}
	if logs.Len() != 0 {
		t.Errorf("grid run should not warn, got %d entries", logs.Len())
	}
}
