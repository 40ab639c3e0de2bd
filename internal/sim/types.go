package sim

import (
	"math"

	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/metrics"
)

// Params is immutable for the lifetime of one run.
type Params struct {
	Temperature float64
	Coupling    float64
	Field       float64
	Steps       int
	// CaptureRate records observables and a snapshot after every sweep whose
	// 0-based index is a multiple of it.
	CaptureRate int
}

func DefaultParams() Params {
	return Params{
		Temperature: 2.5,
		Coupling:    1.0,
		Field:       0.0,
		Steps:       100,
		CaptureRate: 2,
	}
}

// Validate reports the first offending field as an *ising.ParameterError.
func (p Params) Validate() error {
	if math.IsNaN(p.Temperature) || p.Temperature <= 0 {
		return ising.InvalidParameter("temperature", p.Temperature, "must be positive")
	}
	if p.Steps < 0 {
		return ising.InvalidParameter("steps", p.Steps, "must not be negative")
	}
	if p.CaptureRate <= 0 {
		return ising.InvalidParameter("capture_rate", p.CaptureRate, "must be positive")
	}
	return nil
}

// State is the lifecycle of a Simulator.
type State int

const (
	Idle State = iota
	Running
	Completed
	// Aborted marks a run stopped by cancellation or a numerical anomaly.
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Metric accumulates a scalar summary over captured observations.
type Metric interface {
	Name() string
	Observe(o metrics.Observation)
	Value() float64
	Reset()
}

// Observer is notified after every completed sweep.
type Observer interface {
	OnSweep(step int, l ising.Configuration)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(step int, l ising.Configuration)

func (f ObserverFunc) OnSweep(step int, l ising.Configuration) { f(step, l) }

type Result struct {
	// Lattice is the run's lattice in its final state.
	Lattice     *ising.Lattice
	Observables []metrics.Observation
	Snapshots   []ising.Snapshot
	Metrics     map[string]float64
	// EnergyParams are the parameters of the energy model that drove the flips.
	EnergyParams map[string]float64
	SweepsDone   int
	Attempts     int64
	Accepted     int64
	State        State
}

// AcceptanceRate is the fraction of flip attempts that were accepted.
func (r *Result) AcceptanceRate() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Accepted) / float64(r.Attempts)
}
