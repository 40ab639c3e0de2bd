package sim

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/metrics"
	"github.com/san-kum/isingsim/internal/physics"
)

type Simulator struct {
	ham         physics.Hamiltonian
	metrics     []Metric
	observers   []Observer
	logger      *zap.Logger
	snapshots   bool
	observables bool
	state       State
}

type Option func(*Simulator)

func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithoutSnapshots stops the run from copying the lattice at capture points.
func WithoutSnapshots() Option {
	return func(s *Simulator) { s.snapshots = false }
}

// WithoutObservables stops the run from recording the observable series.
// Registered metrics still see every capture.
func WithoutObservables() Option {
	return func(s *Simulator) { s.observables = false }
}

func New(ham physics.Hamiltonian, opts ...Option) *Simulator {
	s := &Simulator{
		ham:         ham,
		metrics:     make([]Metric, 0),
		observers:   make([]Observer, 0),
		logger:      zap.NewNop(),
		snapshots:   true,
		observables: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) State() State                     { return s.state }
func (s *Simulator) Hamiltonian() physics.Hamiltonian { return s.ham }

// Run performs p.Steps sweeps on l in place. Parameters are validated before
// the lattice is touched. Cancellation is checked between sweeps only; on
// cancellation or a numerical anomaly the partial result is returned along
// with the error.
func (s *Simulator) Run(ctx context.Context, l *ising.Lattice, p Params) (*Result, error) {
	if l == nil {
		return nil, ising.InvalidParameter("lattice", nil, "no lattice given")
	}
	if s.ham == nil {
		return nil, ising.InvalidParameter("hamiltonian", nil, "no energy model given")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	captures := 0
	if p.Steps > 0 {
		captures = (p.Steps-1)/p.CaptureRate + 1
	}
	result := &Result{
		Lattice:      l,
		Observables:  make([]metrics.Observation, 0, captures),
		Snapshots:    make([]ising.Snapshot, 0),
		Metrics:      make(map[string]float64),
		EnergyParams: s.ham.GetParams(),
	}
	if s.snapshots {
		result.Snapshots = make([]ising.Snapshot, 0, captures)
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.state = Running
	s.logger.Debug("run started",
		zap.String("hamiltonian", s.ham.Name()),
		zap.Int("size", l.Size()),
		zap.Int("dim", l.Dim()),
		zap.Int("sites", l.Len()),
		zap.Float64("temperature", p.Temperature),
		zap.Int("steps", p.Steps))

	tracker := metrics.NewTracker(p.Coupling, p.Field)
	track := s.observables || len(s.metrics) > 0

	for step := 0; step < p.Steps; step++ {
		select {
		case <-ctx.Done():
			s.abort(result, step, ctx.Err())
			return result, ctx.Err()
		default:
		}

		attempts, accepted, err := s.sweep(l, p.Temperature, step)
		result.Attempts += int64(attempts)
		result.Accepted += int64(accepted)
		if err != nil {
			s.abort(result, step, err)
			return result, err
		}
		result.SweepsDone++

		if step%p.CaptureRate == 0 {
			if s.snapshots {
				result.Snapshots = append(result.Snapshots, l.Snapshot(step))
			}
			if track {
				obs := tracker.Observe(step, l)
				if s.observables {
					result.Observables = append(result.Observables, obs)
				}
				for _, m := range s.metrics {
					m.Observe(obs)
				}
			}
		}

		for _, o := range s.observers {
			o.OnSweep(step, l)
		}
	}

	s.collect(result)
	s.state = Completed
	result.State = Completed
	s.logger.Info("run completed",
		zap.Int("sweeps", result.SweepsDone),
		zap.Int("captures", len(result.Observables)),
		zap.Float64("acceptance", result.AcceptanceRate()))

	return result, nil
}

// Sweep performs one sweep on l outside of Run: l.Len() flip attempts.
func (s *Simulator) Sweep(l *ising.Lattice, temperature float64) (attempts, accepted int, err error) {
	if math.IsNaN(temperature) || temperature <= 0 {
		return 0, 0, ising.InvalidParameter("temperature", temperature, "must be positive")
	}
	return s.sweep(l, temperature, 0)
}

func (s *Simulator) sweep(l *ising.Lattice, temperature float64, step int) (attempts, accepted int, err error) {
	src := l.Source()
	n := l.Len()
	for attempts < n {
		c := l.RandomSite()
		attempts++

		dE := s.ham.DeltaE(l, c)
		prob := Probability(dE, temperature)
		if math.IsNaN(prob) {
			return attempts, accepted, &ising.NumericalError{Step: step, Site: c, DeltaE: dE, Probability: prob}
		}
		if Accept(dE, prob, src.Float64) {
			l.Flip(c)
			accepted++
		}
	}
	return attempts, accepted, nil
}

func (s *Simulator) collect(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (s *Simulator) abort(result *Result, step int, err error) {
	s.collect(result)
	s.state = Aborted
	result.State = Aborted
	s.logger.Warn("run aborted",
		zap.Int("step", step),
		zap.Int("sweeps", result.SweepsDone),
		zap.Error(err))
}
