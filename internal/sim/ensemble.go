package sim

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/isingsim/internal/ising"
)

// LatticeFactory builds the lattice for one replica from its seed.
type LatticeFactory func(seed int64) (*ising.Lattice, error)

// SimulatorFactory builds the simulator for one replica's lattice.
type SimulatorFactory func(l *ising.Lattice) *Simulator

// Ensemble runs independent replicas with seeds seedStart, seedStart+1, ...
// Each replica gets its own Simulator, Lattice and random source.
type Ensemble struct {
	newSim     SimulatorFactory
	newLattice LatticeFactory
	numRuns    int
	seedStart  int64
	limit      int
}

func NewEnsemble(newSim SimulatorFactory, newLattice LatticeFactory, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{
		newSim:     newSim,
		newLattice: newLattice,
		numRuns:    numRuns,
		seedStart:  seedStart,
		limit:      runtime.GOMAXPROCS(0),
	}
}

// SetLimit caps the number of replicas running at once.
func (e *Ensemble) SetLimit(n int) {
	if n > 0 {
		e.limit = n
	}
}

// Run executes every replica and returns the results in seed order. On the
// first failure the remaining replicas are cancelled; results gathered so far
// are returned with the error.
func (e *Ensemble) Run(ctx context.Context, p Params) ([]*Result, error) {
	if e.numRuns <= 0 {
		return nil, ising.InvalidParameter("replicas", e.numRuns, "must be positive")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	results := make([]*Result, e.numRuns)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)

	for i := 0; i < e.numRuns; i++ {
		idx := i
		g.Go(func() error {
			l, err := e.newLattice(e.seedStart + int64(idx))
			if err != nil {
				return err
			}
			res, err := e.newSim(l).Run(gctx, l, p)
			results[idx] = res
			return err
		})
	}

	err := g.Wait()
	return results, err
}
