package analysis

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/isingsim/internal/config"
	"github.com/san-kum/isingsim/internal/experiment"
	"github.com/san-kum/isingsim/internal/ising"
	"github.com/san-kum/isingsim/internal/metrics"
)

// ScanPoint summarizes one run of a temperature scan.
type ScanPoint struct {
	Temperature          float64 `json:"temperature"`
	MeanEnergy           float64 `json:"mean_energy"`
	MeanAbsMagnetization float64 `json:"mean_abs_magnetization"`
	SpecificHeat         float64 `json:"specific_heat"`
	Susceptibility       float64 `json:"susceptibility"`
	AcceptanceRate       float64 `json:"acceptance_rate"`
	// Autocorrelation times are in captures, not sweeps.
	EnergyAutocorrTime        float64 `json:"energy_autocorr_time"`
	MagnetizationAutocorrTime float64 `json:"magnetization_autocorr_time"`
}

// Temperatures returns steps evenly spaced values from min to max inclusive.
func Temperatures(min, max float64, steps int) ([]float64, error) {
	if steps < 1 {
		return nil, ising.InvalidParameter("steps", steps, "must be positive")
	}
	if steps == 1 {
		return []float64{min}, nil
	}
	step := (max - min) / float64(steps-1)
	temps := make([]float64, steps)
	for i := range temps {
		temps[i] = min + float64(i)*step
	}
	return temps, nil
}

// TemperatureScan runs base once per temperature, concurrently, and returns
// the points in the order of temps. Every run uses base.Seed. The first
// failing run cancels the others.
func TemperatureScan(ctx context.Context, base config.Config, temps []float64, logger *zap.Logger) ([]ScanPoint, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	points := make([]ScanPoint, len(temps))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, t := range temps {
		i, t := i, t
		g.Go(func() error {
			cfg := base
			cfg.Temperature = t
			cfg.Snapshots = false

			exp := experiment.New(cfg, logger.With(zap.Float64("temperature", t)))
			if err := exp.Setup(); err != nil {
				return fmt.Errorf("temperature %g: %w", t, err)
			}
			result, err := exp.Run(ctx)
			if err != nil {
				return fmt.Errorf("temperature %g: %w", t, err)
			}

			energies, mags := Series(result.Observables, cfg.BurnIn)

			points[i] = ScanPoint{
				Temperature:               t,
				MeanEnergy:                result.Metrics["mean_energy"],
				MeanAbsMagnetization:      result.Metrics["mean_abs_magnetization"],
				SpecificHeat:              result.Metrics["specific_heat"],
				Susceptibility:            result.Metrics["susceptibility"],
				AcceptanceRate:            result.AcceptanceRate(),
				EnergyAutocorrTime:        IntegratedAutocorrTime(energies, DefaultWindow),
				MagnetizationAutocorrTime: IntegratedAutocorrTime(mags, DefaultWindow),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// Series splits observations at or after burnIn into energy and |m| series.
func Series(obs []metrics.Observation, burnIn int) (energies, mags []float64) {
	energies = make([]float64, 0, len(obs))
	mags = make([]float64, 0, len(obs))
	for _, o := range obs {
		if o.Step < burnIn {
			continue
		}
		energies = append(energies, o.Energy)
		mags = append(mags, math.Abs(o.Magnetization))
	}
	return energies, mags
}

// PeakSpecificHeat returns the point with the largest specific heat, the
// usual finite-size estimate of the critical temperature.
func PeakSpecificHeat(points []ScanPoint) (ScanPoint, bool) {
	if len(points) == 0 {
		return ScanPoint{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.SpecificHeat > best.SpecificHeat {
			best = p
		}
	}
	return best, true
}
