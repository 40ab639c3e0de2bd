// Package analysis post-processes Monte Carlo runs.
//
//   - [Autocorrelation] and [IntegratedAutocorrTime]: FFT-based correlation
//     of an observable series, used to judge how many captures are
//     effectively independent
//   - [TemperatureScan]: one run per temperature, run concurrently, reduced
//     to the thermodynamic summaries in [ScanPoint]
//
// # Locating the transition
//
// The specific heat and susceptibility peak near the critical temperature;
// for the 2D nearest-neighbour model with J = 1 that is about 2.269:
//
//	temps, _ := analysis.Temperatures(1.5, 3.5, 21)
//	points, err := analysis.TemperatureScan(ctx, cfg, temps, logger)
//	peak, _ := analysis.PeakSpecificHeat(points)
package analysis
