package sim

import "math"

// Probability is the Metropolis acceptance probability for a flip costing
// deltaE at temperature T: 1 for negative deltaE, exp(-deltaE/T) otherwise.
// T must be positive.
func Probability(deltaE, temperature float64) float64 {
	if deltaE < 0 {
		return 1
	}
	return math.Exp(-deltaE / temperature)
}

// Accept applies the Metropolis criterion for a flip costing deltaE with
// acceptance probability prob. draw supplies a uniform value in [0,1) and is
// called only when deltaE is not negative.
func Accept(deltaE, prob float64, draw func() float64) bool {
	return deltaE < 0 || draw() < prob
}
