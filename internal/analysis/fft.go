package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns |X[k]| for the lower half of the spectrum of data.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	freq := fft.FFTReal(data)
	ps := make([]float64, len(freq)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(freq[i])
	}

	return ps
}

// DominantPeriod returns the period, in samples, of the strongest non-zero
// frequency of series after removing its mean. It reports false for series
// shorter than four samples or with no variation.
func DominantPeriod(series []float64) (float64, bool) {
	n := len(series)
	if n < 4 {
		return 0, false
	}
	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range series {
		centered[i] = v - mean
	}
	ps := PowerSpectrum(centered)

	peak := 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > ps[peak] {
			peak = k
		}
	}
	if peak == 0 || ps[peak] < 1e-12 {
		return 0, false
	}
	return float64(n) / float64(peak), true
}

// Autocorrelation returns the normalized autocorrelation rho[k] of series for
// k in [0, len(series)), so rho[0] == 1. A constant series yields rho[k] == 0
// for every k > 0.
func Autocorrelation(series []float64) []float64 {
	n := len(series)
	if n == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)

	// Pad to at least 2n so the circular correlation equals the linear one.
	buf := make([]float64, nextPow2(2*n))
	for i, v := range series {
		buf[i] = v - mean
	}

	freq := fft.FFTReal(buf)
	for i, v := range freq {
		a := cmplx.Abs(v)
		freq[i] = complex(a*a, 0)
	}
	acf := fft.IFFT(freq)

	rho := make([]float64, n)
	rho[0] = 1
	c0 := real(acf[0])
	if c0 <= 0 {
		return rho
	}
	for k := 1; k < n; k++ {
		rho[k] = real(acf[k]) / c0
	}
	return rho
}

// DefaultWindow is the usual window factor for IntegratedAutocorrTime.
const DefaultWindow = 5.0

// IntegratedAutocorrTime estimates tau = 1 + 2*sum(rho[k]) using the
// smallest window M with M >= c*tau(M).
func IntegratedAutocorrTime(series []float64, c float64) float64 {
	rho := Autocorrelation(series)
	if len(rho) == 0 {
		return 0
	}

	tau := 1.0
	for m := 1; m < len(rho); m++ {
		tau += 2 * rho[m]
		if float64(m) >= c*tau {
			break
		}
	}
	return tau
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
