// Package analysis extracts the skip cadence from a recorded trajectory: the
// bounce pattern shows up as a dominant peak in the power spectrum of the
// height signal.
package analysis

import (
	"math"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform with the radix-2
// Cooley-Tukey recursion. The input length must be a power of two; use
// [PadPow2] first.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("analysis: fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// PadPow2 zero-pads the signal to the next power-of-two length.
func PadPow2(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)
	return padded
}

// PowerSpectrum returns the magnitude of the positive-frequency half of the
// transform.
func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}
	return ps
}

// SkipCadence estimates the dominant bounce frequency in Hz of a height
// signal sampled at sampleRate. The DC bin is ignored. Returns zero for
// signals too short to analyze.
func SkipCadence(heights []float64, sampleRate float64) float64 {
	if len(heights) < 4 || sampleRate <= 0 {
		return 0
	}

	// Remove the mean so a nonzero baseline does not leak into every bin.
	mean := 0.0
	for _, h := range heights {
		mean += h
	}
	mean /= float64(len(heights))
	centered := make([]float64, len(heights))
	for i, h := range heights {
		centered[i] = h - mean
	}

	ps := PowerSpectrum(PadPow2(centered))
	if len(ps) < 2 {
		return 0
	}

	maxIdx := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}

	n := 2 * len(ps)
	return float64(maxIdx) * sampleRate / float64(n)
}
