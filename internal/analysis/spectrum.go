// SPDX-License-Identifier: MIT
/*
Package analysis computes magnitude spectra of bank entries so an
operator can see how much content sits near the source Nyquist before
deciding on a target rate and interpolation.

All buffers are allocated once per Spectrum; Analyze itself is
allocation-free.
*/
package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"sndbank/pkg/bitint"
)

// Transport defines an interface for publishing computed spectra.
// Implementations should be safe for repeated calls.
type Transport interface {
	Send(data []float64) error
}

// Spectrum holds the FFT state and pre-allocated workspace for one
// analysis window size.
type Spectrum struct {
	size      int
	fftObj    *fourier.FFT
	window    []float64
	input     []float64
	coeffs    []complex128
	magnitude []float64
	transport Transport
}

// NewSpectrum creates a Spectrum with the window size rounded up to the
// next power of two. transport may be nil when results are only consumed
// locally.
func NewSpectrum(windowSize int, transport Transport) *Spectrum {
	size := bitint.NextPowerOfTwo(windowSize)
	if size < 2 {
		size = 2
	}

	window := make([]float64, size)
	for i := range window {
		window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(size-1)))
	}

	outputSize := size/2 + 1

	return &Spectrum{
		size:      size,
		fftObj:    fourier.NewFFT(size),
		window:    window,
		input:     make([]float64, size),
		coeffs:    make([]complex128, outputSize),
		magnitude: make([]float64, outputSize),
		transport: transport,
	}
}

// Size returns the effective window size in samples.
func (s *Spectrum) Size() int {
	return s.size
}

// Analyze applies a Hann window to samples, transforms them and returns
// the magnitude spectrum. Input shorter than the window is zero padded;
// longer input is truncated to the window. The returned slice is reused
// by the next call. Results are also published to the transport, if any.
func (s *Spectrum) Analyze(samples []int16) []float64 {
	for i := range s.input {
		if i < len(samples) {
			s.input[i] = float64(samples[i]) * s.window[i] / float64(math.MaxInt16)
		} else {
			s.input[i] = 0
		}
	}

	_ = s.fftObj.Coefficients(s.coeffs, s.input)
	for i := range s.coeffs {
		s.magnitude[i] = cmplx.Abs(s.coeffs[i])
	}

	if s.transport != nil {
		_ = s.transport.Send(s.magnitude)
	}
	return s.magnitude
}

// PeakFrequency returns the frequency in Hz of the strongest bin for
// audio recorded at sampleRate.
func (s *Spectrum) PeakFrequency(magnitude []float64, sampleRate int) float64 {
	peak := 0
	for i := 1; i < len(magnitude); i++ {
		if magnitude[i] > magnitude[peak] {
			peak = i
		}
	}
	return s.fftObj.Freq(peak) * float64(sampleRate)
}

// Bandwidth returns the frequency in Hz of the highest bin whose
// magnitude is at least relFloor times the peak magnitude. It estimates
// how far up the spectrum meaningful content reaches.
func (s *Spectrum) Bandwidth(magnitude []float64, sampleRate int, relFloor float64) float64 {
	var peak float64
	for _, m := range magnitude {
		if m > peak {
			peak = m
		}
	}
	if peak == 0 {
		return 0
	}

	floor := peak * relFloor
	for i := len(magnitude) - 1; i >= 0; i-- {
		if magnitude[i] >= floor {
			return s.fftObj.Freq(i) * float64(sampleRate)
		}
	}
	return 0
}
