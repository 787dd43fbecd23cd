// SPDX-License-Identifier: MIT
/*
Package resample converts mono PCM16 waves from one sample rate to
another with a selectable interpolation strategy, optionally reducing
the effective bit depth of the result.

Only zero-order-hold and linear interpolation are provided; neither is
band-limited, so downsampling aliases. The sweep only ever upsamples.
*/
package resample

import (
	"fmt"

	"sndbank/internal/pcm"
)

// Interpolator maps one output index onto the source wave and produces a
// single 16-bit sample. ratio is targetRate/sourceRate and is always
// positive; outIndex ranges over [0, floor(srcLen*ratio)). Implementations
// must clamp so the source is never indexed outside [0, srcLen).
type Interpolator interface {
	Name() string
	Interpolate(src *pcm.Buffer, outIndex int, ratio float64) int16
}

// ZeroOrderHold repeats the nearest preceding source sample. No smoothing,
// but every output value is (a duplicate of) an original sample value.
type ZeroOrderHold struct{}

func (ZeroOrderHold) Name() string { return "hold" }

func (ZeroOrderHold) Interpolate(src *pcm.Buffer, outIndex int, ratio float64) int16 {
	i := int(float64(outIndex) / ratio)
	if i >= len(src.Samples) {
		i = len(src.Samples) - 1
	}
	return src.Samples[i]
}

// Linear blends the two source samples adjacent to the fractional source
// position, clamping at the last sample so the pair never reads past the
// end of the wave.
type Linear struct{}

func (Linear) Name() string { return "linear" }

func (Linear) Interpolate(src *pcm.Buffer, outIndex int, ratio float64) int16 {
	exact := float64(outIndex) / ratio
	i1 := int(exact)
	if i1 >= len(src.Samples) {
		i1 = len(src.Samples) - 1
	}
	i2 := i1 + 1
	if i2 >= len(src.Samples) {
		i2 = len(src.Samples) - 1
	}
	frac := exact - float64(i1)
	s1 := float64(src.Samples[i1])
	s2 := float64(src.Samples[i2])
	// The narrowing conversion truncates toward zero rather than rounding
	// to nearest, so blends between negative samples land one step closer
	// to zero. Kept so output stays byte-identical across versions.
	return int16(s1 + (s2-s1)*frac)
}

// ParseInterpolator returns the Interpolator named by s ("hold" or
// "linear", case-sensitive).
func ParseInterpolator(s string) (Interpolator, error) {
	switch s {
	case "hold":
		return ZeroOrderHold{}, nil
	case "linear":
		return Linear{}, nil
	default:
		return nil, fmt.Errorf("unknown interpolation %q (want hold or linear)", s)
	}
}
