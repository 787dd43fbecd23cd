// SPDX-License-Identifier: MIT
package resample

import (
	"fmt"

	"sndbank/internal/pcm"
)

// Request carries the sweep-wide conversion targets.
type Request struct {
	TargetRate int // target sample rate in Hz
	BitDepth   int // effective bit depth of the output, 16 = unchanged
}

// Validate reports whether the request describes a usable conversion.
func (r Request) Validate() error {
	if r.TargetRate <= 0 {
		return fmt.Errorf("invalid target sample rate: %d", r.TargetRate)
	}
	if r.BitDepth < 1 || r.BitDepth > 16 {
		return fmt.Errorf("invalid bit depth %d (want 1..16)", r.BitDepth)
	}
	return nil
}

// Resample converts src to the requested rate using interp, requantizes
// if a reduced bit depth was requested, and rescales loop points by the
// same ratio. src is read-only; the result is a new buffer declaring the
// target rate. A zero-length result is valid when the ratio shrinks the
// wave below one sample.
func Resample(src *pcm.Buffer, req Request, interp Interpolator) (*pcm.Buffer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("nil source buffer")
	}
	if src.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid source sample rate: %d", src.SampleRate)
	}

	ratio := float64(req.TargetRate) / float64(src.SampleRate)
	newLen := int(float64(src.Len()) * ratio)

	out := make([]int16, newLen)
	for i := range out {
		out[i] = interp.Interpolate(src, i, ratio)
	}

	if req.BitDepth < 16 {
		for i, s := range out {
			out[i] = Requantize(s, req.BitDepth)
		}
	}

	// Loop bounds scale independently, each truncated toward zero. The
	// loop length therefore may not scale by exactly ratio.
	var loop *pcm.Loop
	if src.Loop != nil {
		loop = &pcm.Loop{
			Start: int(float64(src.Loop.Start) * ratio),
			End:   int(float64(src.Loop.End) * ratio),
		}
	}

	return pcm.New(out, req.TargetRate, loop)
}
