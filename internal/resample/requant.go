// SPDX-License-Identifier: MIT
package resample

import "math"

// Requantize reduces sample to 2^bits amplitude steps while keeping the
// 16-bit storage format: normalize to [0,1] over the full signed range,
// round onto the step grid, then expand back. bits must be in [1,16];
// 16 and above return the sample unchanged.
func Requantize(sample int16, bits int) int16 {
	if bits >= 16 {
		return sample
	}
	steps := float64(uint32(1) << uint(bits))
	normalized := (float64(sample) - math.MinInt16) / 65535.0
	quantized := math.Round(normalized * steps)
	return int16((quantized/steps)*65535.0 + math.MinInt16)
}
