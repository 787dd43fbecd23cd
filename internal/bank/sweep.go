// SPDX-License-Identifier: MIT
package bank

import (
	"sndbank/internal/log"
	"sndbank/internal/resample"
)

// Summary reports what a sweep did to a bank.
type Summary struct {
	Processed int // entries whose wave was replaced
	Skipped   int // entries already at or above the target
	Failed    int // entries whose conversion errored
}

// Sweep walks the bank in entry order and replaces the wave of every
// entry whose rate is below the target. When the request also reduces
// bit depth, every entry is processed regardless of rate. A failure on
// one entry is logged and counted; the sweep always continues.
func Sweep(b *Bank, req resample.Request, interp resample.Interpolator) Summary {
	var sum Summary
	for _, e := range b.Entries {
		if req.BitDepth >= 16 && e.Wave.SampleRate >= req.TargetRate {
			log.Debugf("%s: already at %d Hz, skipping", e.Name, e.Wave.SampleRate)
			sum.Skipped++
			continue
		}

		wave, err := resample.Resample(e.Wave, req, interp)
		if err != nil {
			log.Errorf("%s: %v", e.Name, err)
			sum.Failed++
			continue
		}

		log.Debugf("%s: %d Hz -> %d Hz (%d -> %d samples)",
			e.Name, e.Wave.SampleRate, wave.SampleRate, e.Wave.Len(), wave.Len())
		e.Wave = wave
		sum.Processed++
	}
	return sum
}
