// SPDX-License-Identifier: MIT
/*
Package pcm models the mono 16-bit sample buffers that bank entries carry
between the container layer and the resampling engine.

Buffers are treated as immutable: processing stages build replacement
buffers rather than mutating one in place, so a wave read from a bank is
never aliased by two entries.
*/
package pcm

import (
	"fmt"

	"github.com/go-audio/audio"
)

// Loop marks a playback loop region in sample offsets. Start and End are
// offsets into the owning buffer with 0 <= Start <= End <= length.
type Loop struct {
	Start int
	End   int
}

// Buffer is a mono 16-bit PCM wave: samples, the rate they were recorded
// at, and an optional loop region.
type Buffer struct {
	Samples    []int16
	SampleRate int
	Loop       *Loop
}

// New builds a Buffer after validating the rate and the loop region
// against the sample count.
func New(samples []int16, rate int, loop *Loop) (*Buffer, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", rate)
	}
	if loop != nil {
		if loop.Start < 0 || loop.Start > loop.End || loop.End > len(samples) {
			return nil, fmt.Errorf("loop [%d,%d] out of bounds for %d samples",
				loop.Start, loop.End, len(samples))
		}
	}
	return &Buffer{Samples: samples, SampleRate: rate, Loop: loop}, nil
}

// Len returns the number of samples.
func (b *Buffer) Len() int {
	return len(b.Samples)
}

// Duration returns the playback length in seconds, ignoring loops.
func (b *Buffer) Duration() float64 {
	return float64(len(b.Samples)) / float64(b.SampleRate)
}

// FromIntBuffer converts a decoded go-audio buffer into a Buffer.
// The source must be mono; the container layer splits channels before
// handing waves to the engine.
func FromIntBuffer(buf *audio.IntBuffer, loop *Loop) (*Buffer, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("nil PCM buffer")
	}
	if buf.Format.NumChannels != 1 {
		return nil, fmt.Errorf("expected mono audio, got %d channels", buf.Format.NumChannels)
	}
	samples := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = int16(s)
	}
	return New(samples, buf.Format.SampleRate, loop)
}

// IntBuffer converts the buffer back into the go-audio representation
// for encoding. The returned buffer owns a fresh copy of the data.
func (b *Buffer) IntBuffer() *audio.IntBuffer {
	data := make([]int, len(b.Samples))
	for i, s := range b.Samples {
		data[i] = int(s)
	}
	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  b.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
}
