// SPDX-License-Identifier: MIT
/*
Package audition plays bank entries through the default PortAudio output
device so an operator can hear a sample before and after conversion.
*/
package audition

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"

	"sndbank/internal/pcm"
)

// framesPerBuffer balances callback frequency against latency; audition
// playback is not latency sensitive.
const framesPerBuffer = 1024

// Initialize sets up the PortAudio subsystem.
// This must be called before playback and paired with a Terminate() call.
func Initialize() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize PortAudio: %w", err)
	}
	return nil
}

// Terminate cleanly shuts down the PortAudio subsystem.
// This should be deferred immediately after Initialize().
func Terminate() error {
	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("failed to terminate PortAudio: %w", err)
	}
	return nil
}

// cursor walks a wave for playback, replaying the loop region a bounded
// number of extra passes before running out to the end.
type cursor struct {
	wave      *pcm.Buffer
	pos       int
	loopsLeft int
}

func newCursor(wave *pcm.Buffer, loopPasses int) *cursor {
	c := &cursor{wave: wave}
	if wave.Loop != nil && wave.Loop.End > wave.Loop.Start {
		c.loopsLeft = loopPasses
	}
	return c
}

// next returns the following sample, or false when playback is done.
func (c *cursor) next() (int16, bool) {
	if c.loopsLeft > 0 && c.pos >= c.wave.Loop.End {
		c.pos = c.wave.Loop.Start
		c.loopsLeft--
	}
	if c.pos >= c.wave.Len() {
		return 0, false
	}
	s := c.wave.Samples[c.pos]
	c.pos++
	return s, true
}

// fill writes samples into out, zero padding once the wave is exhausted,
// and reports whether any live samples were produced.
func (c *cursor) fill(out []int16) bool {
	live := false
	for i := range out {
		s, ok := c.next()
		if ok {
			live = true
		}
		out[i] = s
	}
	return live
}

// Play streams wave to the default output device and blocks until
// playback completes. When the wave declares a loop region, the region
// is replayed loopPasses extra times on the way through.
func Play(wave *pcm.Buffer, loopPasses int) error {
	if wave.Len() == 0 {
		return nil
	}

	c := newCursor(wave, loopPasses)
	done := make(chan struct{})
	var once sync.Once

	stream, err := portaudio.OpenDefaultStream(0, 1, float64(wave.SampleRate), framesPerBuffer,
		func(out []int16) {
			// A callback that produced only padding means every live
			// sample is already queued downstream.
			if !c.fill(out) {
				once.Do(func() { close(done) })
			}
		})
	if err != nil {
		return fmt.Errorf("open output stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("start output stream: %w", err)
	}

	<-done
	return stream.Stop()
}

// ListDevices prints every audio device PortAudio can see, marking the
// ones usable for audition output.
func ListDevices() error {
	devices, err := portaudio.Devices()
	if err != nil {
		return err
	}

	fmt.Printf("\nAvailable Audio Devices\n\n")
	for i, device := range devices {
		deviceType := ""
		switch {
		case device.MaxInputChannels > 0 && device.MaxOutputChannels > 0:
			deviceType = "Input/Output"
		case device.MaxInputChannels > 0:
			deviceType = "Input"
		case device.MaxOutputChannels > 0:
			deviceType = "Output"
		}

		fmt.Printf("[%d] %s (%s)\n", i, device.Name, deviceType)
		fmt.Printf("    Output channels: %d\n", device.MaxOutputChannels)
		fmt.Printf("    Default sample rate: %.0f Hz\n", device.DefaultSampleRate)
		fmt.Printf("    Latency: Low=%.2fms, High=%.2fms\n",
			device.DefaultLowOutputLatency.Seconds()*1000,
			device.DefaultHighOutputLatency.Seconds()*1000)
		fmt.Println()
	}

	return nil
}
