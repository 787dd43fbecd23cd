// SPDX-License-Identifier: MIT
package analysis

import (
	"math"
	"testing"

	"sndbank/pkg/utils"
)

const (
	testWindowSize = 1024
	testSampleRate = 44100
)

func TestSpectrumRoundsWindowUp(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"Exact", 1024, 1024},
		{"RoundUp", 1000, 1024},
		{"Tiny", 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpectrum(tt.in, nil)
			if s.Size() != tt.want {
				t.Errorf("Size() = %d, want %d", s.Size(), tt.want)
			}
		})
	}
}

func TestSpectrumPeakFrequency(t *testing.T) {
	s := NewSpectrum(testWindowSize, nil)
	wave := utils.GenerateSineWave(testWindowSize, testSampleRate, 440)

	mags := s.Analyze(wave)
	peak := s.PeakFrequency(mags, testSampleRate)

	// One bin of tolerance: the sine lands between bins.
	binWidth := float64(testSampleRate) / float64(testWindowSize)
	if math.Abs(peak-440) > binWidth {
		t.Errorf("peak frequency = %.1f Hz, want 440 +/- %.1f", peak, binWidth)
	}
}

func TestSpectrumBandwidth(t *testing.T) {
	s := NewSpectrum(testWindowSize, nil)
	wave := utils.GenerateComplexWave(testWindowSize, testSampleRate)

	mags := s.Analyze(wave)
	peak := s.PeakFrequency(mags, testSampleRate)
	bw := s.Bandwidth(mags, testSampleRate, 0.1)

	if bw < peak {
		t.Errorf("bandwidth %.1f Hz below peak %.1f Hz", bw, peak)
	}
	if bw > float64(testSampleRate)/2 {
		t.Errorf("bandwidth %.1f Hz beyond Nyquist", bw)
	}

	if got := s.Bandwidth(make([]float64, testWindowSize/2+1), testSampleRate, 0.1); got != 0 {
		t.Errorf("bandwidth of silence = %.1f, want 0", got)
	}
}

func TestSpectrumSendsToTransport(t *testing.T) {
	mock := &utils.MockTransport{}
	s := NewSpectrum(testWindowSize, mock)

	s.Analyze(utils.GenerateSineWave(testWindowSize, testSampleRate, 440))

	if len(mock.LastData) != testWindowSize/2+1 {
		t.Errorf("transport received %d bins, want %d", len(mock.LastData), testWindowSize/2+1)
	}
}

func TestSpectrumShortInputZeroPads(t *testing.T) {
	s := NewSpectrum(testWindowSize, nil)

	// A 100-sample wave must not panic and still yields a finite spectrum.
	mags := s.Analyze(utils.GenerateSineWave(100, testSampleRate, 440))
	for i, m := range mags {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			t.Fatalf("bin %d is not finite: %v", i, m)
		}
	}
}

func TestAnalyzeHotPath(t *testing.T) {
	s := NewSpectrum(testWindowSize, nil)
	wave := utils.GenerateSineWave(testWindowSize, testSampleRate, 440)

	// Warm-up call to absorb any one-time allocations.
	s.Analyze(wave)
	allocs := testing.AllocsPerRun(100, func() {
		s.Analyze(wave)
	})
	if allocs > 0 {
		t.Errorf("Analyze allocated memory: got %.1f allocs, want 0", allocs)
	}
}

func BenchmarkAnalyze(b *testing.B) {
	s := NewSpectrum(testWindowSize, nil)
	wave := utils.GenerateComplexWave(testWindowSize, testSampleRate)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s.Analyze(wave)
	}
}
