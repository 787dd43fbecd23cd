// SPDX-License-Identifier: MIT
package audition

import (
	"testing"

	"sndbank/internal/pcm"
)

func drain(t *testing.T, c *cursor, limit int) []int16 {
	t.Helper()
	var out []int16
	for range limit {
		s, ok := c.next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
	t.Fatalf("cursor still live after %d samples", limit)
	return nil
}

func TestCursorStraightPlayback(t *testing.T) {
	wave := &pcm.Buffer{Samples: []int16{1, 2, 3, 4}, SampleRate: 8000}
	c := newCursor(wave, 5)

	got := drain(t, c, 100)
	want := []int16{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("played %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCursorLoopPasses(t *testing.T) {
	wave := &pcm.Buffer{
		Samples:    []int16{0, 1, 2, 3, 4, 5, 6, 7},
		SampleRate: 8000,
		Loop:       &pcm.Loop{Start: 2, End: 5},
	}
	c := newCursor(wave, 2)

	got := drain(t, c, 100)
	want := []int16{0, 1, 2, 3, 4, 2, 3, 4, 2, 3, 4, 5, 6, 7}
	if len(got) != len(want) {
		t.Fatalf("played %d samples (%v), want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCursorDegenerateLoop(t *testing.T) {
	// An empty loop region must not trap playback.
	wave := &pcm.Buffer{
		Samples:    []int16{9, 8, 7},
		SampleRate: 8000,
		Loop:       &pcm.Loop{Start: 1, End: 1},
	}
	c := newCursor(wave, 1000)

	got := drain(t, c, 100)
	if len(got) != 3 {
		t.Errorf("played %d samples, want 3", len(got))
	}
}

func TestCursorFillPadsWithSilence(t *testing.T) {
	wave := &pcm.Buffer{Samples: []int16{5, 5}, SampleRate: 8000}
	c := newCursor(wave, 0)

	out := make([]int16, 8)
	if live := c.fill(out); !live {
		t.Error("first fill reported no live samples")
	}
	for i := 2; i < len(out); i++ {
		if out[i] != 0 {
			t.Errorf("padding sample %d = %d, want 0", i, out[i])
		}
	}

	if live := c.fill(out); live {
		t.Error("exhausted cursor still reports live samples")
	}
}
