// SPDX-License-Identifier: MIT
package bitint

import "testing"

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"Zero", 0, 1},
		{"Negative", -8, 1},
		{"One", 1, 1},
		{"Exact", 1024, 1024},
		{"RoundUp", 1000, 1024},
		{"SmallRoundUp", 5, 8},
		{"Large", 65537, 131072},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextPowerOfTwo(tt.in); got != tt.want {
				t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want bool
	}{
		{"Zero", 0, false},
		{"Negative", -4, false},
		{"One", 1, true},
		{"Two", 2, true},
		{"Seven", 7, false},
		{"Exact", 4096, true},
		{"OffByOne", 4097, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPowerOfTwo(tt.in); got != tt.want {
				t.Errorf("IsPowerOfTwo(%d) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	allocs := testing.AllocsPerRun(100, func() {
		_ = NextPowerOfTwo(1000)
		_ = IsPowerOfTwo(1024)
	})
	if allocs > 0 {
		t.Errorf("bitint helpers allocated memory: got %.1f allocs, want 0", allocs)
	}
}
