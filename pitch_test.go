package scaledegree_test

import (
	"math"
	"testing"

	"github.com/otoate/scaledegree"
)

func TestPitchClassName(t *testing.T) {
	expected := []string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}
	for i, name := range expected {
		if got := scaledegree.PitchClassName(i); got != name {
			t.Errorf("PitchClassName(%d) = %q, expected %q", i, got, name)
		}
	}
	if got := scaledegree.PitchClassName(-1); got != "B" {
		t.Errorf("PitchClassName(-1) = %q, expected B", got)
	}
}

func TestPitchClassNameOctaveInvariance(t *testing.T) {
	for n := -60; n <= 60; n++ {
		if a, b := scaledegree.PitchClassName(n), scaledegree.PitchClassName(n+12); a != b {
			t.Errorf("PitchClassName(%d) = %q but PitchClassName(%d) = %q", n, a, n+12, b)
		}
	}
}

func TestFrequency(t *testing.T) {
	tests := []struct {
		offset int
		freq   float64
	}{
		{0, 261.63},
		{12, 523.26},
		{-12, 130.815},
		{9, 440.0},
	}
	for _, tt := range tests {
		if got := scaledegree.Frequency(tt.offset); math.Abs(got-tt.freq) > 0.05 {
			t.Errorf("Frequency(%d) = %v, expected %v", tt.offset, got, tt.freq)
		}
	}
}

func TestMIDINote(t *testing.T) {
	if got := scaledegree.MIDINote(9); got != 69 {
		t.Errorf("MIDINote(9) = %d, expected 69", got)
	}
}
