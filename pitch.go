package scaledegree

import "math"

// C4Frequency is the frequency of offset 0, in Hz.
const C4Frequency = 261.63

// C4MIDINote is the MIDI note number of offset 0.
const C4MIDINote = 60

var pitchClassNames = [12]string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

func pitchClass(offset int) int {
	return ((offset % 12) + 12) % 12
}

// PitchClassName returns the note name of a semitone offset, ignoring the
// octave. Negative offsets wrap around like positive ones.
func PitchClassName(offset int) string {
	return pitchClassNames[pitchClass(offset)]
}

// Frequency returns the equal-tempered frequency of a semitone offset from C4.
func Frequency(offset int) float64 {
	return C4Frequency * math.Pow(2, float64(offset)/12)
}

// MIDINote returns the MIDI note number of a semitone offset from C4.
func MIDINote(offset int) int {
	return C4MIDINote + offset
}
