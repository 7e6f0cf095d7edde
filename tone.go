package scaledegree

import (
	"math"
	"time"

	"github.com/viterin/vek/vek32"
)

// Envelope of a rendered tone: a linear attack up to tonePeak followed by an
// exponential decay that reaches toneFloor at the end of the tone.
const (
	toneAttack = 10 * time.Millisecond
	tonePeak   = 0.3
	toneFloor  = 0.01
)

// Durations used by the exercise.
const (
	QuestionToneDuration = 1500 * time.Millisecond
	AnswerToneDuration   = 1000 * time.Millisecond
	QuestionGap          = 1000 * time.Millisecond
)

// RenderTone renders a sine tone at the pitch of offset as interleaved stereo
// float32 samples.
func RenderTone(offset int, duration time.Duration, sampleRate int) []float32 {
	length := numSamples(duration, sampleRate)
	if length == 0 {
		return nil
	}
	sine := make([]float32, length)
	envelope := make([]float32, length)
	freq := Frequency(offset)
	attack := min(numSamples(toneAttack, sampleRate), length)
	for i := range length {
		t := float64(i) / float64(sampleRate)
		sine[i] = float32(math.Sin(2 * math.Pi * freq * t))
		envelope[i] = float32(envelopeAt(i, attack, length))
	}
	mono := vek32.Mul_Into(make([]float32, length), sine, envelope)
	stereo := make([]float32, 2*length)
	for i, v := range mono {
		stereo[2*i] = v
		stereo[2*i+1] = v
	}
	return stereo
}

// RenderSequence mixes tones for offsets into one buffer, each starting gap
// after the previous one.
func RenderSequence(offsets []int, gap, duration time.Duration, sampleRate int) []float32 {
	if len(offsets) == 0 {
		return nil
	}
	gapSamples := numSamples(gap, sampleRate)
	toneSamples := numSamples(duration, sampleRate)
	buffer := make([]float32, 2*(gapSamples*(len(offsets)-1)+toneSamples))
	for i, offset := range offsets {
		start := 2 * i * gapSamples
		for j, v := range RenderTone(offset, duration, sampleRate) {
			buffer[start+j] += v
		}
	}
	return buffer
}

func envelopeAt(i, attack, length int) float64 {
	if i < attack {
		return tonePeak * float64(i) / float64(attack)
	}
	decay := length - attack
	if decay <= 1 {
		return tonePeak
	}
	frac := float64(i-attack) / float64(decay-1)
	return tonePeak * math.Pow(toneFloor/tonePeak, frac)
}

func numSamples(d time.Duration, sampleRate int) int {
	if d <= 0 {
		return 0
	}
	return int(d.Seconds() * float64(sampleRate))
}
