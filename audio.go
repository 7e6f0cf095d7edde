package scaledegree

import "time"

// DefaultSampleRate is the sample rate used for rendering tones, in Hz.
const DefaultSampleRate = 44100

type (
	// ToneSink makes a tone audible. PlayTone starts the tone and returns
	// without waiting for it to finish.
	ToneSink interface {
		PlayTone(offset int, duration time.Duration) error
	}

	// AudioContext is a ToneSink backed by an audio device that needs to be
	// released after use.
	AudioContext interface {
		ToneSink
		Close() error
	}
)
