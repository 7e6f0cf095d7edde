package trainer

import (
	"log/slog"
	"time"

	"github.com/otoate/scaledegree"
)

type (
	// Player plays the tones of the game. PlaySequence returns immediately;
	// done is called, possibly from another goroutine, once the last tone of
	// the sequence has started. PlayTone is fire-and-forget.
	Player interface {
		PlaySequence(offsets []int, done func())
		PlayTone(offset int, duration time.Duration)
	}

	// Sequencer is a Player on top of a ToneSink. Tones of a sequence start
	// Gap apart and each lasts Duration. A sequence cannot be cancelled once
	// started.
	Sequencer struct {
		Sink     scaledegree.ToneSink
		Duration time.Duration
		Gap      time.Duration
		Logger   *slog.Logger
		// Sleep waits between tones; nil means time.Sleep.
		Sleep func(time.Duration)
	}
)

// NewSequencer returns a Sequencer with the default question timings.
func NewSequencer(sink scaledegree.ToneSink, logger *slog.Logger) *Sequencer {
	return &Sequencer{
		Sink:     sink,
		Duration: scaledegree.QuestionToneDuration,
		Gap:      scaledegree.QuestionGap,
		Logger:   logger,
	}
}

func (s *Sequencer) PlaySequence(offsets []int, done func()) {
	offsets = append([]int(nil), offsets...)
	go func() {
		for i, offset := range offsets {
			if i > 0 {
				s.sleep(s.Gap)
			}
			s.PlayTone(offset, s.Duration)
		}
		if done != nil {
			done()
		}
	}()
}

// PlayTone plays a single tone. Sink errors are logged and otherwise ignored:
// a silent tone must not stall the game.
func (s *Sequencer) PlayTone(offset int, duration time.Duration) {
	if s.Sink == nil {
		return
	}
	if err := s.Sink.PlayTone(offset, duration); err != nil {
		s.logger().Warn("could not play tone", "offset", offset, "note", scaledegree.PitchClassName(offset), "error", err)
	}
}

func (s *Sequencer) sleep(d time.Duration) {
	if s.Sleep != nil {
		s.Sleep(d)
		return
	}
	time.Sleep(d)
}

func (s *Sequencer) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
