package trainer_test

import (
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/otoate/scaledegree/trainer"
)

type toneCall struct {
	offset   int
	duration time.Duration
}

type fakeSink struct {
	mu    sync.Mutex
	calls []toneCall
	err   error
}

func (s *fakeSink) PlayTone(offset int, duration time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, toneCall{offset, duration})
	return s.err
}

func (s *fakeSink) Calls() []toneCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.calls)
}

func TestSequencerPlaysInOrder(t *testing.T) {
	sink := &fakeSink{}
	var sleeps []time.Duration
	seq := trainer.NewSequencer(sink, discardLogger())
	seq.Sleep = func(d time.Duration) { sleeps = append(sleeps, d) }
	done := make(chan struct{})
	seq.PlaySequence([]int{7, 11}, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("sequence did not complete")
	}
	expected := []toneCall{{7, 1500 * time.Millisecond}, {11, 1500 * time.Millisecond}}
	if got := sink.Calls(); !slices.Equal(got, expected) {
		t.Errorf("expected tones %v, got %v", expected, got)
	}
	if !slices.Equal(sleeps, []time.Duration{time.Second}) {
		t.Errorf("expected a single 1s gap, got %v", sleeps)
	}
}

func TestSequencerCompletesOnSinkError(t *testing.T) {
	sink := &fakeSink{err: errors.New("device unplugged")}
	seq := trainer.NewSequencer(sink, discardLogger())
	seq.Sleep = func(time.Duration) {}
	done := make(chan struct{})
	seq.PlaySequence([]int{0, 4}, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("sequence did not complete")
	}
	if len(sink.Calls()) != 2 {
		t.Errorf("expected both tones to be attempted, got %v", sink.Calls())
	}
}

func TestSequencerCopiesOffsets(t *testing.T) {
	sink := &fakeSink{}
	seq := trainer.NewSequencer(sink, discardLogger())
	release := make(chan struct{})
	seq.Sleep = func(time.Duration) { <-release }
	done := make(chan struct{})
	offsets := []int{0, 4}
	seq.PlaySequence(offsets, func() { close(done) })
	offsets[1] = 99
	close(release)
	<-done
	if got := sink.Calls(); len(got) != 2 || got[1].offset != 4 {
		t.Errorf("expected the offsets at call time, got %v", got)
	}
}

func TestSequencerPlayTone(t *testing.T) {
	sink := &fakeSink{}
	seq := trainer.NewSequencer(sink, discardLogger())
	seq.PlayTone(4, time.Second)
	if got := sink.Calls(); len(got) != 1 || got[0] != (toneCall{4, time.Second}) {
		t.Errorf("unexpected calls %v", got)
	}
	(&trainer.Sequencer{}).PlayTone(0, time.Second) // no sink, no panic
}
