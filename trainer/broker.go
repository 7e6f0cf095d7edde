package trainer

import "time"

type (
	// Broker carries every stimulus of the game to the goroutine running
	// Game.Run: user commands from the terminal, notes from the MIDI input
	// and completion signals from the playback sequencer. There is exactly
	// one consumer, so the game state is never touched concurrently.
	Broker struct {
		ToModel chan Event
	}
)

func NewBroker() *Broker {
	return &Broker{
		ToModel: make(chan Event, 1024),
	}
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Return true if the value was sent, false
// otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}

// TimeoutReceive is a helper function to block until a value is received from a
// channel, or timing out after t. ok will be false if the timeout occurred or
// if the channel is closed.
func TimeoutReceive[T any](c <-chan T, t time.Duration) (v T, ok bool) {
	select {
	case v, ok = <-c:
		return v, ok
	case <-time.After(t):
		return v, false
	}
}
