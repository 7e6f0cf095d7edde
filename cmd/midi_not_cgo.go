//go:build !cgo

package cmd

import (
	"log/slog"

	"github.com/otoate/scaledegree/trainer"
)

func NewMidiContext(broker *trainer.Broker, logger *slog.Logger) trainer.MIDIContext {
	// with no cgo, we cannot use MIDI, so return a null context
	return trainer.NullMIDIContext{}
}
