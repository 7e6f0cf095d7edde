//go:build cgo

package cmd

import (
	"log/slog"

	"github.com/otoate/scaledegree/trainer"
	"github.com/otoate/scaledegree/trainer/gomidi"
)

func NewMidiContext(broker *trainer.Broker, logger *slog.Logger) trainer.MIDIContext {
	return gomidi.NewContext(broker, logger)
}
