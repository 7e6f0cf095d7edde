package trainer

import (
	"strings"

	"github.com/otoate/scaledegree"
)

type (
	// MIDIContext gives access to the MIDI devices of the system. Notes played
	// on an open input device are sent to the broker as MIDINote events.
	MIDIContext interface {
		Inputs(yield func(input MIDIInputDevice) bool)
		Outputs(yield func(output MIDIOutputDevice) bool)
		Close()
		Support() MIDISupport
	}

	MIDIInputDevice interface {
		Open() error
		Close() error
		IsOpen() bool
		String() string
	}

	// MIDIOutputDevice plays tones as notes on an external synth.
	MIDIOutputDevice interface {
		MIDIInputDevice
		scaledegree.ToneSink
	}

	MIDISupport int

	NullMIDIContext struct{}
)

const (
	MIDISupportNotCompiled MIDISupport = iota
	MIDISupportNoDriver
	MIDISupported
)

func (s MIDISupport) String() string {
	switch s {
	case MIDISupportNotCompiled:
		return "not compiled in"
	case MIDISupportNoDriver:
		return "no driver"
	case MIDISupported:
		return "supported"
	default:
		return "unknown"
	}
}

func (NullMIDIContext) Inputs(func(MIDIInputDevice) bool)   {}
func (NullMIDIContext) Outputs(func(MIDIOutputDevice) bool) {}
func (NullMIDIContext) Close()                              {}
func (NullMIDIContext) Support() MIDISupport                { return MIDISupportNotCompiled }

// FindMIDIInputByPrefix returns the first input device whose name starts with
// prefix.
func FindMIDIInputByPrefix(context MIDIContext, prefix string) (input MIDIInputDevice, ok bool) {
	for i := range context.Inputs {
		if strings.HasPrefix(i.String(), prefix) {
			return i, true
		}
	}
	return nil, false
}

// FindMIDIOutputByPrefix returns the first output device whose name starts
// with prefix.
func FindMIDIOutputByPrefix(context MIDIContext, prefix string) (output MIDIOutputDevice, ok bool) {
	for o := range context.Outputs {
		if strings.HasPrefix(o.String(), prefix) {
			return o, true
		}
	}
	return nil, false
}
