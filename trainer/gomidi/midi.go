// Package gomidi connects the trainer to the MIDI devices of the system
// through rtmidi.
package gomidi

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/otoate/scaledegree"
	"github.com/otoate/scaledegree/trainer"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

type (
	RTMIDIContext struct {
		driver *rtmididrv.Driver
		broker *trainer.Broker
		logger *slog.Logger

		currentIn drivers.In
		stop      func()
		outputs   []*RTMIDIOutput
	}

	RTMIDIInput struct {
		context *RTMIDIContext
		in      drivers.In
	}

	RTMIDIOutput struct {
		context *RTMIDIContext
		out     drivers.Out
		mu      sync.Mutex
	}
)

// Velocity of the notes sent to output devices.
const Velocity = 100

// NewContext opens the rtmidi driver. Notes played on the open input device
// are sent to broker.
func NewContext(broker *trainer.Broker, logger *slog.Logger) *RTMIDIContext {
	m := RTMIDIContext{broker: broker, logger: logger}
	var err error
	// there's not much we can do if this fails, so just use m.driver = nil to
	// indicate no driver available
	if m.driver, err = rtmididrv.New(); err != nil {
		m.driver = nil
		logger.Warn("no MIDI driver", "error", err)
	}
	return &m
}

func (m *RTMIDIContext) Support() trainer.MIDISupport {
	if m.driver == nil {
		return trainer.MIDISupportNoDriver
	}
	return trainer.MIDISupported
}

func (m *RTMIDIContext) Inputs(yield func(trainer.MIDIInputDevice) bool) {
	if m.driver == nil {
		return
	}
	ins, err := m.driver.Ins()
	if err != nil {
		m.logger.Warn("could not list MIDI inputs", "error", err)
		return
	}
	for _, in := range ins {
		if !yield(&RTMIDIInput{context: m, in: in}) {
			return
		}
	}
}

func (m *RTMIDIContext) Outputs(yield func(trainer.MIDIOutputDevice) bool) {
	if m.driver == nil {
		return
	}
	outs, err := m.driver.Outs()
	if err != nil {
		m.logger.Warn("could not list MIDI outputs", "error", err)
		return
	}
	for _, out := range outs {
		if !yield(&RTMIDIOutput{context: m, out: out}) {
			return
		}
	}
}

func (m *RTMIDIContext) Close() {
	if m.driver == nil {
		return
	}
	m.closeInput()
	for _, o := range m.outputs {
		o.Close()
	}
	m.outputs = nil
	m.driver.Close()
}

func (m *RTMIDIContext) closeInput() {
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
	if m.currentIn != nil && m.currentIn.IsOpen() {
		m.currentIn.Close()
	}
	m.currentIn = nil
}

func (m *RTMIDIContext) handleMessage(msg midi.Message, timestampms int32) {
	var channel, key, velocity uint8
	if !msg.GetNoteOn(&channel, &key, &velocity) || velocity == 0 {
		return
	}
	if !trainer.TrySend(m.broker.ToModel, trainer.Event(trainer.MIDINote{Note: int(key)})) {
		m.logger.Warn("MIDI note dropped, broker full", "note", key)
	}
}

// Open starts listening to the input device, closing the one open before.
func (d *RTMIDIInput) Open() error {
	m := d.context
	if m.currentIn == d.in && d.in.IsOpen() {
		return nil
	}
	if m.driver == nil {
		return errors.New("no driver available")
	}
	m.closeInput()
	if err := d.in.Open(); err != nil {
		return fmt.Errorf("opening MIDI input failed: %w", err)
	}
	stop, err := midi.ListenTo(d.in, m.handleMessage)
	if err != nil {
		d.in.Close()
		return fmt.Errorf("listening to MIDI input failed: %w", err)
	}
	m.currentIn, m.stop = d.in, stop
	m.logger.Info("MIDI input open", "device", d.in.String())
	return nil
}

func (d *RTMIDIInput) Close() error {
	if d.context.currentIn == d.in {
		d.context.closeInput()
		return nil
	}
	return d.in.Close()
}

func (d *RTMIDIInput) IsOpen() bool   { return d.in.IsOpen() }
func (d *RTMIDIInput) String() string { return d.in.String() }

func (d *RTMIDIOutput) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.out.IsOpen() {
		return nil
	}
	if err := d.out.Open(); err != nil {
		return fmt.Errorf("opening MIDI output failed: %w", err)
	}
	d.context.outputs = append(d.context.outputs, d)
	d.context.logger.Info("MIDI output open", "device", d.out.String())
	return nil
}

func (d *RTMIDIOutput) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.out.IsOpen() {
		return nil
	}
	return d.out.Close()
}

func (d *RTMIDIOutput) IsOpen() bool   { return d.out.IsOpen() }
func (d *RTMIDIOutput) String() string { return d.out.String() }

// PlayTone sends a note on now and the matching note off after duration.
func (d *RTMIDIOutput) PlayTone(offset int, duration time.Duration) error {
	note := scaledegree.MIDINote(offset)
	if note < 0 || note > 127 {
		return fmt.Errorf("offset %d is outside the MIDI note range", offset)
	}
	if err := d.send(midi.NoteOn(0, uint8(note), Velocity)); err != nil {
		return err
	}
	time.AfterFunc(duration, func() {
		if err := d.send(midi.NoteOff(0, uint8(note))); err != nil {
			d.context.logger.Warn("could not send note off", "note", note, "error", err)
		}
	})
	return nil
}

func (d *RTMIDIOutput) send(msg midi.Message) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.out.IsOpen() {
		return errors.New("MIDI output is not open")
	}
	if err := d.out.Send(msg); err != nil {
		return fmt.Errorf("sending %v failed: %w", msg, err)
	}
	return nil
}
