package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/otoate/scaledegree/trainer"
)

// Input turns typed lines into game events using a key map.
type Input struct {
	keys     trainer.KeyMap
	broker   *trainer.Broker
	w        io.Writer
	messages *trainer.Messages
}

// NewInput returns an Input sending events to broker. Unknown commands are
// reported to w.
func NewInput(keys trainer.KeyMap, broker *trainer.Broker, w io.Writer, messages *trainer.Messages) *Input {
	return &Input{keys: keys, broker: broker, w: w, messages: messages}
}

// Handle processes one line of input and reports whether the user asked to
// quit. Events the game does not accept at the moment are dropped by the game.
func (in *Input) Handle(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	action, ok := in.keys.Action(line)
	if !ok {
		in.unknown(line)
		return false
	}
	if action == trainer.ActionQuit {
		return true
	}
	ev, ok := trainer.ActionEvent(action)
	if !ok {
		in.unknown(line)
		return false
	}
	trainer.TrySend(in.broker.ToModel, ev)
	return false
}

// Run reads lines from r until the quit command, the end of input or the
// cancellation of ctx. A line already being read is not interrupted.
func (in *Input) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if in.Handle(scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read input: %w", err)
	}
	return nil
}

func (in *Input) unknown(line string) {
	msg, err := in.messages.Render(trainer.MsgUnknown, trainer.MessageData{Input: line})
	if err != nil {
		msg = err.Error()
	}
	fmt.Fprintln(in.w, msg)
}
