// Package term is a line based terminal front-end for the trainer: typed
// commands go in, the game's progress is printed out.
package term

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/otoate/scaledegree/trainer"
)

// Display prints game snapshots as lines of text.
type Display struct {
	w        io.Writer
	messages *trainer.Messages
}

func NewDisplay(w io.Writer, messages *trainer.Messages) *Display {
	return &Display{w: w, messages: messages}
}

func (d *Display) Refresh(s trainer.Snapshot) {
	data := trainer.MessageData{
		Scale:    s.Scale,
		Selected: s.Feedback.Selected,
		Correct:  s.Feedback.Correct,
		Score:    s.Score,
		Accuracy: s.Accuracy,
	}
	switch s.State {
	case trainer.Idle:
		d.println(trainer.MsgIdle, data)
	case trainer.QuestionPlaying:
		d.println(trainer.MsgPlaying, data)
	case trainer.AwaitingAnswer:
		d.println(trainer.MsgPrompt, data)
	case trainer.Answered:
		fmt.Fprintln(d.w, Keyboard(s))
		fmt.Fprintln(d.w, s.Feedback.Message)
		d.println(trainer.MsgScore, data)
		d.println(trainer.MsgNext, data)
	}
}

func (d *Display) println(key string, data trainer.MessageData) {
	msg, err := d.messages.Render(key, data)
	if err != nil {
		msg = err.Error()
	}
	fmt.Fprintln(d.w, msg)
}

// Keyboard draws the degrees of the scale in one line. The selected degree is
// shown in brackets and, after a wrong answer, the correct one in
// parentheses.
func Keyboard(s trainer.Snapshot) string {
	keys := make([]string, len(s.Notes))
	for i, note := range s.Notes {
		key := fmt.Sprintf("%d:%s", i+1, note)
		switch {
		case len(s.Pressed) > 0 && s.Pressed[0] == i:
			key = "[" + key + "]"
		case slices.Contains(s.Pressed, i):
			key = "(" + key + ")"
		}
		keys[i] = key
	}
	return strings.Join(keys, " ")
}
