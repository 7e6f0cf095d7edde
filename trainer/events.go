package trainer

type (
	// Event is anything that can be dispatched to a Game.
	Event interface {
		isEvent()
	}

	// Start asks for the first question.
	Start struct{}
	// Next asks for a new question after an answer.
	Next struct{}
	// Replay plays the current question again.
	Replay struct{}
	// SelectDegree answers the question with a degree, 0 being the root and 7
	// the octave.
	SelectDegree struct{ Degree int }
	// MIDINote answers the question with a note played on a MIDI keyboard.
	MIDINote struct{ Note int }
	// PlaybackDone tells that the tones of a playback round have been started.
	PlaybackDone struct{ Round int }
)

func (Start) isEvent()        {}
func (Next) isEvent()         {}
func (Replay) isEvent()       {}
func (SelectDegree) isEvent() {}
func (MIDINote) isEvent()     {}
func (PlaybackDone) isEvent() {}
