package trainer

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/otoate/scaledegree"
)

type (
	// Game implements the question/answer cycle of the exercise.
	//
	// A Game is not safe for concurrent use. Run consumes the broker on a
	// single goroutine; producers only send events to the broker.
	Game struct {
		broker     *Broker
		player     Player
		display    Display
		messages   *Messages
		logger     *slog.Logger
		scales     scaledegree.Scales
		rand       *rand.Rand
		questions  func(scaledegree.Scales, *rand.Rand) scaledegree.Question
		answerTone time.Duration

		state       State
		question    scaledegree.Question
		hasQuestion bool
		round       int
		score       Score
		feedback    Feedback
		pressed     []int
	}

	// GameConfig holds the optional collaborators of a Game. Zero values are
	// replaced with defaults.
	GameConfig struct {
		Scales     scaledegree.Scales // default: scaledegree.DefaultScales()
		Rand       *rand.Rand         // default: randomly seeded
		Messages   *Messages          // default: DefaultMessages()
		Logger     *slog.Logger       // default: slog.Default()
		AnswerTone time.Duration      // default: scaledegree.AnswerToneDuration
		// Questions picks the next question; default scaledegree.NewQuestion.
		Questions func(scaledegree.Scales, *rand.Rand) scaledegree.Question
	}

	// State is the phase of the question cycle.
	State int

	// Display receives a snapshot of the game after every handled event.
	Display interface {
		Refresh(Snapshot)
	}

	// NullDisplay ignores all updates.
	NullDisplay struct{}

	// Snapshot is everything a front-end needs to draw the game.
	Snapshot struct {
		State    State
		Scale    string
		Mode     scaledegree.Mode
		Feedback Feedback
		Score    Score
		Accuracy int
		Controls Controls
		// Notes names the pitch class of each degree of the current scale.
		Notes []string
		// Pressed lists the degrees to highlight: the selected one and, after
		// a wrong answer, the correct one.
		Pressed []int
	}

	// Controls tells which inputs the game accepts in its current state.
	Controls struct {
		Start    bool
		Next     bool
		Replay   bool
		Keyboard bool
	}

	FeedbackKind int

	// Feedback is the verdict on the latest answer.
	Feedback struct {
		Kind     FeedbackKind
		Selected string
		Correct  string
		Message  string
	}
)

const (
	Idle State = iota
	QuestionPlaying
	AwaitingAnswer
	Answered
)

const (
	NoFeedback FeedbackKind = iota
	CorrectFeedback
	IncorrectFeedback
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case QuestionPlaying:
		return "question playing"
	case AwaitingAnswer:
		return "awaiting answer"
	case Answered:
		return "answered"
	default:
		return "unknown"
	}
}

func (NullDisplay) Refresh(Snapshot) {}

// NewGame returns a game in the Idle state. display may be nil.
func NewGame(broker *Broker, player Player, display Display, cfg GameConfig) *Game {
	g := &Game{
		broker:     broker,
		player:     player,
		display:    display,
		messages:   cfg.Messages,
		logger:     cfg.Logger,
		scales:     cfg.Scales,
		rand:       cfg.Rand,
		questions:  cfg.Questions,
		answerTone: cfg.AnswerTone,
	}
	if g.display == nil {
		g.display = NullDisplay{}
	}
	if g.messages == nil {
		g.messages = DefaultMessages()
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if len(g.scales) == 0 {
		g.scales = scaledegree.DefaultScales()
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.questions == nil {
		g.questions = scaledegree.NewQuestion
	}
	if g.answerTone <= 0 {
		g.answerTone = scaledegree.AnswerToneDuration
	}
	return g
}

// Run dispatches events from the broker until ctx is done.
func (g *Game) Run(ctx context.Context) error {
	g.display.Refresh(g.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-g.broker.ToModel:
			g.Dispatch(ev)
		}
	}
}

// Dispatch performs the action an event asks for, if the current state allows
// it, and refreshes the display. Events that are not allowed are dropped and
// Dispatch returns false.
func (g *Game) Dispatch(ev Event) bool {
	if !g.action(ev).Do() {
		g.logger.Debug("event dropped", "event", ev, "state", g.state)
		return false
	}
	g.display.Refresh(g.Snapshot())
	return true
}

func (g *Game) action(ev Event) Action {
	switch e := ev.(type) {
	case Start:
		return g.Start()
	case Next:
		return g.Next()
	case Replay:
		return g.Replay()
	case SelectDegree:
		return g.SelectDegree(e.Degree)
	case MIDINote:
		return g.AnswerNote(e.Note)
	case PlaybackDone:
		return g.finishPlayback(e.Round)
	}
	return Action{}
}

func (g *Game) State() State { return g.state }
func (g *Game) Score() Score { return g.score }

// Round counts the playbacks started so far, replays included.
func (g *Game) Round() int { return g.round }

// Question returns the current question; ok is false before the first one.
func (g *Game) Question() (q scaledegree.Question, ok bool) {
	return g.question, g.hasQuestion
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:    g.state,
		Feedback: g.feedback,
		Score:    g.score,
		Accuracy: g.score.Accuracy(),
		Controls: Controls{
			Start:    g.Start().Enabled(),
			Next:     g.Next().Enabled(),
			Replay:   g.Replay().Enabled(),
			Keyboard: g.state == AwaitingAnswer,
		},
		Pressed: slices.Clone(g.pressed),
	}
	if g.hasQuestion {
		s.Scale = g.question.Scale.Name
		s.Mode = g.question.Scale.Mode
		s.Notes = make([]string, len(g.question.Scale.Degrees))
		for i, d := range g.question.Scale.Degrees {
			s.Notes[i] = scaledegree.PitchClassName(d)
		}
	}
	return s
}

// Start returns an Action asking the first question.
func (g *Game) Start() Action { return MakeAction((*newQuestion)(g)) }

// Next returns an Action asking a new question once the previous one has
// been answered.
func (g *Game) Next() Action { return MakeAction((*newQuestion)(g)) }

type newQuestion Game

func (m *newQuestion) Enabled() bool { return m.state == Idle || m.state == Answered }
func (m *newQuestion) Do() {
	g := (*Game)(m)
	g.question = g.questions(g.scales, g.rand)
	g.hasQuestion = true
	g.feedback = Feedback{}
	g.pressed = nil
	g.logger.Debug("new question", "scale", g.question.Scale.Name, "degree", g.question.Degree+1)
	g.play()
}

// Replay returns an Action playing the current question again.
func (g *Game) Replay() Action { return MakeAction((*replay)(g)) }

type replay Game

func (m *replay) Enabled() bool { return m.state == AwaitingAnswer && m.hasQuestion }
func (m *replay) Do()           { (*Game)(m).play() }

func (g *Game) play() {
	g.state = QuestionPlaying
	g.round++
	round := g.round
	broker := g.broker
	g.player.PlaySequence(g.question.Sequence(), func() {
		broker.ToModel <- PlaybackDone{Round: round}
	})
}

func (g *Game) finishPlayback(round int) Action {
	return MakeAction(playbackDone{round: round, Game: g})
}

type playbackDone struct {
	round int
	*Game
}

func (m playbackDone) Enabled() bool { return m.state == QuestionPlaying && m.round == m.Game.round }
func (m playbackDone) Do()           { m.state = AwaitingAnswer }

// SelectDegree returns an Action answering the question with a degree, 0
// being the root.
func (g *Game) SelectDegree(degree int) Action {
	return MakeAction(selectDegree{degree: degree, Game: g})
}

type selectDegree struct {
	degree int
	*Game
}

func (m selectDegree) Enabled() bool {
	return m.state == AwaitingAnswer && m.degree >= 0 && m.degree < scaledegree.NumDegrees
}
func (m selectDegree) Do() { m.answer(m.degree) }

// AnswerNote returns an Action answering the question with a MIDI note. It is
// disabled when the note is not in the scale of the question.
func (g *Game) AnswerNote(note int) Action {
	degree, ok := g.question.Scale.DegreeOf(note - scaledegree.C4MIDINote)
	if !ok || !g.hasQuestion {
		return MakeAction(disabled{})
	}
	return g.SelectDegree(degree)
}

type disabled struct{}

func (disabled) Enabled() bool { return false }
func (disabled) Do()           {}

func (g *Game) answer(degree int) {
	q := g.question
	selected := q.Scale.Degrees[degree]
	correct := degree == q.Degree
	g.score.Record(correct)
	g.feedback = Feedback{
		Kind:     IncorrectFeedback,
		Selected: scaledegree.PitchClassName(selected),
		Correct:  scaledegree.PitchClassName(q.Offset()),
	}
	g.pressed = []int{degree}
	key := MsgIncorrect
	if correct {
		g.feedback.Kind = CorrectFeedback
		key = MsgCorrect
		g.player.PlayTone(selected, g.answerTone)
	} else {
		g.pressed = append(g.pressed, q.Degree)
	}
	msg, err := g.messages.Render(key, MessageData{
		Scale:    q.Scale.Name,
		Selected: g.feedback.Selected,
		Correct:  g.feedback.Correct,
		Score:    g.score,
		Accuracy: g.score.Accuracy(),
	})
	if err != nil {
		g.logger.Error("could not render feedback", "error", err)
	}
	g.feedback.Message = msg
	g.state = Answered
	g.logger.Info("answer",
		"scale", q.Scale.Name,
		"degree", q.Degree+1,
		"selected", degree+1,
		"correct", correct,
		"total", g.score.Total,
		"streak", g.score.Streak)
}
