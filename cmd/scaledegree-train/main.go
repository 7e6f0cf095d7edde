package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/denizsincar29/goerror"
	"github.com/otoate/scaledegree"
	"github.com/otoate/scaledegree/cmd"
	"github.com/otoate/scaledegree/oto"
	"github.com/otoate/scaledegree/trainer"
	"github.com/otoate/scaledegree/trainer/term"
	"github.com/otoate/scaledegree/version"
)

var (
	seed        = flag.Uint64("seed", 0, "seed of the question generator; 0 picks a random one")
	lang        = flag.String("lang", "", "language of the messages, e.g. en or ja (default from preferences)")
	midiInput   = flag.String("midi-input", "", "answer with the MIDI input device matching the name prefix")
	midiOutput  = flag.String("midi-output", "", "play the tones on the MIDI output device matching the name prefix")
	logLevel    = flag.String("log-level", "", "log level: debug, info, warn or error (default from preferences)")
	versionFlag = flag.Bool("v", false, "Print version.")
)

func main() {
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	prefs := trainer.MakePreferences()
	if cmd.IsFlagPassed("lang") {
		prefs.Language = *lang
	}
	if cmd.IsFlagPassed("log-level") {
		prefs.LogLevel = *logLevel
	}
	if cmd.IsFlagPassed("midi-input") {
		prefs.MIDI.Input = *midiInput
	}
	if cmd.IsFlagPassed("midi-output") {
		prefs.MIDI.Output = *midiOutput
	}
	logger := cmd.NewLogger(os.Stderr, prefs.SlogLevel())
	e := goerror.NewError(logger)
	if prefs.YmlError != nil {
		logger.Warn("could not read preferences.yml", "error", prefs.YmlError)
	}
	keys := trainer.DefaultKeyMap()
	if dir, err := trainer.ConfigDir(); err == nil {
		if keys, err = trainer.LoadKeyMap(dir); err != nil {
			logger.Warn("could not read keybindings.yml", "error", err)
		}
	}
	messages, err := trainer.LoadMessages(prefs.Language)
	e.Must(err, "could not load messages")
	messages.SetKeys(keys.Hints())
	logger.Debug("messages loaded", "language", messages.Language())

	broker := trainer.NewBroker()
	midiContext := cmd.NewMidiContext(broker, logger)
	defer midiContext.Close()
	if prefs.MIDI.Input != "" {
		openMIDIInput(midiContext, prefs.MIDI.Input, logger)
	}
	var sink scaledegree.ToneSink
	if prefs.MIDI.Output != "" {
		if output, ok := openMIDIOutput(midiContext, prefs.MIDI.Output, logger); ok {
			sink = output
		}
	}
	if sink == nil {
		audioContext, err := oto.NewContext(prefs.Playback.SampleRate)
		e.Must(err, "could not open the audio device")
		defer audioContext.Close()
		sink = audioContext
	}

	sequencer := trainer.NewSequencer(sink, logger)
	sequencer.Duration = prefs.ToneDuration()
	sequencer.Gap = prefs.Gap()
	var r *rand.Rand
	if *seed != 0 {
		r = rand.New(rand.NewPCG(*seed, *seed))
	}
	game := trainer.NewGame(broker, sequencer, term.NewDisplay(os.Stdout, messages), trainer.GameConfig{
		Rand:       r,
		Messages:   messages,
		Logger:     logger,
		AnswerTone: prefs.AnswerToneDuration(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		defer stop()
		input := term.NewInput(keys, broker, os.Stdout, messages)
		if err := input.Run(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("input failed", "error", err)
		}
	}()
	if err := game.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("game stopped", "error", err)
	}
	score := game.Score()
	logger.Info("session over", "total", score.Total, "correct", score.Correct, "accuracy", score.Accuracy())
}

func openMIDIInput(midiContext trainer.MIDIContext, prefix string, logger *slog.Logger) {
	input, ok := trainer.FindMIDIInputByPrefix(midiContext, prefix)
	if !ok {
		logger.Warn("no MIDI input device found", "prefix", prefix, "support", midiContext.Support())
		return
	}
	if err := input.Open(); err != nil {
		logger.Error("failed to open MIDI input", "device", input, "error", err)
	}
}

func openMIDIOutput(midiContext trainer.MIDIContext, prefix string, logger *slog.Logger) (trainer.MIDIOutputDevice, bool) {
	output, ok := trainer.FindMIDIOutputByPrefix(midiContext, prefix)
	if !ok {
		logger.Warn("no MIDI output device found, using the audio device", "prefix", prefix, "support", midiContext.Support())
		return nil, false
	}
	if err := output.Open(); err != nil {
		logger.Error("failed to open MIDI output, using the audio device", "device", output, "error", err)
		return nil, false
	}
	return output, true
}
