package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/denizsincar29/goerror"
	"github.com/otoate/scaledegree"
	"github.com/otoate/scaledegree/cmd"
	"github.com/otoate/scaledegree/oto"
	"github.com/otoate/scaledegree/trainer"
	"github.com/otoate/scaledegree/version"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func main() {
	scaleName := flag.String("scale", "", "Name of the scale, e.g. \"Eb Major\". By default, a random scale is picked.")
	degree := flag.Int("degree", 0, "Degree of the test note, 1 to 8. By default, a random degree is picked.")
	seed := flag.Uint64("seed", 0, "Seed for picking the random scale and degree; 0 picks a random seed.")
	stdout := flag.Bool("s", false, "Do not write files; write to standard output instead.")
	help := flag.Bool("h", false, "Show help.")
	directory := flag.String("o", "", "Directory where to output all files. The directory and its parents are created if needed. By default, files are placed in the working directory.")
	rawOut := flag.Bool("r", false, "Output the question as .raw file. By default, saves stereo float32 buffer to disk.")
	wavOut := flag.Bool("w", false, "Output the question as .wav file. By default, saves stereo float32 buffer to disk.")
	pcm := flag.Bool("c", false, "Convert audio to 16-bit signed PCM when outputting.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	logger := cmd.NewLogger(os.Stderr, trainer.MakePreferences().SlogLevel())
	e := goerror.NewError(logger)
	if *degree < 0 || *degree > scaledegree.NumDegrees {
		e.Must(fmt.Errorf("degree %d is not between 1 and %d", *degree, scaledegree.NumDegrees), "invalid -degree")
	}
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	if *seed != 0 {
		r = rand.New(rand.NewPCG(*seed, *seed))
	}
	question := scaledegree.NewQuestion(scaledegree.DefaultScales(), r)
	if *scaleName != "" {
		scale, ok := scaledegree.DefaultScales().ByName(*scaleName)
		if !ok {
			e.Must(fmt.Errorf("no scale named %q", *scaleName), "invalid -scale")
		}
		question.Scale = scale
	}
	if *degree != 0 {
		question.Degree = *degree - 1
	}
	logger.Info("question", "question", question)

	if !*rawOut && !*wavOut {
		e.Must(play(question, logger), "could not play the question")
		return
	}
	buffer := scaledegree.RenderSequence(question.Sequence(), scaledegree.QuestionGap, scaledegree.QuestionToneDuration, scaledegree.DefaultSampleRate)
	output := func(extension string, contents []byte) error {
		if *stdout {
			_, err := os.Stdout.Write(contents)
			return err
		}
		dir := *directory
		if dir == "" {
			var err error
			dir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("could not get working directory, specify the output directory explicitly: %w", err)
			}
		}
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("could not create output directory %v: %w", dir, err)
		}
		f := filepath.Join(dir, fileName(question)+extension)
		if err := os.WriteFile(f, contents, 0644); err != nil {
			return fmt.Errorf("could not write file %v: %w", f, err)
		}
		logger.Info("wrote file", "file", f)
		return nil
	}
	if *rawOut {
		raw, err := scaledegree.Raw(buffer, *pcm)
		e.Must(err, "could not generate .raw file")
		e.Must(output(".raw", raw), "error outputting .raw file")
	}
	if *wavOut {
		wav, err := scaledegree.Wav(buffer, *pcm, scaledegree.DefaultSampleRate)
		e.Must(err, "could not generate .wav file")
		e.Must(output(".wav", wav), "error outputting .wav file")
	}
}

// fileName names the output after the question, e.g. "eb-major-3".
func fileName(q scaledegree.Question) string {
	name := cases.Lower(language.Und).String(strings.Join(strings.Fields(q.Scale.Name), "-"))
	return fmt.Sprintf("%s-%d", name, q.Degree+1)
}

func play(q scaledegree.Question, logger *slog.Logger) error {
	var audioContext scaledegree.AudioContext
	audioContext, err := oto.NewContext(scaledegree.DefaultSampleRate)
	if err != nil {
		return err
	}
	defer audioContext.Close()
	sequencer := trainer.NewSequencer(audioContext, logger)
	done := make(chan struct{})
	sequencer.PlaySequence(q.Sequence(), func() { close(done) })
	<-done
	time.Sleep(sequencer.Duration) // let the last tone ring out
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Renders the two tones of a scale degree question to audio files, or plays them.\nUsage: %s [flags]\n", os.Args[0])
	flag.PrintDefaults()
}
