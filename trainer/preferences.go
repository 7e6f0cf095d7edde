package trainer

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"
)

type (
	Preferences struct {
		Language string
		LogLevel string
		Playback PlaybackPreferences
		MIDI     MIDIPreferences `yaml:"midi"`
		YmlError error           `yaml:"-"`
	}

	PlaybackPreferences struct {
		SampleRate   int
		ToneMs       int
		GapMs        int
		AnswerToneMs int
	}

	// MIDIPreferences name the MIDI devices to open, by name prefix. Empty
	// means no device.
	MIDIPreferences struct {
		Input  string
		Output string
	}
)

// ConfigDirName is the directory under os.UserConfigDir holding the user's
// preferences.yml and keybindings.yml.
const ConfigDirName = "scaledegree"

//go:embed preferences.yml
var defaultPreferencesYaml []byte

func loadDefaultPreferences() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

// ConfigDir returns the directory of the user's configuration files.
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigDirName), nil
}

// ReadCustomConfigYml reads filename from dir into target, which needs to be
// a pointer. exists is false if there is no such file.
func ReadCustomConfigYml(dir, filename string, target interface{}) (exists bool, err error) {
	bytes, err := os.ReadFile(filepath.Join(dir, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return true, err
	}
	return true, yaml.UnmarshalStrict(bytes, target)
}

// MakePreferences returns the default preferences overridden by the user's
// preferences.yml, if one exists.
func MakePreferences() Preferences {
	dir, err := ConfigDir()
	if err != nil {
		return loadDefaultPreferences()
	}
	return LoadPreferences(dir)
}

// LoadPreferences returns the default preferences overridden by
// preferences.yml in dir. A malformed file is reported in YmlError.
func LoadPreferences(dir string) Preferences {
	preferences := loadDefaultPreferences()
	exists, err := ReadCustomConfigYml(dir, "preferences.yml", &preferences)
	if exists {
		preferences.YmlError = err
	}
	return preferences
}

func (p Preferences) ToneDuration() time.Duration {
	return time.Duration(p.Playback.ToneMs) * time.Millisecond
}

func (p Preferences) Gap() time.Duration {
	return time.Duration(p.Playback.GapMs) * time.Millisecond
}

func (p Preferences) AnswerToneDuration() time.Duration {
	return time.Duration(p.Playback.AnswerToneMs) * time.Millisecond
}

// SlogLevel parses LogLevel, defaulting to info.
func (p Preferences) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(p.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
