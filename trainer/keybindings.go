package trainer

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type (
	KeyBinding struct {
		Key    string
		Action string
	}

	// KeyMap maps typed keys to action names, and remembers a key per action
	// for showing hints.
	KeyMap struct {
		bindings map[string]string
		hints    map[string]string
	}
)

// ActionQuit is the action name of leaving the program. It is not a game
// event; front-ends handle it themselves.
const ActionQuit = "Quit"

//go:embed keybindings.yml
var defaultKeyBindings []byte

func decodeKeyBindings(data []byte) ([]KeyBinding, error) {
	var keyBindings []KeyBinding
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&keyBindings); err != nil {
		return nil, err
	}
	return keyBindings, nil
}

// DefaultKeyMap returns the built-in key bindings.
func DefaultKeyMap() KeyMap {
	keyBindings, err := decodeKeyBindings(defaultKeyBindings)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal default keybindings: %w", err))
	}
	return MakeKeyMap(keyBindings)
}

// LoadKeyMap returns the built-in key bindings extended with keybindings.yml
// in dir, if it exists. A binding with an empty action unbinds the key.
func LoadKeyMap(dir string) (KeyMap, error) {
	keyBindings, err := decodeKeyBindings(defaultKeyBindings)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal default keybindings: %w", err))
	}
	data, err := os.ReadFile(filepath.Join(dir, "keybindings.yml"))
	if errors.Is(err, fs.ErrNotExist) {
		return MakeKeyMap(keyBindings), nil
	}
	if err != nil {
		return MakeKeyMap(keyBindings), fmt.Errorf("could not read keybindings.yml: %w", err)
	}
	userKeyBindings, err := decodeKeyBindings(data)
	if err != nil {
		return MakeKeyMap(keyBindings), fmt.Errorf("could not parse keybindings.yml: %w", err)
	}
	return MakeKeyMap(append(keyBindings, userKeyBindings...)), nil
}

func MakeKeyMap(keyBindings []KeyBinding) KeyMap {
	k := KeyMap{bindings: map[string]string{}, hints: map[string]string{}}
	for _, kb := range keyBindings {
		key := strings.ToLower(strings.TrimSpace(kb.Key))
		if action, ok := k.bindings[key]; ok { // if this key has been previously bound, remove it from the hint map
			if k.hints[action] == key {
				delete(k.hints, action)
			}
		}
		if kb.Action == "" { // unbind
			delete(k.bindings, key)
			continue
		}
		k.bindings[key] = kb.Action
		// last binding of the same action wins for displaying the hint
		k.hints[kb.Action] = key
	}
	return k
}

// Action returns the action bound to key.
func (k KeyMap) Action(key string) (action string, ok bool) {
	action, ok = k.bindings[strings.ToLower(strings.TrimSpace(key))]
	return
}

// Hints returns a key for every bound action.
func (k KeyMap) Hints() map[string]string {
	ret := make(map[string]string, len(k.hints))
	for a, key := range k.hints {
		ret[a] = key
	}
	return ret
}

// ActionEvent returns the game event of an action name: Start, Next, Replay
// or Degree1 to Degree8.
func ActionEvent(action string) (Event, bool) {
	switch action {
	case "Start":
		return Start{}, true
	case "Next":
		return Next{}, true
	case "Replay":
		return Replay{}, true
	}
	if s, ok := strings.CutPrefix(action, "Degree"); ok {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 8 {
			return SelectDegree{Degree: n - 1}, true
		}
	}
	return nil, false
}
