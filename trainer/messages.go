package trainer

import (
	"bytes"
	_ "embed"
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type (
	// Messages renders the user facing texts of the game in one language.
	Messages struct {
		tag       language.Tag
		templates *template.Template
		keys      map[string]string
	}

	// MessageData is the data available to message templates.
	MessageData struct {
		Scale    string
		Selected string
		Correct  string
		Input    string
		Score    Score
		Accuracy int
		Keys     map[string]string
	}
)

// Message keys.
const (
	MsgIdle      = "idle"
	MsgPlaying   = "playing"
	MsgPrompt    = "prompt"
	MsgCorrect   = "correct"
	MsgIncorrect = "incorrect"
	MsgNext      = "next"
	MsgScore     = "score"
	MsgUnknown   = "unknown"
)

//go:embed messages.yml
var defaultMessagesYaml []byte

var messageCatalog, messageTags = func() (map[language.Tag]map[string]string, []language.Tag) {
	var raw map[string]map[string]string
	dec := yaml.NewDecoder(bytes.NewReader(defaultMessagesYaml))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		panic(fmt.Errorf("failed to unmarshal default messages: %w", err))
	}
	catalog := map[language.Tag]map[string]string{}
	tags := []language.Tag{language.English} // first tag is the fallback of the matcher
	for _, name := range slices.Sorted(maps.Keys(raw)) {
		tag, err := language.Parse(name)
		if err != nil {
			panic(fmt.Errorf("invalid language %q in default messages: %w", name, err))
		}
		catalog[tag] = raw[name]
		if tag != language.English {
			tags = append(tags, tag)
		}
	}
	return catalog, tags
}()

var messageMatcher = language.NewMatcher(messageTags)

// Languages returns the tags of all languages with messages, English first.
func Languages() []language.Tag {
	return slices.Clone(messageTags)
}

// LoadMessages returns the messages for the language closest to lang, which
// is a BCP 47 tag such as "ja" or "en-GB". Unknown or empty languages fall
// back to English.
func LoadMessages(lang string) (*Messages, error) {
	_, index, _ := messageMatcher.Match(language.Make(strings.TrimSpace(lang)))
	tag := messageTags[index]
	root := template.New(tag.String()).Funcs(sprig.TxtFuncMap())
	texts := messageCatalog[tag]
	for _, key := range slices.Sorted(maps.Keys(texts)) {
		if _, err := root.New(key).Parse(texts[key]); err != nil {
			return nil, fmt.Errorf("could not parse message %q for language %v: %w", key, tag, err)
		}
	}
	return &Messages{tag: tag, templates: root, keys: map[string]string{}}, nil
}

// DefaultMessages returns the English messages.
func DefaultMessages() *Messages {
	m, err := LoadMessages("en")
	if err != nil {
		panic(fmt.Errorf("failed to load default messages: %w", err))
	}
	return m
}

// Language is the language the messages were loaded for.
func (m *Messages) Language() language.Tag { return m.tag }

// SetKeys sets the key hints, action name to key, shown in the messages.
func (m *Messages) SetKeys(keys map[string]string) {
	m.keys = maps.Clone(keys)
}

// Render executes the message template key with data. data.Keys defaults to
// the hints given with SetKeys.
func (m *Messages) Render(key string, data MessageData) (string, error) {
	t := m.templates.Lookup(key)
	if t == nil {
		return "", fmt.Errorf("no message %q for language %v", key, m.tag)
	}
	if data.Keys == nil {
		data.Keys = m.keys
	}
	var buf strings.Builder
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("could not render message %q: %w", key, err)
	}
	return buf.String(), nil
}
