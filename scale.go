package scaledegree

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"gopkg.in/yaml.v3"
)

// NumDegrees is the number of notes in a scale, counting the octave on top of
// the root as the eighth degree.
const NumDegrees = 8

type (
	// Mode is the interval pattern of a scale.
	Mode string

	// Scale is a root pitch class together with the absolute semitone offsets
	// (from C4) of its eight degrees. Degrees[0] is the root and Degrees[7] the
	// root an octave higher.
	Scale struct {
		Name    string
		Mode    Mode
		Root    int
		Degrees [NumDegrees]int
	}

	// Scales is the table questions are drawn from.
	Scales []Scale

	scaleYml struct {
		Name    string `yaml:"name"`
		Mode    Mode   `yaml:"mode"`
		Root    int    `yaml:"root"`
		Degrees []int  `yaml:"degrees,flow"`
	}
)

const (
	Major Mode = "major"
	Minor Mode = "minor"
)

var modeIntervals = map[Mode][NumDegrees]int{
	Major: {0, 2, 4, 5, 7, 9, 11, 12},
	Minor: {0, 2, 3, 5, 7, 8, 10, 12},
}

//go:embed scales.yml
var defaultScalesYaml []byte

var defaultScales = func() Scales {
	s, err := LoadScales(defaultScalesYaml)
	if err != nil {
		panic(fmt.Errorf("failed to load default scales: %w", err))
	}
	return s
}()

// DefaultScales returns the built-in table: twelve major scales followed by
// twelve natural minor scales. The returned slice is a copy.
func DefaultScales() Scales {
	ret := make(Scales, len(defaultScales))
	copy(ret, defaultScales)
	return ret
}

// LoadScales parses a scale table from yml and validates it.
func LoadScales(data []byte) (Scales, error) {
	var entries []scaleYml
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("could not parse scale table: %w", err)
	}
	ret := make(Scales, 0, len(entries))
	for i, e := range entries {
		if len(e.Degrees) != NumDegrees {
			return nil, fmt.Errorf("scale %d (%q) has %d degrees, expected %d", i, e.Name, len(e.Degrees), NumDegrees)
		}
		s := Scale{Name: e.Name, Mode: e.Mode, Root: e.Root}
		copy(s.Degrees[:], e.Degrees)
		ret = append(ret, s)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Validate checks that every scale is well formed and that no two scales of
// the same mode share a root.
func (s Scales) Validate() error {
	if len(s) == 0 {
		return errors.New("scale table is empty")
	}
	roots := map[Mode][12]bool{}
	for _, scale := range s {
		if err := scale.Validate(); err != nil {
			return err
		}
		seen := roots[scale.Mode]
		if seen[scale.Root] {
			return fmt.Errorf("duplicate %v scale for root %v", scale.Mode, PitchClassName(scale.Root))
		}
		seen[scale.Root] = true
		roots[scale.Mode] = seen
	}
	return nil
}

// Validate checks the degrees of a single scale against its mode.
func (s Scale) Validate() error {
	intervals, ok := modeIntervals[s.Mode]
	if !ok {
		return fmt.Errorf("scale %q: unknown mode %q", s.Name, s.Mode)
	}
	if s.Root < 0 || s.Root > 11 {
		return fmt.Errorf("scale %q: root %d is not a pitch class", s.Name, s.Root)
	}
	if s.Degrees[0] != s.Root {
		return fmt.Errorf("scale %q: first degree %d does not match root %d", s.Name, s.Degrees[0], s.Root)
	}
	for i, d := range s.Degrees {
		if i > 0 && d <= s.Degrees[i-1] {
			return fmt.Errorf("scale %q: degrees are not strictly increasing at degree %d", s.Name, i+1)
		}
		if d-s.Degrees[0] != intervals[i] {
			return fmt.Errorf("scale %q: degree %d is %d semitones above the root, %v scales need %d", s.Name, i+1, d-s.Degrees[0], s.Mode, intervals[i])
		}
	}
	return nil
}

// Random picks a scale uniformly from the table. It panics if the table is
// empty.
func (s Scales) Random(r *rand.Rand) Scale {
	return s[r.IntN(len(s))]
}

// ByName returns the scale with the given name, ignoring case and surrounding
// whitespace.
func (s Scales) ByName(name string) (Scale, bool) {
	name = strings.TrimSpace(name)
	for _, scale := range s {
		if strings.EqualFold(scale.Name, name) {
			return scale, true
		}
	}
	return Scale{}, false
}

// DegreeOf returns the degree whose offset equals offset exactly. Failing
// that, it returns the lowest degree with the same pitch class.
func (s Scale) DegreeOf(offset int) (degree int, ok bool) {
	for i, d := range s.Degrees {
		if d == offset {
			return i, true
		}
	}
	pc := pitchClass(offset)
	for i, d := range s.Degrees {
		if pitchClass(d) == pc {
			return i, true
		}
	}
	return 0, false
}

func (s Scale) String() string {
	return s.Name
}
