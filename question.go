package scaledegree

import (
	"fmt"
	"math/rand/v2"
)

// Question is one round of the exercise: the scale whose root is played first
// and the degree of the test note played after it.
type Question struct {
	Scale  Scale
	Degree int
}

// NewQuestion picks a random scale from scales and a random degree in it.
func NewQuestion(scales Scales, r *rand.Rand) Question {
	return Question{Scale: scales.Random(r), Degree: r.IntN(NumDegrees)}
}

// Offset is the semitone offset of the test note.
func (q Question) Offset() int { return q.Scale.Degrees[q.Degree] }

// RootOffset is the semitone offset of the root note.
func (q Question) RootOffset() int { return q.Scale.Degrees[0] }

// Sequence returns the offsets in the order they are played.
func (q Question) Sequence() []int { return []int{q.RootOffset(), q.Offset()} }

func (q Question) String() string {
	return fmt.Sprintf("%v, degree %d (%v)", q.Scale.Name, q.Degree+1, PitchClassName(q.Offset()))
}
