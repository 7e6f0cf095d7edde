package trainer

import "math"

// Score is the running tally of a game.
type Score struct {
	Total   int
	Correct int
	Streak  int
}

// Record adds one answer to the score.
func (s *Score) Record(correct bool) {
	s.Total++
	if correct {
		s.Correct++
		s.Streak++
	} else {
		s.Streak = 0
	}
}

// Accuracy is the share of correct answers in percent, rounded to the nearest
// integer with halves rounded up. It is 0 before the first answer.
func (s Score) Accuracy() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Floor(100*float64(s.Correct)/float64(s.Total) + 0.5))
}
