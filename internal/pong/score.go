package pong

// Outcome is the result of awarding a point.
type Outcome struct {
	Decided bool
	Winner  Side
}

type Scoreboard struct {
	Left      int
	Right     int
	Threshold int
}

func NewScoreboard(threshold int) *Scoreboard {
	return &Scoreboard{Threshold: threshold}
}

func (s *Scoreboard) Score(side Side) int {
	if side == Left {
		return s.Left
	}
	return s.Right
}

// Award adds a point for side. The threshold is checked against the score
// held before this point, so a side sitting on the threshold wins with its
// next point and the board can show one past the threshold.
func (s *Scoreboard) Award(side Side) Outcome {
	var out Outcome
	if s.Score(side) >= s.Threshold {
		out = Outcome{Decided: true, Winner: side}
	}
	if side == Left {
		s.Left++
	} else {
		s.Right++
	}
	return out
}
