package pong

import "testing"

func TestScoreboardDecidesOnPointPastThreshold(t *testing.T) {
	for _, side := range []Side{Left, Right} {
		s := NewScoreboard(DefaultPhysics().WinThreshold)
		for i := 1; i <= s.Threshold; i++ {
			if out := s.Award(side); out.Decided {
				t.Fatalf("%s: point %d decided the match early", side, i)
			}
		}
		if s.Score(side) != s.Threshold {
			t.Fatalf("%s: score %d, want %d", side, s.Score(side), s.Threshold)
		}

		out := s.Award(side)
		if !out.Decided || out.Winner != side {
			t.Errorf("%s: expected decided outcome for %s, got %+v", side, side, out)
		}
		if s.Score(side) != s.Threshold+1 {
			t.Errorf("%s: expected board to show %d, got %d", side, s.Threshold+1, s.Score(side))
		}
		if s.Score(side.Opposite()) != 0 {
			t.Errorf("%s: opponent score changed to %d", side, s.Score(side.Opposite()))
		}
	}
}

func TestScoreboardSidesAreIndependent(t *testing.T) {
	s := NewScoreboard(2)
	steps := []struct {
		side    Side
		decided bool
	}{
		{Left, false},
		{Right, false},
		{Left, false},
		{Right, false},
		{Right, true},
	}
	for i, st := range steps {
		out := s.Award(st.side)
		if out.Decided != st.decided {
			t.Fatalf("step %d (%s): decided=%v, want %v", i, st.side, out.Decided, st.decided)
		}
		if out.Decided && out.Winner != Right {
			t.Fatalf("step %d: winner %s, want right", i, out.Winner)
		}
	}
	if s.Left != 2 || s.Right != 3 {
		t.Errorf("Expected 2-3, got %d-%d", s.Left, s.Right)
	}
}
