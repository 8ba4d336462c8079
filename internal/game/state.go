package game

import "time"

// State is the authoritative game state of one room. It is not safe for
// concurrent use; the owning room serializes access.
type State struct {
	Board       Board
	CurrentTeam Team
	Phase       Phase
	Winner      Team // empty until Phase is PhaseFinished
	CreatedAt   time.Time
}

func NewState(board Board, now time.Time) *State {
	return &State{
		Board:       board,
		CurrentTeam: TeamRed,
		Phase:       PhaseWaiting,
		CreatedAt:   now,
	}
}

// Start moves the game from waiting to playing. It reports whether it
// applied; calling it again, or after the game finished, changes nothing.
func (s *State) Start() bool {
	if s.Phase != PhaseWaiting {
		return false
	}
	s.Phase = PhasePlaying
	return true
}

// EndTurn hands the turn to the other team. Only applies while playing.
func (s *State) EndTurn() bool {
	if s.Phase != PhasePlaying {
		return false
	}
	s.CurrentTeam = s.CurrentTeam.Opponent()
	return true
}

// Outcome describes what a SelectCard call did. Applied is false for every
// silent no-op case: wrong phase, index out of range, card already revealed.
type Outcome struct {
	Applied      bool
	Card         Card
	TurnSwitched bool
	GameOver     bool
	Winner       Team
}

// SelectCard reveals the card at index and applies the outcome rules in
// precedence order: assassin ends the game for the opponent, a card of the
// current team keeps the turn and may win the game, anything else hands the
// turn over.
func (s *State) SelectCard(index int) Outcome {
	if s.Phase != PhasePlaying || index < 0 || index >= BoardSize {
		return Outcome{}
	}
	card := &s.Board[index]
	if card.Revealed {
		return Outcome{}
	}
	card.Revealed = true

	out := Outcome{Applied: true}
	switch card.Color {
	case ColorAssassin:
		s.Phase = PhaseFinished
		s.Winner = s.CurrentTeam.Opponent()
	case s.CurrentTeam.Color():
		// Win check runs before any turn switch could.
		if s.RemainingFor(s.CurrentTeam) == 0 {
			s.Phase = PhaseFinished
			s.Winner = s.CurrentTeam
		}
	default:
		s.CurrentTeam = s.CurrentTeam.Opponent()
		out.TurnSwitched = true
	}

	out.Card = *card
	out.GameOver = s.Phase == PhaseFinished
	out.Winner = s.Winner
	return out
}

// RemainingFor counts the team's unrevealed cards.
func (s *State) RemainingFor(t Team) int {
	n := 0
	for _, c := range s.Board {
		if c.Color == t.Color() && !c.Revealed {
			n++
		}
	}
	return n
}
