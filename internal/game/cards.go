package game

const (
	Rows    = 5
	Columns = 5
	// BoardSize is the number of cards on a board.
	BoardSize = Rows * Columns
)

// Fixed color distribution of a fresh board.
const (
	RedCards      = 9
	BlueCards     = 8
	NeutralCards  = 7
	AssassinCards = 1
)

type Color string

const (
	ColorRed      Color = "red"
	ColorBlue     Color = "blue"
	ColorNeutral  Color = "neutral"
	ColorAssassin Color = "assassin"
	// ColorHidden is only ever produced by projections, never stored on a board.
	ColorHidden Color = "hidden"
)

type Team string

const (
	TeamRed  Team = "red"
	TeamBlue Team = "blue"
)

func (t Team) Opponent() Team {
	if t == TeamRed {
		return TeamBlue
	}
	return TeamRed
}

// Color returns the card color belonging to the team.
func (t Team) Color() Color {
	if t == TeamRed {
		return ColorRed
	}
	return ColorBlue
}

type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

type Role string

const (
	RoleSpymaster Role = "spymaster"
	RoleOperative Role = "operative"
)

// ParseRole maps a wire role tag to a Role. Only "spymaster" is privileged;
// every other tag (including the legacy "player") is an operative.
func ParseRole(s string) Role {
	if s == string(RoleSpymaster) {
		return RoleSpymaster
	}
	return RoleOperative
}

// Card is one cell of the board. Word, Color and Position never change after
// generation; Revealed flips false to true at most once.
type Card struct {
	Word     string `json:"word"`
	Color    Color  `json:"color"`
	Revealed bool   `json:"revealed"`
	Position int    `json:"position"`
}

// Board is a value type on purpose: copying it snapshots all 25 cards.
type Board [BoardSize]Card
