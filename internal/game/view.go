package game

// CardView is the serialized form of a card as one viewer is allowed to see
// it. Word and position stay visible so operatives can pick cards.
type CardView struct {
	Word     string `json:"word"`
	Color    Color  `json:"color"`
	Revealed bool   `json:"revealed"`
	Position int    `json:"position"`
}

// ProjectBoard renders the board for a role. Spymasters see every true
// color; operatives see ColorHidden until a card is revealed. The result is
// a fresh slice, the board itself is never handed out.
func ProjectBoard(b Board, role Role) []CardView {
	views := make([]CardView, BoardSize)
	for i, c := range b {
		color := c.Color
		if role != RoleSpymaster && !c.Revealed {
			color = ColorHidden
		}
		views[i] = CardView{
			Word:     c.Word,
			Color:    color,
			Revealed: c.Revealed,
			Position: c.Position,
		}
	}
	return views
}
