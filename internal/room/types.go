package room

import (
	"encoding/json"

	"codenames/internal/game"
)

// WSMessage is the envelope for every frame in both directions.
type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Client to server message types.
const (
	TypeStartGame  = "start-game"
	TypeEndTurn    = "end-turn"
	TypeSelectCard = "select-card"
)

// Server to client message types. TypeEndTurn is echoed back for turn
// changes, matching the client protocol.
const (
	TypeGameJoined   = "game-joined"
	TypePlayerJoined = "player-joined"
	TypePlayerLeft   = "player-left"
	TypeGameStarted  = "game-started"
	TypeGameUpdated  = "game-updated"
)

type SelectCardPayload struct {
	Index int `json:"index"`
}

type GameJoinedPayload struct {
	GameCode    string          `json:"gameCode"`
	Role        game.Role       `json:"role"`
	Board       []game.CardView `json:"board"`
	GameState   game.Phase      `json:"gameState"`
	CurrentTeam game.Team       `json:"currentTeam"`
}

type PlayerJoinedPayload struct {
	PlayerName   string    `json:"playerName"`
	Role         game.Role `json:"role"`
	TotalPlayers int       `json:"totalPlayers"`
}

type PlayerLeftPayload struct {
	PlayerName   string `json:"playerName"`
	TotalPlayers int    `json:"totalPlayers"`
}

type TurnPayload struct {
	CurrentTeam game.Team `json:"currentTeam"`
}

type GameUpdatedPayload struct {
	Board       []game.CardView `json:"board"`
	CurrentTeam game.Team       `json:"currentTeam"`
	GameState   game.Phase      `json:"gameState"`
	Winner      *game.Team      `json:"winner"`
}
