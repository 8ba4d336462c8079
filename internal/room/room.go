package room

import (
	"encoding/json"
	"sync"
	"time"

	"codenames/internal/game"
	"codenames/logger"
)

// Room owns one game session: its roster and its authoritative state. A hub
// goroutine (Run) serializes membership changes; game operations lock the
// room mutex directly, so two players selecting cards at the same moment
// can never double-apply a turn switch or award two winners. Rooms never
// share locks, operations on different rooms proceed independently.
type Room struct {
	Code      string
	CreatedAt time.Time

	Register   chan *Player
	Unregister chan *Player

	mu      sync.RWMutex
	players map[string]*Player
	state   *game.State

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func New(code string, board game.Board, now time.Time) *Room {
	return &Room{
		Code:       code,
		CreatedAt:  now,
		Register:   make(chan *Player, 10),
		Unregister: make(chan *Player, 64),
		players:    make(map[string]*Player),
		state:      game.NewState(board, now),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Run is the room hub. It exits when the registry closes the room; any
// players still connected at that point are disconnected.
func (r *Room) Run(reg *Registry) {
	defer close(r.done)

	for {
		select {
		case p := <-r.Register:
			r.addPlayer(p)

		case p := <-r.Unregister:
			if r.removePlayer(p) == 0 {
				reg.RemoveIfEmpty(r.Code)
			}

		case <-r.stop:
			r.disconnectAll()
			return
		}
	}
}

// Close signals the hub to shut down. Safe to call more than once.
func (r *Room) Close() {
	r.closeOnce.Do(func() {
		close(r.stop)
	})
}

func (r *Room) addPlayer(p *Player) {
	r.mu.Lock()
	r.players[p.ID] = p
	total := len(r.players)
	snapshot := GameJoinedPayload{
		GameCode:    r.Code,
		Role:        p.Role,
		Board:       game.ProjectBoard(r.state.Board, p.Role),
		GameState:   r.state.Phase,
		CurrentTeam: r.state.CurrentTeam,
	}
	r.mu.Unlock()

	r.sendTo(p, TypeGameJoined, snapshot)
	r.broadcastExcept(p, TypePlayerJoined, PlayerJoinedPayload{
		PlayerName:   p.Name,
		Role:         p.Role,
		TotalPlayers: total,
	})
	logger.Info("room %s: %s joined as %s (%d players)", r.Code, p.Name, p.Role, total)
}

// removePlayer drops the player and returns the remaining roster size.
// Removing a player that already left is a no-op.
func (r *Room) removePlayer(p *Player) int {
	r.mu.Lock()
	if _, ok := r.players[p.ID]; !ok {
		n := len(r.players)
		r.mu.Unlock()
		return n
	}
	delete(r.players, p.ID)
	n := len(r.players)
	r.mu.Unlock()

	if n > 0 {
		r.broadcast(TypePlayerLeft, PlayerLeftPayload{
			PlayerName:   p.Name,
			TotalPlayers: n,
		})
	}
	logger.Info("room %s: %s left (%d players)", r.Code, p.Name, n)
	return n
}

func (r *Room) disconnectAll() {
	r.mu.Lock()
	stragglers := make([]*Player, 0, len(r.players))
	for _, p := range r.players {
		stragglers = append(stragglers, p)
	}
	r.players = make(map[string]*Player)
	r.mu.Unlock()

	for _, p := range stragglers {
		p.cleanup()
	}
}

func (r *Room) dispatch(p *Player, msg WSMessage) {
	switch msg.Type {
	case TypeStartGame:
		r.StartGame()

	case TypeEndTurn:
		r.EndTurn()

	case TypeSelectCard:
		var payload SelectCardPayload
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			logger.Debug("room %s: bad select-card payload from %s: %v", r.Code, p.ID, err)
			return
		}
		r.SelectCard(payload.Index)

	default:
		logger.Debug("room %s: unknown message type %q from %s", r.Code, msg.Type, p.ID)
	}
}

// StartGame begins play. A silent no-op unless the room is still waiting.
func (r *Room) StartGame() bool {
	r.mu.Lock()
	applied := r.state.Start()
	team := r.state.CurrentTeam
	r.mu.Unlock()

	if !applied {
		return false
	}
	logger.Info("room %s: game started, %s to move", r.Code, team)
	r.broadcast(TypeGameStarted, TurnPayload{CurrentTeam: team})
	return true
}

// EndTurn flips the current team. A silent no-op outside of play.
func (r *Room) EndTurn() bool {
	r.mu.Lock()
	applied := r.state.EndTurn()
	team := r.state.CurrentTeam
	r.mu.Unlock()

	if !applied {
		return false
	}
	r.broadcast(TypeEndTurn, TurnPayload{CurrentTeam: team})
	return true
}

// SelectCard reveals a card and broadcasts the resulting state to every
// player, projected for that player's role. No-ops stay silent on the wire.
func (r *Room) SelectCard(index int) game.Outcome {
	r.mu.Lock()
	out := r.state.SelectCard(index)
	if !out.Applied {
		r.mu.Unlock()
		return out
	}
	board := r.state.Board // value copy, safe to project after unlock
	team := r.state.CurrentTeam
	phase := r.state.Phase
	var winner *game.Team
	if r.state.Winner != "" {
		w := r.state.Winner
		winner = &w
	}
	recipients := make([]*Player, 0, len(r.players))
	for _, p := range r.players {
		recipients = append(recipients, p)
	}
	r.mu.Unlock()

	logger.Info("room %s: card %d revealed (%s %q)", r.Code, index, out.Card.Color, out.Card.Word)
	if out.GameOver {
		logger.Info("room %s: game over, %s wins", r.Code, out.Winner)
	}

	for _, p := range recipients {
		r.sendTo(p, TypeGameUpdated, GameUpdatedPayload{
			Board:       game.ProjectBoard(board, p.Role),
			CurrentTeam: team,
			GameState:   phase,
			Winner:      winner,
		})
	}
	return out
}

// Empty reports whether the roster is drained.
func (r *Room) Empty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players) == 0
}

// Snapshot returns the roster-safe summary used by the room info endpoint.
func (r *Room) Snapshot() (game.Phase, game.Team, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Phase, r.state.CurrentTeam, len(r.players)
}

func encode(t string, d any) ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return json.Marshal(WSMessage{Type: t, Data: data})
}

func (r *Room) broadcast(t string, d any) {
	payload, err := encode(t, d)
	if err != nil {
		logger.Error("room %s: marshal %s: %v", r.Code, t, err)
		return
	}
	r.mu.RLock()
	for _, p := range r.players {
		select {
		case p.send <- payload:
		default:
		}
	}
	r.mu.RUnlock()
}

func (r *Room) broadcastExcept(except *Player, t string, d any) {
	payload, err := encode(t, d)
	if err != nil {
		logger.Error("room %s: marshal %s: %v", r.Code, t, err)
		return
	}
	r.mu.RLock()
	for _, p := range r.players {
		if p == except {
			continue
		}
		select {
		case p.send <- payload:
		default:
		}
	}
	r.mu.RUnlock()
}

func (r *Room) sendTo(p *Player, t string, d any) {
	payload, err := encode(t, d)
	if err != nil {
		logger.Error("room %s: marshal %s: %v", r.Code, t, err)
		return
	}
	select {
	case p.send <- payload:
	default:
		logger.Error("room %s: send buffer full for player %s", r.Code, p.ID)
	}
}
