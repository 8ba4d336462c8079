package room

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"codenames/internal/game"
	"codenames/logger"
)

const (
	sendBuffer   = 256
	pingInterval = 54 * time.Second
)

// Player is one connection's membership in a room, keyed by a
// server-generated connection ID.
type Player struct {
	ID   string
	Name string
	Role game.Role

	conn    Conn
	send    chan []byte
	ctx     context.Context
	cancel  context.CancelFunc
	once    sync.Once
	limiter *rate.Limiter
}

func NewPlayer(id, name string, role game.Role, conn Conn) *Player {
	ctx, cancel := context.WithCancel(context.Background())
	return &Player{
		ID:      id,
		Name:    name,
		Role:    role,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		ctx:     ctx,
		cancel:  cancel,
		limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
}

// cleanup tears the connection down once. The send channel stays open so
// in-flight broadcasts never hit a closed channel; WritePump exits via ctx.
func (p *Player) cleanup() {
	p.once.Do(func() {
		p.cancel()
		p.conn.Close()
	})
}

func (p *Player) ReadPump(r *Room) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("player %s: read pump panic: %v", p.ID, rec)
		}
		p.cleanup()
		select {
		case r.Unregister <- p:
		case <-r.done:
		}
	}()

	for {
		select {
		case <-p.ctx.Done():
			return
		default:
		}

		data, err := p.conn.Read()
		if err != nil {
			return
		}
		if !p.limiter.Allow() {
			logger.Debug("player %s: message dropped, rate limited", p.ID)
			continue
		}

		var msg WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Debug("player %s: invalid message: %v", p.ID, err)
			continue
		}
		r.dispatch(p, msg)
	}
}

func (p *Player) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		p.cleanup()
	}()

	for {
		select {
		case <-p.ctx.Done():
			return

		case msg := <-p.send:
			if err := p.conn.Write(msg); err != nil {
				logger.Debug("player %s: write failed: %v", p.ID, err)
				return
			}

		case <-ticker.C:
			if err := p.conn.Ping(); err != nil {
				return
			}
		}
	}
}
