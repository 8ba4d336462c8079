package room

import (
	"context"
	"sync"
	"time"

	"codenames/internal/game"
	"codenames/internal/words"
	"codenames/logger"
)

// Registry owns every live room. Rooms only ever enter and leave the map
// here; all registry state is guarded by its own lock, separate from any
// room's lock.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room

	source    words.Source
	retention time.Duration

	// swappable in tests
	now     func() time.Time
	newCode func() string
}

func NewRegistry(source words.Source, retention time.Duration) *Registry {
	return &Registry{
		rooms:     make(map[string]*Room),
		source:    source,
		retention: retention,
		now:       time.Now,
		newCode:   NewCode,
	}
}

// CreateRoom generates a fresh board and installs a waiting room under a
// code no live room is using, regenerating on collision.
func (reg *Registry) CreateRoom() (*Room, error) {
	board, err := game.GenerateBoard(reg.source.Words())
	if err != nil {
		return nil, err
	}

	reg.mu.Lock()
	var code string
	for {
		code = reg.newCode()
		if _, taken := reg.rooms[code]; !taken {
			break
		}
	}
	r := New(code, board, reg.now())
	reg.rooms[code] = r
	reg.mu.Unlock()

	go r.Run(reg)
	logger.Info("room %s created", code)
	return r, nil
}

func (reg *Registry) Get(code string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.rooms[code]
	return r, ok
}

func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

// RemoveIfEmpty tears the room down if its last player is gone. Called by
// the room hub after each leave that drains the roster; calling it for a
// missing or repopulated room does nothing.
func (reg *Registry) RemoveIfEmpty(code string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	r, ok := reg.rooms[code]
	if !ok || !r.Empty() {
		return
	}
	delete(reg.rooms, code)
	r.Close()
	logger.Info("room %s removed, empty", code)
}

// SweepExpired removes every room that is empty or older than the retention
// threshold, and returns how many were removed.
func (reg *Registry) SweepExpired(now time.Time) int {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	removed := 0
	for code, r := range reg.rooms {
		if !r.Empty() && now.Sub(r.CreatedAt) <= reg.retention {
			continue
		}
		delete(reg.rooms, code)
		r.Close()
		removed++
		logger.Info("room %s swept (age %s)", code, now.Sub(r.CreatedAt).Truncate(time.Second))
	}
	return removed
}

// Run ticks the expiry sweep until ctx is canceled.
func (reg *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := reg.SweepExpired(now); n > 0 {
				logger.Info("sweep removed %d rooms, %d live", n, reg.Len())
			}
		}
	}
}
