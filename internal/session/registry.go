package session

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/reversi"
)

var (
	ErrNotFound    = errors.New("game not found")
	ErrGameOver    = errors.New("game is over")
	ErrIllegalMove = errors.New("illegal move")
	ErrNotYourTurn = errors.New("not your turn")
)

// Registry keeps all games in memory. It is safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	rng      *rand.Rand
	ttl      time.Duration
	now      func() time.Time
}

// NewRegistry creates an empty registry. Sessions idle for longer than ttl are
// removed by Prune. Seed zero means a time based seed.
func NewRegistry(seed uint64, ttl time.Duration) *Registry {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Registry{
		sessions: make(map[string]*Session),
		rng:      reversi.NewRand(seed),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a new game.
func (r *Registry) Create(mode Mode) (*Session, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	s := &Session{
		ID:      uuid.NewString(),
		Mode:    mode,
		Game:    reversi.NewGame(),
		Created: now,
		Updated: now,
		policy:  reversi.RandomPolicy(reversi.NewRand(r.rng.Uint64())),
	}

	r.sessions[s.ID] = s

	slog.Debug("Created game", "id", s.ID, "mode", mode)

	return s.clone(), nil
}

// Get returns a copy of a session.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	return s.clone(), nil
}

// List returns copies of all sessions, most recently updated first.
func (r *Registry) List() []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		list = append(list, s.clone())
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Updated.After(list[j].Updated)
	})

	return list
}

// Delete removes a session.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}

	delete(r.sessions, id)
	return nil
}

// Move plays move for the player to move. Afterwards players without moves pass
// and in ModeAI the random opponent replies until it's the human's turn again
// or the game is over.
func (r *Registry) Move(id string, move reversi.Position) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	if s.Game.IsTerminal() {
		return nil, ErrGameOver
	}

	if !s.IsHumanTurn() {
		return nil, ErrNotYourTurn
	}

	if !s.Game.ApplyMove(move, s.Game.Turn()) {
		return nil, ErrIllegalMove
	}

	s.LastMoves = []reversi.Position{move}
	s.advance()
	s.Updated = r.now()

	if s.Game.Over() {
		black, white := s.Game.Score()
		slog.Info("Game over", "id", s.ID, "mode", s.Mode, "black", black, "white", white)
	}

	return s.clone(), nil
}

// Len returns the number of sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Prune removes sessions that were not updated within the ttl and returns how
// many were removed.
func (r *Registry) Prune() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)

	removed := 0
	for id, s := range r.sessions {
		if s.Updated.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}

	return removed
}

// Run calls Prune every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := r.Prune(); removed > 0 {
				slog.Info("Removed idle games", "count", removed)
			}
		}
	}
}
