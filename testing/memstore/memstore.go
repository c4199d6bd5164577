// Package memstore keeps games and players in memory for transport tests.
package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
)

// Store mirrors the Redis repositories: values are JSON encoded so callers never share pointers.
type Store struct {
	mu      sync.Mutex
	games   map[string][]byte
	players map[string][]byte
}

func New() *Store {
	return &Store{
		games:   make(map[string][]byte),
		players: make(map[string][]byte),
	}
}

func (that *Store) Games() *Games {
	return &Games{store: that}
}

func (that *Store) Players() *Players {
	return &Players{store: that}
}

type Games struct {
	store *Store
}

func (that *Games) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	return that.store.put(that.store.games, game.ID, game)
}

func (that *Games) GetByID(_ context.Context, id string) (*entity.Game, error) {
	var game entity.Game
	if !that.store.get(that.store.games, id, &game) {
		return nil, repository.ErrGameNotFound
	}

	return &game, nil
}

func (that *Games) DeleteByID(_ context.Context, id string) error {
	that.store.mu.Lock()
	defer that.store.mu.Unlock()

	if _, ok := that.store.games[id]; !ok {
		return repository.ErrGameNotFound
	}
	delete(that.store.games, id)

	return nil
}

type Players struct {
	store *Store
}

func (that *Players) CreateOrUpdate(_ context.Context, player *entity.Player) error {
	return that.store.put(that.store.players, player.ID, player)
}

func (that *Players) GetByID(_ context.Context, id string) (*entity.Player, error) {
	var player entity.Player
	if !that.store.get(that.store.players, id, &player) {
		return nil, repository.ErrPlayerNotFound
	}

	return &player, nil
}

func (that *Store) put(bucket map[string][]byte, id string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", id, err)
	}

	that.mu.Lock()
	bucket[id] = data
	that.mu.Unlock()

	return nil
}

func (that *Store) get(bucket map[string][]byte, id string, v any) bool {
	that.mu.Lock()
	data, ok := bucket[id]
	that.mu.Unlock()

	if !ok {
		return false
	}

	return json.Unmarshal(data, v) == nil
}
