package db

import (
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Player is a chat user with persisted stats and per-game state. A Player may
// be shared between concurrent requests, so all access goes through its lock.
type Player struct {
	Provider string
	ID       string
	Name     string

	stats *Store
	games *Store

	mu    sync.Mutex
	data  map[string]any
	cache map[string]map[string]any

	expiry time.Time
}

// PlayerKey is the storage id for a provider-scoped player id.
func PlayerKey(provider string, playerID string) string {
	return provider + "_" + playerID
}

func (p *Player) Key() string {
	return PlayerKey(p.Provider, p.ID)
}

// GetData returns a stats value, or nil when unset.
func (p *Player) GetData(key string) any {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.data[key]
}

// SetData updates a stats value and persists the whole player document.
func (p *Player) SetData(key string, value any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.data[key] = value

	return p.stats.Put(p.Key(), p.data)
}

// GetGame returns the state document for a game, or an empty map.
func (p *Player) GetGame(gameID string) (map[string]any, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if game, ok := p.cache[gameID]; ok {
		return game, nil
	}

	game, err := p.games.Get(gameID)

	if err != nil {
		return nil, err
	}

	if game == nil {
		game = make(map[string]any)
	}

	p.cache[gameID] = game

	return game, nil
}

func (p *Player) SetGame(gameID string, game map[string]any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cache[gameID] = game

	return p.games.Put(gameID, game)
}

func (p *Player) expired(now time.Time) bool {
	return now.After(p.expiry)
}

// Repository hands out players backed by the flat-file store, keeping a
// TTL'd in-memory cache so repeated commands hit the disk less.
type Repository struct {
	players  *Store
	dataDir  string
	lifespan time.Duration

	mu    sync.Mutex
	cache map[string]*Player

	now func() time.Time
}

func NewRepository(dataDir string) *Repository {
	return &Repository{
		players:  OpenStore(filepath.Join(dataDir, "players.json")),
		dataDir:  dataDir,
		lifespan: time.Hour,
		cache:    make(map[string]*Player),
		now:      time.Now,
	}
}

// Player loads (or creates) the player for a provider-scoped id.
func (r *Repository) Player(provider string, playerID string, name string) (*Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := PlayerKey(provider, playerID)

	if player, ok := r.cache[key]; ok {
		if !player.expired(r.now()) {
			return player, nil
		}

		delete(r.cache, key)
	}

	player, err := r.load(provider, playerID, name)

	if err != nil {
		return nil, err
	}

	r.cache[key] = player

	return player, nil
}

// PlayerByName finds a player by display name, or returns nil when unknown.
func (r *Repository) PlayerByName(provider string, name string) (*Player, error) {
	r.mu.Lock()

	for _, player := range r.cache {
		if player.Provider == provider && player.Name == name {
			r.mu.Unlock()
			return r.Player(provider, player.ID, name)
		}
	}

	r.mu.Unlock()

	key, _, err := r.players.Find(func(id string, doc map[string]any) bool {
		docName, _ := doc["name"].(string)
		return docName == name && strings.HasPrefix(id, provider+"_")
	})

	if err != nil {
		return nil, err
	}

	if key == "" {
		return nil, nil
	}

	return r.Player(provider, strings.TrimPrefix(key, provider+"_"), name)
}

// Cleanup drops expired players from the in-memory cache.
func (r *Repository) Cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, player := range r.cache {
		if player.expired(r.now()) {
			delete(r.cache, key)
		}
	}
}

func (r *Repository) load(provider string, playerID string, name string) (*Player, error) {
	key := PlayerKey(provider, playerID)

	data, err := r.players.Get(key)

	if err != nil {
		return nil, err
	}

	fresh := data == nil

	if fresh {
		data = map[string]any{"player_id": key}
	}

	data["name"] = name

	player := &Player{
		Provider: provider,
		ID:       playerID,
		Name:     name,
		stats:    r.players,
		games:    OpenStore(filepath.Join(r.dataDir, "gamestates", key+".json")),
		data:     data,
		cache:    make(map[string]map[string]any),
		expiry:   r.now().Add(r.lifespan),
	}

	if fresh {
		if err := r.players.Put(key, data); err != nil {
			return nil, err
		}
	}

	return player, nil
}
