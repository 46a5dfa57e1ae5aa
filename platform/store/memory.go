package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/DedS3t/monopoly-engine/app/models"
)

// Memory is an in-process Store. Transactions snapshot the whole state and
// restore it when fn fails, giving the same all-or-nothing guarantee the
// Postgres store gets from real transactions.
type Memory struct {
	mu         sync.RWMutex
	inTx       bool
	games      map[string]models.Game
	players    map[string]models.Player
	ownerships map[string]models.Ownership
	users      map[string]models.User
}

func NewMemory() *Memory {
	return &Memory{
		games:      make(map[string]models.Game),
		players:    make(map[string]models.Player),
		ownerships: make(map[string]models.Ownership),
		users:      make(map[string]models.User),
	}
}

func (s *Memory) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Memory) rlock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Memory) CreateGame(game *models.Game) error {
	defer s.lock()()
	if _, ok := s.games[game.Id]; ok {
		return fmt.Errorf("%w: game %s exists", ErrStoreFailure, game.Id)
	}
	s.games[game.Id] = *game
	return nil
}

func (s *Memory) GetGame(id string) (*models.Game, error) {
	defer s.rlock()()
	game, ok := s.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: game %s", ErrNotFound, id)
	}
	return &game, nil
}

func (s *Memory) UpdateGame(game *models.Game) error {
	defer s.lock()()
	if _, ok := s.games[game.Id]; !ok {
		return fmt.Errorf("%w: game %s", ErrNotFound, game.Id)
	}
	s.games[game.Id] = *game
	return nil
}

func (s *Memory) DeleteGame(id string) error {
	defer s.lock()()
	delete(s.games, id)
	return nil
}

func (s *Memory) CreatePlayer(player *models.Player) error {
	defer s.lock()()
	s.players[player.Id] = *player
	return nil
}

func (s *Memory) GetPlayer(id string) (*models.Player, error) {
	defer s.rlock()()
	player, ok := s.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: player %s", ErrNotFound, id)
	}
	return &player, nil
}

func (s *Memory) PlayersByGame(gameID string) ([]models.Player, error) {
	defer s.rlock()()
	var players []models.Player
	for _, player := range s.players {
		if player.GameId == gameID {
			players = append(players, player)
		}
	}
	sortPlayers(players)
	return players, nil
}

func (s *Memory) UpdatePlayer(player *models.Player) error {
	defer s.lock()()
	if _, ok := s.players[player.Id]; !ok {
		return fmt.Errorf("%w: player %s", ErrNotFound, player.Id)
	}
	s.players[player.Id] = *player
	return nil
}

func (s *Memory) DeletePlayer(id string) error {
	defer s.lock()()
	delete(s.players, id)
	return nil
}

func (s *Memory) DeletePlayersByGame(gameID string) error {
	defer s.lock()()
	for id, player := range s.players {
		if player.GameId == gameID {
			delete(s.players, id)
		}
	}
	return nil
}

func (s *Memory) CreateOwnership(ownership *models.Ownership) error {
	defer s.lock()()
	s.ownerships[ownership.Id] = *ownership
	return nil
}

func (s *Memory) GetOwnership(gameID string, position int) (*models.Ownership, error) {
	defer s.rlock()()
	for _, ownership := range s.ownerships {
		if ownership.GameId == gameID && ownership.PropertyId == position {
			o := ownership
			return &o, nil
		}
	}
	return nil, fmt.Errorf("%w: ownership of %d in game %s", ErrNotFound, position, gameID)
}

func (s *Memory) OwnershipsByPlayer(playerID string) ([]models.Ownership, error) {
	defer s.rlock()()
	var ownerships []models.Ownership
	for _, ownership := range s.ownerships {
		if ownership.PlayerId == playerID {
			ownerships = append(ownerships, ownership)
		}
	}
	sortOwnerships(ownerships)
	return ownerships, nil
}

func (s *Memory) OwnershipsByGame(gameID string) ([]models.Ownership, error) {
	defer s.rlock()()
	var ownerships []models.Ownership
	for _, ownership := range s.ownerships {
		if ownership.GameId == gameID {
			ownerships = append(ownerships, ownership)
		}
	}
	sortOwnerships(ownerships)
	return ownerships, nil
}

func (s *Memory) UpdateOwnership(ownership *models.Ownership) error {
	defer s.lock()()
	if _, ok := s.ownerships[ownership.Id]; !ok {
		return fmt.Errorf("%w: ownership %s", ErrNotFound, ownership.Id)
	}
	s.ownerships[ownership.Id] = *ownership
	return nil
}

func (s *Memory) DeleteOwnership(id string) error {
	defer s.lock()()
	delete(s.ownerships, id)
	return nil
}

func (s *Memory) DeleteOwnershipsByPlayer(playerID string) error {
	defer s.lock()()
	for id, ownership := range s.ownerships {
		if ownership.PlayerId == playerID {
			delete(s.ownerships, id)
		}
	}
	return nil
}

func (s *Memory) DeleteOwnershipsByGame(gameID string) error {
	defer s.lock()()
	for id, ownership := range s.ownerships {
		if ownership.GameId == gameID {
			delete(s.ownerships, id)
		}
	}
	return nil
}

func (s *Memory) CreateUser(user *models.User) error {
	defer s.lock()()
	s.users[user.Id] = *user
	return nil
}

func (s *Memory) UserByEmail(email string) (*models.User, error) {
	defer s.rlock()()
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
}

func (s *Memory) RunInTransaction(fn func(tx Store) error) error {
	if s.inTx {
		return fn(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.clone()
	tx := &Memory{
		inTx:       true,
		games:      s.games,
		players:    s.players,
		ownerships: s.ownerships,
		users:      s.users,
	}
	if err := fn(tx); err != nil {
		s.games = snapshot.games
		s.players = snapshot.players
		s.ownerships = snapshot.ownerships
		s.users = snapshot.users
		return err
	}
	return nil
}

func (s *Memory) clone() *Memory {
	c := NewMemory()
	for k, v := range s.games {
		c.games[k] = v
	}
	for k, v := range s.players {
		c.players[k] = v
	}
	for k, v := range s.ownerships {
		c.ownerships[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	return c
}

func sortPlayers(players []models.Player) {
	sort.Slice(players, func(i, j int) bool { return players[i].OrderId < players[j].OrderId })
}

func sortOwnerships(ownerships []models.Ownership) {
	sort.Slice(ownerships, func(i, j int) bool { return ownerships[i].PropertyId < ownerships[j].PropertyId })
}
