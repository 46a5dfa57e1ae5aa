// Package store is the record-store abstraction the engine runs against:
// point lookups, foreign-key lookups, inserts, field updates, deletes and
// multi-statement transactions. Postgres backs it in production, the
// in-memory implementation backs tests and local play.
package store

import (
	"errors"

	"github.com/DedS3t/monopoly-engine/app/models"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrStoreFailure wraps backing-store I/O errors. Never swallowed.
	ErrStoreFailure = errors.New("store failure")
)

type Store interface {
	CreateGame(game *models.Game) error
	GetGame(id string) (*models.Game, error)
	UpdateGame(game *models.Game) error
	DeleteGame(id string) error

	CreatePlayer(player *models.Player) error
	GetPlayer(id string) (*models.Player, error)
	PlayersByGame(gameID string) ([]models.Player, error)
	UpdatePlayer(player *models.Player) error
	DeletePlayer(id string) error
	DeletePlayersByGame(gameID string) error

	CreateOwnership(ownership *models.Ownership) error
	GetOwnership(gameID string, position int) (*models.Ownership, error)
	OwnershipsByPlayer(playerID string) ([]models.Ownership, error)
	OwnershipsByGame(gameID string) ([]models.Ownership, error)
	UpdateOwnership(ownership *models.Ownership) error
	DeleteOwnership(id string) error
	DeleteOwnershipsByPlayer(playerID string) error
	DeleteOwnershipsByGame(gameID string) error

	CreateUser(user *models.User) error
	UserByEmail(email string) (*models.User, error)

	// RunInTransaction runs fn against a transactional view of the store.
	// All writes commit together or not at all. Calls nested inside an
	// open transaction join it.
	RunInTransaction(fn func(tx Store) error) error
}
