package store

import (
	"context"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"

	"github.com/DedS3t/monopoly-engine/app/models"
)

// Postgres implements Store on go-pg. The same struct serves both the pooled
// connection and an open transaction, since *pg.DB and *pg.Tx share orm.DB.
type Postgres struct {
	db orm.DB
	pg *pg.DB // nil when db is a transaction
}

func NewPostgres(db *pg.DB) *Postgres {
	return &Postgres{db: db, pg: db}
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if err == pg.ErrNoRows {
		return fmt.Errorf("%w: %s", ErrNotFound, op)
	}
	return fmt.Errorf("%w: %s: %v", ErrStoreFailure, op, err)
}

func (s *Postgres) CreateGame(game *models.Game) error {
	_, err := s.db.Model(game).Insert()
	return wrap("create game", err)
}

func (s *Postgres) GetGame(id string) (*models.Game, error) {
	game := &models.Game{Id: id}
	if err := s.db.Model(game).WherePK().Select(); err != nil {
		return nil, wrap("get game", err)
	}
	return game, nil
}

func (s *Postgres) UpdateGame(game *models.Game) error {
	_, err := s.db.Model(game).WherePK().Update()
	return wrap("update game", err)
}

func (s *Postgres) DeleteGame(id string) error {
	_, err := s.db.Model(&models.Game{Id: id}).WherePK().Delete()
	return wrap("delete game", err)
}

func (s *Postgres) CreatePlayer(player *models.Player) error {
	_, err := s.db.Model(player).Insert()
	return wrap("create player", err)
}

func (s *Postgres) GetPlayer(id string) (*models.Player, error) {
	player := &models.Player{Id: id}
	if err := s.db.Model(player).WherePK().Select(); err != nil {
		return nil, wrap("get player", err)
	}
	return player, nil
}

func (s *Postgres) PlayersByGame(gameID string) ([]models.Player, error) {
	var players []models.Player
	err := s.db.Model(&players).Where("game_id = ?", gameID).Order("order_id ASC").Select()
	if err != nil {
		return nil, wrap("players by game", err)
	}
	return players, nil
}

func (s *Postgres) UpdatePlayer(player *models.Player) error {
	_, err := s.db.Model(player).WherePK().Update()
	return wrap("update player", err)
}

func (s *Postgres) DeletePlayer(id string) error {
	_, err := s.db.Model(&models.Player{Id: id}).WherePK().Delete()
	return wrap("delete player", err)
}

func (s *Postgres) DeletePlayersByGame(gameID string) error {
	_, err := s.db.Model(&models.Player{}).Where("game_id = ?", gameID).Delete()
	return wrap("delete players by game", err)
}

func (s *Postgres) CreateOwnership(ownership *models.Ownership) error {
	_, err := s.db.Model(ownership).Insert()
	return wrap("create ownership", err)
}

func (s *Postgres) GetOwnership(gameID string, position int) (*models.Ownership, error) {
	ownership := new(models.Ownership)
	err := s.db.Model(ownership).
		Where("game_id = ? AND property_id = ?", gameID, position).
		Select()
	if err != nil {
		return nil, wrap("get ownership", err)
	}
	return ownership, nil
}

func (s *Postgres) OwnershipsByPlayer(playerID string) ([]models.Ownership, error) {
	var ownerships []models.Ownership
	err := s.db.Model(&ownerships).Where("player_id = ?", playerID).Order("property_id ASC").Select()
	if err != nil {
		return nil, wrap("ownerships by player", err)
	}
	return ownerships, nil
}

func (s *Postgres) OwnershipsByGame(gameID string) ([]models.Ownership, error) {
	var ownerships []models.Ownership
	err := s.db.Model(&ownerships).Where("game_id = ?", gameID).Order("property_id ASC").Select()
	if err != nil {
		return nil, wrap("ownerships by game", err)
	}
	return ownerships, nil
}

func (s *Postgres) UpdateOwnership(ownership *models.Ownership) error {
	_, err := s.db.Model(ownership).WherePK().Update()
	return wrap("update ownership", err)
}

func (s *Postgres) DeleteOwnership(id string) error {
	_, err := s.db.Model(&models.Ownership{Id: id}).WherePK().Delete()
	return wrap("delete ownership", err)
}

func (s *Postgres) DeleteOwnershipsByPlayer(playerID string) error {
	_, err := s.db.Model(&models.Ownership{}).Where("player_id = ?", playerID).Delete()
	return wrap("delete ownerships by player", err)
}

func (s *Postgres) DeleteOwnershipsByGame(gameID string) error {
	_, err := s.db.Model(&models.Ownership{}).Where("game_id = ?", gameID).Delete()
	return wrap("delete ownerships by game", err)
}

func (s *Postgres) CreateUser(user *models.User) error {
	_, err := s.db.Model(user).Insert()
	return wrap("create user", err)
}

func (s *Postgres) UserByEmail(email string) (*models.User, error) {
	user := new(models.User)
	if err := s.db.Model(user).Where("email = ?", email).Select(); err != nil {
		return nil, wrap("user by email", err)
	}
	return user, nil
}

func (s *Postgres) RunInTransaction(fn func(tx Store) error) error {
	if s.pg == nil {
		// Already inside a transaction, join it.
		return fn(s)
	}
	// Errors out of fn pass through unchanged so rule violations keep
	// their kind; only the individual statements wrap store failures.
	return s.pg.RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		return fn(&Postgres{db: tx})
	})
}
