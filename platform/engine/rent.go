package engine

import (
	"errors"
	"fmt"

	uuid "github.com/satori/go.uuid"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/store"
)

// Utility rent multipliers: 4x the dice total with exactly one unmortgaged
// utility, 10x with both.
const (
	utilityRentSingle = 4
	utilityRentDouble = 10
)

func (e *Engine) IsOwned(gameID string, position int) (bool, error) {
	_, err := e.store.GetOwnership(gameID, position)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (e *Engine) Owner(gameID string, position int) (*models.Ownership, error) {
	return e.store.GetOwnership(gameID, position)
}

// CalculateRent returns the rent currently due on a square. Non-rentable,
// unowned and mortgaged squares rent for 0. For utilities the returned value
// is a multiplier only; the caller multiplies by the triggering dice total.
func (e *Engine) CalculateRent(gameID string, position int) (int, error) {
	return e.calculateRent(e.store, gameID, position)
}

func (e *Engine) calculateRent(s store.Store, gameID string, position int) (int, error) {
	property, err := e.board.GetByPos(position)
	if err != nil {
		return 0, fmt.Errorf("%w: property %d", store.ErrNotFound, position)
	}
	switch property.Type {
	case models.TypeSpecial, models.TypeTax, models.TypeChance, models.TypeCommunityChest:
		return 0, nil
	}

	ownership, err := s.GetOwnership(gameID, position)
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if ownership.IsMortgaged {
		return 0, nil
	}

	switch property.Type {
	case models.TypeRailroad:
		count, err := e.countUnmortgaged(s, ownership.PlayerId, models.TypeRailroad)
		if err != nil {
			return 0, err
		}
		// base_rent * 2^(n-1)
		return property.BaseRent << (count - 1), nil
	case models.TypeUtility:
		count, err := e.countUnmortgaged(s, ownership.PlayerId, models.TypeUtility)
		if err != nil {
			return 0, err
		}
		if count == 1 {
			return utilityRentSingle, nil
		}
		return utilityRentDouble, nil
	}

	if ownership.Hotels > 0 {
		return property.HotelRent, nil
	}
	if ownership.Houses > 0 {
		tiers := []int{property.BaseRent, property.HouseRent1, property.HouseRent2, property.HouseRent3, property.HouseRent4}
		if ownership.Houses < len(tiers) {
			return tiers[ownership.Houses], nil
		}
		return property.BaseRent, nil
	}

	monopoly, err := e.ownsColorGroup(s, gameID, ownership.PlayerId, property.Color)
	if err != nil {
		return 0, err
	}
	if monopoly {
		return property.BaseRent * 2, nil
	}
	return property.BaseRent, nil
}

// countUnmortgaged counts a player's unmortgaged holdings of one square type.
func (e *Engine) countUnmortgaged(s store.Store, playerID string, propertyType string) (int, error) {
	ownerships, err := s.OwnershipsByPlayer(playerID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, ownership := range ownerships {
		if ownership.IsMortgaged {
			continue
		}
		property, err := e.board.GetByPos(ownership.PropertyId)
		if err != nil {
			continue
		}
		if property.Type == propertyType {
			count++
		}
	}
	return count, nil
}

// ownsColorGroup reports whether the player holds every square of the color
// group, a monopoly.
func (e *Engine) ownsColorGroup(s store.Store, gameID string, playerID string, color string) (bool, error) {
	group := e.board.GetByColor(color)
	if len(group) == 0 {
		return false, nil
	}
	for _, property := range group {
		ownership, err := s.GetOwnership(gameID, property.Position)
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if ownership.PlayerId != playerID {
			return false, nil
		}
	}
	return true, nil
}

// CanBuildHouses checks monopoly ownership and the even-build rule: houses
// may never exceed the group's current maximum ("build up to the max").
func (e *Engine) CanBuildHouses(gameID string, position int) (bool, error) {
	return e.canBuildHouses(e.store, gameID, position)
}

func (e *Engine) canBuildHouses(s store.Store, gameID string, position int) (bool, error) {
	property, err := e.board.GetByPos(position)
	if err != nil || property.Type != models.TypeProperty {
		return false, nil
	}
	ownership, err := s.GetOwnership(gameID, position)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if ownership.Hotels > 0 {
		return false, nil
	}

	monopoly, err := e.ownsColorGroup(s, gameID, ownership.PlayerId, property.Color)
	if err != nil || !monopoly {
		return false, err
	}

	maxHouses := 0
	for _, sibling := range e.board.GetByColor(property.Color) {
		siblingOwnership, err := s.GetOwnership(gameID, sibling.Position)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return false, err
		}
		if siblingOwnership.Houses > maxHouses {
			maxHouses = siblingOwnership.Houses
		}
	}
	return ownership.Houses < 4 && ownership.Houses <= maxHouses, nil
}

// BuildHouse debits the owner and raises the building level by one, all in
// one transaction.
func (e *Engine) BuildHouse(gameID string, position int) error {
	defer e.lockGame(gameID)()
	err := e.store.RunInTransaction(func(tx store.Store) error {
		game, err := tx.GetGame(gameID)
		if err != nil {
			return err
		}
		if err := guardActive(game); err != nil {
			return err
		}
		property, err := e.board.GetByPos(position)
		if err != nil {
			return fmt.Errorf("%w: property %d", store.ErrNotFound, position)
		}
		ownership, err := tx.GetOwnership(gameID, position)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: property not owned", ErrInvalidOperation)
		}
		if err != nil {
			return err
		}
		canBuild, err := e.canBuildHouses(tx, gameID, position)
		if err != nil {
			return err
		}
		if !canBuild {
			return fmt.Errorf("%w: cannot build houses on %s", ErrInvalidOperation, property.Name)
		}
		owner, err := tx.GetPlayer(ownership.PlayerId)
		if err != nil {
			return err
		}
		if _, err := charge(tx, owner, property.HousePrice, false); err != nil {
			return err
		}
		ownership.Houses++
		return tx.UpdateOwnership(ownership)
	})
	if err != nil {
		return err
	}
	e.publish(gameID, "house-built", position)
	return nil
}

// BuildHotel requires exactly 4 houses; they are traded in for the hotel.
func (e *Engine) BuildHotel(gameID string, position int) error {
	defer e.lockGame(gameID)()
	err := e.store.RunInTransaction(func(tx store.Store) error {
		game, err := tx.GetGame(gameID)
		if err != nil {
			return err
		}
		if err := guardActive(game); err != nil {
			return err
		}
		property, err := e.board.GetByPos(position)
		if err != nil {
			return fmt.Errorf("%w: property %d", store.ErrNotFound, position)
		}
		ownership, err := tx.GetOwnership(gameID, position)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: property not owned", ErrInvalidOperation)
		}
		if err != nil {
			return err
		}
		if ownership.Houses != 4 || ownership.Hotels > 0 {
			return fmt.Errorf("%w: need 4 houses to build a hotel", ErrInvalidOperation)
		}
		owner, err := tx.GetPlayer(ownership.PlayerId)
		if err != nil {
			return err
		}
		if _, err := charge(tx, owner, property.HotelPrice, false); err != nil {
			return err
		}
		ownership.Houses = 0
		ownership.Hotels = 1
		return tx.UpdateOwnership(ownership)
	})
	if err != nil {
		return err
	}
	e.publish(gameID, "hotel-built", position)
	return nil
}

// Mortgage pays the owner floor(price/2). Requires zero buildings and that
// the property is not already mortgaged. Credit and flag flip commit
// together.
func (e *Engine) Mortgage(gameID string, position int) (int, error) {
	defer e.lockGame(gameID)()
	value := 0
	err := e.store.RunInTransaction(func(tx store.Store) error {
		game, err := tx.GetGame(gameID)
		if err != nil {
			return err
		}
		if err := guardActive(game); err != nil {
			return err
		}
		property, err := e.board.GetByPos(position)
		if err != nil {
			return fmt.Errorf("%w: property %d", store.ErrNotFound, position)
		}
		ownership, err := tx.GetOwnership(gameID, position)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: property not owned", ErrInvalidOperation)
		}
		if err != nil {
			return err
		}
		if ownership.IsMortgaged {
			return fmt.Errorf("%w: property already mortgaged", ErrInvalidOperation)
		}
		if ownership.Houses > 0 || ownership.Hotels > 0 {
			return fmt.Errorf("%w: cannot mortgage a built property", ErrInvalidOperation)
		}
		owner, err := tx.GetPlayer(ownership.PlayerId)
		if err != nil {
			return err
		}
		value = property.Price / 2
		if err := addMoney(tx, owner, value); err != nil {
			return err
		}
		ownership.IsMortgaged = true
		return tx.UpdateOwnership(ownership)
	})
	if err != nil {
		return 0, err
	}
	e.publish(gameID, "property-mortgaged", position)
	return value, nil
}

// Unmortgage costs floor(price/2 * 1.1) and hard-fails when the owner
// cannot afford it.
func (e *Engine) Unmortgage(gameID string, position int) (int, error) {
	defer e.lockGame(gameID)()
	cost := 0
	err := e.store.RunInTransaction(func(tx store.Store) error {
		game, err := tx.GetGame(gameID)
		if err != nil {
			return err
		}
		if err := guardActive(game); err != nil {
			return err
		}
		property, err := e.board.GetByPos(position)
		if err != nil {
			return fmt.Errorf("%w: property %d", store.ErrNotFound, position)
		}
		ownership, err := tx.GetOwnership(gameID, position)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: property not owned", ErrInvalidOperation)
		}
		if err != nil {
			return err
		}
		if !ownership.IsMortgaged {
			return fmt.Errorf("%w: property not mortgaged", ErrInvalidOperation)
		}
		owner, err := tx.GetPlayer(ownership.PlayerId)
		if err != nil {
			return err
		}
		cost = UnmortgageCost(property.Price)
		if _, err := charge(tx, owner, cost, false); err != nil {
			return err
		}
		ownership.IsMortgaged = false
		return tx.UpdateOwnership(ownership)
	})
	if err != nil {
		return 0, err
	}
	e.publish(gameID, "property-unmortgaged", position)
	return cost, nil
}

// UnmortgageCost is the mortgage value plus 10% interest.
func UnmortgageCost(price int) int {
	return int(float64(price) / 2 * 1.1)
}

// PropertyWithOwnership is the read-only composite view for presentation.
func (e *Engine) PropertyWithOwnership(gameID string, position int) (*models.PropertyView, error) {
	return e.propertyView(e.store, gameID, position)
}

func (e *Engine) propertyView(s store.Store, gameID string, position int) (*models.PropertyView, error) {
	property, err := e.board.GetByPos(position)
	if err != nil {
		return nil, fmt.Errorf("%w: property %d", store.ErrNotFound, position)
	}
	view := &models.PropertyView{
		Position:   property.Position,
		Name:       property.Name,
		Type:       property.Type,
		Color:      property.Color,
		Price:      property.Price,
		BaseRent:   property.BaseRent,
		HousePrice: property.HousePrice,
		HotelPrice: property.HotelPrice,
	}
	ownership, err := s.GetOwnership(gameID, position)
	if errors.Is(err, store.ErrNotFound) {
		return view, nil
	}
	if err != nil {
		return nil, err
	}
	owner, err := s.GetPlayer(ownership.PlayerId)
	if err != nil {
		return nil, err
	}
	view.Owned = true
	view.Owner = &models.OwnerView{
		Id:          owner.Id,
		Name:        owner.Name,
		Houses:      ownership.Houses,
		Hotels:      ownership.Hotels,
		IsMortgaged: ownership.IsMortgaged,
	}
	rent, err := e.calculateRent(s, gameID, position)
	if err != nil {
		return nil, err
	}
	view.CurrentRent = rent
	return view, nil
}

func newOwnership(gameID, playerID string, position int) *models.Ownership {
	return &models.Ownership{
		Id:         uuid.NewV4().String(),
		GameId:     gameID,
		PlayerId:   playerID,
		PropertyId: position,
	}
}
