package controllers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/cache"
	"github.com/DedS3t/monopoly-engine/platform/engine"
	"github.com/DedS3t/monopoly-engine/platform/store"
)

// E is the shared rules engine, wired once from main.
var E *engine.Engine

func Setup(e *engine.Engine) {
	E = e
}

func ok(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "message": message, "data": data})
}

func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, engine.ErrInvalidState),
		errors.Is(err, engine.ErrInvalidOperation),
		errors.Is(err, engine.ErrInsufficientFunds),
		errors.Is(err, engine.ErrUnknownAction):
		status = fiber.StatusBadRequest
	}
	if status == fiber.StatusInternalServerError {
		logrus.WithError(err).Error("game action failed")
	}
	return c.Status(status).JSON(fiber.Map{"success": false, "error": err.Error()})
}

// discardGame removes a half-created game after a setup step failed.
func discardGame(gameID string) {
	if err := E.DeleteGame(gameID); err != nil {
		logrus.WithError(err).WithField("game", gameID).Error("failed to discard game after setup failure")
	}
}

// CreateGame creates a game, fills the roster and starts it in one call.
func CreateGame(c *fiber.Ctx) error {
	dto := new(models.GameCreateDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
	}

	game, err := E.CreateGame()
	if err != nil {
		return fail(c, err)
	}
	if _, err := E.AddPlayers(game.Id, dto.Players); err != nil {
		discardGame(game.Id)
		return fail(c, err)
	}
	if err := E.Start(game.Id); err != nil {
		discardGame(game.Id)
		return fail(c, err)
	}

	state, err := E.GameState(game.Id)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Game created successfully",
		"data":    state,
	})
}

func GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if snapshot := cache.GetSnapshot(gameID); snapshot != "" {
		return ok(c, "", json.RawMessage(snapshot))
	}
	state, err := E.GameState(gameID)
	if err != nil {
		return fail(c, err)
	}
	if data, err := json.Marshal(state); err == nil {
		cache.SetSnapshot(gameID, string(data))
	}
	return ok(c, "", state)
}

func RollDice(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	result, err := E.RollDice(gameID)
	if err != nil {
		return fail(c, err)
	}
	cache.Invalidate(gameID)
	state, err := E.GameState(gameID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Dice rolled successfully", fiber.Map{"roll": result, "gameState": state})
}

func EndTurn(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	next, err := E.EndTurn(gameID)
	if err != nil {
		return fail(c, err)
	}
	cache.Invalidate(gameID)
	state, err := E.GameState(gameID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Turn ended successfully", fiber.Map{
		"nextPlayer": fiber.Map{"id": next.Id, "name": next.Name, "order_id": next.OrderId},
		"gameState":  state,
	})
}

func BuyProperty(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	dto := new(models.PropertyActionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
	}
	view, err := E.BuyProperty(gameID, dto.PlayerId, dto.PropertyId)
	if err != nil {
		return fail(c, err)
	}
	cache.Invalidate(gameID)
	return ok(c, "Property purchased successfully", view)
}

func MortgageProperty(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	dto := new(models.PropertyActionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
	}
	value, err := E.Mortgage(gameID, dto.PropertyId)
	if err != nil {
		return fail(c, err)
	}
	cache.Invalidate(gameID)
	return ok(c, "Property mortgaged successfully", fiber.Map{"propertyId": dto.PropertyId, "mortgageValue": value})
}

func UnmortgageProperty(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	dto := new(models.PropertyActionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
	}
	cost, err := E.Unmortgage(gameID, dto.PropertyId)
	if err != nil {
		return fail(c, err)
	}
	cache.Invalidate(gameID)
	return ok(c, "Property unmortgaged successfully", fiber.Map{"propertyId": dto.PropertyId, "unmortgageCost": cost})
}

func BuildHouse(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	dto := new(models.PropertyActionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
	}
	if err := E.BuildHouse(gameID, dto.PropertyId); err != nil {
		return fail(c, err)
	}
	cache.Invalidate(gameID)
	return ok(c, "House built successfully", fiber.Map{"propertyId": dto.PropertyId})
}

func BuildHotel(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	dto := new(models.PropertyActionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
	}
	if err := E.BuildHotel(gameID, dto.PropertyId); err != nil {
		return fail(c, err)
	}
	cache.Invalidate(gameID)
	return ok(c, "Hotel built successfully", fiber.Map{"propertyId": dto.PropertyId})
}

func DrawCard(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	dto := new(models.DrawCardDto)
	if err := c.BodyParser(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
	}
	result, err := E.DrawCard(gameID, dto.CardType)
	if err != nil {
		return fail(c, err)
	}
	cache.Invalidate(gameID)
	return ok(c, result.Message, result)
}

func PayOutOfJail(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	dto := new(models.PropertyActionDto)
	c.BodyParser(dto) // playerId optional, defaults to the current player
	if err := E.PayOutOfJail(gameID, dto.PlayerId); err != nil {
		return fail(c, err)
	}
	cache.Invalidate(gameID)
	return ok(c, "Paid out of jail", nil)
}

func CheckBankruptcy(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	report, err := E.EvaluateBankruptcy(gameID)
	if err != nil {
		return fail(c, err)
	}
	cache.Invalidate(gameID)
	return ok(c, "", report)
}

func GetProperty(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	position, err := strconv.Atoi(c.Params("propertyId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid property id"})
	}
	view, err := E.PropertyWithOwnership(gameID, position)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", view)
}

func RemovePlayer(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Params("playerId")
	if err := E.RemovePlayer(gameID, playerID); err != nil {
		return fail(c, err)
	}
	cache.Invalidate(gameID)
	return ok(c, "Player removed", nil)
}

func DeleteGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if err := E.DeleteGame(gameID); err != nil {
		return fail(c, err)
	}
	cache.Invalidate(gameID)
	return ok(c, "Game deleted successfully", nil)
}

func GetGameStatistics(c *fiber.Ctx) error {
	stats, err := E.Statistics(c.Params("gameId"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", stats)
}
