package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DedS3t/monopoly-engine/app/controllers"
)

func GameRoutes(a *fiber.App) {
	route := a.Group("/game")

	route.Post("/create", controllers.CreateGame)
	route.Get("/:gameId", controllers.GetGameState)
	route.Delete("/:gameId", controllers.DeleteGame)
	route.Get("/:gameId/statistics", controllers.GetGameStatistics)
	route.Get("/:gameId/property/:propertyId", controllers.GetProperty)
	route.Delete("/:gameId/player/:playerId", controllers.RemovePlayer)

	route.Post("/:gameId/roll-dice", controllers.RollDice)
	route.Post("/:gameId/end-turn", controllers.EndTurn)
	route.Post("/:gameId/buy-property", controllers.BuyProperty)
	route.Post("/:gameId/mortgage-property", controllers.MortgageProperty)
	route.Post("/:gameId/unmortgage-property", controllers.UnmortgageProperty)
	route.Post("/:gameId/build-house", controllers.BuildHouse)
	route.Post("/:gameId/build-hotel", controllers.BuildHotel)
	route.Post("/:gameId/draw-card", controllers.DrawCard)
	route.Post("/:gameId/pay-out-jail", controllers.PayOutOfJail)
	route.Post("/:gameId/check-bankruptcy", controllers.CheckBankruptcy)
}
