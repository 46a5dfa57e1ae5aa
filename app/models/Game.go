package models

import "time"

type GameStatus string

const (
	StatusWaiting  GameStatus = "waiting"
	StatusActive   GameStatus = "active"
	StatusFinished GameStatus = "finished"
)

// TurnPhase is the per-turn sub-state while a game is active.
type TurnPhase string

const (
	PhaseAwaitingRoll TurnPhase = "awaiting_roll"
	PhaseAwaitingEnd  TurnPhase = "awaiting_end"
)

type Game struct {
	Id            string     `pg:"id,pk" json:"id"`
	Status        GameStatus `pg:"status" json:"status"`
	CurrentPlayer string     `pg:"current_player,use_zero" json:"current_player"`
	TurnPhase     TurnPhase  `pg:"turn_phase,use_zero" json:"turn_phase"`
	CreatedAt     time.Time  `pg:"created_at,default:now()" json:"created_at"`
}

type PlayerSetupDto struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type GameCreateDto struct {
	Players []PlayerSetupDto `json:"players"`
}

type PropertyActionDto struct {
	PropertyId int    `json:"propertyId"`
	PlayerId   string `json:"playerId"`
}

type DrawCardDto struct {
	CardType string `json:"cardType"`
}
