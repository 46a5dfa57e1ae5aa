package models

// GameStateView is the complete snapshot returned after every action.
type GameStateView struct {
	Id                 string       `json:"id"`
	Status             GameStatus   `json:"status"`
	TurnPhase          TurnPhase    `json:"turn_phase"`
	CurrentPlayerId    string       `json:"current_player_id"`
	CurrentPlayerOrder int          `json:"current_player_order"`
	CurrentPlayerName  string       `json:"current_player_name"`
	Players            []PlayerView `json:"players"`
}

type DiceView struct {
	Dice1     int  `json:"dice1"`
	Dice2     int  `json:"dice2"`
	Total     int  `json:"total"`
	IsDoubles bool `json:"isDoubles"`
}

// RollResult is the fully resolved outcome of one dice roll, landing
// resolution included.
type RollResult struct {
	Dice        DiceView      `json:"dice"`
	PlayerId    string        `json:"player_id"`
	PlayerName  string        `json:"player_name"`
	OldPosition int           `json:"old_position"`
	NewPosition int           `json:"new_position"`
	Money       int           `json:"money"`
	PassedGo    bool          `json:"passed_go"`
	RentPaid    int           `json:"rent_paid"`
	RentOwner   string        `json:"rent_owner"`
	TaxPaid     int           `json:"tax_paid"`
	CardDue     string        `json:"card_due"`
	Bankrupt    bool          `json:"bankrupt"`
	Property    *PropertyView `json:"property"`
}

type RichestPlayerView struct {
	Name  string `json:"name"`
	Money int    `json:"money"`
}

type MostPropertiesView struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Statistics struct {
	TotalPlayers         int                `json:"total_players"`
	TotalMoneyInGame     int                `json:"total_money_in_game"`
	TotalPropertiesOwned int                `json:"total_properties_owned"`
	RichestPlayer        RichestPlayerView  `json:"richest_player"`
	MostProperties       MostPropertiesView `json:"most_properties"`
}

// BankruptcyReport lists who is insolvent and whether the game finished.
type BankruptcyReport struct {
	BankruptPlayers []string `json:"bankrupt_players"`
	GameOver        bool     `json:"game_over"`
	Winner          string   `json:"winner"`
}
