package models

// Card deck types.
const (
	CardChance         = "chance"
	CardCommunityChest = "community_chest"
)

// Card actions.
const (
	ActionCollectMoney       = "collect_money"
	ActionPayMoney           = "pay_money"
	ActionMoveToPosition     = "move_to_position"
	ActionCollectFromPlayers = "collect_from_players"
	ActionPayPerHouse        = "pay_per_house"
)

// Card is a static chance / community chest card from the embedded deck.
type Card struct {
	Id             int    `json:"id"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	ActionType     string `json:"action_type"`
	Amount         int    `json:"amount"`
	Position       int    `json:"position"`
	PerHouseAmount int    `json:"per_house_amount"`
	PerHotelAmount int    `json:"per_hotel_amount"`
}

// CardResult describes what executing a card did to the acting player.
type CardResult struct {
	Card        Card   `json:"card"`
	Message     string `json:"message"`
	MoneyChange int    `json:"money_change"`
	NewPosition int    `json:"new_position"`
	PassedGo    bool   `json:"passed_go"`
	WentToJail  bool   `json:"went_to_jail"`
	Bankrupt    bool   `json:"bankrupt"`
}
