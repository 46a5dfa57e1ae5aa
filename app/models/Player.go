package models

const StartingMoney = 1500

type Player struct {
	Id        string `pg:"id,pk" json:"id"`
	GameId    string `pg:"game_id" json:"game_id"`
	OrderId   int    `pg:"order_id,use_zero" json:"order_id"`
	Name      string `pg:"name" json:"name"`
	Avatar    string `pg:"avatar" json:"avatar"`
	Money     int    `pg:"money,use_zero" json:"money"`
	Position  int    `pg:"position,use_zero" json:"position"`
	Jail      bool   `pg:"jail,use_zero" json:"jail"`
	FirstTurn bool   `pg:"first_turn,use_zero" json:"first_turn"`
	Bankrupt  bool   `pg:"bankrupt,use_zero" json:"bankrupt"`
}

// OwnedPropertyView is a player's property as shown in snapshots.
type OwnedPropertyView struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Houses      int    `json:"houses"`
	Hotels      int    `json:"hotels"`
	IsMortgaged bool   `json:"is_mortgaged"`
}

type PlayerView struct {
	Id                  string              `json:"id"`
	GameId              string              `json:"game_id"`
	OrderId             int                 `json:"order_id"`
	Name                string              `json:"name"`
	Avatar              string              `json:"avatar"`
	Money               int                 `json:"money"`
	Position            int                 `json:"position"`
	Jail                bool                `json:"jail"`
	FirstTurn           bool                `json:"first_turn"`
	Bankrupt            bool                `json:"bankrupt"`
	Properties          []OwnedPropertyView `json:"properties"`
	MortgagedProperties []string            `json:"mortgaged_properties"`
}
