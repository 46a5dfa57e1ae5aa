package models

// Ownership links one board square to the player holding it. At most one
// record exists per (game, position); houses and hotels are never both
// nonzero.
type Ownership struct {
	tableName struct{} `pg:"player_properties"` //nolint:structcheck

	Id          string `pg:"id,pk" json:"id"`
	GameId      string `pg:"game_id" json:"game_id"`
	PlayerId    string `pg:"player_id" json:"player_id"`
	PropertyId  int    `pg:"property_id,use_zero" json:"property_id"`
	Houses      int    `pg:"houses,use_zero" json:"houses"`
	Hotels      int    `pg:"hotels,use_zero" json:"hotels"`
	IsMortgaged bool   `pg:"is_mortgaged,use_zero" json:"is_mortgaged"`
}
