package models

// Property types on the board.
const (
	TypeProperty       = "property"
	TypeRailroad       = "railroad"
	TypeUtility        = "utility"
	TypeTax            = "tax"
	TypeChance         = "chance"
	TypeCommunityChest = "community_chest"
	TypeSpecial        = "special"
)

const (
	BoardSize    = 40
	JailPosition = 10
	GoBonus      = 200
	JailFee      = 50
)

// Property is a static board square. The 40 squares are loaded once from the
// embedded board data and never mutated.
type Property struct {
	Position   int    `json:"position"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Color      string `json:"color"`
	Price      int    `json:"price"`
	BaseRent   int    `json:"base_rent"`
	HouseRent1 int    `json:"house_rent1"`
	HouseRent2 int    `json:"house_rent2"`
	HouseRent3 int    `json:"house_rent3"`
	HouseRent4 int    `json:"house_rent4"`
	HotelRent  int    `json:"hotel_rent"`
	HousePrice int    `json:"house_price"`
	HotelPrice int    `json:"hotel_price"`
}

// Purchasable reports whether the square can be bought at all.
func (p Property) Purchasable() bool {
	switch p.Type {
	case TypeProperty, TypeRailroad, TypeUtility:
		return true
	}
	return false
}

// OwnerView is the ownership half of a property snapshot.
type OwnerView struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Houses      int    `json:"houses"`
	Hotels      int    `json:"hotels"`
	IsMortgaged bool   `json:"is_mortgaged"`
}

// PropertyView is the read-only composite of a square and its ownership,
// including the rent currently due on it.
type PropertyView struct {
	Position    int        `json:"position"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Color       string     `json:"color"`
	Price       int        `json:"price"`
	BaseRent    int        `json:"base_rent"`
	HousePrice  int        `json:"house_price"`
	HotelPrice  int        `json:"hotel_price"`
	Owned       bool       `json:"owned"`
	Owner       *OwnerView `json:"owner"`
	CurrentRent int        `json:"current_rent"`
}
