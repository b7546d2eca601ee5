// Package cardtyperepo persists the accepted payment card types. The table is
// reference data seeded at startup and read by the card types query.
package cardtyperepo

// CardTypeDTO is one accepted card type.
type CardTypeDTO struct {
	ID   int `gorm:"primaryKey"`
	Name string
}

// TableName specifies the database table name for card type entities.
func (CardTypeDTO) TableName() string {
	return "card_types"
}
