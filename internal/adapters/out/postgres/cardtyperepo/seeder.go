package cardtyperepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed inserts the default card types if they are not present yet. Safe to run
// on every startup.
func Seed(ctx context.Context, db *gorm.DB) error {
	cardTypes := []CardTypeDTO{
		{ID: 1, Name: "Amex"},
		{ID: 2, Name: "Visa"},
		{ID: 3, Name: "MasterCard"},
	}

	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&cardTypes).Error
}
