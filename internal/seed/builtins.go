package seed

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"habitloop/internal/models"
)

// StarterHabits upserts the built-in habit catalog for the given user.
// Existing habits with the same name are left untouched, so re-running
// on boot is safe.
func StarterHabits(db *gorm.DB, userID uint) error {
	presets, err := DefaultPresets()
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, preset := range presets {
			habit := models.Habit{
				UserID: userID,
				Name:   preset.Name,
				Color:  preset.Color,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
				DoNothing: true,
			}).Create(&habit).Error; err != nil {
				return fmt.Errorf("upserting starter habit %q: %w", preset.Name, err)
			}
		}
		return nil
	})
}
