package migration

import (
	"fmt"
	"spice-garden/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Migrate creates the schema in dependency order and adds the indexes that
// gorm tags cannot express.
func Migrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"address", &entities.Address{}},
		{"category", &entities.Category{}},
		{"menu item", &entities.MenuItem{}},
		{"item option", &entities.ItemOption{}},
		{"cart", &entities.Cart{}},
		{"cart item", &entities.CartItem{}},
		{"order", &entities.Order{}},
		{"order item", &entities.OrderItem{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("migrating %s table: %w", m.name, err)
		}
	}

	// at most one default address per user
	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_addresses_one_default ON addresses (user_id) WHERE is_default",
	).Error; err != nil {
		return fmt.Errorf("creating default address index: %w", err)
	}

	log.Info("database migration complete")
	return nil
}
