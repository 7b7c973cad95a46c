package migration

import (
	"Recipe-Catalog-Service/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Migrate creates the recipes and ingredients tables when missing. AutoMigrate
// is idempotent, so running it against an up-to-date schema is a no-op.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Printf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Printf("Error migrating ingredient database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
