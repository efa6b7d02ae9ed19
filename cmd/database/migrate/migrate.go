package migration

import (
	"Recipe-Radar-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeIngredient{}); err != nil {
		log.Fatalf("Error migrating recipe ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ImportBatch{}); err != nil {
		log.Fatalf("Error migrating import batch database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PendingRecipe{}); err != nil {
		log.Fatalf("Error migrating pending recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PendingIngredient{}); err != nil {
		log.Fatalf("Error migrating pending ingredient database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
