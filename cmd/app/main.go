package main

import (
	"Recipe-Radar-Backend/cmd/config"
	migration "Recipe-Radar-Backend/cmd/database/migrate"
	"Recipe-Radar-Backend/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("App initialization failed: %v", err)
	}

	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
