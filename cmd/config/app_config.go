package config

import (
	"Recipe-Radar-Backend/internal/api/handlers"
	"Recipe-Radar-Backend/internal/api/routes"
	"Recipe-Radar-Backend/internal/middleware"
	"Recipe-Radar-Backend/internal/utils"
	"Recipe-Radar-Backend/internal/utils/storage"
	"Recipe-Radar-Backend/pkg/catalog"
	"Recipe-Radar-Backend/pkg/importer"
	"Recipe-Radar-Backend/pkg/jwt"
	"Recipe-Radar-Backend/pkg/match"
	"Recipe-Radar-Backend/pkg/parser"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate
	settings := utils.GetSettings()

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Seoul",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("error creating zap logger: %v", err)
	}

	// utils
	s3 := storage.NewAwsS3()

	// pipeline components
	ingredientParser := parser.NewParser(parser.DefaultConfig(settings.VagueQuantityProxy))
	classifier := catalog.NewClassifier(nil)
	matcher := catalog.NewMatcher(settings.DedupThreshold)

	// Repository
	catalogRepository := catalog.NewCatalogRepository(db)
	importRepository := importer.NewImportRepository(db)
	matchRepository := match.NewMatchRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	catalogService := catalog.NewCatalogService(catalogRepository, settings.SeasoningThreshold)
	importService := importer.NewImportService(
		importRepository,
		catalogRepository,
		ingredientParser,
		classifier,
		matcher,
		s3,
		zapLogger,
	)
	matchService := match.NewMatchService(matchRepository, settings)

	// Handler
	importHandler := handlers.NewImportHandler(importService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	recommendHandler := handlers.NewRecommendHandler(matchService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		ImportHandler:    importHandler,
		CatalogHandler:   catalogHandler,
		RecommendHandler: recommendHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
