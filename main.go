package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"learnhub/config"
	"learnhub/middleware"
	"learnhub/remote"
	"learnhub/routes"
	"learnhub/services"
	"learnhub/store"
	"learnhub/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize the snapshot store
	dataStore := store.New(cfg.StorePath)

	// Initialize logger
	logger := utils.InitLogger()

	// Catalog reads come either from the local store or from the hosted
	// API, picked by config
	var catalog services.Provider
	if cfg.DataSource == "remote" {
		catalog = remote.New(cfg.APIBaseURL)
	} else {
		catalog = services.NewCatalogService(dataStore)
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, routes.Deps{
		Store:   dataStore,
		Catalog: catalog,
		Cfg:     cfg,
	})

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
