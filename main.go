package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Aitik-official/walnut-leather-sub000/cart"
	"github.com/Aitik-official/walnut-leather-sub000/catalog"
	"github.com/Aitik-official/walnut-leather-sub000/config"
	"github.com/Aitik-official/walnut-leather-sub000/database"
	"github.com/Aitik-official/walnut-leather-sub000/handlers"
	"github.com/Aitik-official/walnut-leather-sub000/locale"
	customMiddleware "github.com/Aitik-official/walnut-leather-sub000/middleware"
	"github.com/Aitik-official/walnut-leather-sub000/routes"
	"github.com/Aitik-official/walnut-leather-sub000/taxonomy"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(customMiddleware.Metrics)

	// Connect to MongoDB
	if err := database.ConnectDB(); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Wire the in-process state: session carts, the unified catalog, the
	// category store and the locale tables.
	mediaDir := config.GetEnv("MEDIA_DIR", "./media")
	unified := catalog.NewUnionRepo(
		catalog.NewMongoRepo(database.DB),
		catalog.NewFixtureRepo(catalog.StaticCatalog()),
	)
	tax := taxonomy.NewMongoStore(database.Client, database.DB)
	h := handlers.NewHandler(cart.NewStore(), unified, tax, locale.Default(), mediaDir)

	// Setup routes
	routes.SetupRoutes(e, h)
	e.Static("/media", mediaDir)

	// Start the server
	port := config.GetEnv("PORT", "3000")
	e.Logger.Fatal(e.Start(":" + port))
}
