package main

import (
	"log"

	"sevasetu/config"
	"sevasetu/database"
	applogger "sevasetu/logger"
	"sevasetu/middleware"
	authRoutes "sevasetu/routers/authRoutes"
	claimRoutes "sevasetu/routers/claimRoutes"
	recordRoutes "sevasetu/routers/recordRoutes"
	schemeRoutes "sevasetu/routers/schemeRoutes"
	userRoutes "sevasetu/routers/userRoutes"
	"sevasetu/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	applogger.Setup()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: false,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Every request runs against a resolved session
	app.Use(middleware.ResolveSession)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	claimRoutes.SetupClaimRoutes(app)
	schemeRoutes.SetupSchemeRoutes(app)
	recordRoutes.SetupRecordRoutes(app)

	pruner := utils.StartSessionPruner()
	defer pruner.Stop()

	log.Printf("Portal frontend is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
