package main

import (
	"coach_tracker/config"
	"coach_tracker/database"
	"coach_tracker/handler"
	"coach_tracker/router"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	db, err := database.Connect()
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}
	if config.Config("SEED_DEMO") == "true" {
		database.SeedDemo(db)
	}

	router.SetupRoutes(app, handler.New(db))

	port := config.Config("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(app.Listen(":" + port))
}
