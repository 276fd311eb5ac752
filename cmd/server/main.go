package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/juhum/hotel-reservations/internal/config"
	"github.com/juhum/hotel-reservations/internal/server"
	"github.com/juhum/hotel-reservations/internal/store"
	"github.com/juhum/hotel-reservations/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	h := server.NewHandler(store.New(client, cfg.DBName))
	e := echo.New()
	server.RegisterRoutes(e, h)

	log.Printf("listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
