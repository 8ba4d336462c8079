package main

import (
	"context"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"codenames/internal/config"
	"codenames/internal/room"
	"codenames/internal/words"
	"codenames/logger"
)

func main() {
	cfg := config.Load()

	bank, err := words.Load(cfg.WordBank)
	if err != nil {
		logger.Fatal("word bank: %v", err)
	}

	reg := room.NewRegistry(bank, cfg.RoomRetention)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go reg.Run(ctx, cfg.SweepInterval)

	app := fiber.New()
	app.Use(cors.New())

	app.Post("/room/create", reg.CreateRoomHandler)
	app.Get("/room/:code", reg.RoomInfoHandler)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/:code", websocket.New(reg.ServeWS))

	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	logger.Info("listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatal("server: %v", err)
	}
}
