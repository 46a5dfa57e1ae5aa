package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/sirupsen/logrus"

	"github.com/DedS3t/monopoly-engine/app/controllers"
	"github.com/DedS3t/monopoly-engine/pkg/routes"
	"github.com/DedS3t/monopoly-engine/platform/board"
	"github.com/DedS3t/monopoly-engine/platform/cache"
	"github.com/DedS3t/monopoly-engine/platform/database"
	"github.com/DedS3t/monopoly-engine/platform/engine"
	"github.com/DedS3t/monopoly-engine/platform/events"
	"github.com/DedS3t/monopoly-engine/platform/logging"
	socket "github.com/DedS3t/monopoly-engine/platform/sockets"
	"github.com/DedS3t/monopoly-engine/platform/store"
)

func main() {
	logging.Init()

	db := database.PostgreSQLConnection()
	defer db.Close()
	if err := database.CreateSchema(db); err != nil {
		logrus.WithError(err).Fatal("failed creating schema")
	}

	gameBoard, err := board.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed loading board")
	}

	if cache.Enabled() {
		cache.Init(cache.CreateRedisPool())
	}

	bus := events.NewBus()
	records := store.NewPostgres(db)
	e := engine.New(records, gameBoard, bus)
	controllers.Setup(e)
	controllers.SetupAuth(records)

	app := fiber.New()
	app.Use(cors.New())
	routes.AuthRoutes(app)
	routes.GameRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: controllers.JWTSecret(),
	}))
	app.Get("/user/cur", controllers.Cur)

	go socket.CreateSocketIOServer(e, bus)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4101"
	}
	app.Listen(":" + port)
}
