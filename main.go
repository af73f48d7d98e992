package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"interviewhub/api-gateway/config"
	"interviewhub/api-gateway/handlers"
	"interviewhub/api-gateway/internal/processing"
	"interviewhub/api-gateway/internal/store"
	"interviewhub/api-gateway/internal/tags"
	"interviewhub/api-gateway/internal/worker"
	"interviewhub/api-gateway/middleware"
)

func main() {
	// .env is optional; system environment wins when both are present.
	_ = godotenv.Load()

	config.InitLogger()
	cfg := config.Load()

	objectStore, err := config.InitObjectStore(cfg)
	if err != nil {
		config.Log.WithError(err).Fatal("Failed to initialize file storage")
	}

	interviewStore := store.New(store.UploadPolicy{
		MaxFileSize:       cfg.MaxFileSize,
		AllowedExtensions: cfg.AllowedExtensions,
	})

	dispatcher := worker.NewDispatcher(cfg.WorkerCount, cfg.JobQueueSize, config.Log)
	dispatcher.Run()
	defer dispatcher.Stop()

	machine := processing.NewMachine(interviewStore, processing.Simulated{Delay: cfg.ProcessingDelay}, dispatcher, config.Log)
	tagManager := tags.NewManager(interviewStore)

	h := handlers.NewApplicationHandler(config.Log, cfg, interviewStore, machine, tagManager, objectStore)

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.MaxFileSize) + 1024*1024,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Allow all origins for development
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger())

	handlers.RegisterRoutes(app, h)

	config.Log.WithField("addr", cfg.ListenAddr).Info("Starting interview API")
	if err := app.Listen(cfg.ListenAddr); err != nil {
		config.Log.WithError(err).Fatal("Server stopped")
	}
}
