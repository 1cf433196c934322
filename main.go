package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"topupgame/database"
	"topupgame/jobs"
	"topupgame/routes"
	"topupgame/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	// The store and bucket credentials are hard requirements; refuse to serve
	// anything without them.
	for _, key := range []string{"DB_HOST", "DB_PASSWORD", "STORAGE_BUCKET_URL", "STORAGE_PUBLIC_BASE_URL"} {
		if os.Getenv(key) == "" {
			log.Fatalf("❌ Missing required config %s, refusing to start", key)
		}
	}

	database.Connect()
	if err := storage.Init(); err != nil {
		log.Fatal("❌ Failed to open storage bucket:", err)
	}

	host := os.Getenv("HOST")
	port := os.Getenv("PORT")

	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3000"
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	routes.Setup(app)
	jobs.StartMaintenanceScheduler()

	addr := fmt.Sprintf("%s:%s", host, port)
	log.Println("Server running at", addr)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Panicf("Failed to start server: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Gracefully shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited cleanly")
}
