package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"rescueos-be/internal/bootstrap"
	"rescueos-be/internal/config"
	"rescueos-be/internal/server"
	"rescueos-be/pkg/database"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Email dispatcher consumes domain events off the bus.
	if err := container.NotificationService.Start(); err != nil {
		log.Printf("[WARN] Email dispatcher failed to start: %v", err)
	}

	srv := server.New(cfg, container)

	go func() {
		if err := srv.Run(); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if err := srv.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	container.Logger.Sync()
}
