package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notely/internal/config"
	"notely/internal/database"
	"notely/internal/database/repositories"
	"notely/internal/server"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg := config.Load()

	var (
		db    database.Service
		notes repositories.NoteRepository
	)
	if cfg.DatabaseURL == "" {
		log.Println("NOTES_DATABASE_URL not set, using in-memory store")
		db = database.NewMemory()
		notes = repositories.NewMemoryNoteRepository()
	} else {
		var err error
		db, err = database.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		notes = repositories.NewNoteRepository(db.DB())
	}

	srv := server.New(db, notes)
	srv.RegisterFiberRoutes()

	go func() {
		if err := srv.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	if err := srv.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if err := db.Close(); err != nil {
		log.Printf("closing database: %v", err)
	}
}
