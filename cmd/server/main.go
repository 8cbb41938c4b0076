package main

import (
	"hos-log-service/internal/adapters/repositories"
	"hos-log-service/internal/api"
	"hos-log-service/internal/config"
	"hos-log-service/internal/platform/db"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the Postgres trip store behind its port and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema on startup for local runs.
	if err := repositories.InitSchema(db); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewPostgresTripRepository(db)
	router := api.NewRouter(repo)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
