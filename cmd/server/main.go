package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/suhedayldrm/pond/internal/config"
	"github.com/suhedayldrm/pond/internal/database"
	"github.com/suhedayldrm/pond/internal/handlers"
	"github.com/suhedayldrm/pond/internal/quiz"
	"github.com/suhedayldrm/pond/internal/repository"
	"github.com/suhedayldrm/pond/internal/security"
	"github.com/suhedayldrm/pond/internal/vocab"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseType, database.DialectConfig{
		Path: cfg.DatabasePath,
		URL:  cfg.DatabaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := repository.NewVocabRepository(db)

	if err := seedIfEmpty(repo, cfg.DatasetPath); err != nil {
		log.Fatalf("Failed to seed vocabulary: %v", err)
	}

	byLevel, err := repo.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load vocabulary: %v", err)
	}
	store := vocab.NewStore(byLevel)

	for lvl, count := range store.Counts() {
		if count == 0 {
			log.Printf("Warning: level %s has no words; rounds for it will be refused", lvl)
		}
	}

	registry := handlers.NewSessionRegistry(store, quiz.Policy(cfg.SequencingPolicy), cfg.SessionIdleTimeout)
	limiter := security.NewRateLimiter(10, time.Minute)
	quizHandler := handlers.NewQuizHandler(store, registry, limiter)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", quizHandler.HealthCheck)
	mux.HandleFunc("GET /api/levels", quizHandler.Levels)
	mux.HandleFunc("POST /api/quiz/start", quizHandler.StartRound)
	mux.HandleFunc("GET /api/quiz/state", quizHandler.State)
	mux.HandleFunc("POST /api/quiz/answer", quizHandler.SubmitAnswer)
	mux.HandleFunc("POST /api/quiz/advance", quizHandler.AdvanceWord)
	mux.HandleFunc("POST /api/quiz/reset", quizHandler.ResetSession)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// seedIfEmpty imports the bundled dataset when the database holds no
// entries, so a fresh deployment is playable without a separate import run.
func seedIfEmpty(repo *repository.VocabRepository, datasetPath string) error {
	count, err := repo.CountAll()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Vocabulary already loaded (%d entries)", count)
		return nil
	}

	if _, err := os.Stat(datasetPath); os.IsNotExist(err) {
		log.Printf("Warning: no dataset directory at %s; starting with an empty store", datasetPath)
		return nil
	}

	counts, err := vocab.ImportDataset(repo, datasetPath)
	if err != nil {
		return err
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	log.Printf("Seeded %d entries from %s", total, datasetPath)
	return nil
}
