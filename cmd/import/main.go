// Command import loads the extraction pipeline's per-level JSON files into
// the vocabulary database, replacing any previous contents level by level.
package main

import (
	"flag"
	"log"

	"github.com/suhedayldrm/pond/internal/config"
	"github.com/suhedayldrm/pond/internal/database"
	"github.com/suhedayldrm/pond/internal/models"
	"github.com/suhedayldrm/pond/internal/repository"
	"github.com/suhedayldrm/pond/internal/vocab"
)

func main() {
	cfg := config.Load()

	datasetDir := flag.String("dataset", cfg.DatasetPath, "directory containing <level>.json files")
	flag.Parse()

	db, err := database.Open(cfg.DatabaseType, database.DialectConfig{
		Path: cfg.DatabasePath,
		URL:  cfg.DatabaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	counts, err := vocab.ImportDataset(repository.NewVocabRepository(db), *datasetDir)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	total := 0
	for _, lvl := range models.BaseLevels() {
		if n, ok := counts[lvl]; ok {
			log.Printf("Level %s: %d entries", lvl, n)
			total += n
		}
	}
	log.Printf("Import complete: %d entries", total)
}
