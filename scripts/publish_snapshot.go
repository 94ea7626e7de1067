package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/nmorandeau/portfolio-os/adapters/event"
	"github.com/nmorandeau/portfolio-os/adapters/persistence"
	snapshotUC "github.com/nmorandeau/portfolio-os/internal/application/usecase/snapshot"
	"github.com/nmorandeau/portfolio-os/internal/config"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

// One-shot publisher: exports the current store to the public snapshot
// file. Useful for the first deployment, before the worker has ever run.
func main() {
	fmt.Println("publishing portfolio snapshot...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	if cfg.Publish.Dir == "" {
		log.Fatal("publish dir not configured")
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	store, err := persistence.NewFileStore(cfg.Store.Path, event.NewInprocBus(), appLogger)
	if err != nil {
		log.Fatalf("cannot open content store: %v", err)
	}
	defer store.Close()

	path, err := snapshotUC.NewService(store, appLogger).Publish(cfg.Publish.Dir)
	if err != nil {
		log.Fatalf("cannot publish snapshot: %v", err)
	}
	fmt.Printf("snapshot written to %s\n", path)
}
