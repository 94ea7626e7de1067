package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/nmorandeau/portfolio-os/adapters/event"
	"github.com/nmorandeau/portfolio-os/adapters/persistence"
	snapshotUC "github.com/nmorandeau/portfolio-os/internal/application/usecase/snapshot"
	"github.com/nmorandeau/portfolio-os/internal/config"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

// The worker keeps the published snapshot file in step with the store: every
// content event triggers a re-export to the well-known location the public
// site syncs from.
func main() {
	fmt.Println("Starting Portfolio OS Publisher Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}
	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal("FATAL: kafka brokers not configured")
	}
	if cfg.Publish.Dir == "" {
		log.Fatal("FATAL: publish dir not configured")
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	store, err := persistence.NewFileStore(cfg.Store.Path, event.NewInprocBus(), appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot open content store: %v", err)
	}
	defer store.Close()

	snapshots := snapshotUC.NewService(store, appLogger)

	// Kafka Consumer
	contentConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContentEvents,
		GroupID:  "snapshot-publisher-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer contentConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicContentEvents)

	ctx := context.Background()
	for {
		msg, err := contentConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.ContentEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(contentConsumer, msg)
			continue
		}

		log.Printf("Processing event: [%s %s] for ID: %s", payload.Kind, payload.Action, payload.ID)

		path, err := snapshots.Publish(cfg.Publish.Dir)
		if err != nil {
			log.Printf("ERROR: Failed to publish snapshot: %v", err)
			continue
		}
		log.Printf("Published snapshot to %s", path)

		commitMessage(contentConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
