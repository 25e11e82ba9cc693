package main

import (
	"context"
	"testing"

	"taskvista/backend/internal/config"
	"taskvista/backend/internal/notify"
	"taskvista/backend/internal/storage"
	"taskvista/backend/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestApplicationStartup(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("REDIS_HOST", "localhost")

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg == nil {
		t.Fatal("Configuration should not be nil")
	}

	t.Log("Application configuration loaded successfully")
}

func TestStoreBootstrapsAgainstRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	persister := storage.NewTaskStorageWithClient(client, storage.DefaultTaskKey)

	tasks := store.NewTaskStore(context.Background(), persister, notify.NewLogNotifier())
	if tasks.Len() == 0 {
		t.Fatal("Expected the store to seed itself on first run")
	}

	reloaded := store.NewTaskStore(context.Background(), persister, notify.NewLogNotifier())
	if reloaded.Len() != tasks.Len() {
		t.Errorf("Expected a second startup to load the persisted collection, got %d tasks, want %d",
			reloaded.Len(), tasks.Len())
	}
}
