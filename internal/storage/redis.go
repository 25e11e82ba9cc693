package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"taskvista/backend/internal/models"

	"github.com/gofrs/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrNoCollection is returned by Load when nothing has been persisted yet.
	ErrNoCollection = errors.New("no task collection stored")
	// ErrCorruptCollection is returned when the stored value cannot be parsed
	// or fails validation. Callers fall back to the seed collection.
	ErrCorruptCollection = errors.New("stored task collection is corrupt")
)

// DefaultTaskKey is the single key holding the serialized task collection.
const DefaultTaskKey = "taskvista:tasks"

// TaskStorage mirrors the store's collection into Redis under one fixed key.
// Every save is a full-collection overwrite; only this type touches the key.
type TaskStorage struct {
	client  *redis.Client
	key     string
	breaker *Breaker
}

type Config struct {
	Addr         string
	Password     string
	DB           int
	Key          string
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Addr:         "localhost:6379",
		Password:     "",
		DB:           0,
		Key:          DefaultTaskKey,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

func NewTaskStorage(config *Config) *TaskStorage {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Key == "" {
		config.Key = DefaultTaskKey
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     config.PoolSize,
		MinIdleConns: config.MinIdleConns,
		MaxRetries:   config.MaxRetries,
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	})

	return &TaskStorage{
		client:  rdb,
		key:     config.Key,
		breaker: NewBreaker(nil),
	}
}

// NewTaskStorageWithClient wires an existing client, used by tests and by the
// worker which shares the connection pool.
func NewTaskStorageWithClient(client *redis.Client, key string) *TaskStorage {
	if key == "" {
		key = DefaultTaskKey
	}
	return &TaskStorage{client: client, key: key, breaker: NewBreaker(nil)}
}

func (s *TaskStorage) Client() *redis.Client {
	return s.client
}

// Load reads and validates the persisted collection. A missing key yields
// ErrNoCollection; unparseable or invalid contents yield ErrCorruptCollection.
func (s *TaskStorage) Load(ctx context.Context) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoCollection
		}
		return nil, fmt.Errorf("failed to read task collection: %w", err)
	}

	var tasks []models.Task
	if err := json.Unmarshal([]byte(data), &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCollection, err)
	}

	seen := make(map[uuid.UUID]bool, len(tasks))
	for _, t := range tasks {
		if !t.Validate() || seen[t.ID] {
			return nil, ErrCorruptCollection
		}
		seen[t.ID] = true
	}

	return tasks, nil
}

// Save overwrites the persisted collection with the given snapshot. The write
// runs behind the breaker so a down Redis degrades to fast failures.
func (s *TaskStorage) Save(ctx context.Context, tasks []models.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to serialize task collection: %w", err)
	}

	return s.breaker.Execute(func() error {
		ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()

		if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
			return fmt.Errorf("failed to persist task collection: %w", err)
		}
		return nil
	})
}

func (s *TaskStorage) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return s.client.Ping(ctx).Err()
}

func (s *TaskStorage) BreakerState() string {
	return s.breaker.State()
}

func (s *TaskStorage) Close() error {
	return s.client.Close()
}
