package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskvista/backend/internal/config"
	"taskvista/backend/internal/database"
	"taskvista/backend/internal/handlers"
	"taskvista/backend/internal/monitoring"
	"taskvista/backend/internal/notify"
	"taskvista/backend/internal/storage"
	"taskvista/backend/internal/store"
	"taskvista/backend/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	taskStorage := storage.NewTaskStorage(&storage.Config{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		Key:          cfg.Redis.TaskKey,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	defer taskStorage.Close()

	logSink := notify.NewLogNotifier()
	notifier := notify.Notifier(logSink)

	var reminders *worker.Worker
	if cfg.Worker.Enabled {
		queue := worker.NewJobQueue(taskStorage.Client())
		notifier = notify.NewFanout(logSink, worker.NewQueueNotifier(queue))

		reminders = worker.NewWorker(worker.WorkerConfig{RedisClient: taskStorage.Client()})
		reminders.RegisterNotifier(logSink)
		reminders.RegisterHandler(worker.JobTypeTaskReminder, func(ctx context.Context, job *worker.Job) error {
			log.Printf("reminder: %v", job.Payload["title"])
			return nil
		})
		reminders.Start(cfg.Worker.Concurrency)
		defer reminders.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	tasks := store.NewTaskStore(ctx, taskStorage, notifier)
	cancel()

	monitor := monitoring.NewMonitor()
	monitor.RegisterHealthCheck("redis", func(ctx context.Context) error {
		return taskStorage.Health(ctx)
	})
	monitor.RegisterHealthCheck("database", func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})

	router := handlers.SetupRouter(handlers.RouterDeps{
		Config:  cfg,
		DB:      db,
		Tasks:   tasks,
		Monitor: monitor,
	})

	srv := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("TaskVista listening on %s", cfg.GetServerAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
}
