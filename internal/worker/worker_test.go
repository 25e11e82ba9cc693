package worker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"taskvista/backend/internal/notify"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupTestQueue(t *testing.T) (*redis.Client, *JobQueue) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, NewJobQueue(client)
}

func TestEnqueueAndQueueSize(t *testing.T) {
	_, queue := setupTestQueue(t)

	err := queue.Enqueue(QueueReminders, JobTypeTaskReminder, map[string]interface{}{
		"task_id": "abc",
		"title":   "Weekly team meeting",
	})
	if err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	size, err := queue.GetQueueSize(QueueReminders)
	if err != nil {
		t.Fatalf("GetQueueSize failed: %v", err)
	}
	if size != 1 {
		t.Errorf("Expected queue size 1, got %d", size)
	}
}

func TestEnqueuedJobShape(t *testing.T) {
	client, queue := setupTestQueue(t)

	processAt := time.Now().Add(time.Hour)
	if err := queue.EnqueueAt(QueueReminders, JobTypeTaskReminder, map[string]interface{}{
		"task_id": "abc",
	}, processAt); err != nil {
		t.Fatalf("EnqueueAt failed: %v", err)
	}

	raw, err := client.LPop(context.Background(), QueueReminders).Result()
	if err != nil {
		t.Fatalf("LPop failed: %v", err)
	}

	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		t.Fatalf("Failed to unmarshal job: %v", err)
	}
	if job.Type != JobTypeTaskReminder {
		t.Errorf("Expected type %s, got %s", JobTypeTaskReminder, job.Type)
	}
	if job.MaxTries != 3 {
		t.Errorf("Expected MaxTries 3, got %d", job.MaxTries)
	}
	if !job.ProcessAt.Equal(processAt) {
		t.Errorf("Expected ProcessAt %v, got %v", processAt, job.ProcessAt)
	}
}

func TestWorkerProcessesNotificationJob(t *testing.T) {
	client, queue := setupTestQueue(t)

	recorder := notify.NewRecorder()
	w := NewWorker(WorkerConfig{
		RedisClient: client,
		Queues:      []string{QueueNotifications},
	})
	w.RegisterNotifier(recorder)

	if err := queue.Enqueue(QueueNotifications, JobTypeNotification, map[string]interface{}{
		"kind":    "success",
		"title":   "Task added",
		"message": `"Write report" has been added to your tasks.`,
	}); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	if err := w.processNextJob(); err != nil {
		t.Fatalf("processNextJob failed: %v", err)
	}

	last, ok := recorder.Last()
	if !ok {
		t.Fatal("Expected a delivered notification")
	}
	if last.Kind != notify.KindSuccess {
		t.Errorf("Expected kind success, got %s", last.Kind)
	}
	if last.Title != "Task added" {
		t.Errorf("Expected title %q, got %q", "Task added", last.Title)
	}
}

func TestWorkerRetriesFailedJob(t *testing.T) {
	client, queue := setupTestQueue(t)

	w := NewWorker(WorkerConfig{
		RedisClient: client,
		Queues:      []string{QueueReminders},
	})

	attempts := 0
	w.RegisterHandler(JobTypeTaskReminder, func(ctx context.Context, job *Job) error {
		attempts++
		return context.DeadlineExceeded
	})

	if err := queue.Enqueue(QueueReminders, JobTypeTaskReminder, nil); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	if err := w.processNextJob(); err != nil {
		t.Fatalf("processNextJob failed: %v", err)
	}

	if attempts != 1 {
		t.Errorf("Expected 1 handler attempt, got %d", attempts)
	}

	size, err := client.LLen(context.Background(), queueRetry).Result()
	if err != nil {
		t.Fatalf("LLen failed: %v", err)
	}
	if size != 1 {
		t.Errorf("Expected 1 job on the retry queue, got %d", size)
	}
}

func TestWorkerMovesExhaustedJobToDeadQueue(t *testing.T) {
	client, _ := setupTestQueue(t)

	w := NewWorker(WorkerConfig{
		RedisClient: client,
		Queues:      []string{QueueReminders},
	})
	w.RegisterHandler(JobTypeTaskReminder, func(ctx context.Context, job *Job) error {
		return context.DeadlineExceeded
	})

	job := &Job{
		ID:       "job-1",
		Type:     JobTypeTaskReminder,
		Attempts: 2,
		MaxTries: 3,
	}
	jobData, _ := json.Marshal(job)
	if err := client.RPush(context.Background(), QueueReminders, jobData).Err(); err != nil {
		t.Fatalf("RPush failed: %v", err)
	}

	if err := w.processNextJob(); err != nil {
		t.Fatalf("processNextJob failed: %v", err)
	}

	size, err := client.LLen(context.Background(), queueDead).Result()
	if err != nil {
		t.Fatalf("LLen failed: %v", err)
	}
	if size != 1 {
		t.Errorf("Expected 1 job on the dead queue, got %d", size)
	}
}

func TestWorkerUnknownJobType(t *testing.T) {
	client, queue := setupTestQueue(t)

	w := NewWorker(WorkerConfig{
		RedisClient: client,
		Queues:      []string{QueueReminders},
	})

	if err := queue.Enqueue(QueueReminders, JobType("mystery"), nil); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	if err := w.processNextJob(); err == nil {
		t.Error("Expected error for unregistered job type")
	}
}

func TestQueueNotifierEnqueues(t *testing.T) {
	_, queue := setupTestQueue(t)

	notifier := NewQueueNotifier(queue)
	notifier.Notify(notify.Notification{
		Kind:    notify.KindError,
		Title:   "Sync failed",
		Message: "Your tasks could not be saved.",
	})

	size, err := queue.GetQueueSize(QueueNotifications)
	if err != nil {
		t.Fatalf("GetQueueSize failed: %v", err)
	}
	if size != 1 {
		t.Errorf("Expected 1 queued notification, got %d", size)
	}
}
