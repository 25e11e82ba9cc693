package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"taskvista/backend/internal/models"
	"taskvista/backend/internal/notify"
	"taskvista/backend/internal/storage"

	"github.com/gofrs/uuid"
)

// Persister mirrors the collection into durable storage. Load errors decide
// whether the store seeds itself; Save errors are reported but never abort a
// mutation.
type Persister interface {
	Load(ctx context.Context) ([]models.Task, error)
	Save(ctx context.Context, tasks []models.Task) error
}

// CreateTaskInput carries everything a new task needs except the fields the
// store assigns itself (id, createdAt). Status defaults to todo when empty.
type CreateTaskInput struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	DueDate     time.Time       `json:"dueDate" binding:"required"`
	StartDate   *time.Time      `json:"startDate"`
	Priority    models.Priority `json:"priority" binding:"required"`
	Status      models.Status   `json:"status"`
	AssignedTo  *uuid.UUID      `json:"assignedTo"`
}

// TaskPatch is a partial update; nil fields are left untouched. There is
// deliberately no way to patch id or createdAt.
type TaskPatch struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	DueDate     *time.Time       `json:"dueDate"`
	StartDate   *time.Time       `json:"startDate"`
	Priority    *models.Priority `json:"priority"`
	Status      *models.Status   `json:"status"`
	AssignedTo  *uuid.UUID       `json:"assignedTo"`
}

// TaskStore owns the authoritative in-memory collection. All mutations are
// serialized through its mutex, and the persistence write for mutation N is
// issued before the lock is released, so writes can never reorder.
type TaskStore struct {
	mu        sync.Mutex
	tasks     []models.Task
	persister Persister
	notifier  notify.Notifier
	now       func() time.Time
}

type Option func(*TaskStore)

// WithClock overrides the store's time source in tests.
func WithClock(now func() time.Time) Option {
	return func(s *TaskStore) {
		s.now = now
	}
}

// NewTaskStore seeds from the persister when possible and from SeedTasks when
// the persisted collection is missing or corrupt. Startup never fails on bad
// stored state.
func NewTaskStore(ctx context.Context, persister Persister, notifier notify.Notifier, opts ...Option) *TaskStore {
	s := &TaskStore{
		persister: persister,
		notifier:  notifier,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = notify.NewLogNotifier()
	}

	tasks, err := persister.Load(ctx)
	switch {
	case err == nil:
		s.tasks = tasks
	case errors.Is(err, storage.ErrNoCollection):
		s.tasks = SeedTasks(s.now())
		s.persist(ctx)
	default:
		log.Printf("task store: falling back to seed collection: %v", err)
		s.tasks = SeedTasks(s.now())
		s.persist(ctx)
	}

	return s
}

// Create appends a new task to the collection, persists and notifies.
func (s *TaskStore) Create(ctx context.Context, input CreateTaskInput) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := input.Status
	if status == "" {
		status = models.StatusTodo
	}

	task := models.Task{
		ID:          s.newID(),
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		StartDate:   input.StartDate,
		Priority:    input.Priority,
		Status:      status,
		CreatedAt:   s.now(),
		AssignedTo:  input.AssignedTo,
	}

	s.tasks = append(s.tasks, task)
	s.persist(ctx)

	s.notifier.Notify(notify.Notification{
		Kind:    notify.KindSuccess,
		Title:   "Task added",
		Message: fmt.Sprintf("%q has been added to your tasks.", task.Title),
	})

	return task
}

// Update merges the patch over the matching task in place. It reports whether
// a match was found; an unknown id is a no-op, not an error.
func (s *TaskStore) Update(ctx context.Context, id uuid.UUID, patch TaskPatch) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Task{}, false
	}

	task := s.tasks[idx]
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.DueDate != nil {
		task.DueDate = *patch.DueDate
	}
	if patch.StartDate != nil {
		task.StartDate = patch.StartDate
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.AssignedTo != nil {
		task.AssignedTo = patch.AssignedTo
	}

	s.tasks[idx] = task
	s.persist(ctx)

	s.notifier.Notify(notify.Notification{
		Kind:    notify.KindSuccess,
		Title:   "Task updated",
		Message: "Your task has been updated successfully.",
	})

	return task, true
}

// Delete removes the matching task permanently. A miss is a silent no-op and
// produces no notification.
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	title := s.tasks[idx].Title
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.persist(ctx)

	s.notifier.Notify(notify.Notification{
		Kind:    notify.KindSuccess,
		Title:   "Task deleted",
		Message: fmt.Sprintf("%q has been removed.", title),
	})

	return true
}

// GetByID is a pure lookup with no side effects.
func (s *TaskStore) GetByID(id uuid.UUID) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Task{}, false
	}
	return s.tasks[idx], true
}

// Tasks returns a snapshot copy in insertion order. Callers never receive a
// reference into the backing slice.
func (s *TaskStore) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *TaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *TaskStore) indexOf(id uuid.UUID) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *TaskStore) newID() uuid.UUID {
	for {
		id := uuid.Must(uuid.NewV4())
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

// persist mirrors the current collection. Failures are reported as warnings;
// the in-memory state stays authoritative either way.
func (s *TaskStore) persist(ctx context.Context) {
	if err := s.persister.Save(ctx, s.tasks); err != nil {
		log.Printf("task store: persistence write failed: %v", err)
		s.notifier.Notify(notify.Notification{
			Kind:    notify.KindError,
			Title:   "Sync failed",
			Message: "Your tasks could not be saved. Changes remain available this session.",
		})
	}
}
