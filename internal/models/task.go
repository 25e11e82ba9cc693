package models

import (
	"time"

	"github.com/gofrs/uuid"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is the core record. ID and CreatedAt are assigned by the store at
// creation and never change afterwards. AssignedTo references a user id but
// is not checked against the users table.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"dueDate"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	AssignedTo  *uuid.UUID `json:"assignedTo,omitempty"`
}

// Validate checks the invariants a persisted record must hold: a present id,
// a non-empty title, a due date and enumerated status/priority values.
func (t Task) Validate() bool {
	if t.ID == uuid.Nil || t.Title == "" || t.DueDate.IsZero() {
		return false
	}
	return t.Status.Valid() && t.Priority.Valid()
}
