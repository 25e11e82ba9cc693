package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gofrs/uuid"
)

func TestPriorityValid(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		if !p.Valid() {
			t.Errorf("Expected priority %q to be valid", p)
		}
	}

	for _, p := range []Priority{"", "urgent", "HIGH"} {
		if p.Valid() {
			t.Errorf("Expected priority %q to be invalid", p)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusTodo, StatusInProgress, StatusDone} {
		if !s.Valid() {
			t.Errorf("Expected status %q to be valid", s)
		}
	}

	for _, s := range []Status{"", "pending", "Done"} {
		if s.Valid() {
			t.Errorf("Expected status %q to be invalid", s)
		}
	}
}

func TestTaskValidate(t *testing.T) {
	valid := Task{
		ID:       uuid.Must(uuid.NewV4()),
		Title:    "Write report",
		DueDate:  time.Now().Add(48 * time.Hour),
		Priority: PriorityHigh,
		Status:   StatusTodo,
	}
	if !valid.Validate() {
		t.Error("Expected task to validate")
	}

	tests := []struct {
		name   string
		mutate func(*Task)
	}{
		{"missing id", func(task *Task) { task.ID = uuid.Nil }},
		{"empty title", func(task *Task) { task.Title = "" }},
		{"zero due date", func(task *Task) { task.DueDate = time.Time{} }},
		{"bad status", func(task *Task) { task.Status = "archived" }},
		{"bad priority", func(task *Task) { task.Priority = "critical" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := valid
			tt.mutate(&task)
			if task.Validate() {
				t.Errorf("Expected task with %s to fail validation", tt.name)
			}
		})
	}
}

func TestTaskJSONFieldNames(t *testing.T) {
	task := Task{
		ID:       uuid.Must(uuid.NewV4()),
		Title:    "Write report",
		DueDate:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Priority: PriorityMedium,
		Status:   StatusTodo,
	}

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Failed to marshal task: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Failed to unmarshal task: %v", err)
	}

	for _, field := range []string{"id", "title", "description", "dueDate", "priority", "status", "createdAt"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("Expected JSON field %q to be present", field)
		}
	}

	if _, ok := raw["startDate"]; ok {
		t.Error("Expected empty startDate to be omitted")
	}
}

func TestUserInitials(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"John Doe", "JD"},
		{"Alice", "A"},
		{"Bob James Smith", "BJS"},
	}

	for _, tt := range tests {
		u := User{Name: tt.name}
		if got := u.Initials(); got != tt.expected {
			t.Errorf("Initials(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}

func TestTeamHasMember(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	team := Team{
		Members: []TeamMember{{UserID: userID}},
	}

	if !team.HasMember(userID) {
		t.Error("Expected team to have member")
	}
	if team.HasMember(uuid.Must(uuid.NewV4())) {
		t.Error("Expected team not to have unknown member")
	}
}
