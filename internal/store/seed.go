package store

import (
	"time"

	"taskvista/backend/internal/models"

	"github.com/gofrs/uuid"
)

// SeedTasks builds the collection used when nothing valid has been persisted
// yet, so the application is never empty on first run. It spans every priority
// and includes one already-overdue item.
func SeedTasks(now time.Time) []models.Task {
	day := 24 * time.Hour

	return []models.Task{
		{
			ID:          uuid.Must(uuid.NewV4()),
			Title:       "Complete project proposal",
			Description: "Write and submit the project proposal for client review.",
			DueDate:     now.Add(2 * day),
			Priority:    models.PriorityHigh,
			Status:      models.StatusInProgress,
			CreatedAt:   now,
		},
		{
			ID:          uuid.Must(uuid.NewV4()),
			Title:       "Weekly team meeting",
			Description: "Discuss progress and upcoming tasks with the development team.",
			DueDate:     now.Add(1 * day),
			Priority:    models.PriorityMedium,
			Status:      models.StatusTodo,
			CreatedAt:   now,
		},
		{
			ID:          uuid.Must(uuid.NewV4()),
			Title:       "Update documentation",
			Description: "Update the user guide with new feature information.",
			DueDate:     now.Add(5 * day),
			Priority:    models.PriorityLow,
			Status:      models.StatusTodo,
			CreatedAt:   now,
		},
		{
			ID:          uuid.Must(uuid.NewV4()),
			Title:       "Fix login page bug",
			Description: "Address the authentication issue on the login page.",
			DueDate:     now.Add(-1 * day),
			Priority:    models.PriorityHigh,
			Status:      models.StatusTodo,
			CreatedAt:   now,
		},
		{
			ID:          uuid.Must(uuid.NewV4()),
			Title:       "Client presentation",
			Description: "Prepare slides and demo for the client presentation.",
			DueDate:     now.Add(3 * day),
			Priority:    models.PriorityHigh,
			Status:      models.StatusDone,
			CreatedAt:   now,
		},
	}
}
