package views

import (
	"sort"
	"strings"
	"time"

	"taskvista/backend/internal/models"
)

// Pure projections over a task snapshot. Nothing here mutates the input or
// caches results; every call computes fresh from the snapshot it is handed.

type StatusGroups struct {
	Todo       []models.Task `json:"todo"`
	InProgress []models.Task `json:"inProgress"`
	Done       []models.Task `json:"done"`
}

// GroupByStatus partitions tasks into the three status columns, preserving
// each group's relative insertion order.
func GroupByStatus(tasks []models.Task) StatusGroups {
	var g StatusGroups
	for _, t := range tasks {
		switch t.Status {
		case models.StatusTodo:
			g.Todo = append(g.Todo, t)
		case models.StatusInProgress:
			g.InProgress = append(g.InProgress, t)
		case models.StatusDone:
			g.Done = append(g.Done, t)
		}
	}
	return g
}

type PriorityGroups struct {
	High   []models.Task `json:"high"`
	Medium []models.Task `json:"medium"`
	Low    []models.Task `json:"low"`
}

func GroupByPriority(tasks []models.Task) PriorityGroups {
	var g PriorityGroups
	for _, t := range tasks {
		switch t.Priority {
		case models.PriorityHigh:
			g.High = append(g.High, t)
		case models.PriorityMedium:
			g.Medium = append(g.Medium, t)
		case models.PriorityLow:
			g.Low = append(g.Low, t)
		}
	}
	return g
}

// DateKey is the local calendar day of an instant, formatted YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// GroupByDueDate buckets tasks by the local calendar date of their due date.
// Within a bucket, source order is preserved. Dates returns the bucket keys
// in ascending order for calendar rendering.
func GroupByDueDate(tasks []models.Task) map[string][]models.Task {
	groups := make(map[string][]models.Task)
	for _, t := range tasks {
		key := DateKey(t.DueDate)
		groups[key] = append(groups[key], t)
	}
	return groups
}

func Dates(groups map[string][]models.Task) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortByDueDate returns a new slice ordered by due date ascending. The sort is
// stable: tasks sharing an instant keep their original relative order, which
// the timeline layout depends on for its index-parity placement.
func SortByDueDate(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

type DueClass string

const (
	DueOverdue  DueClass = "overdue"
	DueToday    DueClass = "due-today"
	DueUpcoming DueClass = "upcoming"
	DueDone     DueClass = "done"
)

// Classify places a task in exactly one bucket relative to now. Done tasks
// never enter a date bucket. A due date on today's local calendar date counts
// as due-today even when the instant has already passed, so the three date
// buckets stay mutually exclusive.
func Classify(t models.Task, now time.Time) DueClass {
	if t.Status == models.StatusDone {
		return DueDone
	}
	if DateKey(t.DueDate) == DateKey(now) {
		return DueToday
	}
	if t.DueDate.Before(now) {
		return DueOverdue
	}
	return DueUpcoming
}

type DueBuckets struct {
	Overdue  []models.Task `json:"overdue"`
	DueToday []models.Task `json:"dueToday"`
	Upcoming []models.Task `json:"upcoming"`
	Done     []models.Task `json:"done"`
}

// PartitionByDue classifies every task; the four buckets together are an
// exhaustive partition of the snapshot.
func PartitionByDue(tasks []models.Task, now time.Time) DueBuckets {
	var b DueBuckets
	for _, t := range tasks {
		switch Classify(t, now) {
		case DueOverdue:
			b.Overdue = append(b.Overdue, t)
		case DueToday:
			b.DueToday = append(b.DueToday, t)
		case DueUpcoming:
			b.Upcoming = append(b.Upcoming, t)
		case DueDone:
			b.Done = append(b.Done, t)
		}
	}
	return b
}

// Search matches the query case-insensitively against title or description.
// An empty or whitespace-only query yields no results, matching the
// "no query, no results shown" contract of the search page.
func Search(tasks []models.Task, query string) []models.Task {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.Task{}
	}

	var out []models.Task
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, t)
		}
	}
	return out
}
