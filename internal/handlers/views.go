package handlers

import (
	"net/http"
	"time"

	"taskvista/backend/internal/store"
	"taskvista/backend/internal/views"

	"github.com/gin-gonic/gin"
)

// ViewHandler serves the presentational projections. Every endpoint computes
// fresh from a store snapshot; nothing here writes or caches.
type ViewHandler struct {
	tasks *store.TaskStore
	now   func() time.Time
}

func NewViewHandler(tasks *store.TaskStore) *ViewHandler {
	return &ViewHandler{tasks: tasks, now: time.Now}
}

// NewViewHandlerWithClock pins the reference time, used by tests.
func NewViewHandlerWithClock(tasks *store.TaskStore, now func() time.Time) *ViewHandler {
	return &ViewHandler{tasks: tasks, now: now}
}

// Dashboard returns the count summaries backing the dashboard charts.
func (h *ViewHandler) Dashboard(c *gin.Context) {
	snapshot := h.tasks.Tasks()
	status := views.GroupByStatus(snapshot)
	priority := views.GroupByPriority(snapshot)
	due := views.PartitionByDue(snapshot, h.now())

	c.JSON(http.StatusOK, gin.H{
		"total": len(snapshot),
		"status": gin.H{
			"todo":       len(status.Todo),
			"inProgress": len(status.InProgress),
			"done":       len(status.Done),
		},
		"priority": gin.H{
			"high":   len(priority.High),
			"medium": len(priority.Medium),
			"low":    len(priority.Low),
		},
		"due": gin.H{
			"overdue":  len(due.Overdue),
			"dueToday": len(due.DueToday),
			"upcoming": len(due.Upcoming),
		},
	})
}

// Board returns the kanban columns, optionally narrowed by a search query.
func (h *ViewHandler) Board(c *gin.Context) {
	snapshot := h.tasks.Tasks()
	if q := c.Query("q"); q != "" {
		snapshot = views.Search(snapshot, q)
	}
	c.JSON(http.StatusOK, views.GroupByStatus(snapshot))
}

func (h *ViewHandler) Priorities(c *gin.Context) {
	c.JSON(http.StatusOK, views.GroupByPriority(h.tasks.Tasks()))
}

func (h *ViewHandler) Calendar(c *gin.Context) {
	groups := views.GroupByDueDate(h.tasks.Tasks())
	c.JSON(http.StatusOK, gin.H{
		"dates":  views.Dates(groups),
		"groups": groups,
	})
}

func (h *ViewHandler) Timeline(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tasks": views.SortByDueDate(h.tasks.Tasks()),
	})
}

func (h *ViewHandler) Search(c *gin.Context) {
	results := views.Search(h.tasks.Tasks(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"total":   len(results),
	})
}
