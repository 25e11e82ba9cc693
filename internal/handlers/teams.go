package handlers

import (
	"net/http"

	"taskvista/backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type TeamHandler struct {
	db          *gorm.DB
	teamService services.TeamService
}

func NewTeamHandler(db *gorm.DB, teamService services.TeamService) *TeamHandler {
	return &TeamHandler{db: db, teamService: teamService}
}

func (h *TeamHandler) GetTeams(c *gin.Context) {
	teams, err := h.teamService.GetTeams(h.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get teams"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams, "total": len(teams)})
}

func (h *TeamHandler) GetTeamByID(c *gin.Context) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	team, err := h.teamService.GetTeamByID(h.db, id)
	if err != nil {
		handleLookupError(c, err, "team")
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(h.db, input.Name, input.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create team"})
		return
	}
	c.JSON(http.StatusCreated, team)
}

func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	if err := h.teamService.DeleteTeam(h.db, id); err != nil {
		handleLookupError(c, err, "team")
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

func (h *TeamHandler) AddMembers(c *gin.Context) {
	teamID, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	var input struct {
		UserIDs []string `json:"userIds" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userIDs := make([]uuid.UUID, 0, len(input.UserIDs))
	for _, raw := range input.UserIDs {
		id, err := uuid.FromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id: " + raw})
			return
		}
		userIDs = append(userIDs, id)
	}

	team, err := h.teamService.AddMembers(h.db, teamID, userIDs)
	if err != nil {
		handleLookupError(c, err, "team")
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) RemoveMember(c *gin.Context) {
	teamID, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}
	userID, err := uuid.FromString(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := h.teamService.RemoveMember(h.db, teamID, userID); err != nil {
		handleLookupError(c, err, "team")
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
