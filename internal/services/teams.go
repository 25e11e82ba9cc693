package services

import (
	"errors"
	"time"

	"taskvista/backend/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type TeamService interface {
	GetTeams(db *gorm.DB) ([]models.Team, error)
	GetTeamByID(db *gorm.DB, id uuid.UUID) (models.Team, error)
	CreateTeam(db *gorm.DB, name, description string) (*models.Team, error)
	DeleteTeam(db *gorm.DB, id uuid.UUID) error
	AddMembers(db *gorm.DB, teamID uuid.UUID, userIDs []uuid.UUID) (*models.Team, error)
	RemoveMember(db *gorm.DB, teamID, userID uuid.UUID) error
}

type TeamServiceImpl struct{}

func NewTeamService() *TeamServiceImpl {
	return &TeamServiceImpl{}
}

func (s *TeamServiceImpl) GetTeams(db *gorm.DB) ([]models.Team, error) {
	var teams []models.Team
	if err := db.Preload("Members").Order("created_at").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *TeamServiceImpl) GetTeamByID(db *gorm.DB, id uuid.UUID) (models.Team, error) {
	var team models.Team
	err := db.Preload("Members").First(&team, "id = ?", id).Error
	return team, err
}

func (s *TeamServiceImpl) CreateTeam(db *gorm.DB, name, description string) (*models.Team, error) {
	if name == "" {
		return nil, errors.New("team name is required")
	}

	team := models.Team{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        name,
		Description: description,
	}
	if err := db.Create(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamServiceImpl) DeleteTeam(db *gorm.DB, id uuid.UUID) error {
	var team models.Team
	if err := db.First(&team, "id = ?", id).Error; err != nil {
		return err
	}
	if err := db.Where("team_id = ?", id).Delete(&models.TeamMember{}).Error; err != nil {
		return err
	}
	return db.Delete(&team).Error
}

// AddMembers adds the given users to the team, skipping ids that are already
// members. User ids are not validated against the users table.
func (s *TeamServiceImpl) AddMembers(db *gorm.DB, teamID uuid.UUID, userIDs []uuid.UUID) (*models.Team, error) {
	var team models.Team
	if err := db.Preload("Members").First(&team, "id = ?", teamID).Error; err != nil {
		return nil, err
	}

	for _, userID := range userIDs {
		if team.HasMember(userID) {
			continue
		}
		member := models.TeamMember{
			ID:      uuid.Must(uuid.NewV4()),
			TeamID:  teamID,
			UserID:  userID,
			AddedAt: time.Now(),
		}
		if err := db.Create(&member).Error; err != nil {
			return nil, err
		}
	}

	updated, err := s.GetTeamByID(db, teamID)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *TeamServiceImpl) RemoveMember(db *gorm.DB, teamID, userID uuid.UUID) error {
	return db.Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&models.TeamMember{}).Error
}
