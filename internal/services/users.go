package services

import (
	"taskvista/backend/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	GetUsers(db *gorm.DB) ([]models.User, error)
	GetUserByID(db *gorm.DB, id uuid.UUID) (models.User, error)
	UpdateUser(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
	DeleteUser(db *gorm.DB, id uuid.UUID) error
}

type UserServiceImpl struct{}

func NewUserService() *UserServiceImpl {
	return &UserServiceImpl{}
}

func (s *UserServiceImpl) GetUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserServiceImpl) GetUserByID(db *gorm.DB, id uuid.UUID) (models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	return user, err
}

// UpdateUser applies the given fields. Only profile fields may change;
// id, email and password are stripped before the update.
func (s *UserServiceImpl) UpdateUser(db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "email")
	delete(fields, "password")

	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return err
	}
	return db.Model(&user).Updates(fields).Error
}

func (s *UserServiceImpl) DeleteUser(db *gorm.DB, id uuid.UUID) error {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return err
	}
	return db.Delete(&user).Error
}
