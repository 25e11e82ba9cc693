package models

import (
	"time"

	"github.com/gofrs/uuid"
)

type Team struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`

	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TeamMember links a team to a user id. The user id is stored as-is and not
// foreign-keyed to the users table, so membership survives user deletion.
type TeamMember struct {
	ID      uuid.UUID `json:"-" gorm:"primaryKey;type:uuid"`
	TeamID  uuid.UUID `json:"-" gorm:"type:uuid;index;uniqueIndex:idx_team_user"`
	UserID  uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex:idx_team_user"`
	AddedAt time.Time `json:"addedAt"`
}

func (t *Team) HasMember(userID uuid.UUID) bool {
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
