package models

import (
	"time"

	"github.com/gofrs/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"default:'Member'"`
	AvatarURL string    `json:"avatarUrl,omitempty"`

	IsActive    bool       `json:"isActive" gorm:"default:true"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) Initials() string {
	initials := ""
	prevSpace := true
	for _, r := range u.Name {
		if r == ' ' {
			prevSpace = true
			continue
		}
		if prevSpace {
			initials += string(r)
			prevSpace = false
		}
	}
	return initials
}
