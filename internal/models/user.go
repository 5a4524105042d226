package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account holder. PasswordHash is nil for accounts created
// through Google sign-in that never set a password; such accounts cannot
// log in with the password flow.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash *string        `gorm:"size:100" json:"-"`
	GoogleID     *string        `gorm:"size:255;uniqueIndex" json:"-"`
	Name         string         `gorm:"size:255" json:"name,omitempty"`
	Picture      string         `gorm:"size:1024" json:"picture,omitempty"`
	AuthProvider string         `gorm:"size:20;default:'password'" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// HasPassword reports whether the account carries a password credential.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
