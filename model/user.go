// Package model defines database models
package model

import "time"

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"unique; not null" json:"username"`
	Email        string `gorm:"unique; not null" json:"email"`
	FullName     string `gorm:"not null" json:"fullName"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Rotated on every successful login, cleared on logout. Kept server-side
	// so a stolen refresh token can be invalidated later.
	RefreshToken string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Reviews []Review `gorm:"foreignKey:UserID" json:"-"`
}
