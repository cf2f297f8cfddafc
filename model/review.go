package model

import "time"

type Review struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	MovieID uint   `gorm:"not null;index" json:"movie_id"`
	UserID  string `gorm:"not null;index" json:"user_id"`

	ReviewText string `gorm:"not null" json:"reviewText"`
	Rating     int    `gorm:"not null" json:"rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Author, embedded when a movie is fetched with its reviews
	User *User `gorm:"foreignKey:UserID" json:"author,omitempty"`
}
