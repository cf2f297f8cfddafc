package model

type Movie struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null;index" json:"title"`
	Description string `json:"description"`
	Director    string `json:"director"`
	Year        int    `json:"year"`
	PosterURL   string `json:"poster_url"`

	Reviews []Review `gorm:"foreignKey:MovieID" json:"reviews"`
}
