package db

import (
	"bitwise74/review-api/model"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Movies are never created through the API, so fresh deployments get a
// starter catalog. Skipped whenever the table already has rows.
var starterCatalog = []model.Movie{
	{Title: "12 Angry Men", Director: "Sidney Lumet", Year: 1957, Description: "A lone juror holds out against eleven others in a murder trial."},
	{Title: "Seven Samurai", Director: "Akira Kurosawa", Year: 1954, Description: "A village hires seven ronin to defend it against bandits."},
	{Title: "The Thing", Director: "John Carpenter", Year: 1982, Description: "An Antarctic research station is infiltrated by a shape-shifting organism."},
	{Title: "Spirited Away", Director: "Hayao Miyazaki", Year: 2001, Description: "A girl must work in a bathhouse for spirits to free her parents."},
	{Title: "Heat", Director: "Michael Mann", Year: 1995, Description: "A career thief and an obsessive detective circle each other in Los Angeles."},
	{Title: "Alien", Director: "Ridley Scott", Year: 1979, Description: "The crew of a commercial starship is hunted by a lethal stowaway."},
}

// SeedMovies inserts the starter catalog if the movies table is empty.
func SeedMovies(db *gorm.DB) error {
	var count int64

	if err := db.Model(model.Movie{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count movies, %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := db.Create(&starterCatalog).Error; err != nil {
		return fmt.Errorf("failed to seed movie catalog, %w", err)
	}

	zap.L().Info("Seeded movie catalog", zap.Int("movies", len(starterCatalog)))
	return nil
}
