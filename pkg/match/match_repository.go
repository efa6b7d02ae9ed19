package match

import (
	"Recipe-Radar-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MatchRepository interface {
		GetScoringRecipes(ctx context.Context) ([]*entities.Recipe, error)
	}

	matchRepository struct {
		db *gorm.DB
	}
)

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) GetScoringRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
