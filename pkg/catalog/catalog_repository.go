package catalog

import (
	"Recipe-Radar-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		GetIngredients(ctx context.Context, page, limit int) ([]*entities.Ingredient, int64, error)
		GetAllIngredients(ctx context.Context) ([]*entities.Ingredient, error)
		GetIngredientByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error)
		GetIngredientByName(ctx context.Context, canonicalName string) (*entities.Ingredient, error)
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		UpdateIngredientSeasoning(ctx context.Context, id uuid.UUID, isCommonSeasoning bool) error

		GetPendingIngredientByID(ctx context.Context, id uuid.UUID) (*entities.PendingIngredient, error)
		UpdatePendingIngredient(ctx context.Context, pending *entities.PendingIngredient) error
		GetPendingIngredientsByRecipe(ctx context.Context, pendingRecipeID uuid.UUID) ([]*entities.PendingIngredient, error)

		GetPendingRecipeByID(ctx context.Context, id uuid.UUID) (*entities.PendingRecipe, error)
		UpdatePendingRecipe(ctx context.Context, pending *entities.PendingRecipe) error

		CreateRecipeWithIngredients(ctx context.Context, recipe *entities.Recipe, associations []*entities.RecipeIngredient) error
		CountRecipes(ctx context.Context) (int64, error)
		GetIngredientRecipeCounts(ctx context.Context) (map[uuid.UUID]int64, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetIngredients(ctx context.Context, page, limit int) ([]*entities.Ingredient, int64, error) {
	var ingredients []*entities.Ingredient
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Ingredient{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(limit).
		Order("canonical_name asc").
		Find(&ingredients).Error; err != nil {
		return nil, 0, err
	}

	return ingredients, count, nil
}

func (r *catalogRepository) GetAllIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *catalogRepository) GetIngredientByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *catalogRepository) GetIngredientByName(ctx context.Context, canonicalName string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("canonical_name = ?", canonicalName).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *catalogRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *catalogRepository) UpdateIngredientSeasoning(ctx context.Context, id uuid.UUID, isCommonSeasoning bool) error {
	return r.db.WithContext(ctx).
		Model(&entities.Ingredient{}).
		Where("id = ?", id).
		Update("is_common_seasoning", isCommonSeasoning).Error
}

func (r *catalogRepository) GetPendingIngredientByID(ctx context.Context, id uuid.UUID) (*entities.PendingIngredient, error) {
	var pending entities.PendingIngredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&pending).Error; err != nil {
		return nil, err
	}
	return &pending, nil
}

func (r *catalogRepository) UpdatePendingIngredient(ctx context.Context, pending *entities.PendingIngredient) error {
	return r.db.WithContext(ctx).Save(pending).Error
}

func (r *catalogRepository) GetPendingIngredientsByRecipe(ctx context.Context, pendingRecipeID uuid.UUID) ([]*entities.PendingIngredient, error) {
	var pendings []*entities.PendingIngredient
	if err := r.db.WithContext(ctx).
		Where("pending_recipe_id = ?", pendingRecipeID).
		Order("display_order asc").
		Find(&pendings).Error; err != nil {
		return nil, err
	}
	return pendings, nil
}

func (r *catalogRepository) GetPendingRecipeByID(ctx context.Context, id uuid.UUID) (*entities.PendingRecipe, error) {
	var pending entities.PendingRecipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&pending).Error; err != nil {
		return nil, err
	}
	return &pending, nil
}

func (r *catalogRepository) UpdatePendingRecipe(ctx context.Context, pending *entities.PendingRecipe) error {
	return r.db.WithContext(ctx).Save(pending).Error
}

func (r *catalogRepository) CreateRecipeWithIngredients(ctx context.Context, recipe *entities.Recipe, associations []*entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for _, assoc := range associations {
			assoc.RecipeID = recipe.ID
			if err := tx.Create(assoc).Error; err != nil {
				return err
			}
			if err := tx.Model(&entities.Ingredient{}).
				Where("id = ?", assoc.IngredientID).
				Update("usage_count", gorm.Expr("usage_count + 1")).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *catalogRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *catalogRepository) GetIngredientRecipeCounts(ctx context.Context) (map[uuid.UUID]int64, error) {
	var rows []struct {
		IngredientID uuid.UUID
		RecipeCount  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Select("ingredient_id, count(distinct recipe_id) as recipe_count").
		Group("ingredient_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.IngredientID] = row.RecipeCount
	}
	return counts, nil
}
