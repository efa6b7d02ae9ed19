package importer

import (
	"Recipe-Radar-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ImportRepository interface {
		CreateBatch(ctx context.Context, batch *entities.ImportBatch) error
		GetBatchByID(ctx context.Context, id uuid.UUID) (*entities.ImportBatch, error)
		UpdateBatch(ctx context.Context, batch *entities.ImportBatch) error

		CreatePendingRecipe(ctx context.Context, pending *entities.PendingRecipe) error
		CreatePendingIngredients(ctx context.Context, pendings []*entities.PendingIngredient) error

		GetPendingIngredients(ctx context.Context, batchID uuid.UUID, status string, page, limit int) ([]*entities.PendingIngredient, int64, error)
		GetPendingRecipes(ctx context.Context, batchID uuid.UUID, status string, page, limit int) ([]*entities.PendingRecipe, int64, error)
	}

	importRepository struct {
		db *gorm.DB
	}
)

func NewImportRepository(db *gorm.DB) ImportRepository {
	return &importRepository{db: db}
}

func (r *importRepository) CreateBatch(ctx context.Context, batch *entities.ImportBatch) error {
	return r.db.WithContext(ctx).Create(batch).Error
}

func (r *importRepository) GetBatchByID(ctx context.Context, id uuid.UUID) (*entities.ImportBatch, error) {
	var batch entities.ImportBatch
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *importRepository) UpdateBatch(ctx context.Context, batch *entities.ImportBatch) error {
	return r.db.WithContext(ctx).Save(batch).Error
}

func (r *importRepository) CreatePendingRecipe(ctx context.Context, pending *entities.PendingRecipe) error {
	return r.db.WithContext(ctx).Create(pending).Error
}

func (r *importRepository) CreatePendingIngredients(ctx context.Context, pendings []*entities.PendingIngredient) error {
	if len(pendings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(pendings).Error
}

func (r *importRepository) GetPendingIngredients(ctx context.Context, batchID uuid.UUID, status string, page, limit int) ([]*entities.PendingIngredient, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.PendingIngredient{}).Where("import_batch_id = ?", batchID)
	if status != "" {
		query = query.Where("approval_status = ?", status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var pendings []*entities.PendingIngredient
	if err := query.
		Offset((page - 1) * limit).
		Limit(limit).
		Order("created_at asc, display_order asc").
		Find(&pendings).Error; err != nil {
		return nil, 0, err
	}

	return pendings, count, nil
}

func (r *importRepository) GetPendingRecipes(ctx context.Context, batchID uuid.UUID, status string, page, limit int) ([]*entities.PendingRecipe, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.PendingRecipe{}).Where("import_batch_id = ?", batchID)
	if status != "" {
		query = query.Where("approval_status = ?", status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var pendings []*entities.PendingRecipe
	if err := query.
		Offset((page - 1) * limit).
		Limit(limit).
		Order("created_at asc").
		Find(&pendings).Error; err != nil {
		return nil, 0, err
	}

	return pendings, count, nil
}
