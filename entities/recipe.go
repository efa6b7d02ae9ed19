package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SourceRef   string    `gorm:"index" json:"source_ref"` // row identifier from the import source
	Servings    int       `json:"servings"`

	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Timestamp
}
