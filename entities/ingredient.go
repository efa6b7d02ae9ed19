package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CanonicalName     string    `gorm:"uniqueIndex" json:"canonical_name"`
	Category          string    `json:"category"`
	IsCommonSeasoning bool      `json:"is_common_seasoning"`
	UsageCount        int64     `json:"usage_count"`

	Timestamp
}

type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID     uuid.UUID `gorm:"index" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"index" json:"ingredient_id"`
	QuantityFrom *float64  `json:"quantity_from,omitempty"`
	QuantityTo   *float64  `json:"quantity_to,omitempty"`
	Unit         *string   `json:"unit,omitempty"`
	IsVague      bool      `json:"is_vague"`
	Importance   string    `json:"importance"` // "essential", "seasoning", "optional"
	DisplayOrder int       `json:"display_order"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
	Timestamp
}
