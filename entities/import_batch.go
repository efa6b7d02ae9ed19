package entities

import (
	"github.com/google/uuid"
)

type ImportBatch struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FileName      string    `json:"file_name"`
	FileURL       string    `json:"file_url,omitempty"`
	Status        string    `json:"status"` // "pending", "processing", "completed", "failed"
	TotalRows     int       `json:"total_rows"`
	ProcessedRows int       `json:"processed_rows"`
	SuccessCount  int       `json:"success_count"`
	ErrorCount    int       `json:"error_count"`
	ErrorLog      string    `gorm:"type:text" json:"error_log,omitempty"` // JSON array of {row_num, error_msg, data}
	UploaderEmail string    `json:"uploader_email,omitempty"`

	Timestamp
}

type PendingRecipe struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ImportBatchID   uuid.UUID  `gorm:"index" json:"import_batch_id"`
	SourceRef       string     `json:"source_ref"`
	Title           string     `json:"title"`
	RawIngredients  string     `gorm:"type:text" json:"raw_ingredients"`
	ApprovalStatus  string     `gorm:"index" json:"approval_status"` // "pending", "approved", "rejected", "needs_review"
	RejectionReason string     `json:"rejection_reason,omitempty"`
	RecipeID        *uuid.UUID `json:"recipe_id,omitempty"` // set when approved

	ImportBatch *ImportBatch `gorm:"foreignKey:ImportBatchID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type PendingIngredient struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ImportBatchID     uuid.UUID  `gorm:"index" json:"import_batch_id"`
	PendingRecipeID   uuid.UUID  `gorm:"index" json:"pending_recipe_id"`
	RawText           string     `json:"raw_text"`
	NormalizedName    string     `gorm:"index" json:"normalized_name"`
	SuggestedCategory string     `json:"suggested_category"`
	QuantityFrom      *float64   `json:"quantity_from,omitempty"`
	QuantityTo        *float64   `json:"quantity_to,omitempty"`
	Unit              *string    `json:"unit,omitempty"`
	IsVague           bool       `json:"is_vague"`
	Importance        string     `json:"importance"`
	DisplayOrder      int        `json:"display_order"`
	Confidence        float64    `json:"confidence"`
	DuplicateOfID     *uuid.UUID `json:"duplicate_of_id,omitempty"` // approved catalog ingredient proposed as merge target
	MatchConfidence   float64    `json:"match_confidence,omitempty"`
	ApprovalStatus    string     `gorm:"index" json:"approval_status"`
	RejectionReason   string     `json:"rejection_reason,omitempty"`
	IngredientID      *uuid.UUID `json:"ingredient_id,omitempty"` // catalog id once approved (new or merged)

	ImportBatch   *ImportBatch   `gorm:"foreignKey:ImportBatchID;constraint:OnDelete:CASCADE"`
	PendingRecipe *PendingRecipe `gorm:"foreignKey:PendingRecipeID;constraint:OnDelete:CASCADE"`
	DuplicateOf   *Ingredient    `gorm:"foreignKey:DuplicateOfID"`
	Timestamp
}
