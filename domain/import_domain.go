package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessUploadImport          = "import file uploaded successfully"
	MessageSuccessGetBatchStatus        = "batch status retrieved successfully"
	MessageSuccessCancelImport          = "import batch cancelled"
	MessageSuccessGetPendingIngredients = "pending ingredients retrieved successfully"
	MessageSuccessGetPendingRecipes     = "pending recipes retrieved successfully"

	MessageFailedUploadImport          = "failed to upload import file"
	MessageFailedGetBatchStatus        = "failed to retrieve batch status"
	MessageFailedCancelImport          = "failed to cancel import batch"
	MessageFailedGetPendingIngredients = "failed to retrieve pending ingredients"
	MessageFailedGetPendingRecipes     = "failed to retrieve pending recipes"

	ErrBatchNotFound         = errors.New("import batch not found")
	ErrBatchNotCancellable   = errors.New("import batch is not running")
	ErrEmptyImportFile       = errors.New("import file contains no data rows")
	ErrUnreadableEncoding    = errors.New("import file encoding could not be decoded")
	ErrMalformedImportFile   = errors.New("import file is not valid CSV")
	ErrMissingRequiredColumn = errors.New("import file is missing a required column")
)

type (
	UploadImportRequest struct {
		File          *multipart.FileHeader `json:"file" form:"file" validate:"required"`
		UploaderEmail string                `json:"uploader_email" form:"uploader_email" validate:"omitempty,email"`
	}

	UploadImportResponse struct {
		BatchID  string `json:"batch_id"`
		FileName string `json:"file_name"`
		Status   string `json:"status"`
	}

	RowError struct {
		RowNum   int    `json:"row_num"`
		ErrorMsg string `json:"error_msg"`
		Data     string `json:"data,omitempty"`
	}

	BatchStatusResponse struct {
		BatchID       string     `json:"batch_id"`
		Status        string     `json:"status"`
		TotalRows     int        `json:"total_rows"`
		ProcessedRows int        `json:"processed_rows"`
		SuccessCount  int        `json:"success_count"`
		ErrorCount    int        `json:"error_count"`
		ErrorLog      []RowError `json:"error_log"`
	}
)
