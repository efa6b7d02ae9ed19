package importer

import (
	"Recipe-Radar-Backend/domain"
	"Recipe-Radar-Backend/entities"
	"Recipe-Radar-Backend/internal/utils/mailing"
	"Recipe-Radar-Backend/internal/utils/storage"
	"Recipe-Radar-Backend/pkg/catalog"
	"Recipe-Radar-Backend/pkg/parser"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	BatchStatusPending    = "pending"
	BatchStatusProcessing = "processing"
	BatchStatusCompleted  = "completed"
	BatchStatusFailed     = "failed"
)

// Parses below this confidence are staged as needs_review instead of pending.
const reviewConfidenceThreshold = 0.5

type (
	ImportService interface {
		UploadImport(ctx context.Context, req domain.UploadImportRequest) (domain.UploadImportResponse, error)
		GetBatchStatus(ctx context.Context, id string) (domain.BatchStatusResponse, error)
		CancelImport(ctx context.Context, id string) error
		GetPendingIngredients(ctx context.Context, batchID string, status string, page, limit int) ([]domain.PendingIngredientResponse, int64, error)
		GetPendingRecipes(ctx context.Context, batchID string, status string, page, limit int) ([]domain.PendingRecipeResponse, int64, error)
	}

	importService struct {
		importRepository  ImportRepository
		catalogRepository catalog.CatalogRepository
		ingredientParser  *parser.Parser
		classifier        *catalog.Classifier
		matcher           *catalog.Matcher
		s3                storage.AwsS3
		logger            *zap.Logger

		mu      sync.Mutex
		cancels map[uuid.UUID]context.CancelFunc
	}
)

func NewImportService(
	importRepository ImportRepository,
	catalogRepository catalog.CatalogRepository,
	ingredientParser *parser.Parser,
	classifier *catalog.Classifier,
	matcher *catalog.Matcher,
	s3 storage.AwsS3,
	logger *zap.Logger,
) ImportService {
	return &importService{
		importRepository:  importRepository,
		catalogRepository: catalogRepository,
		ingredientParser:  ingredientParser,
		classifier:        classifier,
		matcher:           matcher,
		s3:                s3,
		logger:            logger,
		cancels:           make(map[uuid.UUID]context.CancelFunc),
	}
}

// UploadImport validates the file up front so encoding and header problems come
// back as a synchronous error, then archives the original to S3, records the
// batch, and hands row processing to a background worker.
func (s *importService) UploadImport(ctx context.Context, req domain.UploadImportRequest) (domain.UploadImportResponse, error) {
	src, err := req.File.Open()
	if err != nil {
		return domain.UploadImportResponse{}, err
	}
	rows, err := ReadRows(src)
	src.Close()
	if err != nil {
		return domain.UploadImportResponse{}, err
	}

	batchID := uuid.New()
	fileName := fmt.Sprintf("import-%s", batchID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.File, "imports", storage.AllowDocument...)
	if err != nil {
		return domain.UploadImportResponse{}, err
	}

	batch := &entities.ImportBatch{
		ID:            batchID,
		FileName:      req.File.Filename,
		FileURL:       s.s3.GetPublicLinkKey(objectKey),
		Status:        BatchStatusPending,
		TotalRows:     len(rows),
		UploaderEmail: req.UploaderEmail,
	}
	if err := s.importRepository.CreateBatch(ctx, batch); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadImportResponse{}, err
	}

	// Register the cancel handle before the worker exists, so a cancel
	// arriving right after the upload response still reaches it.
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	s.mu.Lock()
	s.cancels[batch.ID] = cancelWorker
	s.mu.Unlock()

	go s.processBatch(workerCtx, batch, rows)

	return domain.UploadImportResponse{
		BatchID:  batch.ID.String(),
		FileName: batch.FileName,
		Status:   batch.Status,
	}, nil
}

func (s *importService) processBatch(ctx context.Context, batch *entities.ImportBatch, rows []ImportRow) {
	defer s.releaseWorker(batch.ID)

	// Persistence writes use their own context; only the row loop observes
	// cancellation, so a cancel never poisons an in-flight progress write.
	batch.Status = BatchStatusProcessing
	if err := s.importRepository.UpdateBatch(context.Background(), batch); err != nil {
		s.logger.Error("failed to start import batch",
			zap.String("batch_id", batch.ID.String()), zap.Error(err))
		return
	}

	// One candidate snapshot per batch. New approvals land in later batches.
	candidates, err := s.matchCandidates(ctx)
	if err != nil {
		s.failBatch(batch, nil, err)
		return
	}

	var rowErrors []domain.RowError
	for _, row := range rows {
		// A cancelled batch closes out as completed with partial counts,
		// keeping whatever error log it accumulated.
		if ctx.Err() != nil {
			batch.Status = BatchStatusCompleted
			s.finishBatch(batch, rowErrors)
			s.logger.Info("import batch cancelled",
				zap.String("batch_id", batch.ID.String()),
				zap.Int("processed_rows", batch.ProcessedRows))
			return
		}

		if rowErr := s.processRow(ctx, batch, row, candidates); rowErr != nil {
			rowErrors = append(rowErrors, *rowErr)
			batch.ErrorCount++
		} else {
			batch.SuccessCount++
		}
		batch.ProcessedRows++

		if err := s.importRepository.UpdateBatch(context.Background(), batch); err != nil {
			s.failBatch(batch, rowErrors, err)
			return
		}
	}

	batch.Status = BatchStatusCompleted
	s.finishBatch(batch, rowErrors)
	s.logger.Info("import batch completed",
		zap.String("batch_id", batch.ID.String()),
		zap.Int("success_count", batch.SuccessCount),
		zap.Int("error_count", batch.ErrorCount))

	if batch.UploaderEmail != "" {
		s.notifyUploader(batch)
	}
}

// processRow stages one recipe row. A non-nil return is a row-level problem;
// it never aborts the batch.
func (s *importService) processRow(ctx context.Context, batch *entities.ImportBatch, row ImportRow, candidates []catalog.MatchCandidate) *domain.RowError {
	if row.Title == "" || row.Ingredients == "" {
		return &domain.RowError{
			RowNum:   row.RowNum,
			ErrorMsg: "row is missing a title or ingredient text",
			Data:     row.SourceRef,
		}
	}

	parsed := s.ingredientParser.ParseLine(row.Ingredients)
	if len(parsed) == 0 {
		return &domain.RowError{
			RowNum:   row.RowNum,
			ErrorMsg: "no parseable ingredients in row",
			Data:     row.Ingredients,
		}
	}

	pendingRecipe := &entities.PendingRecipe{
		ID:             uuid.New(),
		ImportBatchID:  batch.ID,
		SourceRef:      row.SourceRef,
		Title:          row.Title,
		RawIngredients: row.Ingredients,
		ApprovalStatus: catalog.StatusPending,
	}
	if err := s.importRepository.CreatePendingRecipe(ctx, pendingRecipe); err != nil {
		return &domain.RowError{RowNum: row.RowNum, ErrorMsg: err.Error(), Data: row.SourceRef}
	}

	pendings := make([]*entities.PendingIngredient, 0, len(parsed))
	for _, item := range parsed {
		pending := &entities.PendingIngredient{
			ID:                uuid.New(),
			ImportBatchID:     batch.ID,
			PendingRecipeID:   pendingRecipe.ID,
			RawText:           item.RawText,
			NormalizedName:    item.Name,
			SuggestedCategory: s.classifier.Classify(item.Name),
			QuantityFrom:      item.Quantity.QuantityFrom,
			QuantityTo:        item.Quantity.QuantityTo,
			Unit:              item.Quantity.Unit,
			IsVague:           item.Quantity.IsVague,
			Importance:        item.Importance,
			DisplayOrder:      item.DisplayOrder,
			Confidence:        item.Confidence,
			ApprovalStatus:    catalog.StatusPending,
		}

		if match, found := s.matcher.BestMatch(item.Name, candidates); found {
			pending.DuplicateOfID = &match.IngredientID
			pending.MatchConfidence = match.Confidence
		}
		if item.Confidence < reviewConfidenceThreshold {
			pending.ApprovalStatus = catalog.StatusNeedsReview
		}

		pendings = append(pendings, pending)
	}

	if err := s.importRepository.CreatePendingIngredients(ctx, pendings); err != nil {
		return &domain.RowError{RowNum: row.RowNum, ErrorMsg: err.Error(), Data: row.SourceRef}
	}

	return nil
}

func (s *importService) matchCandidates(ctx context.Context) ([]catalog.MatchCandidate, error) {
	ingredients, err := s.catalogRepository.GetAllIngredients(ctx)
	if err != nil {
		return nil, err
	}
	candidates := make([]catalog.MatchCandidate, 0, len(ingredients))
	for _, ingredient := range ingredients {
		candidates = append(candidates, catalog.MatchCandidate{
			ID:            ingredient.ID,
			CanonicalName: ingredient.CanonicalName,
			UsageCount:    ingredient.UsageCount,
		})
	}
	return candidates, nil
}

func (s *importService) finishBatch(batch *entities.ImportBatch, rowErrors []domain.RowError) {
	if len(rowErrors) > 0 {
		if encoded, err := json.Marshal(rowErrors); err == nil {
			batch.ErrorLog = string(encoded)
		}
	}
	if err := s.importRepository.UpdateBatch(context.Background(), batch); err != nil {
		s.logger.Error("failed to finalize import batch",
			zap.String("batch_id", batch.ID.String()), zap.Error(err))
	}
}

// failBatch closes a batch after a systemic error. Before any row ran the
// batch fails outright; once row processing has started it still closes out
// as completed with partial counts. The cause joins the accumulated row
// errors either way, so the log is never lost.
func (s *importService) failBatch(batch *entities.ImportBatch, rowErrors []domain.RowError, cause error) {
	if batch.ProcessedRows > 0 {
		batch.Status = BatchStatusCompleted
	} else {
		batch.Status = BatchStatusFailed
	}
	rowErrors = append(rowErrors, domain.RowError{RowNum: 0, ErrorMsg: cause.Error()})
	s.finishBatch(batch, rowErrors)
	s.logger.Error("import batch hit a systemic error",
		zap.String("batch_id", batch.ID.String()), zap.Error(cause))
}

func (s *importService) releaseWorker(batchID uuid.UUID) {
	s.mu.Lock()
	cancel, ok := s.cancels[batchID]
	delete(s.cancels, batchID)
	s.mu.Unlock()
	if ok {
		cancel()
	}
}

func (s *importService) notifyUploader(batch *entities.ImportBatch) {
	subject := fmt.Sprintf("Recipe import %s finished", batch.FileName)
	body := fmt.Sprintf(
		"<p>Your recipe import <b>%s</b> has finished.</p><p>%d rows staged, %d rows failed out of %d.</p>",
		batch.FileName, batch.SuccessCount, batch.ErrorCount, batch.TotalRows,
	)
	if err := mailing.SendMail(batch.UploaderEmail, subject, body); err != nil {
		s.logger.Warn("failed to send import completion mail",
			zap.String("batch_id", batch.ID.String()), zap.Error(err))
	}
}

func (s *importService) GetBatchStatus(ctx context.Context, id string) (domain.BatchStatusResponse, error) {
	batchID, err := uuid.Parse(id)
	if err != nil {
		return domain.BatchStatusResponse{}, domain.ErrParseUUID
	}

	batch, err := s.importRepository.GetBatchByID(ctx, batchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BatchStatusResponse{}, domain.ErrBatchNotFound
		}
		return domain.BatchStatusResponse{}, err
	}

	rowErrors := []domain.RowError{}
	if batch.ErrorLog != "" {
		if err := json.Unmarshal([]byte(batch.ErrorLog), &rowErrors); err != nil {
			s.logger.Warn("unparseable error log on batch",
				zap.String("batch_id", batch.ID.String()), zap.Error(err))
		}
	}

	return domain.BatchStatusResponse{
		BatchID:       batch.ID.String(),
		Status:        batch.Status,
		TotalRows:     batch.TotalRows,
		ProcessedRows: batch.ProcessedRows,
		SuccessCount:  batch.SuccessCount,
		ErrorCount:    batch.ErrorCount,
		ErrorLog:      rowErrors,
	}, nil
}

// CancelImport stops a running batch between rows. Rows already staged stay
// staged; the batch closes out as completed with partial counts.
func (s *importService) CancelImport(ctx context.Context, id string) error {
	batchID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	batch, err := s.importRepository.GetBatchByID(ctx, batchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBatchNotFound
		}
		return err
	}

	if batch.Status != BatchStatusPending && batch.Status != BatchStatusProcessing {
		return domain.ErrBatchNotCancellable
	}

	s.mu.Lock()
	cancel, running := s.cancels[batchID]
	s.mu.Unlock()

	if running {
		cancel()
		return nil
	}

	// No worker in this process (e.g. after a restart); close it out directly.
	batch.Status = BatchStatusCompleted
	return s.importRepository.UpdateBatch(ctx, batch)
}

func (s *importService) GetPendingIngredients(ctx context.Context, batchID string, status string, page, limit int) ([]domain.PendingIngredientResponse, int64, error) {
	id, err := uuid.Parse(batchID)
	if err != nil {
		return nil, 0, domain.ErrParseUUID
	}

	pendings, count, err := s.importRepository.GetPendingIngredients(ctx, id, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.PendingIngredientResponse, 0, len(pendings))
	for _, pending := range pendings {
		item := domain.PendingIngredientResponse{
			ID:                pending.ID.String(),
			RawText:           pending.RawText,
			NormalizedName:    pending.NormalizedName,
			SuggestedCategory: pending.SuggestedCategory,
			QuantityFrom:      pending.QuantityFrom,
			QuantityTo:        pending.QuantityTo,
			Unit:              pending.Unit,
			IsVague:           pending.IsVague,
			Importance:        pending.Importance,
			Confidence:        pending.Confidence,
			MatchConfidence:   pending.MatchConfidence,
			ApprovalStatus:    pending.ApprovalStatus,
			RejectionReason:   pending.RejectionReason,
		}
		if pending.DuplicateOfID != nil {
			duplicateOf := pending.DuplicateOfID.String()
			item.DuplicateOfID = &duplicateOf
		}
		response = append(response, item)
	}

	return response, count, nil
}

func (s *importService) GetPendingRecipes(ctx context.Context, batchID string, status string, page, limit int) ([]domain.PendingRecipeResponse, int64, error) {
	id, err := uuid.Parse(batchID)
	if err != nil {
		return nil, 0, domain.ErrParseUUID
	}

	pendings, count, err := s.importRepository.GetPendingRecipes(ctx, id, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.PendingRecipeResponse, 0, len(pendings))
	for _, pending := range pendings {
		item := domain.PendingRecipeResponse{
			ID:              pending.ID.String(),
			SourceRef:       pending.SourceRef,
			Title:           pending.Title,
			RawIngredients:  pending.RawIngredients,
			ApprovalStatus:  pending.ApprovalStatus,
			RejectionReason: pending.RejectionReason,
		}
		if pending.RecipeID != nil {
			item.RecipeID = pending.RecipeID.String()
		}
		response = append(response, item)
	}

	return response, count, nil
}
