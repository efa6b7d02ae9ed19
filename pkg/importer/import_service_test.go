package importer

import (
	"Recipe-Radar-Backend/domain"
	"Recipe-Radar-Backend/entities"
	"Recipe-Radar-Backend/pkg/catalog"
	"Recipe-Radar-Backend/pkg/parser"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeImportRepository struct {
	batches            map[uuid.UUID]*entities.ImportBatch
	pendingRecipes     []*entities.PendingRecipe
	pendingIngredients []*entities.PendingIngredient
}

func newFakeImportRepository() *fakeImportRepository {
	return &fakeImportRepository{batches: make(map[uuid.UUID]*entities.ImportBatch)}
}

func (f *fakeImportRepository) CreateBatch(_ context.Context, batch *entities.ImportBatch) error {
	f.batches[batch.ID] = batch
	return nil
}

func (f *fakeImportRepository) GetBatchByID(_ context.Context, id uuid.UUID) (*entities.ImportBatch, error) {
	if batch, ok := f.batches[id]; ok {
		return batch, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeImportRepository) UpdateBatch(_ context.Context, batch *entities.ImportBatch) error {
	f.batches[batch.ID] = batch
	return nil
}

func (f *fakeImportRepository) CreatePendingRecipe(_ context.Context, pending *entities.PendingRecipe) error {
	f.pendingRecipes = append(f.pendingRecipes, pending)
	return nil
}

func (f *fakeImportRepository) CreatePendingIngredients(_ context.Context, pendings []*entities.PendingIngredient) error {
	f.pendingIngredients = append(f.pendingIngredients, pendings...)
	return nil
}

func (f *fakeImportRepository) GetPendingIngredients(_ context.Context, batchID uuid.UUID, status string, _, _ int) ([]*entities.PendingIngredient, int64, error) {
	var result []*entities.PendingIngredient
	for _, pending := range f.pendingIngredients {
		if pending.ImportBatchID == batchID && (status == "" || pending.ApprovalStatus == status) {
			result = append(result, pending)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeImportRepository) GetPendingRecipes(_ context.Context, batchID uuid.UUID, status string, _, _ int) ([]*entities.PendingRecipe, int64, error) {
	var result []*entities.PendingRecipe
	for _, pending := range f.pendingRecipes {
		if pending.ImportBatchID == batchID && (status == "" || pending.ApprovalStatus == status) {
			result = append(result, pending)
		}
	}
	return result, int64(len(result)), nil
}

// flakyImportRepository fails UpdateBatch on one chosen call, then recovers.
type flakyImportRepository struct {
	*fakeImportRepository
	updateCalls int
	failOn      int
}

func (f *flakyImportRepository) UpdateBatch(ctx context.Context, batch *entities.ImportBatch) error {
	f.updateCalls++
	if f.updateCalls == f.failOn {
		return errors.New("db connection reset")
	}
	return f.fakeImportRepository.UpdateBatch(ctx, batch)
}

// fakeCatalogLookup satisfies the single catalog call the worker makes.
type fakeCatalogLookup struct {
	catalog.CatalogRepository
	ingredients []*entities.Ingredient
}

func (f *fakeCatalogLookup) GetAllIngredients(_ context.Context) ([]*entities.Ingredient, error) {
	return f.ingredients, nil
}

type brokenCatalogLookup struct {
	catalog.CatalogRepository
}

func (b *brokenCatalogLookup) GetAllIngredients(_ context.Context) ([]*entities.Ingredient, error) {
	return nil, errors.New("catalog unavailable")
}

func newTestImportService(repo *fakeImportRepository, approved []*entities.Ingredient) *importService {
	cfg := parser.DefaultConfig(0.3)
	return &importService{
		importRepository:  repo,
		catalogRepository: &fakeCatalogLookup{ingredients: approved},
		ingredientParser:  parser.NewParser(cfg),
		classifier:        catalog.NewClassifier(nil),
		matcher:           catalog.NewMatcher(0.6),
		logger:            zap.NewNop(),
		cancels:           make(map[uuid.UUID]context.CancelFunc),
	}
}

func stageBatch(repo *fakeImportRepository, totalRows int) *entities.ImportBatch {
	batch := &entities.ImportBatch{
		ID:        uuid.New(),
		FileName:  "recipes.csv",
		Status:    BatchStatusPending,
		TotalRows: totalRows,
	}
	repo.batches[batch.ID] = batch
	return batch
}

func TestProcessBatchStagesRows(t *testing.T) {
	repo := newFakeImportRepository()
	service := newTestImportService(repo, nil)
	batch := stageBatch(repo, 2)

	service.processBatch(context.Background(), batch, []ImportRow{
		{RowNum: 1, SourceRef: "101", Title: "김치찌개", Ingredients: "[재료] 김치 300g | 돼지고기 200g [양념] 고춧가루 1큰술"},
		{RowNum: 2, SourceRef: "102", Title: "계란말이", Ingredients: "달걀 3개 | 대파 1대"},
	})

	assert.Equal(t, BatchStatusCompleted, batch.Status)
	assert.Equal(t, 2, batch.ProcessedRows)
	assert.Equal(t, 2, batch.SuccessCount)
	assert.Equal(t, 0, batch.ErrorCount)
	require.Len(t, repo.pendingRecipes, 2)
	assert.Len(t, repo.pendingIngredients, 5)

	first := repo.pendingIngredients[0]
	assert.Equal(t, "김치", first.NormalizedName)
	assert.Equal(t, "essential", first.Importance)
	assert.Equal(t, catalog.StatusPending, first.ApprovalStatus)
}

func TestProcessBatchIsolatesBadRows(t *testing.T) {
	repo := newFakeImportRepository()
	service := newTestImportService(repo, nil)
	batch := stageBatch(repo, 3)

	service.processBatch(context.Background(), batch, []ImportRow{
		{RowNum: 1, SourceRef: "1", Title: "김치찌개", Ingredients: "김치 300g"},
		{RowNum: 2, SourceRef: "2", Title: "", Ingredients: "두부 반모"},
		{RowNum: 3, SourceRef: "3", Title: "된장찌개", Ingredients: "두부 반모"},
	})

	assert.Equal(t, BatchStatusCompleted, batch.Status)
	assert.Equal(t, 3, batch.ProcessedRows)
	assert.Equal(t, 2, batch.SuccessCount)
	assert.Equal(t, 1, batch.ErrorCount)

	status, err := service.GetBatchStatus(context.Background(), batch.ID.String())
	require.NoError(t, err)
	require.Len(t, status.ErrorLog, 1)
	assert.Equal(t, 2, status.ErrorLog[0].RowNum)
}

func TestProcessBatchProposesDuplicates(t *testing.T) {
	approvedID := uuid.New()
	repo := newFakeImportRepository()
	service := newTestImportService(repo, []*entities.Ingredient{
		{ID: approvedID, CanonicalName: "고춧가루", UsageCount: 10},
	})
	batch := stageBatch(repo, 1)

	service.processBatch(context.Background(), batch, []ImportRow{
		{RowNum: 1, SourceRef: "1", Title: "제육볶음", Ingredients: "고추가루 1큰술"},
	})

	require.Len(t, repo.pendingIngredients, 1)
	pending := repo.pendingIngredients[0]
	require.NotNil(t, pending.DuplicateOfID)
	assert.Equal(t, approvedID, *pending.DuplicateOfID)
	assert.GreaterOrEqual(t, pending.MatchConfidence, 0.6)
}

func TestProcessBatchFlagsLowConfidenceForReview(t *testing.T) {
	repo := newFakeImportRepository()
	service := newTestImportService(repo, nil)
	batch := stageBatch(repo, 1)

	// A single-syllable name takes the short-name confidence penalty.
	service.processBatch(context.Background(), batch, []ImportRow{
		{RowNum: 1, SourceRef: "1", Title: "파국", Ingredients: "파 1대"},
	})

	require.Len(t, repo.pendingIngredients, 1)
	assert.Equal(t, catalog.StatusNeedsReview, repo.pendingIngredients[0].ApprovalStatus)
}

func TestProcessBatchKeepsRowLogWhenPersistFails(t *testing.T) {
	repo := newFakeImportRepository()
	flaky := &flakyImportRepository{fakeImportRepository: repo, failOn: 3}
	service := newTestImportService(repo, nil)
	service.importRepository = flaky
	batch := stageBatch(repo, 3)

	// Row 1 records a row-level error, then the progress write after row 2
	// fails. The batch has already processed rows, so it closes out as
	// completed and the log keeps both the row error and the write failure.
	service.processBatch(context.Background(), batch, []ImportRow{
		{RowNum: 1, SourceRef: "1", Title: "", Ingredients: "김치 300g"},
		{RowNum: 2, SourceRef: "2", Title: "된장찌개", Ingredients: "두부 반모"},
		{RowNum: 3, SourceRef: "3", Title: "김치찌개", Ingredients: "김치 300g"},
	})

	assert.Equal(t, BatchStatusCompleted, batch.Status)
	assert.Equal(t, 2, batch.ProcessedRows)

	status, err := service.GetBatchStatus(context.Background(), batch.ID.String())
	require.NoError(t, err)
	require.Len(t, status.ErrorLog, 2)
	assert.Equal(t, 1, status.ErrorLog[0].RowNum)
	assert.Equal(t, 0, status.ErrorLog[1].RowNum)
	assert.Contains(t, status.ErrorLog[1].ErrorMsg, "db connection reset")
}

func TestProcessBatchFailsOnlyBeforeAnyRow(t *testing.T) {
	repo := newFakeImportRepository()
	service := newTestImportService(repo, nil)
	service.catalogRepository = &brokenCatalogLookup{}
	batch := stageBatch(repo, 1)

	// A systemic error before the first row is the one case that marks the
	// batch failed, and the cause still lands in the error log.
	service.processBatch(context.Background(), batch, []ImportRow{
		{RowNum: 1, SourceRef: "1", Title: "김치찌개", Ingredients: "김치 300g"},
	})

	assert.Equal(t, BatchStatusFailed, batch.Status)
	assert.Equal(t, 0, batch.ProcessedRows)

	status, err := service.GetBatchStatus(context.Background(), batch.ID.String())
	require.NoError(t, err)
	require.Len(t, status.ErrorLog, 1)
	assert.Equal(t, 0, status.ErrorLog[0].RowNum)
}

func TestCancelImportStopsBetweenRows(t *testing.T) {
	repo := newFakeImportRepository()
	service := newTestImportService(repo, nil)
	batch := stageBatch(repo, 2)
	batch.Status = BatchStatusProcessing

	// Simulate a worker registration, then cancel before processing runs.
	ctx, cancel := context.WithCancel(context.Background())
	service.cancels[batch.ID] = cancel

	require.NoError(t, service.CancelImport(context.Background(), batch.ID.String()))
	assert.Error(t, ctx.Err())
}

func TestCancelImportBeforeWorkerStartsStagesNothing(t *testing.T) {
	repo := newFakeImportRepository()
	service := newTestImportService(repo, nil)
	batch := stageBatch(repo, 2)

	// The upload path registers the cancel handle before spawning the
	// worker, so a cancel landing in that window still reaches the worker
	// instead of closing the batch while rows keep processing.
	ctx, cancel := context.WithCancel(context.Background())
	service.cancels[batch.ID] = cancel

	require.NoError(t, service.CancelImport(context.Background(), batch.ID.String()))

	service.processBatch(ctx, batch, []ImportRow{
		{RowNum: 1, SourceRef: "1", Title: "김치찌개", Ingredients: "김치 300g"},
		{RowNum: 2, SourceRef: "2", Title: "된장찌개", Ingredients: "두부 반모"},
	})

	assert.Equal(t, BatchStatusCompleted, batch.Status)
	assert.Equal(t, 0, batch.ProcessedRows)
	assert.Empty(t, repo.pendingRecipes)
}

func TestCancelImportWithoutWorkerClosesBatch(t *testing.T) {
	repo := newFakeImportRepository()
	service := newTestImportService(repo, nil)
	batch := stageBatch(repo, 2)
	batch.Status = BatchStatusProcessing

	require.NoError(t, service.CancelImport(context.Background(), batch.ID.String()))
	assert.Equal(t, BatchStatusCompleted, batch.Status)
}

func TestCancelImportTerminalBatch(t *testing.T) {
	repo := newFakeImportRepository()
	service := newTestImportService(repo, nil)
	batch := stageBatch(repo, 2)
	batch.Status = BatchStatusCompleted

	err := service.CancelImport(context.Background(), batch.ID.String())
	assert.ErrorIs(t, err, domain.ErrBatchNotCancellable)
}

func TestGetBatchStatusNotFound(t *testing.T) {
	repo := newFakeImportRepository()
	service := newTestImportService(repo, nil)

	_, err := service.GetBatchStatus(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrBatchNotFound)
}
