package handlers

import (
	"Recipe-Radar-Backend/domain"
	"Recipe-Radar-Backend/internal/api/presenters"
	"Recipe-Radar-Backend/pkg/importer"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ImportHandler interface {
		UploadImport(c *fiber.Ctx) error
		GetBatchStatus(c *fiber.Ctx) error
		CancelImport(c *fiber.Ctx) error
		GetPendingIngredients(c *fiber.Ctx) error
		GetPendingRecipes(c *fiber.Ctx) error
	}

	importHandler struct {
		importService importer.ImportService
		validator     *validator.Validate
	}
)

func NewImportHandler(importService importer.ImportService, validator *validator.Validate) ImportHandler {
	return &importHandler{
		importService: importService,
		validator:     validator,
	}
}

func (h *importHandler) UploadImport(c *fiber.Ctx) error {
	req := new(domain.UploadImportRequest)

	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.File = file
	req.UploaderEmail = c.FormValue("uploader_email")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImport, err)
	}

	res, err := h.importService.UploadImport(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusAccepted, domain.MessageSuccessUploadImport)
}

func (h *importHandler) GetBatchStatus(c *fiber.Ctx) error {
	batchID := c.Params("id")

	res, err := h.importService.GetBatchStatus(c.Context(), batchID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBatchStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBatchStatus)
}

func (h *importHandler) CancelImport(c *fiber.Ctx) error {
	batchID := c.Params("id")

	if err := h.importService.CancelImport(c.Context(), batchID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCancelImport, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelImport)
}

func (h *importHandler) GetPendingIngredients(c *fiber.Ctx) error {
	batchID := c.Params("id")
	status := c.Query("status")
	page, limit := paginationParams(c)

	items, count, err := h.importService.GetPendingIngredients(c.Context(), batchID, status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPendingIngredients, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetPendingIngredients)
}

func (h *importHandler) GetPendingRecipes(c *fiber.Ctx) error {
	batchID := c.Params("id")
	status := c.Query("status")
	page, limit := paginationParams(c)

	items, count, err := h.importService.GetPendingRecipes(c.Context(), batchID, status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPendingRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetPendingRecipes)
}

func paginationParams(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	return page, limit
}
