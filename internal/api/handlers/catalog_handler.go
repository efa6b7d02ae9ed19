package handlers

import (
	"Recipe-Radar-Backend/domain"
	"Recipe-Radar-Backend/internal/api/presenters"
	"Recipe-Radar-Backend/pkg/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetIngredients(c *fiber.Ctx) error
		ApproveIngredient(c *fiber.Ctx) error
		RejectIngredient(c *fiber.Ctx) error
		MarkIngredientNeedsReview(c *fiber.Ctx) error
		ApproveRecipe(c *fiber.Ctx) error
		RejectRecipe(c *fiber.Ctx) error
		RecomputeSeasoningFlags(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) GetIngredients(c *fiber.Ctx) error {
	page, limit := paginationParams(c)

	items, count, err := h.catalogService.GetIngredients(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *catalogHandler) ApproveIngredient(c *fiber.Ctx) error {
	pendingID := c.Params("id")

	res, err := h.catalogService.ApproveIngredient(c.Context(), pendingID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApproveIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessApproveIngredient)
}

func (h *catalogHandler) RejectIngredient(c *fiber.Ctx) error {
	pendingID := c.Params("id")
	req := new(domain.ApprovalRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRejectIngredient, err)
	}

	if err := h.catalogService.RejectIngredient(c.Context(), pendingID, req.Reason); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRejectIngredient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRejectIngredient)
}

func (h *catalogHandler) MarkIngredientNeedsReview(c *fiber.Ctx) error {
	pendingID := c.Params("id")
	req := new(domain.ApprovalRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReviewIngredient, err)
	}

	if err := h.catalogService.MarkIngredientNeedsReview(c.Context(), pendingID, req.Reason); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReviewIngredient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReviewIngredient)
}

func (h *catalogHandler) ApproveRecipe(c *fiber.Ctx) error {
	pendingID := c.Params("id")

	res, err := h.catalogService.ApproveRecipe(c.Context(), pendingID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApproveRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessApproveRecipe)
}

func (h *catalogHandler) RejectRecipe(c *fiber.Ctx) error {
	pendingID := c.Params("id")
	req := new(domain.ApprovalRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRejectRecipe, err)
	}

	if err := h.catalogService.RejectRecipe(c.Context(), pendingID, req.Reason); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRejectRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRejectRecipe)
}

func (h *catalogHandler) RecomputeSeasoningFlags(c *fiber.Ctx) error {
	res, err := h.catalogService.RecomputeSeasoningFlags(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecomputeSeasoning, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRecomputeSeasoning)
}
